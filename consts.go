package tinylog

const (
	// UntaggedPlaceholder is the internal sentinel for calls issued without a
	// tag. Tagged and untagged lookups share one code path through it.
	UntaggedPlaceholder = "-"

	// InternalTag is reserved for the diagnostic self-log channel. Delivery
	// failures for calls carrying this tag are swallowed instead of reported
	// to avoid infinite self-logging recursion.
	InternalTag = "tinylog"

	emptyString = ""
)

const (
	errMsgNilConfiguration = "logging configuration is nil"
	errMsgNilWriter        = "writer configuration is invalid"
	errMsgFormatterFailed  = "failed to format log message"
	errMsgWriteFailed      = "failed to write log entry"
	errMsgEnqueueAfterStop = "log entry enqueued after writing thread stopped"
	errMsgFlushFailed      = "failed to flush writer"
)
