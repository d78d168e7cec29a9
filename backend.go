package tinylog

import (
	"errors"
	"time"
)

// processStart anchors the uptime stamped onto entries.
var processStart = time.Now()

// Visibility reports, per severity level, whether any writer at all would
// receive an entry for a given tag. Callers upstream use it to skip message
// preparation for levels nobody listens to.
type Visibility struct {
	Trace bool
	Debug bool
	Info  bool
	Warn  bool
	Error bool
}

// Backend is the dispatch engine: the single entry point invoked per log
// call. It resolves enablement against the scope table, builds the minimal
// entry for the eligible writers, and fans the entry out synchronously or
// through the writing thread.
//
// A backend is immutable after construction and safe for concurrent use.
type Backend struct {
	configuration  *LoggingConfiguration
	contextStorage *ContextStorage
	writingThread  *WritingThread
	reporter       Reporter
	hook           *LifecycleHook
}

// BackendOptions carries the optional collaborators of a backend. Zero
// values select defaults: a stderr diagnostic reporter, a fresh context
// store, and a writing thread created on demand when the configuration
// contains async writers.
type BackendOptions struct {
	WritingThread  *WritingThread
	QueueCapacity  int
	Reporter       Reporter
	ContextStorage *ContextStorage
}

// NewBackend creates a dispatch engine for the passed configuration.
func NewBackend(configuration *LoggingConfiguration, options BackendOptions) (*Backend, error) {
	if configuration == nil {
		return nil, errors.New(errMsgNilConfiguration)
	}

	reporter := options.Reporter
	if reporter == nil {
		reporter = NewDiagnosticReporter(DiagnosticOptions{})
	}

	thread := options.WritingThread
	if thread == nil && configuration.HasAsyncWriters() {
		thread = NewWritingThread(options.QueueCapacity, reporter)
	}

	contextStorage := options.ContextStorage
	if contextStorage == nil {
		contextStorage = NewContextStorage()
	}

	return &Backend{
		configuration:  configuration,
		contextStorage: contextStorage,
		writingThread:  thread,
		reporter:       reporter,
		hook:           NewLifecycleHook(configuration.AllWriters(), thread),
	}, nil
}

// ContextStorage returns the scoped key/value store stamped onto entries
// when a writer requires ValueContext.
func (b *Backend) ContextStorage() *ContextStorage {
	return b.contextStorage
}

// Hook returns the lifecycle hook owning the writing thread and writers.
func (b *Backend) Hook() *LifecycleHook {
	return b.hook
}

// IsEnabled reports whether a log call at the passed severity level would
// be dispatched for the caller behind location and the passed tag. It has
// no side effects and is safe to call speculatively.
func (b *Backend) IsEnabled(location Location, tag string, level Level) bool {
	effective := b.configuration.resolve(normalizeLocation(location)).Level(normalizeTag(tag))
	return level.IsAtLeastAsSevereAs(effective)
}

// Visibility reports for each severity level whether any writer would
// receive entries carrying the passed tag, independent of caller scope.
func (b *Backend) Visibility(tag string) Visibility {
	internalTag := normalizeTag(tag)
	return Visibility{
		Trace: len(b.configuration.WritersFor(internalTag, LevelTrace).AllWriters()) > 0,
		Debug: len(b.configuration.WritersFor(internalTag, LevelDebug).AllWriters()) > 0,
		Info:  len(b.configuration.WritersFor(internalTag, LevelInfo).AllWriters()) > 0,
		Warn:  len(b.configuration.WritersFor(internalTag, LevelWarn).AllWriters()) > 0,
		Error: len(b.configuration.WritersFor(internalTag, LevelError).AllWriters()) > 0,
	}
}

// Log dispatches one log call. The severity level is rechecked against the
// caller's scope, so calling Log without a prior IsEnabled is fine. A
// writer or formatter failure never reaches the caller: it is reported to
// the diagnostic channel, unless the caller-supplied tag is the reserved
// InternalTag, in which case it is swallowed to prevent self-logging
// recursion.
func (b *Backend) Log(location Location, tag string, level Level, err error, message any, arguments []any, formatter MessageFormatter) {
	if level < LevelTrace || level >= LevelOff {
		return
	}

	location = normalizeLocation(location)
	internalTag := normalizeTag(tag)

	effective := b.configuration.resolve(location).Level(internalTag)
	if !level.IsAtLeastAsSevereAs(effective) {
		return
	}

	repository := b.configuration.WritersFor(internalTag, level)
	if len(repository.AllWriters()) == 0 {
		return
	}

	var renderedMessage string
	if formatter == nil {
		renderedMessage = messageString(message)
	} else {
		var formatErr error
		renderedMessage, formatErr = safeFormat(formatter, messageString(message), arguments)
		if formatErr != nil {
			// Formatting is shared by all writers, so the entry is not
			// delivered to any of them.
			if tag != InternalTag {
				b.reporter.Report(formatErr, errMsgFormatterFailed)
			}
			return
		}
	}

	entry := b.createEntry(location, tag, level, err, renderedMessage, repository.RequiredValues())

	for _, writer := range repository.SyncWriters() {
		if writeErr := safeWrite(writer, entry); writeErr != nil && tag != InternalTag {
			b.reporter.Report(writeErr, errMsgWriteFailed)
		}
	}

	for _, writer := range repository.AsyncWriters() {
		b.writingThread.Enqueue(writer, entry)
	}
}

// createEntry builds the minimal record for the passed required-value
// union. The frame cost is tiered: a full stack frame is resolved only when
// method, file, or line data is required, the class name alone when only
// the class is required, and neither otherwise.
func (b *Backend) createEntry(location Location, tag string, level Level, err error, message string, required ValueSet) *Entry {
	entry := &Entry{
		Tag:     tag,
		Level:   level,
		Message: message,
		Err:     err,
	}

	if required.ContainsAny(frameValues) {
		frame := location.CallerFrame()
		entry.Class = frame.Class
		entry.Method = frame.Method
		entry.File = frame.File
		entry.Line = frame.Line
	} else if required.Contains(ValueClass) {
		entry.Class = location.CallerClassName()
	}

	if required.Contains(ValueTimestamp) {
		entry.Timestamp = time.Now()
	}
	if required.Contains(ValueUptime) {
		entry.Uptime = time.Since(processStart)
	}
	if required.Contains(ValueThread) {
		entry.Thread = goroutineID()
	}
	if required.Contains(ValueContext) {
		entry.Context = b.contextStorage.Mapping()
	}

	return entry
}

// normalizeTag maps the absent tag to the internal untagged sentinel so
// that tagged and untagged configurations share one lookup path.
func normalizeTag(tag string) string {
	if tag == emptyString {
		return UntaggedPlaceholder
	}
	return tag
}

// normalizeLocation substitutes an inert location for nil so that scope
// resolution degrades to the global scope instead of crashing.
func normalizeLocation(location Location) Location {
	if location == nil {
		return noLocation{}
	}
	return location
}

type noLocation struct{}

func (noLocation) CallerClassName() string { return emptyString }

func (noLocation) CallerFrame() Frame { return Frame{} }
