package tinylog

import "time"

// Entry is the immutable record handed to writers for a single log call.
//
// Optional fields hold their zero value unless some writer in the active
// WriterRepository declared the matching ValueSet bit: Timestamp is the zero
// time, Uptime and Line are 0, Thread is 0, Context is nil, and Class,
// Method, and File are empty. Message is always populated (or empty when no
// message was given); it is not gated by the required-value union.
//
// An Entry is created once per enabled call and may be shared between the
// calling goroutine and the writing thread. No receiver may mutate it.
type Entry struct {
	Timestamp time.Time
	Uptime    time.Duration
	Thread    uint64
	Context   map[string]string
	Class     string
	Method    string
	File      string
	Line      int
	Tag       string
	Level     Level
	Message   string
	Err       error
}
