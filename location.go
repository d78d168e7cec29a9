package tinylog

import "runtime"

// Frame describes a fully resolved caller stack frame.
type Frame struct {
	Class  string
	Method string
	File   string
	Line   int
}

// Location is the call-site capability consumed by the dispatch engine.
//
// CallerClassName must stay cheaper than CallerFrame: the engine asks for
// the class name alone whenever no writer needs method, file, or line data,
// and asks for nothing at all when the class is not needed either.
type Location interface {
	// CallerClassName returns the package or type name of the caller.
	CallerClassName() string

	// CallerFrame resolves the full caller frame including method, source
	// file, and line number.
	CallerFrame() Frame
}

type runtimeLocation struct {
	pc uintptr
	ok bool
}

// CallerLocation captures the program counter of the caller skip frames
// above the caller of CallerLocation. Resolution of the class name or the
// full frame is deferred until the dispatch engine asks for it.
func CallerLocation(skip int) Location {
	var pcs [1]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	return runtimeLocation{pc: pcs[0], ok: n > 0}
}

func (l runtimeLocation) CallerClassName() string {
	if !l.ok {
		return emptyString
	}
	fn := runtime.FuncForPC(l.pc)
	if fn == nil {
		return emptyString
	}
	class, _ := splitClassMethod(fn.Name())
	return class
}

func (l runtimeLocation) CallerFrame() Frame {
	if !l.ok {
		return Frame{}
	}
	frames := runtime.CallersFrames([]uintptr{l.pc})
	frame, _ := frames.Next()
	class, method := splitClassMethod(frame.Function)
	return Frame{
		Class:  class,
		Method: method,
		File:   frame.File,
		Line:   frame.Line,
	}
}
