package tinylog

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
)

// splitClassMethod splits a runtime function name into its class part and
// its method part. For "example.com/app/pkg.(*Service).Run" it returns
// "example.com/app/pkg.Service" and "Run"; for a plain function the class
// part is the package path.
func splitClassMethod(function string) (class string, method string) {
	if function == emptyString {
		return emptyString, emptyString
	}

	index := strings.LastIndexByte(function, '.')
	if index < 0 {
		return function, emptyString
	}

	class = function[:index]
	method = function[index+1:]

	// Fold a pointer or value receiver into the class name:
	// "pkg.(*Service)" -> "pkg.Service", "pkg.(Service)" -> "pkg.Service".
	if open := strings.LastIndex(class, ".("); open >= 0 && strings.HasSuffix(class, ")") {
		receiver := strings.TrimPrefix(class[open+2:len(class)-1], "*")
		class = class[:open+1] + receiver
	}

	return class, method
}

// reduceScope removes the last '.', '$', or '/' delimited segment of a
// package or class name. "com.example.Foo$Bar" reduces to "com.example.Foo"
// and "com" reduces to the empty global scope.
func reduceScope(scope string) string {
	index := len(scope)
	for index > 0 {
		index--
		switch scope[index] {
		case '.', '$', '/':
			return scope[:index]
		}
	}
	return emptyString
}

// goroutineID extracts the numeric id of the calling goroutine from the
// runtime stack header ("goroutine 42 [running]:"). Only invoked when some
// writer declared ValueThread.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]

	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if index := bytes.IndexByte(header, ' '); index > 0 {
		header = header[:index]
	}

	id, err := strconv.ParseUint(string(header), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
