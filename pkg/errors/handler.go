package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives everything reported through this package. Swap it
// with SetHandler; the starting handler logs to stderr.
var DefaultHandler ErrorHandler = &LogHandler{}

var mu sync.RWMutex

// SetHandler swaps the global handler. A nil handler restores the stderr
// LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	mu.Lock()
	DefaultHandler = h
	mu.Unlock()
}

func current() ErrorHandler {
	mu.RLock()
	defer mu.RUnlock()
	return DefaultHandler
}

// Report delivers err to the global handler, stamping the time if the caller
// did not.
func Report(err *FieldError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	h := current()
	if h == nil {
		return
	}
	h.HandleError(err)
}

// ReportPanic delivers a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	h := current()
	if h == nil {
		return
	}
	h.HandlePanic(err)
}

// Recover reports a panic and swallows it. The library itself lets callback
// panics propagate; Recover is for a host's outermost loop:
//
//	defer errors.Recover("app.frame")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack renders the caller's stack, skipping the capture frames.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
