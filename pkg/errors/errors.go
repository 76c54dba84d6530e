// Package errors defines the error surface of the textfield library.
//
// Library code never logs on its own. Failures on paths that have no caller
// to return to (best-effort native mutations, event dispatch) become a
// FieldError delivered to the global ErrorHandler; parsing and loading APIs
// return errors normally.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind places a FieldError into one of the library's failure classes.
type ErrorKind int

const (
	KindUnknown  ErrorKind = iota
	KindPlatform           // native bridge or channel failure
	KindParsing            // malformed native payload
	KindConfig             // bad configuration or manifest input
	KindPanic              // recovered panic
)

var kindNames = [...]string{"unknown", "platform", "parsing", "config", "panic"}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// FieldError is the structured error the library hands to its ErrorHandler.
// Op names the failed operation in package.method form.
type FieldError struct {
	Op         string
	Kind       ErrorKind
	Channel    string // platform channel involved, when there is one
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *FieldError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// PanicError carries a recovered panic to the handler.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// ParseError pinpoints a native payload that did not have the shape a
// channel handler expects.
type ParseError struct {
	Channel  string
	DataType string // name of the expected shape
	Got      any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s on channel %s: unexpected %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives everything the library reports. Implementations run
// on the UI context and must not block.
type ErrorHandler interface {
	HandleError(err *FieldError)
	HandlePanic(err *PanicError)
}
