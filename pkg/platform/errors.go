package platform

import "errors"

// Sentinel errors for channel and view operations. Callers match these with
// errors.Is; the richer context travels in the wrapping error.
var (
	ErrChannelNotFound     = errors.New("no such platform channel")
	ErrMethodNotFound      = errors.New("method not implemented by peer")
	ErrInvalidArguments    = errors.New("invalid channel arguments")
	ErrPlatformUnavailable = errors.New("no native platform attached")
	ErrViewTypeNotFound    = errors.New("unregistered platform view type")
	ErrViewNotFound        = errors.New("no platform view with that id")
)

// ChannelError is a structured failure sent by the native side. Code is a
// stable machine-readable tag; Message and Details are for diagnostics.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *ChannelError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// NewChannelError builds a ChannelError from a code and message.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}

// NewChannelErrorWithDetails builds a ChannelError carrying a details payload.
func NewChannelErrorWithDetails(code, message string, details any) *ChannelError {
	return &ChannelError{Code: code, Message: message, Details: details}
}
