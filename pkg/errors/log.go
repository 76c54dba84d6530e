package errors

import (
	"fmt"
	"os"
	"strings"
)

// LogHandler writes reported errors to stderr. It is the handler in place
// until a host installs its own.
type LogHandler struct {
	// Verbose adds the error kind, channel, and stack traces to the output.
	Verbose bool
}

// HandleError implements ErrorHandler.
func (h *LogHandler) HandleError(err *FieldError) {
	if err == nil {
		return
	}
	if !h.Verbose {
		fmt.Fprintf(os.Stderr, "textfield: %s: %v\n", err.Op, err.Err)
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "textfield: %v\n", err)
	if err.StackTrace != "" {
		sb.WriteString(err.StackTrace)
		sb.WriteString("\n")
	}
	os.Stderr.WriteString(sb.String())
}

// HandlePanic implements ErrorHandler.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "textfield: %v\n", err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintln(os.Stderr, err.StackTrace)
	}
}
