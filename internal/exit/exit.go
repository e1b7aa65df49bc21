package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes reported by the qj binary.
const (
	CodeOK     = 0
	CodeUsage  = 2 // bad arguments, unreadable or malformed input
	CodeSyntax = 3 // filter expression syntax error
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a successful exit result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeOK,
		Message:  message,
	}
}

// Error creates an error exit result that outputs to stderr.
func Error(code int, message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: code,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(code int, format string, a ...any) *Result {
	return Error(code, fmt.Sprintf(format, a...))
}
