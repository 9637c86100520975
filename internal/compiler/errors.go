package compiler

import "fmt"

// Kind classifies a compile failure.
type Kind int

const (
	// KindOpen means the input file could not be opened. Nothing was written.
	KindOpen Kind = iota + 1
	// KindProcessing means reading, parsing or writing failed after the input
	// was opened. The debug file may be partially written.
	KindProcessing
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindProcessing:
		return "processing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the failure outcome of a compile.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindOpen {
		return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to compile %s: %s", e.Path, e.message())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic is the two-line report printed for the failure.
func (e *Error) Diagnostic() string {
	if e.Kind == KindOpen {
		return "b26c=1\nfile-opened: 0"
	}
	return "b26c=1\nerror: " + e.message()
}

// ExitCode is the process exit code for the failure.
func (e *Error) ExitCode() int {
	return 1
}

func (e *Error) message() string {
	if e.Message == "" {
		return "?"
	}
	return e.Message
}

func openError(path string, err error) *Error {
	return &Error{Kind: KindOpen, Path: path, Err: err}
}

func processingError(path string, err error) *Error {
	return &Error{Kind: KindProcessing, Path: path, Message: err.Error(), Err: err}
}
