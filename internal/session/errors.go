package session

import (
	"errors"
	"fmt"

	"github.com/muurk/ibox/internal/box"
	"github.com/muurk/ibox/internal/capture"
	"github.com/muurk/ibox/internal/config"
	"github.com/muurk/ibox/internal/terminal"
)

// ErrorType represents the category of a failed run
type ErrorType int

const (
	// ErrTypeConfiguration indicates a malformed flag, preset or config file
	ErrTypeConfiguration ErrorType = iota
	// ErrTypeEmptyQuery indicates there was nothing to render
	ErrTypeEmptyQuery
	// ErrTypeTerminal indicates a failed terminal query or terminal I/O
	ErrTypeTerminal
	// ErrTypeIO indicates writing the captured output failed
	ErrTypeIO
	// ErrTypeInvariant indicates an impossible layout; this is a bug
	ErrTypeInvariant
	// ErrTypeInterrupted indicates the user pressed Ctrl+C
	ErrTypeInterrupted
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConfiguration:
		return "Configuration Error"
	case ErrTypeEmptyQuery:
		return "Empty Query"
	case ErrTypeTerminal:
		return "Terminal Error"
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeInvariant:
		return "Internal Error"
	case ErrTypeInterrupted:
		return "Interrupted"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ExitCode returns the process exit code for the error type
func (et ErrorType) ExitCode() int {
	switch et {
	case ErrTypeConfiguration, ErrTypeEmptyQuery:
		return 2
	case ErrTypeTerminal:
		return 3
	case ErrTypeIO:
		return 4
	case ErrTypeInvariant:
		return 70
	case ErrTypeInterrupted:
		return 130
	default:
		return 1
	}
}

// ShowUsage reports whether the usage text should accompany the message
func (et ErrorType) ShowUsage() bool {
	return et == ErrTypeConfiguration || et == ErrTypeEmptyQuery
}

// Error is a classified run failure
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this error
func (e *Error) ExitCode() int {
	return e.Type.ExitCode()
}

// Classify maps any error produced by a run to a *Error. It is the only
// place error kinds are decided.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return &Error{Type: ErrTypeConfiguration, Message: cfgErr.Error(), Err: err}
	}

	if errors.Is(err, box.ErrEmptyQuery) {
		return &Error{Type: ErrTypeEmptyQuery, Message: "no query specified", Err: err}
	}

	var invErr *box.InvariantError
	if errors.As(err, &invErr) {
		return &Error{Type: ErrTypeInvariant, Message: invErr.Error(), Err: err}
	}

	var stateErr *capture.StateError
	if errors.As(err, &stateErr) {
		return &Error{Type: ErrTypeInvariant, Message: stateErr.Error(), Err: err}
	}

	if errors.Is(err, capture.ErrInterrupted) {
		return &Error{Type: ErrTypeInterrupted, Message: "input interrupted", Err: err}
	}

	var termErr *terminal.Error
	if errors.As(err, &termErr) {
		return &Error{Type: ErrTypeTerminal, Message: termErr.Error(), Err: err}
	}

	// Anything else surfaced from the CLI layer is a usage problem
	return &Error{Type: ErrTypeConfiguration, Message: err.Error(), Err: err}
}
