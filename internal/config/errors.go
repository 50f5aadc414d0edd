package config

import "fmt"

// Error reports an invalid configuration value.
type Error struct {
	// Field is the setting that failed (e.g. "border", "position", "presets.ascii")
	Field string
	// Value is the offending input
	Value string
	// Message describes the problem
	Message string
	// Underlying error if any
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
