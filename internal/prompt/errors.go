package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned when the input stream ends before a single
	// byte of the line has been read.
	ErrNoInput = errors.New("input stream closed before a line was entered")

	// ErrInvalidEncoding is returned when the line read is not valid UTF-8.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// ReadError is the unrecoverable failure of the console read. It aborts the
// invocation.
type ReadError struct {
	// Message is the user-facing diagnostic, already localised.
	Message string
	Err     error
}

func (e *ReadError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = English.ReadFailure
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ValidationReason classifies why a line was not accepted as a number.
type ValidationReason string

const (
	ReasonEmpty  ValidationReason = "empty"
	ReasonSyntax ValidationReason = "syntax"
	ReasonRange  ValidationReason = "range"
)

// ValidationError reports text that is not a well-formed base-10 int32.
type ValidationError struct {
	Input  string
	Reason ValidationReason
	Err    error
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "no number entered"
	case ReasonRange:
		return fmt.Sprintf("number %q is out of range for a 32-bit integer", e.Input)
	default:
		return fmt.Sprintf("%q is not a base-10 integer", e.Input)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
