package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("unsupported type")
	ErrNotPointer  = errors.New("target is not a non-nil pointer")
)

// MarshalError reports a value that could not be mapped to a document.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// TypeError reports a document value of the wrong type for its target.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}
