package ir

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrNotObject      = errors.New("not an object")
	ErrNoSuchKey      = errors.New("no such key")
	ErrBadPath        = errors.New("bad key path")
)

// SchemaError reports a table row or cell that does not match the schema.
type SchemaError struct {
	Expected string
	Found    string
	Row      int
	Column   int
}

func (e *SchemaError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("%s: row %d: expected %s, found %s", ErrSchemaMismatch, e.Row, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: row %d column %d: expected %s, found %s", ErrSchemaMismatch, e.Row, e.Column, e.Expected, e.Found)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}
