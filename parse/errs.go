package parse

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	UnexpectedToken Kind = iota + 1
	UnterminatedString
	SchemaMismatch
	UnknownAlias
	DuplicateAliasDefinition
	Base62DecodeError
	IntegerOverflow
	DuplicateKey
	InputTooLarge
	LimitExceeded
)

var (
	ErrParse                    = errors.New("parse error")
	ErrUnexpectedToken          = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnterminatedString       = fmt.Errorf("%w: unterminated string", ErrParse)
	ErrSchemaMismatch           = fmt.Errorf("%w: schema mismatch", ErrParse)
	ErrUnknownAlias             = fmt.Errorf("%w: unknown alias", ErrParse)
	ErrDuplicateAliasDefinition = fmt.Errorf("%w: duplicate alias definition", ErrParse)
	ErrBase62Decode             = fmt.Errorf("%w: base62 decode", ErrParse)
	ErrIntegerOverflow          = fmt.Errorf("%w: integer overflow", ErrParse)
	ErrDuplicateKey             = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrInputTooLarge            = fmt.Errorf("%w: input too large", ErrParse)
	ErrLimitExceeded            = fmt.Errorf("%w: limit exceeded", ErrParse)
)

func (k Kind) sentinel() error {
	switch k {
	case UnexpectedToken:
		return ErrUnexpectedToken
	case UnterminatedString:
		return ErrUnterminatedString
	case SchemaMismatch:
		return ErrSchemaMismatch
	case UnknownAlias:
		return ErrUnknownAlias
	case DuplicateAliasDefinition:
		return ErrDuplicateAliasDefinition
	case Base62DecodeError:
		return ErrBase62Decode
	case IntegerOverflow:
		return ErrIntegerOverflow
	case DuplicateKey:
		return ErrDuplicateKey
	case InputTooLarge:
		return ErrInputTooLarge
	case LimitExceeded:
		return ErrLimitExceeded
	}
	return ErrParse
}

func (k Kind) String() string {
	s := k.sentinel().Error()
	return strings.TrimPrefix(s, ErrParse.Error()+": ")
}

// Error is a parse failure. Line and Col are 1-based; either may be zero
// when unknown. The remaining fields are set according to Kind:
//
//   - SchemaMismatch: Expected and Found
//   - UnknownAlias, DuplicateAliasDefinition, DuplicateKey: Name
//   - Base62DecodeError: Char and Position (0-based rune index in the digits)
type Error struct {
	Kind     Kind
	Line     int
	Col      int
	Msg      string
	Expected string
	Found    string
	Name     string
	Char     rune
	Position int
	Err      error
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	if e.Line > 0 {
		fmt.Fprintf(b, "line %d", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(b, ", col %d", e.Col)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.sentinel().Error())
	switch e.Kind {
	case SchemaMismatch:
		if e.Expected != "" || e.Found != "" {
			fmt.Fprintf(b, ": expected %s, found %s", e.Expected, e.Found)
		}
	case UnknownAlias, DuplicateAliasDefinition, DuplicateKey:
		fmt.Fprintf(b, " %q", e.Name)
	case Base62DecodeError:
		fmt.Fprintf(b, ": invalid character %q at position %d", e.Char, e.Position)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel() || target == ErrParse
}

func (e *Error) Unwrap() error {
	return e.Err
}
