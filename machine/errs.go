package machine

import (
	"errors"
	"fmt"
)

type Kind int

const (
	InvalidMagic Kind = iota + 1
	UnsupportedVersion
	BufferTooSmall
	InvalidAlignment
	InvalidData
)

var kindNames = map[Kind]string{
	InvalidMagic:       "InvalidMagic",
	UnsupportedVersion: "UnsupportedVersion",
	BufferTooSmall:     "BufferTooSmall",
	InvalidAlignment:   "InvalidAlignment",
	InvalidData:        "InvalidData",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrMachine            = errors.New("machine format error")
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrBufferTooSmall     = errors.New("buffer too small")
	ErrInvalidAlignment   = errors.New("invalid alignment")
	ErrInvalidData        = errors.New("invalid data")
)

func (k Kind) sentinel() error {
	switch k {
	case InvalidMagic:
		return ErrInvalidMagic
	case UnsupportedVersion:
		return ErrUnsupportedVersion
	case BufferTooSmall:
		return ErrBufferTooSmall
	case InvalidAlignment:
		return ErrInvalidAlignment
	}
	return ErrInvalidData
}

// Error describes a rejected buffer. Required and Actual are byte counts
// for BufferTooSmall and alignments for InvalidAlignment. Offset is the
// byte offset of the fault when known, or -1.
type Error struct {
	Kind     Kind
	Required int
	Actual   int
	Offset   int
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case BufferTooSmall:
		msg = fmt.Sprintf("buffer too small: need %d bytes, have %d", e.Required, e.Actual)
	case InvalidAlignment:
		msg = fmt.Sprintf("invalid alignment: need %d, buffer is aligned to %d", e.Required, e.Actual)
	default:
		msg = e.Kind.sentinel().Error()
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
	}
	if e.Offset >= 0 && e.Kind != BufferTooSmall {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == ErrMachine || target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func tooSmall(required, actual int) *Error {
	return &Error{Kind: BufferTooSmall, Required: required, Actual: actual, Offset: -1}
}

func invalid(off int, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: InvalidData, Offset: off, Reason: msg}
}
