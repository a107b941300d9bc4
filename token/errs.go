package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8         = errors.New("bad utf8")
	ErrUnterminated    = errors.New("unterminated")
	ErrBadEscape       = errors.New("bad escape")
	ErrUnexpected      = errors.New("unexpected")
	ErrIntegerOverflow = errors.New("integer overflow")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func UnexpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
