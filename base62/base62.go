// Package base62 packs unsigned integers into the digits 0-9A-Za-z.
//
// Digit 0 is '0', digit 10 is 'A' and digit 36 is 'a'. Encodings carry no
// leading zeros; zero encodes as "0".
package base62

import (
	"errors"
	"fmt"
	"math/bits"
)

const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	ErrOverflow = errors.New("base62: value overflows uint64")
	ErrEmpty    = errors.New("base62: empty input")
	ErrDigit    = errors.New("base62: invalid digit")
)

// DecodeError reports a character outside the alphabet.
type DecodeError struct {
	Char     rune
	Position int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("base62: invalid character %q at position %d", e.Char, e.Position)
}

func (e *DecodeError) Unwrap() error {
	return ErrDigit
}

// Encode returns the base62 digits of n.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = Alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}

// EncodeInt encodes a signed integer as an optional '-' followed by the
// digits of its magnitude.
func EncodeInt(n int64) string {
	if n < 0 {
		return "-" + Encode(uint64(-(n + 1))+1)
	}
	return Encode(uint64(n))
}

// Decode parses base62 digits.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	var acc uint64
	for i, r := range s {
		d, ok := digit(r)
		if !ok {
			return 0, &DecodeError{Char: r, Position: i}
		}
		hi, lo := bits.Mul64(acc, 62)
		if hi != 0 {
			return 0, ErrOverflow
		}
		sum, carry := bits.Add64(lo, d, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		acc = sum
	}
	return acc, nil
}

// DecodeInt is the inverse of EncodeInt.
func DecodeInt(s string) (int64, error) {
	neg := false
	digits := s
	if len(s) > 0 && s[0] == '-' {
		neg = true
		digits = s[1:]
	}
	u, err := Decode(digits)
	if err != nil {
		var de *DecodeError
		if neg && errors.As(err, &de) {
			return 0, &DecodeError{Char: de.Char, Position: de.Position + 1}
		}
		return 0, err
	}
	if neg {
		if u > 1<<63 {
			return 0, ErrOverflow
		}
		return -int64(u - 1) - 1, nil
	}
	if u > 1<<63-1 {
		return 0, ErrOverflow
	}
	return int64(u), nil
}

// Valid reports whether s consists only of base62 digits.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := digit(r); !ok {
			return false
		}
	}
	return true
}

func digit(r rune) (uint64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return uint64(r-'A') + 10, true
	case r >= 'a' && r <= 'z':
		return uint64(r-'a') + 36, true
	}
	return 0, false
}
