package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the classification of a bare word.
type Kind int

const (
	KString Kind = iota
	KNull
	KBool
	KInt
	KFloat
)

func (k Kind) String() string {
	switch k {
	case KNull:
		return "null"
	case KBool:
		return "bool"
	case KInt:
		return "int"
	case KFloat:
		return "float"
	}
	return "string"
}

// Classify determines how a bare word reads. Integers which do not fit
// in 64 bits are KInt with an error wrapping ErrIntegerOverflow.
func Classify(s string) (Kind, error) {
	switch s {
	case "null":
		return KNull, nil
	case "true", "false", "+", "-":
		return KBool, nil
	case "NaN", "Inf", "+Inf", "-Inf":
		return KFloat, nil
	}
	d := []byte(s)
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	n, isFloat, ok := number(d)
	if !ok || n != len(d) {
		return KString, nil
	}
	if isFloat {
		return KFloat, nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return KInt, fmt.Errorf("%w: %s", ErrIntegerOverflow, s)
	}
	return KInt, nil
}

// ParseBool parses the boolean spellings true, false, + and -.
func ParseBool(s string) (bool, bool) {
	switch s {
	case "true", "+":
		return true, true
	case "false", "-":
		return false, true
	}
	return false, false
}

// ParseFloat parses a float word including NaN and the infinities.
func ParseFloat(s string) (float64, error) {
	switch s {
	case "Inf", "+Inf":
		return strconv.ParseFloat("+Inf", 64)
	}
	return strconv.ParseFloat(s, 64)
}

// number scans an unsigned decimal number. It reports the length scanned,
// whether it has a fraction or exponent, and false if it is not a number
// at all (including integers with leading zeros).
func number(d []byte) (int, bool, bool) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, false
	}
	if digits > 1 && d[0] == '0' {
		return 0, false, false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits + f + e, f+e > 0, true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}

// valueSpecial lists bytes that force quoting of a string value.
const valueSpecial = `"#()[]|$^%:=>!?\`

// NeedsQuote reports whether the string s must be quoted to read back as
// the same string in either text format.
func NeedsQuote(s string) bool {
	if s == "" || s == "_" {
		return true
	}
	if k, _ := Classify(s); k != KString {
		return true
	}
	if s[0] == '-' {
		return true
	}
	for _, r := range s {
		if r < utf8.RuneSelf {
			if strings.IndexByte(valueSpecial, byte(r)) >= 0 {
				return true
			}
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// Quote returns s as a double quoted Go string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Unquote undoes Quote.
func Unquote(s string) (string, error) {
	res, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBadEscape, s)
	}
	return res, nil
}

// QuoteIfNeeded quotes s only when NeedsQuote says so.
func QuoteIfNeeded(s string) string {
	if NeedsQuote(s) {
		return Quote(s)
	}
	return s
}
