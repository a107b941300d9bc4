package ir

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// keySpecial lists the bytes that cannot appear in a bare key segment.
const keySpecial = `.:=>!?%()[]|"#$^`

// BareKey reports whether s can be written as a bare key segment.
func BareKey(s string) bool {
	if s == "" || s[0] == '-' || s == "_" {
		return false
	}
	for _, r := range s {
		if r < 0x80 && strings.IndexByte(keySpecial, byte(r)) >= 0 {
			return false
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// QuoteKey returns s as a key segment, quoting it when it is not bare.
func QuoteKey(s string) string {
	if BareKey(s) {
		return s
	}
	return strconv.Quote(s)
}

// JoinPath joins segments into a dotted key path, quoting as needed.
func JoinPath(segs []string) string {
	b := &strings.Builder{}
	for i, s := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(QuoteKey(s))
	}
	return b.String()
}

// SplitPath splits a dotted key path such as `a."b.c".d` into its
// segments. Quoted segments use Go string syntax.
func SplitPath(p string) ([]string, error) {
	segs, _, err := SplitPathQuoted(p)
	return segs, err
}

// SplitPathQuoted is SplitPath also reporting which segments were quoted.
func SplitPathQuoted(p string) ([]string, []bool, error) {
	if p == "" {
		return nil, nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	var (
		segs   []string
		quoted []bool
	)
	i := 0
	for {
		if i >= len(p) {
			return nil, nil, fmt.Errorf("%w: %q: empty segment at end", ErrBadPath, p)
		}
		if p[i] == '"' {
			j := QuotedEnd(p, i)
			if j < 0 {
				return nil, nil, fmt.Errorf("%w: %q: unterminated quote at %d", ErrBadPath, p, i)
			}
			s, err := strconv.Unquote(p[i:j])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
			}
			segs = append(segs, s)
			quoted = append(quoted, true)
			i = j
		} else {
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '"' {
				j++
			}
			if j == i {
				return nil, nil, fmt.Errorf("%w: %q: empty segment at %d", ErrBadPath, p, i)
			}
			segs = append(segs, p[i:j])
			quoted = append(quoted, false)
			i = j
		}
		if i == len(p) {
			return segs, quoted, nil
		}
		if p[i] != '.' {
			return nil, nil, fmt.Errorf("%w: %q: expected '.' at %d", ErrBadPath, p, i)
		}
		i++
	}
}

// QuotedEnd returns the index just past the closing quote of the Go
// string literal starting at s[i], or -1 if it is not terminated.
func QuotedEnd(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return -1
}
