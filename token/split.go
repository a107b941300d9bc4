package token

import "strings"

// IndexUnquoted returns the index of the first byte of s in chars that
// is outside double quotes, or -1.
func IndexUnquoted(s, chars string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			end := QuotedEnd([]byte(s), i)
			if end < 0 {
				return -1
			}
			i = end - 1
			continue
		}
		if strings.IndexByte(chars, c) >= 0 {
			return i
		}
	}
	return -1
}

// SplitUnquoted splits s on sep outside double quotes.
func SplitUnquoted(s string, sep byte) []string {
	var res []string
	for {
		i := IndexUnquoted(s, string(sep))
		if i < 0 {
			return append(res, s)
		}
		res = append(res, s[:i])
		s = s[i+1:]
	}
}

// CommentStart returns the index of a '#' that begins a token outside
// quotes, or -1.
func CommentStart(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			end := QuotedEnd([]byte(s), i)
			if end < 0 {
				return -1
			}
			i = end - 1
			continue
		}
		if c == '#' && (i == 0 || IsSpace(s[i-1])) {
			return i
		}
	}
	return -1
}

// StripComment removes a trailing comment and surrounding whitespace.
func StripComment(s string) string {
	if i := CommentStart(s); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
