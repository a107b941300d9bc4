package token

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenOpts struct {
	llm bool
}

type TokenOpt func(*tokenOpts)

// TokenHuman splits words on whitespace only.
func TokenHuman() TokenOpt {
	return func(o *tokenOpts) { o.llm = false }
}

// TokenLLM also makes the brackets ()[] tokens of their own.
func TokenLLM() TokenOpt {
	return func(o *tokenOpts) { o.llm = true }
}

// Tokenize splits doc into lines and tokenizes each one.
func Tokenize(doc []byte, opts ...TokenOpt) ([]Line, error) {
	raws := SplitLines(doc)
	res := make([]Line, 0, len(raws))
	for i, raw := range raws {
		ln, err := TokenizeLine(raw, i+1, opts...)
		if err != nil {
			return nil, err
		}
		res = append(res, *ln)
	}
	return res, nil
}

// SplitLines splits doc on '\n', dropping a trailing '\r' from each line.
// A final newline does not start another line.
func SplitLines(doc []byte) [][]byte {
	if len(doc) == 0 {
		return nil
	}
	parts := bytes.Split(doc, []byte{'\n'})
	if len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = bytes.TrimSuffix(p, []byte{'\r'})
	}
	return parts
}

// ParsePragma recognizes `#!name=value`. A pragma without '=' has an
// empty value.
func ParsePragma(raw []byte) (*Pragma, bool) {
	t := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(t, "#!") {
		return nil, false
	}
	t = t[2:]
	name, value, _ := strings.Cut(t, "=")
	return &Pragma{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}, true
}

// TokenizeLine tokenizes a single line numbered n.
func TokenizeLine(raw []byte, n int, opts ...TokenOpt) (*Line, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	ln := &Line{N: n, Raw: raw}
	if !utf8.Valid(raw) {
		col := 1
		for i := 0; i < len(raw); {
			r, sz := utf8.DecodeRune(raw[i:])
			if r == utf8.RuneError && sz <= 1 {
				col = i + 1
				break
			}
			i += sz
		}
		return nil, NewTokenizeErr(ErrBadUTF8, Pos{Line: n, Col: col})
	}
	if p, ok := ParsePragma(raw); ok {
		ln.Pragma = p
		return ln, nil
	}
	i := 0
	for i < len(raw) {
		c := raw[i]
		if IsSpace(c) {
			i++
			continue
		}
		pos := Pos{Line: n, Col: i + 1}
		if c == '#' {
			ln.Comment = true
			break
		}
		if opt.llm {
			if tt, ok := bracket(c); ok {
				ln.Tokens = append(ln.Tokens, Token{Type: tt, Pos: pos, Bytes: raw[i : i+1]})
				i++
				continue
			}
		}
		j, quotes, err := wordEnd(raw, i, n, opt.llm)
		if err != nil {
			return nil, err
		}
		tt := TWord
		if quotes == 1 && raw[i] == '"' && QuotedEnd(raw, i) == j {
			tt = TString
		}
		ln.Tokens = append(ln.Tokens, Token{Type: tt, Pos: pos, Bytes: raw[i:j]})
		i = j
	}
	return ln, nil
}

// wordEnd scans the word starting at raw[i] and returns its end and the
// number of quoted segments in it.
func wordEnd(raw []byte, i, n int, llm bool) (int, int, error) {
	quotes := 0
	j := i
	for j < len(raw) {
		c := raw[j]
		if IsSpace(c) {
			break
		}
		if llm {
			if _, ok := bracket(c); ok {
				break
			}
		}
		if c != '"' {
			j++
			continue
		}
		end := QuotedEnd(raw, j)
		if end < 0 {
			return 0, 0, NewTokenizeErr(ErrUnterminated, Pos{Line: n, Col: j + 1})
		}
		if _, err := strconv.Unquote(string(raw[j:end])); err != nil {
			return 0, 0, NewTokenizeErr(ErrBadEscape, Pos{Line: n, Col: j + 1})
		}
		quotes++
		j = end
	}
	return j, quotes, nil
}

func bracket(c byte) (TokenType, bool) {
	switch c {
	case '(':
		return TLParen, true
	case ')':
		return TRParen, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	}
	return 0, false
}

func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// QuotedEnd returns the index just past the closing quote of the string
// literal starting at d[i], or -1.
func QuotedEnd(d []byte, i int) int {
	for j := i + 1; j < len(d); j++ {
		switch d[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return -1
}
