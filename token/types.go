package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TWord TokenType = iota
	TString
	TLParen
	TRParen
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWord:    "TWord",
		TString:  "TString",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the unquoted contents of a TString token and the raw
// bytes of any other token.
func (t *Token) String() string {
	if t.Type == TString {
		s, err := strconv.Unquote(string(t.Bytes))
		if err == nil {
			return s
		}
	}
	return string(t.Bytes)
}

// Pragma is a `#!name=value` directive line.
type Pragma struct {
	Name  string
	Value string
}

// Line is one line of input.
type Line struct {
	// N is the 1-based line number.
	N      int
	Raw    []byte
	Tokens []Token
	Pragma *Pragma
	// Comment is set when the line ends in (or is) a comment.
	Comment bool
}

// Blank reports whether the line is empty or whitespace.
func (l *Line) Blank() bool {
	return len(l.Tokens) == 0 && l.Pragma == nil && !l.Comment
}

// Empty reports whether the line carries no tokens.
func (l *Line) Empty() bool {
	return len(l.Tokens) == 0
}
