package parse

import (
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

// cursor walks a token stream.
type cursor struct {
	toks []token.Token
	i    int
	end  token.Pos
}

func (c *cursor) peek() *token.Token {
	if c.i >= len(c.toks) {
		return nil
	}
	return &c.toks[c.i]
}

func (c *cursor) next() *token.Token {
	t := c.peek()
	if t != nil {
		c.i++
	}
	return t
}

func (c *cursor) pos() token.Pos {
	if t := c.peek(); t != nil {
		return t.Pos
	}
	return c.end
}

func (p *parser) checkDepth(depth int, pos token.Pos) error {
	if p.opts.maxDepth > 0 && depth > p.opts.maxDepth {
		return errAt(LimitExceeded, pos, "nesting depth exceeds %d", p.opts.maxDepth)
	}
	return nil
}

// value parses an inline value: a scalar word, `[items]`, `[h%t](row)...`
// or `(pairs)`.
func (p *parser) value(c *cursor, depth int) (*ir.Value, error) {
	return p.item(c, depth, false)
}

// item parses a value. Tables which are array items stop taking rows at
// a parenthesized group that reads as an object.
func (p *parser) item(c *cursor, depth int, inArray bool) (*ir.Value, error) {
	t := c.next()
	if t == nil {
		return nil, unexpected(c.end, "expected value")
	}
	switch t.Type {
	case token.TLSquare:
		return p.bracket(c, t, depth+1, inArray)
	case token.TLParen:
		return p.object(c, t, depth+1)
	case token.TWord, token.TString:
		return wordValue(t)
	}
	return nil, unexpected(t.Pos, "unexpected %s", t.Type)
}

// isTableHeader reports whether the bracket contents starting at the
// cursor are column declarations: one or more bare words, each with an
// unquoted '%'.
func isTableHeader(c *cursor) bool {
	n := 0
	for i := c.i; i < len(c.toks); i++ {
		t := &c.toks[i]
		switch t.Type {
		case token.TRSquare:
			return n > 0
		case token.TWord:
			if token.IndexUnquoted(string(t.Bytes), "%") < 0 {
				return false
			}
			n++
		default:
			return false
		}
	}
	return false
}

func (p *parser) bracket(c *cursor, open *token.Token, depth int, inArray bool) (*ir.Value, error) {
	if err := p.checkDepth(depth, open.Pos); err != nil {
		return nil, err
	}
	if isTableHeader(c) {
		return p.table(c, open, inArray)
	}
	items := []*ir.Value{}
	for {
		t := c.peek()
		if t == nil {
			return nil, unexpected(c.end, "unterminated '[' opened at %s", open.Pos)
		}
		if t.Type == token.TRSquare {
			c.next()
			return ir.FromSlice(items), nil
		}
		v, err := p.item(c, depth, true)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

// table parses column declarations up to ']' and the rows that follow.
func (p *parser) table(c *cursor, open *token.Token, inArray bool) (*ir.Value, error) {
	start := c.i
	for c.peek() != nil && c.peek().Type != token.TRSquare {
		c.next()
	}
	if c.peek() == nil {
		return nil, unexpected(c.end, "unterminated '[' opened at %s", open.Pos)
	}
	cols, err := p.columns(c.toks[start:c.i])
	c.next()
	if err != nil {
		return nil, err
	}
	tb, err := p.newTable(cols, open.Pos)
	if err != nil {
		return nil, err
	}
	if err := p.rows(c, tb, inArray); err != nil {
		return nil, err
	}
	return ir.FromTable(tb.tbl), nil
}

// rows consumes `(cells)` groups.
func (p *parser) rows(c *cursor, tb *tableBuilder, inArray bool) error {
	for {
		t := c.peek()
		if t == nil || t.Type != token.TLParen {
			return nil
		}
		if inArray && isObjectGroup(c) {
			return nil
		}
		c.next()
		start := c.i
		for {
			u := c.peek()
			if u == nil {
				return unexpected(c.end, "unterminated row opened at %s", t.Pos)
			}
			if u.Type == token.TRParen {
				break
			}
			if u.Type != token.TWord && u.Type != token.TString {
				return unexpected(u.Pos, "unexpected %s in table row", u.Type)
			}
			c.next()
		}
		cells := c.toks[start:c.i]
		c.next()
		if err := tb.addRow(cells, t.Pos); err != nil {
			return err
		}
	}
}

// isObjectGroup reports whether the group opening at the cursor is an
// object rather than a row: it is empty, holds brackets, or starts with
// a pair or flag.
func isObjectGroup(c *cursor) bool {
	i := c.i + 1
	if i >= len(c.toks) {
		return false
	}
	first := &c.toks[i]
	if first.Type == token.TRParen {
		return true
	}
	for j := i; j < len(c.toks) && c.toks[j].Type != token.TRParen; j++ {
		switch c.toks[j].Type {
		case token.TLParen, token.TLSquare, token.TRSquare:
			return true
		}
	}
	if first.Type != token.TWord {
		return false
	}
	text := string(first.Bytes)
	if token.IndexUnquoted(text, "=>") >= 0 {
		return true
	}
	last := text[len(text)-1]
	return len(text) > 1 && (last == '!' || last == '?')
}

// object parses pairs up to ')'.
func (p *parser) object(c *cursor, open *token.Token, depth int) (*ir.Value, error) {
	if err := p.checkDepth(depth, open.Pos); err != nil {
		return nil, err
	}
	obj := ir.NewObject()
	for {
		t := c.peek()
		if t == nil {
			return nil, unexpected(c.end, "unterminated '(' opened at %s", open.Pos)
		}
		if t.Type == token.TRParen {
			c.next()
			return obj, nil
		}
		ks, v, err := p.pair(c, depth, false)
		if err != nil {
			return nil, err
		}
		if err := p.set(obj, ks.segs, v, t.Pos); err != nil {
			return nil, err
		}
	}
}

// pair parses one `key=value`, `key(pairs)`, `key[cols](rows)`,
// `key>a|b`, `key!` or `key?`.
func (p *parser) pair(c *cursor, depth int, statement bool) (keySpec, *ir.Value, error) {
	t := c.next()
	if t == nil {
		return keySpec{}, nil, unexpected(c.end, "expected key")
	}
	if t.Type != token.TWord && t.Type != token.TString {
		return keySpec{}, nil, unexpected(t.Pos, "expected key, found %s", t.Type)
	}
	text := string(t.Bytes)
	var (
		op      byte
		keyText = text
		valText string
	)
	if i := token.IndexUnquoted(text, "=>"); i >= 0 {
		op, keyText, valText = text[i], text[:i], text[i+1:]
	}
	if op == 0 && len(text) > 1 {
		if last := text[len(text)-1]; last == '!' || last == '?' {
			ks, err := p.resolveKey(text[:len(text)-1], t.Pos, statement)
			if err != nil {
				return ks, nil, err
			}
			return ks, ir.FromBool(last == '!'), nil
		}
	}
	ks, err := p.resolveKey(keyText, t.Pos, statement)
	if err != nil {
		return ks, nil, err
	}
	valPos := t.Pos.Offset(len(keyText) + 1)
	switch op {
	case '=':
		if valText != "" {
			v, err := p.scalarText(valText, valPos, ks.hint)
			return ks, v, err
		}
		if ks.hint != 0 {
			return ks, nil, unexpected(valPos, "expected scalar after typed key")
		}
		next := c.peek()
		if next == nil || (next.Type != token.TLSquare && next.Type != token.TLParen) {
			return ks, nil, unexpected(c.pos(), "expected value after '='")
		}
		v, err := p.value(c, depth+len(ks.segs)-1)
		return ks, v, err
	case '>':
		v, err := p.stream(valText, valPos)
		return ks, v, err
	}
	if ks.hint != 0 {
		return ks, nil, unexpected(t.Pos, "type hint without value")
	}
	next := c.peek()
	switch {
	case next != nil && next.Type == token.TLParen:
		c.next()
		v, err := p.object(c, next, depth+len(ks.segs))
		return ks, v, err
	case next != nil && next.Type == token.TLSquare:
		c.next()
		if err := p.checkDepth(depth+len(ks.segs), next.Pos); err != nil {
			return ks, nil, err
		}
		v, err := p.table(c, next, false)
		return ks, v, err
	}
	return ks, nil, unexpected(c.pos(), "expected '=', '(' or '[' after key %q", keyText)
}

// scalarText converts the text after an operator, a single word or
// quoted string, under an optional hint.
func (p *parser) scalarText(s string, pos token.Pos, hint byte) (*ir.Value, error) {
	t := &token.Token{Type: token.TWord, Pos: pos, Bytes: []byte(s)}
	if s[0] == '"' && token.QuotedEnd(t.Bytes, 0) == len(s) {
		t.Type = token.TString
	}
	if hint != 0 {
		return hintValue(t, hint)
	}
	return wordValue(t)
}

// stream parses the items of `key>a|b|c`.
func (p *parser) stream(s string, pos token.Pos) (*ir.Value, error) {
	items := []*ir.Value{}
	if strings.TrimSpace(s) == "" {
		return ir.FromSlice(items), nil
	}
	off := 0
	for _, part := range token.SplitUnquoted(s, '|') {
		item := strings.TrimSpace(part)
		if item == "" {
			return nil, unexpected(pos.Offset(off), "empty stream item")
		}
		v, err := p.scalarText(item, pos.Offset(off), 0)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		off += len(part) + 1
	}
	return ir.FromSlice(items), nil
}
