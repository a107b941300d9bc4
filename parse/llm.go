package parse

import (
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

// LLM parses the LLM format.
//
// Lines are preprocessed one at a time (pragmas, alias definitions and
// substitution) and their tokens joined into one stream, so compound
// values and table rows may continue on following lines.
func LLM(text []byte, opts ...ParseOption) (doc *ir.Document, err error) {
	o := newParseOpts(opts)
	defer recoverErr(&doc, &err)
	if err := checkSize(text, o); err != nil {
		return nil, err
	}
	p := newParser(o, true)
	lines := token.SplitLines(text)
	var toks []token.Token
	for i, raw := range lines {
		n := i + 1
		pos := token.Pos{Line: n, Col: 1}
		if pr, ok := token.ParsePragma(raw); ok {
			if err := p.pragma(pr, n); err != nil {
				return nil, err
			}
			continue
		}
		body := string(raw)
		if ci := token.CommentStart(body); ci >= 0 {
			body = body[:ci]
		}
		trimmed := strings.TrimSpace(body)
		if trimmed == "" {
			continue
		}
		if name, value, ok := aliasDef(trimmed); ok {
			if err := p.define(name, value, pos.Offset(strings.Index(body, trimmed))); err != nil {
				return nil, err
			}
			continue
		}
		body, err := p.substitute(body, pos)
		if err != nil {
			return nil, err
		}
		lineToks, err := tokenizeAt(body, pos, true)
		if err != nil {
			return nil, err
		}
		toks = append(toks, lineToks...)
	}
	c := &cursor{toks: toks, end: token.Pos{Line: 1, Col: 1}}
	if len(toks) > 0 {
		last := &toks[len(toks)-1]
		c.end = last.Pos.Offset(len(last.Bytes))
	}
	for c.peek() != nil {
		start := c.peek().Pos
		ks, v, err := p.pair(c, 0, true)
		if err != nil {
			return nil, err
		}
		if err := p.insert(ks.segs, v, start); err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("llm: %d lines, %d tokens, %d top level keys\n", len(lines), len(toks), p.root.Len())
	}
	return ir.NewDocument(p.root), nil
}
