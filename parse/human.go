package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

type humanParser struct {
	*parser
	// table receives row lines after a `key=cols` header.
	table *tableBuilder
	// array receives `- item` lines after a bare `key:`.
	array *ir.Value
}

// Human parses the human format.
func Human(text []byte, opts ...ParseOption) (doc *ir.Document, err error) {
	o := newParseOpts(opts)
	defer recoverErr(&doc, &err)
	if err := checkSize(text, o); err != nil {
		return nil, err
	}
	hp := &humanParser{parser: newParser(o, false)}
	lines := token.SplitLines(text)
	for i, raw := range lines {
		if err := hp.line(raw, i+1); err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("human: %d lines, %d top level keys\n", len(lines), hp.root.Len())
	}
	return ir.NewDocument(hp.root), nil
}

func (hp *humanParser) endBlock() {
	hp.table = nil
	hp.array = nil
}

func (hp *humanParser) line(raw []byte, n int) error {
	pos := token.Pos{Line: n, Col: 1}
	if !utf8.Valid(raw) {
		_, err := token.TokenizeLine(raw, n)
		return tokErr(err)
	}
	if pr, ok := token.ParsePragma(raw); ok {
		return hp.pragma(pr, n)
	}
	body := string(raw)
	if ci := token.CommentStart(body); ci >= 0 {
		body = body[:ci]
		if strings.TrimSpace(body) == "" {
			return nil
		}
	}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		hp.endBlock()
		return nil
	}
	indent := strings.Index(body, trimmed)
	if name, value, ok := aliasDef(trimmed); ok {
		return hp.define(name, value, pos.Offset(indent))
	}
	body, err := hp.substitute(body, pos)
	if err != nil {
		return err
	}
	trimmed = strings.TrimSpace(body)
	if trimmed == "" {
		// an alias with an empty value
		hp.endBlock()
		return nil
	}
	indent = strings.Index(body, trimmed)
	return hp.rule(trimmed, pos.Offset(indent))
}

// rule dispatches a trimmed, substituted, comment free line.
func (hp *humanParser) rule(t string, pos token.Pos) error {
	switch {
	case t[0] == '[':
		hp.endBlock()
		return hp.sectionHeader(t, pos)
	case hp.array != nil && t[0] == '-':
		item := strings.TrimSpace(t[1:])
		if item == "" {
			return unexpected(pos, "empty array item")
		}
		v, err := hp.humanValue(item, pos.Offset(strings.Index(t, item)), 0)
		if err != nil {
			return err
		}
		hp.array.Values = append(hp.array.Values, v)
		return nil
	case hp.table != nil && !isKeyLine(t):
		cells, err := tokenizeAt(t, pos, false)
		if err != nil {
			return err
		}
		return hp.table.addRow(cells, pos)
	}
	hp.endBlock()
	return hp.keyLine(t, pos)
}

// isKeyLine reports whether t starts with a key and operator or is a
// flag, section or prefix line.
func isKeyLine(t string) bool {
	switch t[0] {
	case '[', '^':
		return true
	}
	i := token.IndexUnquoted(t, ":=> \t")
	if i >= 0 {
		return t[i] != ' ' && t[i] != '\t'
	}
	last := t[len(t)-1]
	return len(t) > 1 && (last == '!' || last == '?')
}

func (hp *humanParser) sectionHeader(t string, pos token.Pos) error {
	if len(t) < 3 || t[len(t)-1] != ']' {
		return unexpected(pos, "bad section header %s", t)
	}
	inner := strings.TrimSpace(t[1 : len(t)-1])
	segs, err := hp.splitKey(inner, pos.Offset(1))
	if err != nil {
		return err
	}
	if _, err := hp.objectAt(segs, pos); err != nil {
		return err
	}
	hp.section = segs
	hp.prevPath = nil
	return nil
}

func (hp *humanParser) keyLine(t string, pos token.Pos) error {
	i := token.IndexUnquoted(t, ":=> \t")
	if i < 0 || t[i] == ' ' || t[i] == '\t' {
		if i < 0 && len(t) > 1 {
			if last := t[len(t)-1]; last == '!' || last == '?' {
				ks, err := hp.resolveKey(t[:len(t)-1], pos, true)
				if err != nil {
					return err
				}
				return hp.insert(hp.fullPath(ks.segs), ir.FromBool(last == '!'), pos)
			}
		}
		return unexpected(pos, "expected key followed by ':', '=' or '>'")
	}
	ks, err := hp.resolveKey(t[:i], pos, true)
	if err != nil {
		return err
	}
	path := hp.fullPath(ks.segs)
	rest := strings.TrimSpace(t[i+1:])
	restPos := pos.Offset(i + 1)
	if rest != "" {
		restPos = pos.Offset(i + 1 + strings.Index(t[i+1:], rest))
	}
	switch t[i] {
	case ':':
		if rest == "" {
			if ks.hint != 0 {
				return unexpected(restPos, "expected scalar after typed key")
			}
			arr := ir.FromSlice(nil)
			if err := hp.insert(path, arr, pos); err != nil {
				return err
			}
			hp.array = arr
			return nil
		}
		v, err := hp.humanValue(rest, restPos, ks.hint)
		if err != nil {
			return err
		}
		return hp.insert(path, v, pos)
	case '=':
		if ks.hint != 0 {
			return unexpected(pos, "type hint on table key")
		}
		toks, err := tokenizeAt(rest, restPos, false)
		if err != nil {
			return err
		}
		cols, err := hp.columns(toks)
		if err != nil {
			return err
		}
		tb, err := hp.newTable(cols, restPos)
		if err != nil {
			return err
		}
		if err := hp.insert(path, ir.FromTable(tb.tbl), pos); err != nil {
			return err
		}
		hp.table = tb
		return nil
	default:
		v, err := hp.stream(rest, restPos)
		if err != nil {
			return err
		}
		return hp.insert(path, v, pos)
	}
}

// humanValue parses the value text of `key:value` and `- item` lines.
// Several bare words form one string with their spacing kept.
func (hp *humanParser) humanValue(s string, pos token.Pos, hint byte) (*ir.Value, error) {
	if hint == 0 && (s[0] == '[' || s[0] == '(') {
		toks, err := tokenizeAt(s, pos, true)
		if err != nil {
			return nil, err
		}
		c := &cursor{toks: toks, end: pos.Offset(len(s))}
		v, err := hp.value(c, len(hp.section)+len(hp.prevPath))
		if err != nil {
			return nil, err
		}
		if t := c.peek(); t != nil {
			return nil, unexpected(t.Pos, "unexpected %s after value", t.Type)
		}
		return v, nil
	}
	toks, err := tokenizeAt(s, pos, false)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 {
		if hint != 0 {
			return hintValue(&toks[0], hint)
		}
		return wordValue(&toks[0])
	}
	for i := range toks {
		t := &toks[i]
		if hint != 0 || t.Type != token.TWord || strings.IndexByte(string(t.Bytes), '"') >= 0 {
			return nil, unexpected(t.Pos, "unexpected %s in value", t.Type)
		}
	}
	return ir.FromString(s), nil
}
