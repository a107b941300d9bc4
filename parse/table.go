package parse

import (
	"fmt"
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

type column struct {
	name   string
	typ    ir.ColumnType
	base62 bool
	// typed is false for columns declared without a hint. Their type is
	// taken from the first row.
	typed bool
}

type tableBuilder struct {
	cols []column
	tbl  *ir.Table
	prev []*ir.Value
	max  int
}

// columns parses column declarations `name%t`. Names may be quoted.
func (p *parser) columns(toks []token.Token) ([]column, error) {
	res := make([]column, 0, len(toks))
	seen := map[string]bool{}
	for i := range toks {
		t := &toks[i]
		if t.Type != token.TWord && t.Type != token.TString {
			return nil, unexpected(t.Pos, "expected column, found %s", t.Type)
		}
		ks, err := p.resolveKey(string(t.Bytes), t.Pos, false)
		if err != nil {
			return nil, err
		}
		c := column{name: ks.segs[0], typ: ir.StringColumn}
		if ks.hint != 0 {
			c.typ, _ = ir.ColumnTypeFromHint(ks.hint)
			c.base62 = ks.hint == 'x'
			c.typed = true
		}
		if seen[c.name] {
			return nil, unexpected(t.Pos, "duplicate column %q", c.name)
		}
		seen[c.name] = true
		res = append(res, c)
	}
	return res, nil
}

func (p *parser) newTable(cols []column, pos token.Pos) (*tableBuilder, error) {
	if len(cols) == 0 {
		return nil, unexpected(pos, "table without columns")
	}
	schema := make([]ir.Column, len(cols))
	for i, c := range cols {
		schema[i] = ir.Column{Name: c.name, Type: c.typ}
	}
	return &tableBuilder{cols: cols, tbl: ir.NewTable(schema...), max: p.opts.maxTableRows}, nil
}

// addRow binds the cells of one row to the columns and appends it.
func (b *tableBuilder) addRow(cells []token.Token, pos token.Pos) error {
	if b.max > 0 && len(b.tbl.Rows) >= b.max {
		return errAt(LimitExceeded, pos, "table exceeds %d rows", b.max)
	}
	spans, err := b.bind(cells, pos)
	if err != nil {
		return err
	}
	first := len(b.tbl.Rows) == 0
	row := make([]*ir.Value, len(b.cols))
	for j, span := range spans {
		v, err := b.cell(j, span)
		if err != nil {
			return err
		}
		row[j] = v
	}
	if first {
		for j := range b.cols {
			b.tbl.Schema[j].Type = b.cols[j].typ
		}
	}
	if err := b.tbl.AddRow(row); err != nil {
		return &Error{Kind: SchemaMismatch, Line: pos.Line, Col: pos.Col, Err: err}
	}
	b.prev = row
	return nil
}

// bind assigns cells to columns. With more cells than columns, columns
// left of the first string column take one cell each from the left,
// columns right of it take one cell each from the right, and the string
// column absorbs the rest.
func (b *tableBuilder) bind(cells []token.Token, pos token.Pos) ([][]token.Token, error) {
	n, m := len(b.cols), len(cells)
	res := make([][]token.Token, n)
	if m == n {
		for j := range cells {
			res[j] = cells[j : j+1]
		}
		return res, nil
	}
	s := -1
	for j, c := range b.cols {
		if c.typed && c.typ == ir.StringColumn {
			s = j
			break
		}
	}
	if m < n || s < 0 {
		return nil, &Error{
			Kind:     SchemaMismatch,
			Line:     pos.Line,
			Col:      pos.Col,
			Expected: fmt.Sprintf("%d cells", n),
			Found:    fmt.Sprintf("%d", m),
		}
	}
	right := n - 1 - s
	for j := 0; j < s; j++ {
		res[j] = cells[j : j+1]
	}
	res[s] = cells[s : m-right]
	for k := 0; k < right; k++ {
		res[s+1+k] = cells[m-right+k : m-right+k+1]
	}
	return res, nil
}

func (b *tableBuilder) cell(j int, span []token.Token) (*ir.Value, error) {
	c := &b.cols[j]
	if len(span) > 1 {
		words := make([]string, len(span))
		for i := range span {
			t := &span[i]
			if t.Type == token.TWord && strings.IndexByte(string(t.Bytes), '"') >= 0 {
				return nil, unexpected(t.Pos, "mixed quoted word %s", t.Bytes)
			}
			words[i] = t.String()
		}
		return ir.FromString(strings.Join(words, " ")), nil
	}
	t := &span[0]
	if t.Type == token.TWord && string(t.Bytes) == "_" {
		if b.prev == nil {
			return nil, unexpected(t.Pos, "ditto in first row")
		}
		return b.prev[j].Clone(), nil
	}
	if c.base62 {
		i, err := base62Int(t)
		if err != nil {
			return nil, err
		}
		return ir.FromInt(i), nil
	}
	if c.typed {
		return typedValue(t, c.typ)
	}
	v, err := wordValue(t)
	if err != nil {
		return nil, err
	}
	switch v.Type {
	case ir.IntType:
		c.typ = ir.IntColumn
	case ir.FloatType:
		c.typ = ir.FloatColumn
	case ir.BoolType:
		c.typ = ir.BoolColumn
	case ir.StringType:
		c.typ = ir.StringColumn
	default:
		return nil, &Error{
			Kind:     SchemaMismatch,
			Line:     t.Pos.Line,
			Col:      t.Pos.Col,
			Expected: "Int, Float, String or Bool",
			Found:    v.Type.String(),
		}
	}
	c.typed = true
	return v, nil
}
