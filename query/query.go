// Package query filters and projects table rows.
//
// Filters are expr-lang boolean expressions evaluated once per row.
// Each column is a variable holding the row's cell as int64, float64,
// string or bool, and the map row holds every cell by column name, so
// columns whose names are not identifiers are reachable as
// row["first-name"]. A column named row hides the map.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

var (
	ErrQuery    = errors.New("query error")
	ErrNotTable = errors.New("not a table")
	ErrNoColumn = errors.New("no such column")
)

type Query struct {
	src    string
	schema []ir.Column
	prog   *vm.Program
}

func (q *Query) String() string { return q.src }

// Compile compiles src against a table schema. Unknown names and type
// errors are reported here rather than per row.
func Compile(schema []ir.Column, src string) (*Query, error) {
	env := map[string]any{"row": map[string]any{}}
	for _, c := range schema {
		env[c.Name] = zero(c.Type)
	}
	prog, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, schema: schema, prog: prog}, nil
}

func zero(c ir.ColumnType) any {
	switch c {
	case ir.IntColumn:
		return int64(0)
	case ir.FloatColumn:
		return float64(0)
	case ir.BoolColumn:
		return false
	default:
		return ""
	}
}

func cellAny(v *ir.Value) any {
	switch v.Type {
	case ir.IntType:
		return v.Int
	case ir.FloatType:
		return v.Float
	case ir.BoolType:
		return v.Bool
	case ir.StringType:
		return v.String
	}
	return nil
}

func (q *Query) env(row []*ir.Value) map[string]any {
	cells := make(map[string]any, len(row))
	env := make(map[string]any, len(row)+1)
	env["row"] = cells
	for j, c := range q.schema {
		x := cellAny(row[j])
		cells[c.Name] = x
		env[c.Name] = x
	}
	return env
}

// Match evaluates q on row i of t, which must have the schema q was
// compiled with.
func (q *Query) Match(t *ir.Table, i int) (bool, error) {
	res, err := expr.Run(q.prog, q.env(t.Rows[i]))
	if err != nil {
		return false, fmt.Errorf("%w: row %d: %w", ErrQuery, i, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: row %d: result is %T", ErrQuery, i, res)
	}
	return b, nil
}

// Rows returns a new table holding the rows of t for which src is true.
func Rows(t *ir.Table, src string) (*ir.Table, error) {
	q, err := Compile(t.Schema, src)
	if err != nil {
		return nil, err
	}
	res := ir.NewTable(t.Schema...)
	for i, row := range t.Rows {
		ok, err := q.Match(t, i)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Rows = append(res.Rows, row)
		}
	}
	if debug.Convert() {
		debug.Logf("query %q: %d of %d rows\n", src, len(res.Rows), len(t.Rows))
	}
	return res, nil
}

// Select returns a new table holding the named columns of t in the
// given order.
func Select(t *ir.Table, cols ...string) (*ir.Table, error) {
	idx := make([]int, len(cols))
	schema := make([]ir.Column, len(cols))
	for i, name := range cols {
		j := t.ColumnIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
		}
		idx[i] = j
		schema[i] = t.Schema[j]
	}
	res := ir.NewTable(schema...)
	for _, row := range t.Rows {
		r := make([]*ir.Value, len(idx))
		for i, j := range idx {
			r[i] = row[j]
		}
		res.Rows = append(res.Rows, r)
	}
	return res, nil
}

// Where finds the table at path in doc and filters it with src.
func Where(doc *ir.Document, path, src string) (*ir.Table, error) {
	v, err := doc.Get(path)
	if err != nil {
		return nil, err
	}
	if v.Type != ir.TableType {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotTable, path, v.Type)
	}
	return Rows(v.Table, src)
}
