package ir

import (
	"fmt"
	"strings"
)

type Column struct {
	Name string
	Type ColumnType
}

// Table is a schema plus rows. Every row has exactly len(Schema) cells
// and each cell has the type of its column.
type Table struct {
	Schema []Column
	Rows   [][]*Value
}

func NewTable(schema ...Column) *Table {
	return &Table{Schema: schema}
}

// AddRow validates row against the schema and appends it.
func (t *Table) AddRow(row []*Value) error {
	if err := t.CheckRow(len(t.Rows), row); err != nil {
		return err
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// CheckRow validates row as the i'th row of t.
func (t *Table) CheckRow(i int, row []*Value) error {
	if len(row) != len(t.Schema) {
		return &SchemaError{
			Expected: fmt.Sprintf("%d columns", len(t.Schema)),
			Found:    fmt.Sprintf("%d", len(row)),
			Row:      i,
			Column:   -1,
		}
	}
	for j, cell := range row {
		want := t.Schema[j].Type.ValueType()
		if cell == nil || cell.Type != want {
			found := "nil"
			if cell != nil {
				found = cell.Type.String()
			}
			return &SchemaError{
				Expected: want.String(),
				Found:    found,
				Row:      i,
				Column:   j,
			}
		}
	}
	return nil
}

// ColumnIndex returns the index of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Schema {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// RowObject returns row i as an object keyed by column name.
func (t *Table) RowObject(i int) *Value {
	obj := NewObject()
	for j, c := range t.Schema {
		obj.Set(c.Name, t.Rows[i][j])
	}
	return obj
}

func (t *Table) Clone() *Table {
	res := &Table{Schema: make([]Column, len(t.Schema))}
	copy(res.Schema, t.Schema)
	if t.Rows != nil {
		res.Rows = make([][]*Value, len(t.Rows))
		for i, row := range t.Rows {
			r := make([]*Value, len(row))
			for j, c := range row {
				r[j] = c.Clone()
			}
			res.Rows[i] = r
		}
	}
	return res
}

func (t *Table) String() string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, c := range t.Schema {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%s%%%c", c.Name, c.Type.Hint())
	}
	b.WriteByte(']')
	for _, row := range t.Rows {
		b.WriteByte('(')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.GoString())
		}
		b.WriteByte(')')
	}
	return b.String()
}
