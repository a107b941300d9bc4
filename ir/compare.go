package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object entries are compared in order, so objects with the same entries
// in a different order are not equal.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		// cmp.Compare orders NaN first and treats NaNs as equal.
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareValues(a.Values, b.Values)
	case ObjectType:
		return compareObjects(a, b)
	case TableType:
		return compareTables(a.Table, b.Table)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Array < Object < Table
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	case TableType:
		return 7
	}
	return 100
}

func compareValues(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareObjects(a, b *Value) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

func compareTables(a, b *Table) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	n := min(len(a.Schema), len(b.Schema))
	for i := range n {
		if c := strings.Compare(a.Schema[i].Name, b.Schema[i].Name); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Schema[i].Type, b.Schema[i].Type); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.Schema), len(b.Schema)); c != 0 {
		return c
	}
	m := min(len(a.Rows), len(b.Rows))
	for i := range m {
		if c := compareValues(a.Rows[i], b.Rows[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Rows), len(b.Rows))
}
