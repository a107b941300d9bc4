package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	ArrayType
	ObjectType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		FloatType:  "Float",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
		TableType:  "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Float":  FloatType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
		"Table":  TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
		TableType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType, TableType:
		return false
	default:
		return true
	}
}

// ColumnType is the declared type of a table column.
type ColumnType int

const (
	IntColumn ColumnType = iota
	FloatColumn
	StringColumn
	BoolColumn
)

// Hint returns the type hint letter used in column headers (`name%i`).
func (c ColumnType) Hint() byte {
	switch c {
	case IntColumn:
		return 'i'
	case FloatColumn:
		return 'f'
	case StringColumn:
		return 's'
	case BoolColumn:
		return 'b'
	}
	return '?'
}

// ValueType returns the runtime type required of cells in a column.
func (c ColumnType) ValueType() Type {
	switch c {
	case IntColumn:
		return IntType
	case FloatColumn:
		return FloatType
	case StringColumn:
		return StringType
	case BoolColumn:
		return BoolType
	}
	return NullType
}

func (c ColumnType) String() string {
	switch c {
	case IntColumn:
		return "Int"
	case FloatColumn:
		return "Float"
	case StringColumn:
		return "Str"
	case BoolColumn:
		return "Bool"
	}
	return "<unknown column type>"
}

func (c ColumnType) MarshalText() ([]byte, error) {
	return []byte{c.Hint()}, nil
}

func (c *ColumnType) UnmarshalText(d []byte) error {
	if len(d) != 1 {
		return fmt.Errorf("unrecognized column type %q", d)
	}
	ct, ok := ColumnTypeFromHint(d[0])
	if !ok {
		return fmt.Errorf("unrecognized column type %q", d)
	}
	*c = ct
	return nil
}

// ColumnTypeFromHint maps a header hint letter to a column type.
// The base62 hint 'x' declares an Int column.
func ColumnTypeFromHint(h byte) (ColumnType, bool) {
	switch h {
	case 'i', 'x':
		return IntColumn, true
	case 'f':
		return FloatColumn, true
	case 's':
		return StringColumn, true
	case 'b':
		return BoolColumn, true
	}
	return 0, false
}
