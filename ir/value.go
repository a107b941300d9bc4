package ir

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a node of a document tree. It is a tagged union: the fields
// in use depend on Type.
//
//   - Bool, Int, Float and String hold scalars.
//   - Values holds array elements.
//   - Fields and Values hold object entries in insertion order.
//   - Table holds a schema-typed table.
type Value struct {
	Type   Type
	Bool   bool
	Int    int64
	Float  float64
	String string
	Fields []string
	Values []*Value
	Table  *Table

	// index is maintained by Set, Delete and Clone for large objects.
	// Reads never write it.
	index map[string]int
}

const indexThreshold = 16

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func FromInt(i int64) *Value {
	return &Value{Type: IntType, Int: i}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float: f}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Type: ArrayType, Values: vs}
}

func FromTable(t *Table) *Value {
	return &Value{Type: TableType, Table: t}
}

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{Type: ObjectType, Fields: []string{}, Values: []*Value{}}
}

// KeyVal is an object entry.
type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an object from entries in order. Later duplicates
// replace earlier values in place.
func FromKeyVals(kvs []KeyVal) *Value {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Len returns the number of elements of an array or object, or the number
// of rows of a table.
func (v *Value) Len() int {
	switch v.Type {
	case ArrayType, ObjectType:
		return len(v.Values)
	case TableType:
		return len(v.Table.Rows)
	}
	return 0
}

// fieldIndex never writes to v, so concurrent readers need no locking.
func (v *Value) fieldIndex(key string) int {
	if v.index != nil {
		if i, ok := v.index[key]; ok {
			return i
		}
		return -1
	}
	for i, f := range v.Fields {
		if f == key {
			return i
		}
	}
	return -1
}

// reindex builds the key index of large objects and drops it otherwise.
func (v *Value) reindex() {
	if len(v.Fields) <= indexThreshold {
		v.index = nil
		return
	}
	v.index = make(map[string]int, len(v.Fields))
	for i, f := range v.Fields {
		v.index[f] = i
	}
}

// Field returns the value under key of an object and whether it exists.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.Type != ObjectType {
		return nil, false
	}
	i := v.fieldIndex(key)
	if i < 0 {
		return nil, false
	}
	return v.Values[i], true
}

// Set sets key in an object. An existing key keeps its position.
// It reports whether the key already existed.
func (v *Value) Set(key string, val *Value) bool {
	if v.Type != ObjectType {
		panic(fmt.Sprintf("ir: Set on %s", v.Type))
	}
	if i := v.fieldIndex(key); i >= 0 {
		v.Values[i] = val
		return true
	}
	v.Fields = append(v.Fields, key)
	v.Values = append(v.Values, val)
	switch {
	case v.index != nil:
		v.index[key] = len(v.Fields) - 1
	case len(v.Fields) > indexThreshold:
		v.reindex()
	}
	return false
}

// Delete removes key from an object, reporting whether it was present.
func (v *Value) Delete(key string) bool {
	if v.Type != ObjectType {
		return false
	}
	i := v.fieldIndex(key)
	if i < 0 {
		return false
	}
	v.Fields = append(v.Fields[:i], v.Fields[i+1:]...)
	v.Values = append(v.Values[:i], v.Values[i+1:]...)
	v.reindex()
	return true
}

// Get looks up a dotted key path (see SplitPath) below v.
func (v *Value) Get(path string) (*Value, error) {
	segs, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	return v.GetSegments(segs)
}

func (v *Value) GetSegments(segs []string) (*Value, error) {
	cur := v
	for i, seg := range segs {
		if cur.Type != ObjectType {
			return nil, fmt.Errorf("%w: %s is %s", ErrNotObject, JoinPath(segs[:i]), cur.Type)
		}
		next, ok := cur.Field(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, JoinPath(segs[:i+1]))
		}
		cur = next
	}
	return cur, nil
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Int:    v.Int,
		Float:  v.Float,
		String: v.String,
	}
	if v.Fields != nil {
		res.Fields = make([]string, len(v.Fields))
		copy(res.Fields, v.Fields)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	if v.Table != nil {
		res.Table = v.Table.Clone()
	}
	if res.Type == ObjectType {
		res.reindex()
	}
	return res
}

// Scalar returns the literal text of a scalar as it is written by the
// text formats, without quoting.
func (v *Value) Scalar() string {
	switch v.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return FormatFloat(v.Float)
	case StringType:
		return v.String
	}
	return ""
}

// FormatFloat formats f so that it reads back as a float: finite values
// without a fraction or exponent get a ".0" suffix.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return s
		}
	}
	return s + ".0"
}

func (v *Value) GoString() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Type {
	case StringType:
		return strconv.Quote(v.String)
	case ArrayType:
		return fmt.Sprintf("%v", v.Values)
	case ObjectType:
		s := "{"
		for i, f := range v.Fields {
			if i > 0 {
				s += " "
			}
			s += strconv.Quote(f) + ":" + v.Values[i].GoString()
		}
		return s + "}"
	case TableType:
		return v.Table.String()
	}
	return v.Scalar()
}

func (v *Value) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, v.GoString())
}

func parseFloat(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "Inf", "+Inf":
		return math.Inf(1), nil
	case "-Inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}
