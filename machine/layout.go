package machine

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

type FieldKind int

const (
	Int64Field FieldKind = iota + 1
	Float64Field
	BoolField
	StringField
)

func (k FieldKind) String() string {
	switch k {
	case Int64Field:
		return "Int64"
	case Float64Field:
		return "Float64"
	case BoolField:
		return "Bool"
	case StringField:
		return "String"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

func (k FieldKind) size() int {
	switch k {
	case BoolField:
		return 1
	case StringField:
		return SlotSize
	}
	return 8
}

func (k FieldKind) align() int {
	if k == BoolField {
		return 1
	}
	return 8
}

func (k FieldKind) valueType() ir.Type {
	switch k {
	case Int64Field:
		return ir.IntType
	case Float64Field:
		return ir.FloatType
	case BoolField:
		return ir.BoolType
	}
	return ir.StringType
}

const (
	// SlotSize is the size of a string slot.
	SlotSize = 16
	// MaxInline is the longest string stored inside its slot.
	MaxInline = 14

	slotHeap byte = 0x01
)

// Field is one member of a Layout. Offset is relative to the start of
// the fixed area and is assigned by NewLayout.
type Field struct {
	Name   string
	Kind   FieldKind
	Offset int
}

// Layout describes a fixed struct: fields at naturally aligned offsets in
// declaration order, the area padded to a multiple of its alignment.
type Layout struct {
	fields []Field
	index  map[string]int
	size   int
	align  int
}

func NewLayout(fields ...Field) (*Layout, error) {
	l := &Layout{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
		align:  1,
	}
	off := 0
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if f.Kind < Int64Field || f.Kind > StringField {
			return nil, fmt.Errorf("field %q: unknown kind %d", f.Name, int(f.Kind))
		}
		if _, dup := l.index[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field %q", f.Name)
		}
		a := f.Kind.align()
		off = roundUp(off, a)
		f.Offset = off
		off += f.Kind.size()
		l.align = max(l.align, a)
		l.fields[i] = f
		l.index[f.Name] = i
	}
	l.size = roundUp(off, l.align)
	return l, nil
}

// LayoutFromColumns makes a layout for the rows of a table.
func LayoutFromColumns(schema []ir.Column) (*Layout, error) {
	fields := make([]Field, len(schema))
	for i, c := range schema {
		fields[i].Name = c.Name
		switch c.Type {
		case ir.IntColumn:
			fields[i].Kind = Int64Field
		case ir.FloatColumn:
			fields[i].Kind = Float64Field
		case ir.BoolColumn:
			fields[i].Kind = BoolField
		default:
			fields[i].Kind = StringField
		}
	}
	return NewLayout(fields...)
}

func roundUp(n, a int) int {
	return (n + a - 1) / a * a
}

func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

func (l *Layout) Field(name string) (Field, bool) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, false
	}
	return l.fields[i], true
}

// Size is the size of the fixed area.
func (l *Layout) Size() int { return l.size }

// Align is the alignment the buffer start must have for View.
func (l *Layout) Align() int { return l.align }

// Encode writes record, an object with exactly the layout's fields, as a
// slot buffer: header, fixed area, then a heap holding the strings longer
// than MaxInline.
func (l *Layout) Encode(record *ir.Value) ([]byte, error) {
	return l.AppendEncode(nil, record)
}

// AppendEncode is Encode appending the buffer to dst.
func (l *Layout) AppendEncode(dst []byte, record *ir.Value) ([]byte, error) {
	if record.Type != ir.ObjectType {
		return nil, invalid(-1, "record is %s, not an object", record.Type)
	}
	if record.Len() != len(l.fields) {
		return nil, invalid(-1, "record has %d fields, layout has %d", record.Len(), len(l.fields))
	}
	vals := make([]*ir.Value, len(l.fields))
	heap := 0
	for i, f := range l.fields {
		v, ok := record.Field(f.Name)
		if !ok {
			return nil, invalid(-1, "record lacks field %q", f.Name)
		}
		if v.Type != f.Kind.valueType() {
			return nil, invalid(-1, "field %q: expected %s, found %s", f.Name, f.Kind.valueType(), v.Type)
		}
		if f.Kind == StringField && len(v.String) > MaxInline {
			heap += len(v.String)
		}
		vals[i] = v
	}
	payload := uint64(l.size) + uint64(heap)
	if payload > math.MaxUint32 {
		return nil, invalid(-1, "payload of %d bytes does not fit the header", payload)
	}
	n := len(dst)
	dst = slices.Grow(dst, HeaderSize+int(payload))[:n+HeaderSize+int(payload)]
	out := dst[n:]
	clear(out)
	PutHeader(out, Header{
		Version:    Version,
		Flags:      FlagNative | FlagLittleEndian | FlagSlot,
		PayloadLen: uint32(payload),
	})
	fixed := out[HeaderSize : HeaderSize+l.size]
	hp := out[HeaderSize+l.size:]
	hoff := 0
	for i, f := range l.fields {
		v := vals[i]
		at := fixed[f.Offset:]
		switch f.Kind {
		case Int64Field:
			binary.LittleEndian.PutUint64(at, uint64(v.Int))
		case Float64Field:
			binary.LittleEndian.PutUint64(at, math.Float64bits(v.Float))
		case BoolField:
			at[0] = boolByte(v.Bool)
		case StringField:
			s := v.String
			if len(s) <= MaxInline {
				copy(at[1:1+MaxInline], s)
				at[SlotSize-1] = byte(len(s))
				continue
			}
			at[0] = slotHeap
			binary.LittleEndian.PutUint32(at[4:8], uint32(hoff))
			binary.LittleEndian.PutUint32(at[8:12], uint32(len(s)))
			hoff += copy(hp[hoff:], s)
		}
	}
	return dst, nil
}
