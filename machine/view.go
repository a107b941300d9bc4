package machine

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

var (
	ErrNoField   = errors.New("no such field")
	ErrFieldKind = errors.New("wrong field kind")
)

// StructView reads the fields of a validated slot buffer in place.
type StructView struct {
	layout *Layout
	fixed  []byte
	heap   []byte
}

// View validates b as a slot buffer for l and returns a view over it.
// Checks run in order: magic, version, size, alignment, header flags and
// lengths, then every field.
func View(l *Layout, b []byte) (*StructView, error) {
	if err := checkIdent(b); err != nil {
		return nil, err
	}
	need := HeaderSize + l.size
	if len(b) < need {
		return nil, tooSmall(need, len(b))
	}
	if a := addrAlign(b); a < l.align {
		return nil, &Error{Kind: InvalidAlignment, Required: l.align, Actual: a, Offset: 0}
	}
	h, err := ReadHeader(b)
	if err != nil {
		return nil, err
	}
	if !h.Slot() || h.Compressed() {
		return nil, invalid(3, "flags %#02x do not describe a slot layout", h.Flags)
	}
	if int(h.PayloadLen) < l.size {
		return nil, invalid(4, "payload of %d bytes is shorter than the %d byte layout", h.PayloadLen, l.size)
	}
	v := &StructView{layout: l, fixed: b[HeaderSize:need], heap: b[need:]}
	for _, f := range l.fields {
		if err := v.check(f); err != nil {
			return nil, err
		}
	}
	if debug.Machine() {
		debug.Logf("machine: view over %d fields, %d heap bytes\n", len(l.fields), len(v.heap))
	}
	return v, nil
}

// Decode validates b and copies its fields into an object.
func Decode(l *Layout, b []byte) (*ir.Value, error) {
	v, err := View(l, b)
	if err != nil {
		return nil, err
	}
	return v.Record(), nil
}

func checkIdent(b []byte) error {
	if len(b) < 2 {
		return tooSmall(HeaderSize, len(b))
	}
	if b[0] != Magic0 || b[1] != Magic1 {
		return &Error{Kind: InvalidMagic, Offset: 0, Reason: "expected 5A 44"}
	}
	if len(b) < 3 {
		return tooSmall(HeaderSize, len(b))
	}
	if b[2] != Version {
		return &Error{Kind: UnsupportedVersion, Offset: 2, Reason: fmt.Sprintf("version %d", b[2])}
	}
	return nil
}

// addrAlign returns the alignment of the start of b, at most 8.
func addrAlign(b []byte) int {
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a := 1
	for a < 8 && p%uintptr(2*a) == 0 {
		a *= 2
	}
	return a
}

func (v *StructView) check(f Field) error {
	at := HeaderSize + f.Offset
	switch f.Kind {
	case BoolField:
		if c := v.fixed[f.Offset]; c > 1 {
			return invalid(at, "field %q: bad bool byte %d", f.Name, c)
		}
	case StringField:
		s := v.fixed[f.Offset : f.Offset+SlotSize]
		if s[0]&^slotHeap != 0 {
			return invalid(at, "field %q: bad slot tag %#02x", f.Name, s[0])
		}
		data, err := v.slotBytes(s)
		if err != nil {
			err.Offset += at
			err.Reason = fmt.Sprintf("field %q: %s", f.Name, err.Reason)
			return err
		}
		if !utf8.Valid(data) {
			return invalid(at, "field %q: string is not valid UTF-8", f.Name)
		}
	}
	return nil
}

// slotBytes resolves a slot. Error offsets are relative to the slot.
func (v *StructView) slotBytes(s []byte) ([]byte, *Error) {
	if s[0]&slotHeap == 0 {
		n := int(s[SlotSize-1])
		if n > MaxInline {
			return nil, invalid(SlotSize-1, "inline length %d exceeds %d", n, MaxInline)
		}
		for i := 1 + n; i < SlotSize-1; i++ {
			if s[i] != 0 {
				return nil, invalid(i, "nonzero inline padding")
			}
		}
		return s[1 : 1+n : 1+n], nil
	}
	for _, i := range []int{1, 2, 3, 12, 13, 14, 15} {
		if s[i] != 0 {
			return nil, invalid(i, "nonzero heap slot padding")
		}
	}
	off := uint64(binary.LittleEndian.Uint32(s[4:8]))
	n := uint64(binary.LittleEndian.Uint32(s[8:12]))
	if off+n > uint64(len(v.heap)) {
		return nil, invalid(4, "heap range %d+%d exceeds heap of %d bytes", off, n, len(v.heap))
	}
	return v.heap[off : off+n : off+n], nil
}

func (v *StructView) Layout() *Layout { return v.layout }

func (v *StructView) field(name string, k FieldKind) (Field, error) {
	f, ok := v.layout.Field(name)
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrNoField, name)
	}
	if f.Kind != k {
		return f, fmt.Errorf("%w: %q is %s, not %s", ErrFieldKind, name, f.Kind, k)
	}
	return f, nil
}

func (v *StructView) Int(name string) (int64, error) {
	f, err := v.field(name, Int64Field)
	if err != nil {
		return 0, err
	}
	return v.intAt(f), nil
}

func (v *StructView) Float(name string) (float64, error) {
	f, err := v.field(name, Float64Field)
	if err != nil {
		return 0, err
	}
	return v.floatAt(f), nil
}

func (v *StructView) Bool(name string) (bool, error) {
	f, err := v.field(name, BoolField)
	if err != nil {
		return false, err
	}
	return v.fixed[f.Offset] == 1, nil
}

// Bytes returns the string field's bytes without copying. The slice
// aliases the buffer passed to View.
func (v *StructView) Bytes(name string) ([]byte, error) {
	f, err := v.field(name, StringField)
	if err != nil {
		return nil, err
	}
	return v.bytesAt(f), nil
}

func (v *StructView) String(name string) (string, error) {
	b, err := v.Bytes(name)
	return string(b), err
}

func (v *StructView) intAt(f Field) int64 {
	return int64(binary.LittleEndian.Uint64(v.fixed[f.Offset:]))
}

func (v *StructView) floatAt(f Field) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(v.fixed[f.Offset:]))
}

// bytesAt may only be called on validated slots.
func (v *StructView) bytesAt(f Field) []byte {
	b, _ := v.slotBytes(v.fixed[f.Offset : f.Offset+SlotSize])
	return b
}

// Record copies all fields into an object in layout order.
func (v *StructView) Record() *ir.Value {
	obj := ir.NewObject()
	for _, f := range v.layout.fields {
		switch f.Kind {
		case Int64Field:
			obj.Set(f.Name, ir.FromInt(v.intAt(f)))
		case Float64Field:
			obj.Set(f.Name, ir.FromFloat(v.floatAt(f)))
		case BoolField:
			obj.Set(f.Name, ir.FromBool(v.fixed[f.Offset] == 1))
		case StringField:
			obj.Set(f.Name, ir.FromString(string(v.bytesAt(f))))
		}
	}
	return obj
}
