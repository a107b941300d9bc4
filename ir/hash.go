package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared so that equal values hash equal within a process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value. Values that are Equal have the
// same hash. It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	v.writeHash(&h)
	return h.Sum64()
}

func (v *Value) writeHash(h *maphash.Hash) {
	var b [8]byte
	h.WriteByte(byte(v.Type))
	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case FloatType:
		f := v.Float
		if math.IsNaN(f) {
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		writeString(h, v.String)
	case ArrayType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.Values)))
		h.Write(b[:])
		for _, c := range v.Values {
			c.writeHash(h)
		}
	case ObjectType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.Values)))
		h.Write(b[:])
		for i, c := range v.Values {
			writeString(h, v.Fields[i])
			c.writeHash(h)
		}
	case TableType:
		t := v.Table
		binary.LittleEndian.PutUint64(b[:], uint64(len(t.Schema)))
		h.Write(b[:])
		for _, c := range t.Schema {
			writeString(h, c.Name)
			h.WriteByte(c.Type.Hint())
		}
		binary.LittleEndian.PutUint64(b[:], uint64(len(t.Rows)))
		h.Write(b[:])
		for _, row := range t.Rows {
			for _, c := range row {
				c.writeHash(h)
			}
		}
	}
}

// writeString writes a length prefix so adjacent strings cannot collide.
func writeString(h *maphash.Hash, s string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
	h.Write(b[:])
	h.WriteString(s)
}
