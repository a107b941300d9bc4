package machine

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// value tags of the generic payload
const (
	tagNull byte = iota
	tagFalse
	tagTrue
	tagInt
	tagFloat
	tagString
	tagArray
	tagObject
	tagTable
)

// ToBytes encodes doc as a generic machine buffer.
func ToBytes(doc *ir.Document, opts ...Option) ([]byte, error) {
	e := encPool.Get().(*Encoder)
	defer encPool.Put(e)
	e.opts = newOpts(opts)
	return e.Encode(doc)
}

// FromBytes validates and decodes a generic machine buffer.
func FromBytes(b []byte, opts ...Option) (*ir.Document, error) {
	o := newOpts(opts)
	h, err := ReadHeader(b)
	if err != nil {
		return nil, err
	}
	if h.Slot() {
		return nil, invalid(3, "slot layout buffer has no generic payload")
	}
	payload := b[HeaderSize:]
	if h.Compressed() {
		payload, err = decompress(payload, o.maxPayload)
		if err != nil {
			return nil, err
		}
	} else if len(payload) > o.maxPayload {
		return nil, invalid(HeaderSize, "payload of %d bytes exceeds %d", len(payload), o.maxPayload)
	}
	d := &decoder{b: payload, maxDepth: o.maxDepth}
	if !h.Compressed() {
		d.base = HeaderSize
	}
	root, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if root.Type != ir.ObjectType {
		return nil, invalid(d.base, "root is %s, not an object", root.Type)
	}
	if d.off != len(d.b) {
		return nil, invalid(d.base+d.off, "%d trailing payload bytes", len(d.b)-d.off)
	}
	if debug.Machine() {
		debug.Logf("machine: decoded %d byte payload, compressed %t\n", len(payload), h.Compressed())
	}
	return ir.NewDocument(root), nil
}

func appendValue(dst []byte, v *ir.Value) ([]byte, error) {
	switch v.Type {
	case ir.NullType:
		return append(dst, tagNull), nil
	case ir.BoolType:
		if v.Bool {
			return append(dst, tagTrue), nil
		}
		return append(dst, tagFalse), nil
	case ir.IntType:
		return binary.AppendVarint(append(dst, tagInt), v.Int), nil
	case ir.FloatType:
		return binary.LittleEndian.AppendUint64(append(dst, tagFloat), math.Float64bits(v.Float)), nil
	case ir.StringType:
		return appendString(append(dst, tagString), v.String), nil
	case ir.ArrayType:
		dst = binary.AppendUvarint(append(dst, tagArray), uint64(len(v.Values)))
		for _, item := range v.Values {
			var err error
			if dst, err = appendValue(dst, item); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case ir.ObjectType:
		dst = binary.AppendUvarint(append(dst, tagObject), uint64(len(v.Fields)))
		for i, k := range v.Fields {
			dst = appendString(dst, k)
			var err error
			if dst, err = appendValue(dst, v.Values[i]); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case ir.TableType:
		return appendTable(append(dst, tagTable), v.Table)
	}
	return nil, invalid(-1, "unknown value type %s", v.Type)
}

func appendString(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

func appendTable(dst []byte, t *ir.Table) ([]byte, error) {
	if len(t.Schema) == 0 {
		return nil, invalid(-1, "table has no columns")
	}
	dst = binary.AppendUvarint(dst, uint64(len(t.Schema)))
	for _, c := range t.Schema {
		dst = appendString(dst, c.Name)
		dst = append(dst, c.Type.Hint())
	}
	dst = binary.AppendUvarint(dst, uint64(len(t.Rows)))
	for i, row := range t.Rows {
		if err := t.CheckRow(i, row); err != nil {
			return nil, &Error{Kind: InvalidData, Offset: -1, Reason: "table row", Err: err}
		}
		for j, cell := range row {
			switch t.Schema[j].Type {
			case ir.IntColumn:
				dst = binary.AppendVarint(dst, cell.Int)
			case ir.FloatColumn:
				dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(cell.Float))
			case ir.StringColumn:
				dst = appendString(dst, cell.String)
			case ir.BoolColumn:
				dst = append(dst, boolByte(cell.Bool))
			}
		}
	}
	return dst, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// decoder reads a generic payload. base is the offset of b in the
// original buffer, for error reporting.
type decoder struct {
	b        []byte
	off      int
	base     int
	maxDepth int
}

func (d *decoder) pos() int { return d.base + d.off }

func (d *decoder) remaining() int { return len(d.b) - d.off }

func (d *decoder) byte() (byte, error) {
	if d.off >= len(d.b) {
		return 0, invalid(d.pos(), "unexpected end of payload")
	}
	c := d.b[d.off]
	d.off++
	return c, nil
}

func (d *decoder) uvarint() (uint64, error) {
	u, n := binary.Uvarint(d.b[d.off:])
	if n <= 0 {
		return 0, invalid(d.pos(), "bad varint")
	}
	d.off += n
	return u, nil
}

func (d *decoder) varint() (int64, error) {
	i, n := binary.Varint(d.b[d.off:])
	if n <= 0 {
		return 0, invalid(d.pos(), "bad varint")
	}
	d.off += n
	return i, nil
}

// count reads an element count where each element takes at least size
// bytes, rejecting counts the remaining payload cannot hold.
func (d *decoder) count(size int) (int, error) {
	at := d.pos()
	u, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if u > uint64(d.remaining()/size) {
		return 0, invalid(at, "count %d exceeds remaining %d bytes", u, d.remaining())
	}
	return int(u), nil
}

func (d *decoder) float() (float64, error) {
	if d.remaining() < 8 {
		return 0, invalid(d.pos(), "truncated float")
	}
	f := math.Float64frombits(binary.LittleEndian.Uint64(d.b[d.off:]))
	d.off += 8
	return f, nil
}

func (d *decoder) str() (string, error) {
	n, err := d.count(1)
	if err != nil {
		return "", err
	}
	s := d.b[d.off : d.off+n]
	if !utf8.Valid(s) {
		return "", invalid(d.pos(), "string is not valid UTF-8")
	}
	d.off += n
	return string(s), nil
}

func (d *decoder) value(depth int) (*ir.Value, error) {
	if d.maxDepth > 0 && depth > d.maxDepth {
		return nil, invalid(d.pos(), "nesting exceeds %d", d.maxDepth)
	}
	at := d.pos()
	tag, err := d.byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return ir.Null(), nil
	case tagFalse, tagTrue:
		return ir.FromBool(tag == tagTrue), nil
	case tagInt:
		i, err := d.varint()
		if err != nil {
			return nil, err
		}
		return ir.FromInt(i), nil
	case tagFloat:
		f, err := d.float()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case tagString:
		s, err := d.str()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case tagArray:
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		items := make([]*ir.Value, n)
		for i := range items {
			if items[i], err = d.value(depth + 1); err != nil {
				return nil, err
			}
		}
		return ir.FromSlice(items), nil
	case tagObject:
		n, err := d.count(2)
		if err != nil {
			return nil, err
		}
		obj := ir.NewObject()
		for i := 0; i < n; i++ {
			kat := d.pos()
			k, err := d.str()
			if err != nil {
				return nil, err
			}
			v, err := d.value(depth + 1)
			if err != nil {
				return nil, err
			}
			if obj.Set(k, v) {
				return nil, invalid(kat, "duplicate key %q", k)
			}
		}
		return obj, nil
	case tagTable:
		return d.table(at)
	}
	return nil, invalid(at, "unknown tag %d", tag)
}

func (d *decoder) table(at int) (*ir.Value, error) {
	ncols, err := d.count(2)
	if err != nil {
		return nil, err
	}
	if ncols == 0 {
		return nil, invalid(at, "table has no columns")
	}
	schema := make([]ir.Column, ncols)
	seen := make(map[string]bool, ncols)
	for j := range schema {
		nat := d.pos()
		name, err := d.str()
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, invalid(nat, "duplicate column %q", name)
		}
		seen[name] = true
		hat := d.pos()
		h, err := d.byte()
		if err != nil {
			return nil, err
		}
		ct, ok := ir.ColumnTypeFromHint(h)
		if !ok || h == 'x' {
			return nil, invalid(hat, "bad column type %q", h)
		}
		schema[j] = ir.Column{Name: name, Type: ct}
	}
	t := ir.NewTable(schema...)
	nrows, err := d.count(ncols)
	if err != nil {
		return nil, err
	}
	t.Rows = make([][]*ir.Value, 0, nrows)
	for i := 0; i < nrows; i++ {
		row := make([]*ir.Value, ncols)
		for j, c := range schema {
			switch c.Type {
			case ir.IntColumn:
				v, err := d.varint()
				if err != nil {
					return nil, err
				}
				row[j] = ir.FromInt(v)
			case ir.FloatColumn:
				f, err := d.float()
				if err != nil {
					return nil, err
				}
				row[j] = ir.FromFloat(f)
			case ir.StringColumn:
				s, err := d.str()
				if err != nil {
					return nil, err
				}
				row[j] = ir.FromString(s)
			case ir.BoolColumn:
				bat := d.pos()
				bb, err := d.byte()
				if err != nil {
					return nil, err
				}
				if bb > 1 {
					return nil, invalid(bat, "bad bool byte %d", bb)
				}
				row[j] = ir.FromBool(bb == 1)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return ir.FromTable(t), nil
}
