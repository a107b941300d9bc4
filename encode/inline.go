package encode

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/najmus-sakib-hossain/zed-sub048/base62"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/token"
)

// inline writes compound values in bracket syntax, which both text
// formats accept.
type inline struct {
	// key renders one key segment or column name.
	key func(string) string
	// signs writes booleans as + and - outside tables too.
	signs bool
	// flags writes boolean pairs as key! and key?.
	flags bool
	// big is the base62 threshold, 0 when disabled.
	big   int64
	ditto bool
}

func (in *inline) isBig(i int64) bool {
	return in.big > 0 && (i > in.big || i < -in.big)
}

// word renders a leaf value.
func (in *inline) word(v *ir.Value) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if in.signs {
			return sign(v.Bool), nil
		}
		return strconv.FormatBool(v.Bool), nil
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.FloatType:
		return ir.FormatFloat(v.Float), nil
	case ir.StringType:
		return token.QuoteIfNeeded(v.String), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotLeaf, v.Type)
}

func sign(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

func (in *inline) value(b *bytes.Buffer, v *ir.Value) error {
	switch v.Type {
	case ir.ArrayType:
		b.WriteByte('[')
		for i, item := range v.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			if err := in.value(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	case ir.ObjectType:
		b.WriteByte('(')
		for i, k := range v.Fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			if err := in.pair(b, k, v.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte(')')
		return nil
	case ir.TableType:
		tf, err := in.tableForm(v.Table)
		if err != nil {
			return err
		}
		tf.inline(b, "")
		return nil
	}
	w, err := in.word(v)
	if err != nil {
		return err
	}
	b.WriteString(w)
	return nil
}

// pair writes one object member.
func (in *inline) pair(b *bytes.Buffer, key string, v *ir.Value) error {
	b.WriteString(in.key(key))
	switch v.Type {
	case ir.ObjectType, ir.TableType:
		return in.value(b, v)
	case ir.BoolType:
		if in.flags {
			if v.Bool {
				b.WriteByte('!')
			} else {
				b.WriteByte('?')
			}
			return nil
		}
	case ir.IntType:
		if in.isBig(v.Int) {
			b.WriteString("%x=")
			b.WriteString(base62.EncodeInt(v.Int))
			return nil
		}
	}
	b.WriteByte('=')
	return in.value(b, v)
}

// tableForm is a table rendered to column declarations and cell words.
type tableForm struct {
	cols []string
	rows [][]string
}

func (in *inline) tableForm(t *ir.Table) (*tableForm, error) {
	if len(t.Schema) == 0 {
		return nil, ErrNoColumns
	}
	tf := &tableForm{cols: make([]string, len(t.Schema))}
	packed := make([]bool, len(t.Schema))
	for j, c := range t.Schema {
		hint := c.Type.Hint()
		if c.Type == ir.IntColumn && in.big > 0 {
			for _, row := range t.Rows {
				if in.isBig(row[j].Int) {
					packed[j] = true
					hint = 'x'
					break
				}
			}
		}
		tf.cols[j] = in.key(c.Name) + "%" + string(hint)
	}
	var prev []*ir.Value
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			switch {
			case in.ditto && prev != nil && sameCell(v, prev[j]):
				cells[j] = "_"
			case packed[j]:
				cells[j] = base62.EncodeInt(v.Int)
			case v.Type == ir.BoolType:
				cells[j] = sign(v.Bool)
			default:
				w, err := in.word(v)
				if err != nil {
					return nil, err
				}
				cells[j] = w
			}
		}
		tf.rows = append(tf.rows, cells)
		prev = row
	}
	return tf, nil
}

// inline writes `[cols](row)...`, starting each row with rowSep.
func (tf *tableForm) inline(b *bytes.Buffer, rowSep string) {
	b.WriteByte('[')
	for j, c := range tf.cols {
		if j > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	b.WriteByte(']')
	for _, row := range tf.rows {
		b.WriteString(rowSep)
		b.WriteByte('(')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c)
		}
		b.WriteByte(')')
	}
}

// sameCell reports whether a cell can be written as a ditto of prev.
// Floats must match bit for bit so that -0 and 0 stay apart.
func sameCell(v, prev *ir.Value) bool {
	if v.Type == ir.FloatType && prev.Type == ir.FloatType {
		return math.Float64bits(v.Float) == math.Float64bits(prev.Float)
	}
	return ir.Equal(v, prev)
}
