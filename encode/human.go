package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"

	"golang.org/x/text/width"
)

type encState struct {
	buf   bytes.Buffer
	align bool
	color func(ir.Type, ColorAttr, string) string
	in    *inline
	// blank is true when the last line written was blank.
	blank bool
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{align: true}
	for _, opt := range opts {
		opt(es)
	}
	es.in = &inline{key: ir.QuoteKey}
	return es
}

// Human writes doc in the human format.
//
// Objects whose members from some point on are all non-empty objects
// are written as [section] blocks; other nested objects use dotted keys
// so that member order is kept exactly.
func Human(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := es.body(nil, nil, doc.Root); err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("human: %d bytes for %d top level keys\n", es.buf.Len(), doc.Root.Len())
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

func (es *encState) paint(t ir.Type, a ColorAttr, s string) string {
	if es.color == nil {
		return s
	}
	return es.color(t, a, s)
}

func (es *encState) line(parts ...string) {
	for _, p := range parts {
		es.buf.WriteString(p)
	}
	es.buf.WriteByte('\n')
	es.blank = false
}

func (es *encState) blankLine() {
	if es.buf.Len() == 0 || es.blank {
		return
	}
	es.buf.WriteByte('\n')
	es.blank = true
}

func isSection(v *ir.Value) bool {
	return v.Type == ir.ObjectType && v.Len() > 0
}

func join(path []string, seg string) []string {
	res := make([]string, len(path), len(path)+1)
	copy(res, path)
	return append(res, seg)
}

// body writes the members of obj below the section path.
func (es *encState) body(section, prefix []string, obj *ir.Value) error {
	k := len(obj.Fields)
	for k > 0 && isSection(obj.Values[k-1]) {
		k--
	}
	for i := 0; i < k; i++ {
		if err := es.field(join(prefix, obj.Fields[i]), obj.Values[i]); err != nil {
			return err
		}
	}
	for i := k; i < len(obj.Fields); i++ {
		path := join(section, obj.Fields[i])
		es.blankLine()
		es.line(es.paint(ir.ObjectType, SectionColor, "["+ir.JoinPath(path)+"]"))
		if err := es.body(path, nil, obj.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (es *encState) field(path []string, v *ir.Value) error {
	key := es.paint(v.Type, KeyColor, ir.JoinPath(path))
	colon := es.paint(v.Type, SepColor, ":")
	switch v.Type {
	case ir.ObjectType:
		if v.Len() == 0 {
			es.line(key, colon, "()")
			return nil
		}
		for i, k := range v.Fields {
			if err := es.field(join(path, k), v.Values[i]); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		if len(v.Values) == 0 {
			es.line(key, colon, "[]")
			return nil
		}
		es.line(key, colon)
		for _, item := range v.Values {
			s, err := es.item(item)
			if err != nil {
				return fmt.Errorf("%s: %w", ir.JoinPath(path), err)
			}
			es.line(es.paint(ir.ArrayType, SepColor, "-"), " ", s)
		}
		return nil
	case ir.TableType:
		if err := es.table(key, v.Table); err != nil {
			return fmt.Errorf("%s: %w", ir.JoinPath(path), err)
		}
		return nil
	}
	s, err := es.in.word(v)
	if err != nil {
		return err
	}
	es.line(key, colon, es.paint(v.Type, ValueColor, s))
	return nil
}

func (es *encState) item(v *ir.Value) (string, error) {
	if v.Type.IsLeaf() {
		s, err := es.in.word(v)
		return es.paint(v.Type, ValueColor, s), err
	}
	b := &bytes.Buffer{}
	if err := es.in.value(b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (es *encState) table(key string, t *ir.Table) error {
	tf, err := es.in.tableForm(t)
	if err != nil {
		return err
	}
	es.line(key, es.paint(ir.TableType, SepColor, "="), es.paint(ir.TableType, HeaderColor, strings.Join(tf.cols, " ")))
	widths := make([]int, len(tf.cols))
	if es.align {
		for _, row := range tf.rows {
			for j, c := range row {
				widths[j] = max(widths[j], displayWidth(c))
			}
		}
	}
	b := &strings.Builder{}
	for _, row := range tf.rows {
		b.Reset()
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(es.paint(t.Schema[j].Type.ValueType(), ValueColor, c))
			if es.align && j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[j]-displayWidth(c)))
			}
		}
		es.line(b.String())
	}
	es.buf.WriteByte('\n')
	es.blank = true
	return nil
}

// displayWidth counts terminal columns, two for wide East Asian runes.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
