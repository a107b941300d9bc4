package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// ToYAML writes doc as a YAML mapping in document key order.
func ToYAML(doc *ir.Document, w io.Writer, options ...Option) error {
	o := newOpts(options)
	indent := o.indent
	if indent < 2 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(toYAML(doc.Root), yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(v *ir.Value) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.IntType:
		return v.Int
	case ir.FloatType:
		return v.Float
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = toYAML(e)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(v.Fields))
		for i, f := range v.Fields {
			res[i] = yaml.MapItem{Key: f, Value: toYAML(v.Values[i])}
		}
		return res
	case ir.TableType:
		t := v.Table
		res := make([]any, len(t.Rows))
		for i, row := range t.Rows {
			ms := make(yaml.MapSlice, len(t.Schema))
			for j, c := range t.Schema {
				ms[j] = yaml.MapItem{Key: c.Name, Value: toYAML(row[j])}
			}
			res[i] = ms
		}
		return res
	default:
		panic("impossible production")
	}
}

// ToJSON writes doc as a JSON object in document key order, followed by
// a newline. NaN and infinite floats have no JSON form and give
// ErrNotJSON.
func ToJSON(doc *ir.Document, w io.Writer, options ...Option) error {
	o := newOpts(options)
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, doc.Root); err != nil {
		return err
	}
	if o.indent > 0 {
		out := bytes.NewBuffer(nil)
		if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", o.indent)); err != nil {
			return err
		}
		buf = out
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func writeJSON(buf *bytes.Buffer, v *ir.Value) error {
	switch v.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case ir.IntType:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return fmt.Errorf("%w: %s", ErrNotJSON, ir.FormatFloat(v.Float))
		}
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	case ir.StringType:
		writeJSONString(buf, v.String)
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, e := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, f)
			buf.WriteByte(':')
			if err := writeJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ir.TableType:
		buf.WriteByte('[')
		for i := range v.Table.Rows {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v.Table.RowObject(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

func sortedKeys(m map[string]any) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
