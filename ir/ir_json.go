package ir

import (
	"encoding/json"
	"fmt"
)

// The JSON form of the IR is for debugging and tests. It is not the JSON
// bridge format, which maps documents onto plain JSON values.

type irBase struct {
	Type   Type     `json:"type"`
	Fields []string `json:"fields,omitempty"`
	Values []*Value `json:"values,omitempty"`
	Table  *Table   `json:"table,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	base := irBase{Type: v.Type, Fields: v.Fields, Values: v.Values, Table: v.Table}
	switch v.Type {
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: base, Bool: v.Bool})
	case IntType:
		type C struct {
			irBase
			Int int64 `json:"int"`
		}
		return json.Marshal(C{irBase: base, Int: v.Int})
	case FloatType:
		// encoding/json rejects NaN and Inf.
		type C struct {
			irBase
			Float string `json:"float"`
		}
		return json.Marshal(C{irBase: base, Float: FormatFloat(v.Float)})
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: base, String: v.String})
	default:
		return json.Marshal(base)
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Bool   bool   `json:"bool"`
		Int    int64  `json:"int"`
		Float  string `json:"float"`
		String string `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*v = Value{
		Type:   tmp.Type,
		Bool:   tmp.Bool,
		Int:    tmp.Int,
		String: tmp.String,
		Fields: tmp.Fields,
		Values: tmp.Values,
		Table:  tmp.Table,
	}
	if v.Type == FloatType {
		f, err := parseFloat(tmp.Float)
		if err != nil {
			return err
		}
		v.Float = f
	}
	if v.Type == ObjectType && len(v.Fields) != len(v.Values) {
		return fmt.Errorf("object has %d fields and %d values", len(v.Fields), len(v.Values))
	}
	if v.Type == ObjectType {
		v.reindex()
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Root)
}

func (d *Document) UnmarshalJSON(b []byte) error {
	v := &Value{}
	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	if v.Type != ObjectType {
		return fmt.Errorf("%w: document root is %s", ErrNotObject, v.Type)
	}
	d.Root = v
	return nil
}
