package bridge

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// FromYAML reads a YAML document. The root must be a mapping; empty
// input gives an empty document.
func FromYAML(b []byte, options ...Option) (*ir.Document, error) {
	o := newOpts(options)
	var v any
	if err := yaml.UnmarshalWithOptions(b, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	if v == nil {
		return ir.NewDocument(nil), nil
	}
	root, err := fromAny(v, 0, o.maxDepth)
	if err != nil {
		return nil, err
	}
	if root.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %w: root is %s", ErrImport, ir.ErrNotObject, root.Type)
	}
	if debug.Convert() {
		debug.Logf("bridge import: %d top level keys\n", root.Len())
	}
	return ir.NewDocument(root), nil
}

// FromJSON reads a JSON object. JSON is read through the YAML decoder
// once it is known to be valid JSON, so both imports agree on numbers
// and key order.
func FromJSON(b []byte, options ...Option) (*ir.Document, error) {
	if !json.Valid(b) {
		var x any
		err := json.Unmarshal(b, &x)
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	return FromYAML(b, options...)
}

func fromAny(v any, depth, max int) (*ir.Value, error) {
	if depth > max {
		return nil, fmt.Errorf("%w: %w: limit %d", ErrImport, ErrTooDeep, max)
	}
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %w: integer %d out of range", ErrImport, ErrUnsupported, x)
		}
		return ir.FromInt(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %w: integer %d out of range", ErrImport, ErrUnsupported, x)
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		vs := make([]*ir.Value, len(x))
		for i, e := range x {
			ev, err := fromAny(e, depth+1, max)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return ir.FromSlice(vs), nil
	case yaml.MapSlice:
		obj := ir.NewObject()
		for _, item := range x {
			ev, err := fromAny(item.Value, depth+1, max)
			if err != nil {
				return nil, err
			}
			obj.Set(keyString(item.Key), ev)
		}
		return obj, nil
	case map[string]any:
		// only reached for maps nested in values decoded without order
		obj := ir.NewObject()
		for _, k := range sortedKeys(x) {
			ev, err := fromAny(x[k], depth+1, max)
			if err != nil {
				return nil, err
			}
			obj.Set(k, ev)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: %w: %T", ErrImport, ErrUnsupported, v)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
