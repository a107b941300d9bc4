package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// ToValue maps v to a document value.
func ToValue(v any) (*ir.Value, error) {
	return toValue("", reflect.ValueOf(v), false)
}

// ToDocument maps v, which must map to an object, to a document.
func ToDocument(v any) (*ir.Document, error) {
	res, err := ToValue(v)
	if err != nil {
		return nil, err
	}
	if res.Type != ir.ObjectType {
		return nil, &MarshalError{Message: fmt.Sprintf("document root must be an object, got %s", res.Type), Err: ir.ErrNotObject}
	}
	return ir.NewDocument(res), nil
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func unsupported(path string, t reflect.Type) error {
	return &MarshalError{FieldPath: path, Message: fmt.Sprintf("cannot map %s", t), Err: ErrUnsupported}
}

func toValue(path string, v reflect.Value, table bool) (*ir.Value, error) {
	if !v.IsValid() {
		return ir.Null(), nil
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		v = v.Addr()
	}
	if v.Type().Implements(textMarshalerType) && !((v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil()) {
		d, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: err.Error(), Err: err}
		}
		return ir.FromString(string(d)), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ir.Null(), nil
		}
		return toValue(path, v.Elem(), table)
	case reflect.Bool:
		return ir.FromBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("%d overflows Int", u)}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(v.Float()), nil
	case reflect.String:
		return ir.FromString(v.String()), nil
	case reflect.Slice, reflect.Array:
		if table {
			return toTable(path, v)
		}
		vs := make([]*ir.Value, v.Len())
		for i := range vs {
			ev, err := toValue(indexPath(path, i), v.Index(i), false)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, unsupported(path, v.Type())
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		obj := ir.NewObject()
		for _, k := range keys {
			ev, err := toValue(fieldPath(path, k.String()), v.MapIndex(k), false)
			if err != nil {
				return nil, err
			}
			obj.Set(k.String(), ev)
		}
		return obj, nil
	case reflect.Struct:
		obj := ir.NewObject()
		for _, fi := range fields(v.Type()) {
			fv, err := v.FieldByIndexErr(fi.index)
			if err != nil {
				// field of a nil embedded pointer
				continue
			}
			if fi.omitEmpty && fv.IsZero() {
				continue
			}
			ev, err := toValue(fieldPath(path, fi.name), fv, fi.table)
			if err != nil {
				return nil, err
			}
			obj.Set(fi.name, ev)
		}
		return obj, nil
	default:
		return nil, unsupported(path, v.Type())
	}
}

func elemStruct(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

func columnType(t reflect.Type) (ir.ColumnType, bool) {
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return ir.StringColumn, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return ir.BoolColumn, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.IntColumn, true
	case reflect.Float32, reflect.Float64:
		return ir.FloatColumn, true
	case reflect.String:
		return ir.StringColumn, true
	}
	return 0, false
}

func toTable(path string, v reflect.Value) (*ir.Value, error) {
	et, ok := elemStruct(v.Type().Elem())
	if !ok {
		return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("table elements must be structs, got %s", v.Type().Elem()), Err: ErrUnsupported}
	}
	fis := fields(et)
	schema := make([]ir.Column, len(fis))
	for j, fi := range fis {
		ct, ok := columnType(et.FieldByIndex(fi.index).Type)
		if !ok {
			return nil, &MarshalError{FieldPath: fieldPath(path, fi.name), Message: "table columns must be scalars", Err: ErrUnsupported}
		}
		schema[j] = ir.Column{Name: fi.name, Type: ct}
	}
	if len(schema) == 0 {
		return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("%s has no columns", et), Err: ErrUnsupported}
	}
	t := ir.NewTable(schema...)
	for i := range v.Len() {
		ev := v.Index(i)
		if ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				return nil, &MarshalError{FieldPath: indexPath(path, i), Message: "nil table row"}
			}
			ev = ev.Elem()
		}
		row := make([]*ir.Value, len(fis))
		for j, fi := range fis {
			fv, err := ev.FieldByIndexErr(fi.index)
			if err != nil {
				fv = reflect.Zero(et.FieldByIndex(fi.index).Type)
			}
			cell, err := toValue(fieldPath(indexPath(path, i), fi.name), fv, false)
			if err != nil {
				return nil, err
			}
			row[j] = cell
		}
		if err := t.AddRow(row); err != nil {
			return nil, &MarshalError{FieldPath: indexPath(path, i), Message: err.Error(), Err: err}
		}
	}
	return ir.FromTable(t), nil
}
