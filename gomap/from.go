package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// FromValue stores v in the value p points to. Document keys without a
// matching field are ignored and null sets the target to its zero
// value. Tables fill slices of structs row by row.
func FromValue(v *ir.Value, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	return fromValue("", v, rv.Elem())
}

func FromDocument(doc *ir.Document, p any) error {
	return FromValue(doc.Root, p)
}

func typeErr(path string, want string, v *ir.Value) error {
	return &TypeError{FieldPath: path, Expected: want, Actual: v.Type.String()}
}

func fromValue(path string, v *ir.Value, dst reflect.Value) error {
	if v.Type == ir.NullType {
		dst.SetZero()
		return nil
	}
	if dst.Kind() != reflect.Pointer && dst.CanAddr() && reflect.PointerTo(dst.Type()).Implements(textUnmarshalerType) {
		if v.Type != ir.StringType {
			return typeErr(path, "String", v)
		}
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.String))
	}
	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return fromValue(path, v, dst.Elem())
	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return unsupported(path, dst.Type())
		}
		dst.Set(reflect.ValueOf(toAny(v)))
		return nil
	case reflect.Bool:
		if v.Type != ir.BoolType {
			return typeErr(path, "Bool", v)
		}
		dst.SetBool(v.Bool)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type != ir.IntType {
			return typeErr(path, "Int", v)
		}
		if dst.OverflowInt(v.Int) {
			return &MarshalError{FieldPath: path, Message: fmt.Sprintf("%d overflows %s", v.Int, dst.Type())}
		}
		dst.SetInt(v.Int)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Type != ir.IntType {
			return typeErr(path, "Int", v)
		}
		if v.Int < 0 || dst.OverflowUint(uint64(v.Int)) {
			return &MarshalError{FieldPath: path, Message: fmt.Sprintf("%d overflows %s", v.Int, dst.Type())}
		}
		dst.SetUint(uint64(v.Int))
	case reflect.Float32, reflect.Float64:
		switch v.Type {
		case ir.FloatType:
			dst.SetFloat(v.Float)
		case ir.IntType:
			dst.SetFloat(float64(v.Int))
		default:
			return typeErr(path, "Float", v)
		}
	case reflect.String:
		if v.Type != ir.StringType {
			return typeErr(path, "String", v)
		}
		dst.SetString(v.String)
	case reflect.Slice:
		return fromSlice(path, v, dst)
	case reflect.Array:
		if v.Type != ir.ArrayType {
			return typeErr(path, "Array", v)
		}
		if len(v.Values) > dst.Len() {
			return &MarshalError{FieldPath: path, Message: fmt.Sprintf("%d elements do not fit %s", len(v.Values), dst.Type())}
		}
		dst.SetZero()
		for i, e := range v.Values {
			if err := fromValue(indexPath(path, i), e, dst.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if v.Type != ir.ObjectType {
			return typeErr(path, "Object", v)
		}
		if dst.Type().Key().Kind() != reflect.String {
			return unsupported(path, dst.Type())
		}
		m := reflect.MakeMapWithSize(dst.Type(), len(v.Fields))
		for i, k := range v.Fields {
			ev := reflect.New(dst.Type().Elem()).Elem()
			if err := fromValue(fieldPath(path, k), v.Values[i], ev); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), ev)
		}
		dst.Set(m)
	case reflect.Struct:
		if v.Type != ir.ObjectType {
			return typeErr(path, "Object", v)
		}
		for _, fi := range fields(dst.Type()) {
			fv, ok := v.Field(fi.name)
			if !ok {
				continue
			}
			if err := fromValue(fieldPath(path, fi.name), fv, fieldAlloc(dst, fi.index)); err != nil {
				return err
			}
		}
	default:
		return unsupported(path, dst.Type())
	}
	return nil
}

func fromSlice(path string, v *ir.Value, dst reflect.Value) error {
	var n int
	switch v.Type {
	case ir.ArrayType:
		n = len(v.Values)
	case ir.TableType:
		if _, ok := elemStruct(dst.Type().Elem()); !ok {
			return &TypeError{FieldPath: path, Expected: "Array", Actual: "Table"}
		}
		n = len(v.Table.Rows)
	default:
		return typeErr(path, "Array", v)
	}
	s := reflect.MakeSlice(dst.Type(), n, n)
	for i := range n {
		var e *ir.Value
		if v.Type == ir.TableType {
			e = v.Table.RowObject(i)
		} else {
			e = v.Values[i]
		}
		if err := fromValue(indexPath(path, i), e, s.Index(i)); err != nil {
			return err
		}
	}
	dst.Set(s)
	return nil
}

// fieldAlloc is FieldByIndex allocating nil embedded pointers on the way.
func fieldAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

// toAny maps v onto the types encoding/json uses for an any target,
// with int64 for integers.
func toAny(v *ir.Value) any {
	switch v.Type {
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
			res[i] = toAny(e)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(v.Fields))
		for i, f := range v.Fields {
			res[f] = toAny(v.Values[i])
		}
		return res
	case ir.TableType:
		res := make([]any, len(v.Table.Rows))
		for i := range v.Table.Rows {
			res[i] = toAny(v.Table.RowObject(i))
		}
		return res
	}
	return nil
}
