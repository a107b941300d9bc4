package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// val builds values from Go literals.
func val(x any) *ir.Value {
	switch y := x.(type) {
	case nil:
		return ir.Null()
	case *ir.Value:
		return y
	case bool:
		return ir.FromBool(y)
	case int:
		return ir.FromInt(int64(y))
	case int64:
		return ir.FromInt(y)
	case float64:
		return ir.FromFloat(y)
	case string:
		return ir.FromString(y)
	case []any:
		vs := make([]*ir.Value, len(y))
		for i := range y {
			vs[i] = val(y[i])
		}
		return ir.FromSlice(vs)
	}
	panic(fmt.Sprintf("val: %T", x))
}

// obj builds an object from alternating keys and values.
func obj(kvs ...any) *ir.Value {
	res := ir.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), val(kvs[i+1]))
	}
	return res
}

func table(cols []ir.Column, rows ...[]any) *ir.Value {
	t := ir.NewTable(cols...)
	for _, r := range rows {
		row := make([]*ir.Value, len(r))
		for i := range r {
			row[i] = val(r[i])
		}
		if err := t.AddRow(row); err != nil {
			panic(err)
		}
	}
	return ir.FromTable(t)
}

func checkDoc(t *testing.T, got *ir.Document, want *ir.Value) {
	t.Helper()
	if !ir.Equal(got.Root, want) {
		t.Errorf("documents differ:\n%s", cmp.Diff(want.GoString(), got.Root.GoString()))
	}
}

func checkKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if pe.Kind != kind {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if !errors.Is(err, kind.sentinel()) {
		t.Errorf("errors.Is(%v, %v) is false", err, kind.sentinel())
	}
	return pe
}
