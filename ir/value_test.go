package ir

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleObject() *Value {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("dx")},
		{Key: "server", Val: FromKeyVals([]KeyVal{
			{Key: "port", Val: FromInt(8080)},
			{Key: "a.b", Val: FromBool(true)},
		})},
		{Key: "tags", Val: FromSlice([]*Value{FromString("x"), Null()})},
	})
}

func TestSetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", FromInt(1))
	obj.Set("b", FromInt(2))
	if !obj.Set("a", FromInt(3)) {
		t.Fatal("expected existing key")
	}
	if diff := cmp.Diff([]string{"a", "b"}, obj.Fields); diff != "" {
		t.Error(diff)
	}
	v, _ := obj.Field("a")
	if v.Int != 3 {
		t.Errorf("got %d", v.Int)
	}
}

func TestLargeObjectIndex(t *testing.T) {
	obj := NewObject()
	for i := range 100 {
		obj.Set(fmt.Sprintf("k%d", i), FromInt(int64(i)))
	}
	obj.Set("k50", FromInt(-1))
	if obj.Len() != 100 {
		t.Fatalf("len %d", obj.Len())
	}
	v, ok := obj.Field("k50")
	if !ok || v.Int != -1 {
		t.Errorf("k50: %v %v", v, ok)
	}
	if !obj.Delete("k10") {
		t.Fatal("delete")
	}
	if _, ok := obj.Field("k10"); ok {
		t.Error("k10 still present")
	}
	v, ok = obj.Field("k99")
	if !ok || v.Int != 99 {
		t.Errorf("k99: %v %v", v, ok)
	}
}

func TestConcurrentReads(t *testing.T) {
	obj := NewObject()
	for i := range 20 {
		obj.Set(fmt.Sprintf("k%d", i), FromInt(int64(i)))
	}
	shared := obj.Clone()
	if shared.index == nil {
		t.Fatal("clone of a large object has no index")
	}
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 20 {
				k := fmt.Sprintf("k%d", (i+g)%20)
				v, ok := shared.Field(k)
				if !ok || v.Int != int64((i+g)%20) {
					t.Errorf("%s: %v %v", k, v, ok)
				}
				if _, err := shared.Get(k); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestGet(t *testing.T) {
	obj := sampleObject()
	v, err := obj.Get(`server."a.b"`)
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != BoolType || !v.Bool {
		t.Errorf("got %#v", v)
	}
	if _, err := obj.Get("server.missing"); !errors.Is(err, ErrNoSuchKey) {
		t.Errorf("expected ErrNoSuchKey, got %v", err)
	}
	if _, err := obj.Get("name.x"); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	obj := sampleObject()
	c := obj.Clone()
	if !Equal(obj, c) {
		t.Fatal("clone not equal")
	}
	srv, _ := c.Field("server")
	srv.Set("port", FromInt(1))
	if Equal(obj, c) {
		t.Error("clone shares structure")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		1:            "1.0",
		-2:           "-2.0",
		1.5:          "1.5",
		1e21:         "1e+21",
		math.NaN():   "NaN",
		math.Inf(1):  "Inf",
		math.Inf(-1): "-Inf",
	}
	for f, want := range cases {
		if got := FormatFloat(f); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", f, got, want)
		}
	}
}

func TestTableAddRow(t *testing.T) {
	tbl := NewTable(
		Column{Name: "id", Type: IntColumn},
		Column{Name: "name", Type: StringColumn},
	)
	if err := tbl.AddRow([]*Value{FromInt(1), FromString("a")}); err != nil {
		t.Fatal(err)
	}
	err := tbl.AddRow([]*Value{FromInt(2)})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.Column != -1 || se.Row != 1 {
		t.Errorf("got %+v", se)
	}
	err = tbl.AddRow([]*Value{FromString("2"), FromString("b")})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("rows %d", len(tbl.Rows))
	}
	obj := tbl.RowObject(0)
	if diff := cmp.Diff([]string{"id", "name"}, obj.Fields); diff != "" {
		t.Error(diff)
	}
}

func TestDocumentTables(t *testing.T) {
	tbl := NewTable(Column{Name: "x", Type: BoolColumn})
	root := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromTable(tbl)},
		{Key: "b", Val: FromKeyVals([]KeyVal{{Key: "c d", Val: FromTable(tbl)}})},
	})
	doc := NewDocument(root)
	if diff := cmp.Diff([]string{"a", `b."c d"`}, doc.Tables()); diff != "" {
		t.Error(diff)
	}
}
