package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

const people = `people=id%i name%s age%i score%f admin%b
1 Ada Lovelace 36 9.5 +
2 Alan Turing 41 8.25 -
3 Grace Hopper 85 9.75 +
4 "first-name" 20 1.0 -
meta:x
`

func load(t *testing.T) *ir.Document {
	t.Helper()
	doc, err := parse.Human([]byte(people))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func ids(t *ir.Table) []int64 {
	var res []int64
	for _, row := range t.Rows {
		res = append(res, row[0].Int)
	}
	return res
}

func TestWhere(t *testing.T) {
	doc := load(t)
	tests := []struct {
		src  string
		want []int64
	}{
		{`age > 40`, []int64{2, 3}},
		{`admin && score >= 9.5`, []int64{1, 3}},
		{`name contains "Turing"`, []int64{2}},
		{`row["age"] < 30`, []int64{4}},
		{`id in [1, 4]`, []int64{1, 4}},
		{`false`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Where(doc, "people", tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, ids(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if len(got.Schema) != 5 {
				t.Errorf("schema changed: %v", got.Schema)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	doc := load(t)
	for _, src := range []string{`nope > 1`, `age`, `age +`} {
		if _, err := Where(doc, "people", src); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: got %v", src, err)
		}
	}
	if _, err := Where(doc, "meta", `true`); !errors.Is(err, ErrNotTable) {
		t.Errorf("got %v", err)
	}
	if _, err := Where(doc, "missing", `true`); !errors.Is(err, ir.ErrNoSuchKey) {
		t.Errorf("got %v", err)
	}
}

func TestSelect(t *testing.T) {
	doc := load(t)
	v, err := doc.Get("people")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Select(v.Table, "name", "id")
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Column{{Name: "name", Type: ir.StringColumn}, {Name: "id", Type: ir.IntColumn}}
	if diff := cmp.Diff(want, got.Schema); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Rows[2][0].String != "Grace Hopper" || got.Rows[2][1].Int != 3 {
		t.Errorf("row 2: %s %s", got.Rows[2][0].GoString(), got.Rows[2][1].GoString())
	}
	if _, err := Select(v.Table, "zzz"); !errors.Is(err, ErrNoColumn) {
		t.Errorf("got %v", err)
	}
}

func TestMatchReuse(t *testing.T) {
	doc := load(t)
	v, _ := doc.Get("people")
	q, err := Compile(v.Table.Schema, `age % 2 == 1`)
	if err != nil {
		t.Fatal(err)
	}
	var got []bool
	for i := range v.Table.Rows {
		ok, err := q.Match(v.Table, i)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, ok)
	}
	if diff := cmp.Diff([]bool{false, true, true, false}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
