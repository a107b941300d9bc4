package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nx\nc\nd\n")
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "x"},
		{Equal, "c"},
		{Insert, "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected a change")
	}
	if Changed(Lines("same\n", "same\n")) {
		t.Error("expected no change")
	}
}

func TestFormat(t *testing.T) {
	ls := []Line{
		{Equal, "1"}, {Equal, "2"}, {Equal, "3"},
		{Delete, "4"},
		{Equal, "5"}, {Equal, "6"}, {Equal, "7"}, {Equal, "8"},
		{Insert, "9"},
		{Equal, "10"},
	}
	want := `@@
  3
- 4
  5
@@
  8
+ 9
  10
`
	if diff := cmp.Diff(want, Format(ls, 1)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	all := Format(ls[:2], -1)
	if all != "  1\n  2\n" {
		t.Errorf("got %q", all)
	}
}

func mustDoc(t *testing.T, src string) *ir.Document {
	t.Helper()
	doc, err := parse.Human([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

type change struct {
	Path string
	Op   Op
}

func summary(cs []Change) []change {
	var res []change
	for _, c := range cs {
		res = append(res, change{c.Path, c.Op})
	}
	return res
}

func TestDocuments(t *testing.T) {
	from := mustDoc(t, `name:dx
port:1
gone:x
list:
- a
- b
- c
t=id%i name%s
1 a
2 b
3 c

[srv]
host:h
`)
	to := mustDoc(t, `name:dx
port:"1"
list:
- a
- z
- c
- d
t=id%i name%s
1 a
2 q

[srv]
host:h2
tls:true
`)
	want := []change{
		{"port", Replace},
		{"gone", Delete},
		{"list[1]", Replace},
		{"list[3]", Insert},
		{"t[1].name", Replace},
		{"t[2]", Delete},
		{"srv.host", Replace},
		{"srv.tls", Insert},
	}
	if diff := cmp.Diff(want, summary(Documents(from, to))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if cs := Documents(from, from); len(cs) != 0 {
		t.Errorf("self diff: %v", summary(cs))
	}
}

func TestTableSchemaChange(t *testing.T) {
	from := mustDoc(t, "t=a%i\n1\n")
	to := mustDoc(t, "t=a%f\n1.5\n")
	got := summary(Documents(from, to))
	if diff := cmp.Diff([]change{{"t", Replace}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
