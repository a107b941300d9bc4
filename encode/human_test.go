package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

func TestHuman(t *testing.T) {
	users := table([]ir.Column{col("id", ir.IntColumn), col("name", ir.StringColumn), col("active", ir.BoolColumn)},
		[]any{1, "Alice", true},
		[]any{2, "Bob", false},
	)
	tests := []struct {
		name string
		doc  *ir.Document
		want string
	}{
		{
			name: "mixed",
			doc: doc(
				"title", "dx",
				"version", 2,
				"ratio", 1.5,
				"ok", true,
				"none", nil,
				"tags", []any{"a", "b"},
				"users", users,
				"server", obj("host", "localhost", "port", 8080),
			),
			want: `title:dx
version:2
ratio:1.5
ok:true
none:null
tags:
- a
- b
users=id%i name%s active%b
1 Alice +
2 Bob   -

[server]
host:localhost
port:8080
`,
		},
		{
			name: "dotted",
			doc:  doc("a", obj("x", 1, "y", obj("z", "q")), "b", 2),
			want: "a.x:1\na.y.z:q\nb:2\n",
		},
		{
			name: "empty",
			doc:  doc("e", obj(), "l", []any{}),
			want: "e:()\nl:[]\n",
		},
		{
			name: "quoted",
			doc:  doc("a b", 1, "x.y", obj("k", "v w", "n", "12")),
			want: "\"a b\":1\n\n[\"x.y\"]\nk:\"v w\"\nn:\"12\"\n",
		},
		{
			name: "compound items",
			doc:  doc("m", []any{[]any{1, 2}, obj("a", 1), "x"}),
			want: "m:\n- [1 2]\n- (a=1)\n- x\n",
		},
		{
			name: "nested sections",
			doc:  doc("a", obj("x", 1, "b", obj("y", 2)), "c", obj("z", 3.0)),
			want: "[a]\nx:1\n\n[a.b]\ny:2\n\n[c]\nz:3.0\n",
		},
		{
			name: "empty doc",
			doc:  doc(),
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HumanString(tc.doc)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("output differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHumanAlignWide(t *testing.T) {
	d := doc("t", table([]ir.Column{col("k", ir.StringColumn), col("v", ir.IntColumn)},
		[]any{"日本", 1},
		[]any{"abc", 2},
	))
	got := MustString(d)
	want := "t=k%s v%i\n日本 1\nabc  2\n\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output differs (-want +got):\n%s", diff)
	}
	got, err := HumanString(d, EncodeAlign(false))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "abc 2\n") {
		t.Errorf("unaligned output %q", got)
	}
}

func TestHumanNoColumns(t *testing.T) {
	_, err := HumanString(doc("t", ir.FromTable(ir.NewTable())))
	if !errors.Is(err, ErrNoColumns) {
		t.Fatalf("expected ErrNoColumns, got %v", err)
	}
}

func TestHumanColors(t *testing.T) {
	d := doc("a", 1)
	got, err := HumanString(d, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "a") || !strings.Contains(got, "1") {
		t.Errorf("colored output lost content: %q", got)
	}
}

// roundTripDocs exercises quoting, every value type and nesting.
func roundTripDocs() map[string]*ir.Document {
	mixed := table(
		[]ir.Column{col("id", ir.IntColumn), col("name", ir.StringColumn), col("score", ir.FloatColumn), col("ok", ir.BoolColumn)},
		[]any{1, "Alice Smith", 95.5, true},
		[]any{2, "_", math.Inf(-1), false},
		[]any{2, "", 0.0, false},
		[]any{int64(math.MinInt64), "null", math.NaN(), true},
	)
	return map[string]*ir.Document{
		"scalars": doc(
			"s", "plain",
			"sp", "two words",
			"empty", "",
			"under", "_",
			"num", "123",
			"neg", "-x",
			"hash", "#c",
			"dollar", "$x",
			"caret", "^k",
			"quote", `he said "hi"`,
			"nl", "a\nb\tc",
			"uni", "ünï 日本語",
			"null", "null",
			"bools", "true",
			"n", nil,
			"t", true,
			"f", false,
			"i", -42,
			"max", int64(math.MaxInt64),
			"min", int64(math.MinInt64),
			"fl", 1e21,
			"nz", -0.5,
			"nan", math.NaN(),
			"inf", math.Inf(1),
		),
		"keys": doc(
			"a b", 1,
			"", 2,
			"x.y", obj("k", 1),
			"-lead", 3,
			"bang!", 4,
			"日本", 5,
			"after", obj(),
		),
		"nesting": doc(
			"arr", []any{1, "two", []any{3, []any{}}, obj("a", obj("b", []any{nil}))},
			"o", obj("e", obj(), "l", []any{}, "t", mixed, "s", "x"),
			"tail", 1,
			"sec", obj("x", 1, "deep", obj("y", obj("z", true))),
			"sec2", obj("t", mixed),
		),
		"tables": doc(
			"mixed", mixed,
			"norows", table([]ir.Column{col("a", ir.IntColumn)}),
			"intable", []any{table([]ir.Column{col("v", ir.StringColumn)}, []any{"a b"}, []any{"a b"})},
			"big", table([]ir.Column{col("n", ir.IntColumn)}, []any{5}, []any{1234567}, []any{-1234567}, []any{-1234567}),
		),
	}
}

func TestHumanRoundTrip(t *testing.T) {
	for name, d := range roundTripDocs() {
		t.Run(name, func(t *testing.T) {
			text, err := HumanString(d)
			if err != nil {
				t.Fatal(err)
			}
			got, err := parse.Human([]byte(text), parse.Strict(true))
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if !got.Equal(d) {
				t.Errorf("round trip differs for\n%s\n%s", text, cmp.Diff(d.Root.GoString(), got.Root.GoString()))
			}
			again := MustString(got)
			if again != text {
				t.Errorf("formatting is not stable:\n%s", cmp.Diff(text, again))
			}
		})
	}
}
