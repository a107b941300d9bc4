package encode

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/zed-sub048/abbrev"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

func TestLLM(t *testing.T) {
	users := table([]ir.Column{col("id", ir.IntColumn), col("name", ir.StringColumn), col("status", ir.StringColumn)},
		[]any{1, "Alice", "active"},
		[]any{2, "Bob", "active"},
	)
	tests := []struct {
		name string
		cfg  LLMConfig
		doc  *ir.Document
		want string
	}{
		{
			name: "plain",
			doc: doc(
				"name", "dx",
				"on", true,
				"off", false,
				"srv", obj("host", "h", "port", 1, "tls", obj()),
				"tags", []any{"a b", true, 2.5, nil},
				"users", users,
			),
			want: `name=dx
on!
off?
srv(host=h port=1 tls())
tags=["a b" + 2.5 null]
users[id%i name%s status%s]
(1 Alice active)
(2 Bob active)
`,
		},
		{
			name: "abbreviate and ditto",
			cfg:  LLMConfig{AbbreviateKeys: true, DittoCompress: true},
			doc:  doc("name", "dx", "users", users, "st", 1),
			want: `#!abbrev=std
nm=dx
users[id%i nm%s st%s]
(1 Alice active)
(2 Bob _)
"st"=1
`,
		},
		{
			name: "base62",
			cfg:  LLMConfig{Base62Ints: true, Base62Threshold: 9999},
			doc: doc(
				"n", 10000,
				"small", 5,
				"t", table([]ir.Column{col("v", ir.IntColumn)}, []any{5}, []any{10000}),
				"arr", []any{10000},
				"o", obj("m", -10000),
			),
			want: `n%x=2bI
small=5
t[v%x]
(5)
(2bI)
arr=[10000]
o(m%x=-2bI)
`,
		},
		{
			name: "default threshold",
			cfg:  LLMConfig{Base62Ints: true},
			doc:  doc("a", 100000, "b", 100001),
			want: "a=100000\nb%x=Q0v\n",
		},
		{
			name: "truncate",
			cfg:  LLMConfig{MaxTextLength: 3},
			doc:  doc("s", "abcdef", "u", "héllo", "k", "ab"),
			want: "s=abc\nu=hél\nk=ab\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LLMString(tc.doc, tc.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("output differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruncateKeepsInput(t *testing.T) {
	d := doc("s", "abcdef", "t", table([]ir.Column{col("c", ir.StringColumn)}, []any{"xyzw"}))
	got := Truncate(d, 2)
	if s, _ := d.Get("s"); s.String != "abcdef" {
		t.Errorf("input modified: %q", s.String)
	}
	want := doc("s", "ab", "t", table([]ir.Column{col("c", ir.StringColumn)}, []any{"xy"}))
	if !got.Equal(want) {
		t.Errorf("got %s", got.Root.GoString())
	}
	if Truncate(want, 2) != want {
		t.Errorf("expected no copy when nothing is cut")
	}
}

func TestLLMDeterministic(t *testing.T) {
	cfg := LLMConfig{AbbreviateKeys: true, DittoCompress: true, Base62Ints: true, Base62Threshold: 1000}
	for name, d := range roundTripDocs() {
		a, err := LLMString(d, cfg)
		if err != nil {
			t.Fatal(err)
		}
		b, err := LLMString(d.Clone(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("%s: output not byte identical", name)
		}
	}
}

func TestLLMRoundTrip(t *testing.T) {
	configs := map[string]LLMConfig{
		"zero":    {},
		"default": DefaultLLMConfig(),
		"all":     {AbbreviateKeys: true, DittoCompress: true, Base62Ints: true, Base62Threshold: 1000},
	}
	for cname, cfg := range configs {
		for name, d := range roundTripDocs() {
			t.Run(cname+"/"+name, func(t *testing.T) {
				text, err := LLMString(d, cfg)
				if err != nil {
					t.Fatal(err)
				}
				got, err := parse.LLM([]byte(text), parse.Strict(true))
				if err != nil {
					t.Fatalf("parse %q: %v", text, err)
				}
				if !got.Equal(d) {
					t.Errorf("round trip differs for\n%s\n%s", text, cmp.Diff(d.Root.GoString(), got.Root.GoString()))
				}
			})
		}
	}
}

func TestLLMDittoKeepsNegativeZero(t *testing.T) {
	d := doc("t", table([]ir.Column{col("f", ir.FloatColumn)}, []any{0.0}, []any{math.Copysign(0, -1)}, []any{math.Copysign(0, -1)}))
	text, err := LLMString(d, LLMConfig{DittoCompress: true})
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.LLM([]byte(text))
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	tv, _ := got.Root.Field("t")
	signs := make([]bool, len(tv.Table.Rows))
	for i, row := range tv.Table.Rows {
		signs[i] = math.Signbit(row[0].Float)
	}
	if diff := cmp.Diff([]bool{false, true, true}, signs); diff != "" {
		t.Errorf("signs for %q (-want +got):\n%s", text, diff)
	}
	if strings.Count(text, "_") != 1 {
		t.Errorf("expected one ditto in %q", text)
	}
}

func TestLLMCustomDict(t *testing.T) {
	dict, ok := abbrev.Lookup("encode-test")
	if !ok {
		dict = abbrev.New("encode-test")
		dict.Add("temperature", "tmp")
		if err := abbrev.Register(dict); err != nil {
			t.Fatal(err)
		}
	}
	d := doc("temperature", 21.5, "tmp", "raw", "name", "n")
	cfg := LLMConfig{AbbreviateKeys: true, Dict: dict}
	text, err := LLMString(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := "#!abbrev=encode-test\ntmp=21.5\n\"tmp\"=raw\nname=n\n"
	if diff := cmp.Diff(want, text); diff != "" {
		t.Errorf("output differs (-want +got):\n%s", diff)
	}
	got, err := parse.LLM([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(d) {
		t.Errorf("round trip differs: %s", got.Root.GoString())
	}
}

func TestLLMTablesInArrays(t *testing.T) {
	d := doc("a", []any{
		table([]ir.Column{col("n", ir.IntColumn)}),
		obj(),
		table([]ir.Column{col("b", ir.BoolColumn)}, []any{true}),
		obj("on", true),
		table([]ir.Column{col("s", ir.StringColumn)}, []any{"x"}),
		obj("k", math.MaxInt32),
	})
	text, err := LLMString(d, LLMConfig{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.LLM([]byte(text))
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	if !got.Equal(d) {
		t.Errorf("round trip differs for %s: %s", text, got.Root.GoString())
	}
}
