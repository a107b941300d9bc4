package parse

import (
	"testing"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

func TestLLMUsersTable(t *testing.T) {
	in := "users[id%i name%s score%f active%b](1 Alice 95.5 +)(2 Bob 87.3 -)"
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj("users", table(usersCols,
		[]any{1, "Alice", 95.5, true},
		[]any{2, "Bob", 87.3, false},
	)))
}

func TestLLMForms(t *testing.T) {
	in := `name=dx version="1.0"
server(host=localhost port=8080 tls(on! cert=none))
tags=[a "b c" 3 [x] (k=v)]
rows=[n%i](1)(2)
flag?
list>a|b
n%x=2bI
deep.path.key=1
`
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj(
		"name", "dx",
		"version", "1.0",
		"server", obj("host", "localhost", "port", 8080, "tls", obj("on", true, "cert", "none")),
		"tags", []any{"a", "b c", 3, []any{"x"}, obj("k", "v")},
		"rows", table([]ir.Column{{Name: "n", Type: ir.IntColumn}}, []any{1}, []any{2}),
		"flag", false,
		"list", []any{"a", "b"},
		"n", 10000,
		"deep", obj("path", obj("key", 1)),
	))
}

func TestLLMMultilineRows(t *testing.T) {
	in := `t[a%i b%s]
(1 x)
(_ y z)  # vacuum
(2 _)
after=1
`
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	cols := []ir.Column{{Name: "a", Type: ir.IntColumn}, {Name: "b", Type: ir.StringColumn}}
	checkDoc(t, doc, obj(
		"t", table(cols, []any{1, "x"}, []any{1, "y z"}, []any{2, "y z"}),
		"after", 1,
	))
}

func TestLLMUntypedColumns(t *testing.T) {
	doc, err := LLM([]byte("t[id name ok](1 a +)(2 3 -)"))
	if err != nil {
		t.Fatal(err)
	}
	cols := []ir.Column{
		{Name: "id", Type: ir.IntColumn},
		{Name: "name", Type: ir.StringColumn},
		{Name: "ok", Type: ir.BoolColumn},
	}
	checkDoc(t, doc, obj("t", table(cols, []any{1, "a", true}, []any{2, "3", false})))
}

func TestLLMBase62Column(t *testing.T) {
	doc, err := LLM([]byte("t[v%x](2bI)(-5A)(0)"))
	if err != nil {
		t.Fatal(err)
	}
	cols := []ir.Column{{Name: "v", Type: ir.IntColumn}}
	checkDoc(t, doc, obj("t", table(cols, []any{10000}, []any{-320}, []any{0})))
}

func TestLLMAliasAndPrefix(t *testing.T) {
	in := `$c=context
$c.task=build
^owner=me
`
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj("context", obj("task", "build", "owner", "me")))
}

func TestLLMAbbreviations(t *testing.T) {
	in := `#!abbrev=std
nm=dx
"nm"=literal
cfg(st=ok)
u[nm%s ct%i](a 1)
`
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	cols := []ir.Column{{Name: "name", Type: ir.StringColumn}, {Name: "count", Type: ir.IntColumn}}
	checkDoc(t, doc, obj(
		"name", "dx",
		"nm", "literal",
		"config", obj("status", "ok"),
		"u", table(cols, []any{"a", 1}),
	))

	plain, err := LLM([]byte("nm=dx"))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, plain, obj("nm", "dx"))

	if _, err := LLM([]byte("#!abbrev=nope\na=1")); err == nil {
		t.Error("expected unknown dictionary error")
	}
}

func TestLLMErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
		line int
	}{
		{"missing value", "a=", UnexpectedToken, 1},
		{"bare word", "a=1 b", UnexpectedToken, 1},
		{"unterminated object", "a(b=1", UnexpectedToken, 1},
		{"unterminated row", "t[a%i](1", UnexpectedToken, 1},
		{"ditto first row", "t[a%i](_)", UnexpectedToken, 1},
		{"short row", "t[a%i b%i](1)", SchemaMismatch, 1},
		{"unknown alias", "a=$x", UnknownAlias, 1},
		{"duplicate alias", "$x=1\n$x=2", DuplicateAliasDefinition, 2},
		{"bad base62", "t[v%x](2b!)", Base62DecodeError, 1},
		{"base62 overflow", "n%x=zzzzzzzzzzzz", IntegerOverflow, 1},
		{"unterminated string", `a="x`, UnterminatedString, 1},
		{"empty table", "t[]", UnexpectedToken, 1},
		{"dotted pair", "o(a.b=1)", UnexpectedToken, 1},
		{"stray paren", ")", UnexpectedToken, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LLM([]byte(tc.in))
			pe := checkKind(t, err, tc.kind)
			if pe.Line != tc.line {
				t.Errorf("line %d, want %d: %v", pe.Line, tc.line, err)
			}
		})
	}
}

func TestLLMStrictDuplicates(t *testing.T) {
	if _, err := LLM([]byte("o(a=1 a=2)")); err != nil {
		t.Fatal(err)
	}
	_, err := LLM([]byte("o(a=1 a=2)"), Strict(true))
	checkKind(t, err, DuplicateKey)
}

func TestParseDispatch(t *testing.T) {
	doc, err := Parse([]byte("a=1"), ParseFormat(format.LLMFormat))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj("a", 1))
	doc, err = ParseString("a:1")
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj("a", 1))
	if _, err := Parse(nil, ParseFormat(format.MachineFormat)); err == nil {
		t.Error("expected error for binary format")
	}
}

func TestEmptyInput(t *testing.T) {
	for _, f := range []func([]byte, ...ParseOption) (*ir.Document, error){Human, LLM} {
		doc, err := f(nil)
		if err != nil {
			t.Fatal(err)
		}
		if doc.Root.Len() != 0 {
			t.Errorf("got %v", doc.Root)
		}
	}
}

func TestLLMTableItems(t *testing.T) {
	in := `a=[[n%i] () [b%b](+)(-) (on!) [s%s](x) (k=1) [v%i](1) (w(z=2))]`
	doc, err := LLM([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	checkDoc(t, doc, obj("a", []any{
		table([]ir.Column{{Name: "n", Type: ir.IntColumn}}),
		obj(),
		table([]ir.Column{{Name: "b", Type: ir.BoolColumn}}, []any{true}, []any{false}),
		obj("on", true),
		table([]ir.Column{{Name: "s", Type: ir.StringColumn}}, []any{"x"}),
		obj("k", 1),
		table([]ir.Column{{Name: "v", Type: ir.IntColumn}}, []any{1}),
		obj("w", obj("z", 2)),
	}))
}
