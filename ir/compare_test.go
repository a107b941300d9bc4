package ir

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want int
	}{
		{"null", Null(), Null(), 0},
		{"bool", FromBool(false), FromBool(true), -1},
		{"int", FromInt(3), FromInt(2), 1},
		{"int float distinct", FromInt(1), FromFloat(1), -1},
		{"nan", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"string", FromString("a"), FromString("b"), -1},
		{"array prefix", FromSlice([]*Value{FromInt(1)}), FromSlice([]*Value{FromInt(1), FromInt(2)}), -1},
		{
			"object order",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}}),
			FromKeyVals([]KeyVal{{"b", FromInt(2)}, {"a", FromInt(1)}}),
			-1,
		},
		{"type rank", FromString("z"), FromSlice(nil), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("reverse Compare = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestHashEqual(t *testing.T) {
	a := sampleObject()
	b := sampleObject()
	if a.Hash() != b.Hash() {
		t.Error("equal values hash differently")
	}
	b.Set("name", FromString("dy"))
	if a.Hash() == b.Hash() {
		t.Error("different values hash equal")
	}
	if FromFloat(math.NaN()).Hash() != FromFloat(-math.NaN()).Hash() {
		t.Error("NaN hashes differ")
	}
}

func TestIRJSON(t *testing.T) {
	tbl := NewTable(Column{Name: "f", Type: FloatColumn})
	if err := tbl.AddRow([]*Value{FromFloat(math.Inf(-1))}); err != nil {
		t.Fatal(err)
	}
	root := sampleObject()
	root.Set("t", FromTable(tbl))
	doc := NewDocument(root)
	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	back := &Document{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !doc.Equal(back) {
		t.Errorf("json round trip: %s", d)
	}
}
