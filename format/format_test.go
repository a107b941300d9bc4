package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"h", HumanFormat},
		{"human", HumanFormat},
		{"llm", LLMFormat},
		{"m", MachineFormat},
		{"machine", MachineFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range append(RoundTripFormats(), JSONFormat, YAMLFormat) {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
		s, err := FromSuffix(f.Suffix())
		if err != nil {
			t.Fatal(err)
		}
		if s != f {
			t.Errorf("suffix %s: got %s want %s", f.Suffix(), s, f)
		}
	}
}
