package tokens

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	tests := []struct {
		text  string
		model Model
		want  Info
	}{
		{"", GPT4o, Info{Tokens: 0, Chars: 0, Model: GPT4o}},
		{"a", GPT4o, Info{Tokens: 1, Chars: 1, Model: GPT4o}},
		{"abcdefgh", GPT4o, Info{Tokens: 2, Chars: 8, Model: GPT4o}},
		{"abcdefgh", Claude, Info{Tokens: 3, Chars: 8, Model: Claude}},
		{"abcdefgh", Llama, Info{Tokens: 3, Chars: 8, Model: Llama}},
		{"héllo wörld", Gemini, Info{Tokens: 3, Chars: 11, Model: Gemini}},
		{"abcd", Model(99), Info{Tokens: 1, Chars: 4, Model: Other}},
	}
	for _, tc := range tests {
		got := Count(tc.text, tc.model)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Count(%q, %s) (-want +got):\n%s", tc.text, tc.model, diff)
		}
	}
}

func TestCountAll(t *testing.T) {
	infos := CountAll("0123456789")
	if len(infos) != len(Models()) {
		t.Fatalf("got %d infos", len(infos))
	}
	for i, m := range Models() {
		if infos[i].Model != m || infos[i].Chars != 10 {
			t.Errorf("info %d: %+v", i, infos[i])
		}
	}
}

func TestRatio(t *testing.T) {
	a := Info{Tokens: 200}
	b := Info{Tokens: 50}
	if got := Ratio(a, b); got != 0.25 {
		t.Errorf("ratio %v", got)
	}
	if got := Savings(a, b); got != 75 {
		t.Errorf("savings %v", got)
	}
	if Ratio(Info{}, b) != 0 || Savings(Info{}, b) != 0 {
		t.Error("empty base should give 0")
	}
}

func TestParseModel(t *testing.T) {
	for _, m := range Models() {
		got, err := ParseModel(m.String())
		if err != nil || got != m {
			t.Errorf("%s: got %s %v", m, got, err)
		}
	}
	if m, _ := ParseModel("Sonnet"); m != Claude {
		t.Errorf("got %s", m)
	}
	if _, err := ParseModel("gpt-9"); !errors.Is(err, ErrBadModel) {
		t.Errorf("got %v", err)
	}
}
