package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{`a."b.c".d`, []string{"a", "b.c", "d"}},
		{`"x \"y\""`, []string{`x "y"`}},
	}
	for _, tc := range tests {
		got, err := SplitPath(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q: %s", tc.in, diff)
		}
		if back := JoinPath(got); back != tc.in {
			t.Errorf("JoinPath = %q, want %q", back, tc.in)
		}
	}
}

func TestSplitPathErrors(t *testing.T) {
	for _, in := range []string{"", "a.", ".a", "a..b", `"a`, `"a"b`} {
		if _, err := SplitPath(in); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: expected ErrBadPath, got %v", in, err)
		}
	}
}

func TestBareKey(t *testing.T) {
	bare := []string{"name", "user_id", "héllo", "a-b", "1"}
	quoted := []string{"", "a b", "a.b", "-x", "_", "k:v", "x%", "$a", "^p", "a\tb"}
	for _, s := range bare {
		if !BareKey(s) {
			t.Errorf("%q should be bare", s)
		}
	}
	for _, s := range quoted {
		if BareKey(s) {
			t.Errorf("%q should be quoted", s)
		}
	}
}
