package base62

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestEncodeKnown(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{36, "a"},
		{61, "z"},
		{62, "10"},
		{320, "5A"},
		{10000, "2bI"},
		{math.MaxUint64, "LygHa16AHYF"},
	}
	for _, tt := range tests {
		if got := Encode(tt.n); got != tt.want {
			t.Errorf("Encode(%d) = %q want %q", tt.n, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(62))
	ns := []uint64{0, 1, 61, 62, 63, 3843, 3844, math.MaxUint32, math.MaxInt64, math.MaxUint64}
	for i := 0; i < 1000; i++ {
		ns = append(ns, r.Uint64()>>uint(r.Intn(64)))
	}
	for _, n := range ns {
		s := Encode(n)
		if len(s) > 1 && s[0] == '0' {
			t.Fatalf("Encode(%d) = %q has a leading zero", n, s)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if got != n {
			t.Fatalf("Decode(Encode(%d)) = %d", n, got)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 61, -62, 100000, -100000, math.MaxInt64, math.MinInt64} {
		got, err := DecodeInt(EncodeInt(n))
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		if got != n {
			t.Errorf("got %d want %d", got, n)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("12$4")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Char != '$' || de.Position != 2 {
		t.Errorf("got char %q position %d", de.Char, de.Position)
	}
	if !errors.Is(err, ErrDigit) {
		t.Errorf("expected ErrDigit")
	}
	if _, err := Decode("LygHa16AHYG"); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, err := Decode("zzzzzzzzzzzz"); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, err := Decode(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := DecodeInt("AzL8n0Y58m8"); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected int overflow, got %v", err)
	}
}
