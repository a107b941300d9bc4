package abbrev

import "testing"

func TestStd(t *testing.T) {
	if Std.Len() < 100 {
		t.Fatalf("std has %d entries", Std.Len())
	}
	for long, abbr := range map[string]string{
		"name":        "nm",
		"description": "ds",
		"status":      "st",
		"timestamp":   "ts",
		"quantity":    "qt",
	} {
		if got := Std.Abbreviate(long); got != abbr {
			t.Errorf("Abbreviate(%q) = %q, want %q", long, got, abbr)
		}
		if got := Std.Expand(abbr); got != long {
			t.Errorf("Expand(%q) = %q, want %q", abbr, got, long)
		}
	}
	if got := Std.Abbreviate("unlisted_key"); got != "unlisted_key" {
		t.Errorf("passthrough: %q", got)
	}
}

func TestStdBijective(t *testing.T) {
	for _, long := range Std.Longs() {
		abbr := Std.Abbreviate(long)
		if abbr == long {
			t.Errorf("%q maps to itself", long)
		}
		if back := Std.Expand(abbr); back != long {
			t.Errorf("%q -> %q -> %q", long, abbr, back)
		}
	}
}

func TestCollides(t *testing.T) {
	d := New("t")
	d.Add("name", "nm")
	if !d.Collides("nm") {
		t.Error("nm collides")
	}
	if d.Collides("name") || d.Collides("other") {
		t.Error("unexpected collision")
	}
	if d.Add("nom", "nm") || d.Add("name", "n") || d.Add("x", "x") {
		t.Error("conflicting add succeeded")
	}
}

func TestRegistry(t *testing.T) {
	if d, ok := Lookup("std"); !ok || d != Std {
		t.Fatal("std not registered")
	}
	d := New("registry-test")
	if err := Register(d); err != nil {
		t.Fatal(err)
	}
	if err := Register(New("registry-test")); err == nil {
		t.Error("expected duplicate registration error")
	}
	if got, ok := Lookup("registry-test"); !ok || got != d {
		t.Error("lookup failed")
	}
}
