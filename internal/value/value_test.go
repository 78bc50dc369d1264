package value

import (
	"strings"
	"testing"
)

func TestAtomTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    Atom
		want bool
	}{
		{"bool true", Bool(true), true},
		{"bool false", Bool(false), false},
		{"empty string", Str(""), false},
		{"non-empty string", Str("x"), true},
		{"zero int", Number{V: int64(0)}, false},
		{"nonzero int", Number{V: int64(1)}, true},
		{"zero float", Number{V: 0.0}, false},
	}
	for _, c := range cases {
		if got := c.v.Test(); got != c.want {
			t.Errorf("%s: Test() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestNumberPrintSpec(t *testing.T) {
	n := Number{V: 3.14159}
	var b strings.Builder
	if err := n.Print(&b, ".2f"); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "3.14" {
		t.Errorf("Print(.2f) = %q, want %q", got, "3.14")
	}
}

func TestMapGet(t *testing.T) {
	m := Map{"a": Str("1")}
	if v, ok := m.Get("a"); !ok || v.(Str) != "1" {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestMapEntriesSortedByKey(t *testing.T) {
	entries := MapEntries(map[string]Ptr{"b": Str("2"), "a": Str("1")})
	var keys []string
	_ = entries.Iterate(func(p Ptr) error {
		obj := p.(Object)
		k, _ := obj.Get("key")
		keys = append(keys, string(k.(Str)))
		return nil
	})
	if strings.Join(keys, ",") != "a,b" {
		t.Errorf("MapEntries order = %v, want [a b]", keys)
	}
}

func TestSliceAndSingleton(t *testing.T) {
	if !Empty().Empty() {
		t.Error("Empty() list should be empty")
	}
	s := Singleton(Str("x"))
	if s.Empty() {
		t.Error("Singleton should not be empty")
	}
	n := 0
	_ = s.Iterate(func(Ptr) error { n++; return nil })
	if n != 1 {
		t.Errorf("Singleton iterated %d times, want 1", n)
	}
}
