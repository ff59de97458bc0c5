package intern

import "testing"

func TestInternDeduplicates(t *testing.T) {
	in := New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	if a == b {
		t.Errorf("distinct strings got the same symbol %d", a)
	}
	if a != c {
		t.Errorf("same string got distinct symbols %d and %d", a, c)
	}
	if in.Len() != 2 {
		t.Errorf("Len = %d, want 2", in.Len())
	}
}

func TestResolve(t *testing.T) {
	in := New()
	sym := in.Intern("hello")
	if got := in.Resolve(sym); got != "hello" {
		t.Errorf("Resolve = %q, want %q", got, "hello")
	}
	if got := in.Resolve(Symbol(42)); got != "" {
		t.Errorf("Resolve of unknown symbol = %q, want empty", got)
	}
}

func TestEmptyStringIsInternable(t *testing.T) {
	in := New()
	sym := in.Intern("")
	if got := in.Resolve(sym); got != "" {
		t.Errorf("Resolve = %q, want empty", got)
	}
	if in.Intern("") != sym {
		t.Errorf("empty string interned twice with distinct symbols")
	}
}
