package source

import "testing"

func TestSpanMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", NewSpan(0, 3), NewSpan(7, 9), NewSpan(0, 9)},
		{"reversed order", NewSpan(7, 9), NewSpan(0, 3), NewSpan(0, 9)},
		{"nested", NewSpan(0, 10), NewSpan(2, 4), NewSpan(0, 10)},
		{"identical", NewSpan(1, 5), NewSpan(1, 5), NewSpan(1, 5)},
		{"empty at offset", At(4), NewSpan(2, 3), NewSpan(2, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Merge(tt.b); got != tt.want {
				t.Errorf("Merge(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpanRelations(t *testing.T) {
	a := NewSpan(0, 4)
	b := NewSpan(4, 8)
	c := NewSpan(2, 6)

	if !a.Precedes(b) {
		t.Errorf("%v should precede %v", a, b)
	}
	if !b.Follows(a) {
		t.Errorf("%v should follow %v", b, a)
	}
	if a.Overlaps(b) {
		t.Errorf("touching spans %v and %v must not overlap", a, b)
	}
	if !a.Overlaps(c) || !c.Overlaps(a) {
		t.Errorf("%v and %v should overlap", a, c)
	}
	if !a.Overlaps(a) {
		t.Errorf("a non-empty span shares its bytes with itself")
	}
	if empty := At(2); empty.Overlaps(empty) || empty.Overlaps(a) {
		t.Errorf("empty spans cover no bytes and must not overlap")
	}
}

func TestSpanText(t *testing.T) {
	src := "let x = 5"
	if got := NewSpan(4, 5).Text(src); got != "x" {
		t.Errorf("Text = %q, want %q", got, "x")
	}
	if got := At(4).Text(src); got != "" {
		t.Errorf("empty span Text = %q, want empty", got)
	}
	if got := NewSpan(0, 3).Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}

func TestSpanMergeIf(t *testing.T) {
	s := NewSpan(2, 4)
	if got := s.MergeIf(nil); got != s {
		t.Errorf("MergeIf(nil) = %v, want %v", got, s)
	}
	other := NewSpan(6, 8)
	if got := s.MergeIf(&other); got != NewSpan(2, 8) {
		t.Errorf("MergeIf = %v, want 2..8", got)
	}
}

func TestSpanExtendUntil(t *testing.T) {
	s := NewSpan(2, 4).ExtendUntil(9)
	if s != NewSpan(2, 9) {
		t.Errorf("ExtendUntil = %v, want 2..9", s)
	}
}

func TestFilePosition(t *testing.T) {
	f := NewFile("test.quill", "ab\ncde\n\nf")

	tests := []struct {
		offset       uint32
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1}, // empty line
		{8, 4, 1},
	}
	for _, tt := range tests {
		line, col := f.Position(tt.offset)
		if line != tt.line || col != tt.column {
			t.Errorf("Position(%d) = %d:%d, want %d:%d",
				tt.offset, line, col, tt.line, tt.column)
		}
	}
}

func TestFileLine(t *testing.T) {
	f := NewFile("test.quill", "ab\ncde\n\nf")

	tests := []struct {
		num  int
		want string
	}{
		{1, "ab"},
		{2, "cde"},
		{3, ""},
		{4, "f"},
		{0, ""},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.num); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}
