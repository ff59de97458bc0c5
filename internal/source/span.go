// Package source provides byte-offset spans over source text and the
// offset-to-line/column mapping used for diagnostics.
package source

import "fmt"

// Span is a half-open [Start, End) byte range over the source text.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan creates a span. Start must not exceed End.
func NewSpan(start, end uint32) Span {
	if start > end {
		panic(fmt.Sprintf("invalid span %d..%d", start, end))
	}
	return Span{Start: start, End: end}
}

// At returns the empty span at the given offset.
func At(offset uint32) Span { return Span{Start: offset, End: offset} }

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return int(s.End - s.Start) }

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// MergeIf merges with other when other is present.
func (s Span) MergeIf(other *Span) Span {
	if other == nil {
		return s
	}
	return s.Merge(*other)
}

// ExtendUntil returns s with its end moved to the given offset.
func (s Span) ExtendUntil(end uint32) Span { return NewSpan(s.Start, end) }

// Precedes reports whether s ends at or before the start of other.
func (s Span) Precedes(other Span) bool { return s.End <= other.Start }

// Follows reports whether s starts at or after the end of other.
func (s Span) Follows(other Span) bool { return s.Start >= other.End }

// Overlaps reports whether the two spans share at least one byte.
// Empty spans cover no bytes and never overlap anything.
func (s Span) Overlaps(other Span) bool {
	return s.Len() > 0 && other.Len() > 0 &&
		!s.Precedes(other) && !s.Follows(other)
}

// Text returns the source slice the span covers.
func (s Span) Text(src string) string { return src[s.Start:s.End] }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start, s.End) }
