package textbuf

import "fmt"

// Position is a (column, row) position in the buffer.
// X counts grapheme clusters from the start of the row, Y counts rows.
// Both are 0-indexed. X == LineWidth(Y) addresses the end of the row.
type Position struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.X, p.Y)
}

// Compare returns -1 if p < other, 0 if equal, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Y != other.Y {
		if p.Y < other.Y {
			return -1
		}
		return 1
	}
	if p.X != other.X {
		if p.X < other.X {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool { return p.Compare(other) < 0 }

// After returns true if p comes after other.
func (p Position) After(other Position) bool { return p.Compare(other) > 0 }

// Range is a half-open position range [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a range, swapping the ends if they arrive reversed.
func NewRange(a, b Position) Range {
	if a.After(b) {
		return Range{Start: b, End: a}
	}
	return Range{Start: a, End: b}
}

// IsEmpty returns true if the range covers nothing.
func (r Range) IsEmpty() bool { return r.Start.Compare(r.End) == 0 }

// Contains returns true if pos lies inside the range.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}

// ByteSpan is a half-open byte range [Start, End) into the buffer text.
type ByteSpan struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s ByteSpan) Len() int { return s.End - s.Start }

// IsEmpty returns true if the span covers nothing.
func (s ByteSpan) IsEmpty() bool { return s.End <= s.Start }

// Overlaps returns true if the spans intersect.
func (s ByteSpan) Overlaps(other ByteSpan) bool {
	return s.Start < other.End && other.Start < s.End
}
