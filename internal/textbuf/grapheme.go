package textbuf

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Grapheme is one grapheme cluster together with its byte span.
type Grapheme struct {
	Str  string
	Span ByteSpan
}

// IsWhitespace returns true for space and tab clusters.
func (g Grapheme) IsWhitespace() bool {
	return g.Str == " " || g.Str == "\t"
}

// IsLinebreak returns true for the newline cluster.
func (g Grapheme) IsLinebreak() bool {
	return g.Str == "\n"
}

// Cursor iterates grapheme clusters of a text window in both directions.
// The cursor sits on cluster boundaries; Next consumes the cluster after
// the cursor, Prev the cluster before it.
type Cursor struct {
	text  string
	off   int
	limit ByteSpan
}

// NewCursor creates a cursor over text[limit.Start:limit.End] positioned
// at byte offset off. Offsets are clamped into the window.
func NewCursor(text string, off int, limit ByteSpan) *Cursor {
	if limit.End > len(text) {
		limit.End = len(text)
	}
	if limit.Start < 0 {
		limit.Start = 0
	}
	if off < limit.Start {
		off = limit.Start
	}
	if off > limit.End {
		off = limit.End
	}
	return &Cursor{text: text, off: off, limit: limit}
}

// Offset returns the byte offset of the cursor boundary.
func (c *Cursor) Offset() int { return c.off }

// Next returns the grapheme cluster after the cursor and advances past it.
func (c *Cursor) Next() (Grapheme, bool) {
	if c.off >= c.limit.End {
		return Grapheme{}, false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(c.text[c.off:c.limit.End], -1)
	g := Grapheme{Str: cluster, Span: ByteSpan{Start: c.off, End: c.off + len(cluster)}}
	c.off = g.Span.End
	return g, true
}

// Peek returns the grapheme cluster after the cursor without advancing.
func (c *Cursor) Peek() (Grapheme, bool) {
	save := c.off
	g, ok := c.Next()
	c.off = save
	return g, ok
}

// Prev returns the grapheme cluster before the cursor and retreats before it.
func (c *Cursor) Prev() (Grapheme, bool) {
	if c.off <= c.limit.Start {
		return Grapheme{}, false
	}
	start := c.prevBoundary()
	g := Grapheme{
		Str:  c.text[start:c.off],
		Span: ByteSpan{Start: start, End: c.off},
	}
	c.off = start
	return g, true
}

// prevBoundary finds the start of the cluster ending at c.off.
// Clusters never span a newline, so scanning forward from the nearest
// line start (or window start) is sufficient.
func (c *Cursor) prevBoundary() int {
	if c.text[c.off-1] == '\n' {
		return c.off - 1
	}
	scan := strings.LastIndexByte(c.text[c.limit.Start:c.off], '\n')
	if scan < 0 {
		scan = c.limit.Start
	} else {
		scan = c.limit.Start + scan + 1
	}
	rest := c.text[scan:c.off]
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		if scan+len(cluster) >= c.off {
			break
		}
		scan += len(cluster)
		rest = tail
	}
	return scan
}
