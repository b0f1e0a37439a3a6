package textbuf

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// Clipboard is the optional host clipboard the buffer can be wired to.
type Clipboard interface {
	Get() (string, error)
	Set(string) error
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithClipboard wires a host clipboard into the buffer.
func WithClipboard(c Clipboard) Option {
	return func(b *Buffer) { b.clip = c }
}

// WithViewport sets the viewport height in rows.
func WithViewport(rows int) Option {
	return func(b *Buffer) { b.viewH = rows }
}

// Buffer is a grapheme-indexed text buffer with cursor, scroll viewport,
// snapshot undo and tag-keyed style annotations. It is not safe for
// concurrent use; the engine owns it for the duration of each call.
type Buffer struct {
	text       string
	lineStarts []int

	cursor Position
	scroll int
	viewH  int

	styles map[int][]ByteSpan

	undo      []snapshot
	redo      []snapshot
	editDepth int

	clip Clipboard
}

type snapshot struct {
	text   string
	cursor Position
	styles map[int][]ByteSpan
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	return FromString("", opts...)
}

// FromString creates a buffer with initial content.
// Line endings are normalized to LF.
func FromString(s string, opts ...Option) *Buffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b := &Buffer{
		text:   s,
		styles: make(map[int][]ByteSpan),
		viewH:  24,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reindex()
	return b
}

func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// String returns the full buffer text.
func (b *Buffer) String() string { return b.text }

// Len returns the total buffer length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// line returns the byte span of row y, excluding the trailing newline.
func (b *Buffer) line(y int) ByteSpan {
	if y < 0 {
		y = 0
	}
	if y >= len(b.lineStarts) {
		y = len(b.lineStarts) - 1
	}
	start := b.lineStarts[y]
	end := len(b.text)
	if y+1 < len(b.lineStarts) {
		end = b.lineStarts[y+1] - 1
	}
	return ByteSpan{Start: start, End: end}
}

// Line returns the text of row y without the trailing newline.
func (b *Buffer) Line(y int) string {
	s := b.line(y)
	return b.text[s.Start:s.End]
}

// LineWidth returns the width of row y in grapheme clusters.
func (b *Buffer) LineWidth(y int) int {
	return uniseg.GraphemeClusterCount(b.Line(y))
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position { return b.cursor }

// SetCursor moves the cursor, clamping it into the buffer.
func (b *Buffer) SetCursor(pos Position) {
	b.cursor = b.clamp(pos)
}

func (b *Buffer) clamp(pos Position) Position {
	if pos.Y < 0 {
		pos.Y = 0
	}
	if pos.Y >= b.LineCount() {
		pos.Y = b.LineCount() - 1
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if w := b.LineWidth(pos.Y); pos.X > w {
		pos.X = w
	}
	return pos
}

// PosToByte converts a position to the byte offset of its cluster start.
func (b *Buffer) PosToByte(pos Position) int {
	pos = b.clamp(pos)
	span := b.line(pos.Y)
	off := span.Start
	rest := b.text[span.Start:span.End]
	for i := 0; i < pos.X && len(rest) > 0; i++ {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		off += len(cluster)
		rest = tail
	}
	return off
}

// BytePos converts a byte offset to a position.
func (b *Buffer) BytePos(off int) Position {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	y := 0
	for i, start := range b.lineStarts {
		if start > off {
			break
		}
		y = i
	}
	span := b.line(y)
	if off > span.End {
		off = span.End
	}
	x := uniseg.GraphemeClusterCount(b.text[span.Start:off])
	return Position{X: x, Y: y}
}

// ByteAt returns the byte span of the grapheme cluster at pos.
// At the end of a row the span covers the newline, or is empty at
// the end of the buffer.
func (b *Buffer) ByteAt(pos Position) ByteSpan {
	off := b.PosToByte(pos)
	if off >= len(b.text) {
		return ByteSpan{Start: off, End: off}
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(b.text[off:], -1)
	return ByteSpan{Start: off, End: off + len(cluster)}
}

// Slice returns the text covered by the position range.
func (b *Buffer) Slice(r Range) string {
	start := b.PosToByte(r.Start)
	end := b.PosToByte(r.End)
	if end < start {
		start, end = end, start
	}
	return b.text[start:end]
}

// Reader returns a rune reader over the text starting at byte offset off.
// Search scans the buffer through this cursor.
func (b *Buffer) Reader(off int) io.RuneReader {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	return strings.NewReader(b.text[off:])
}

// GraphemesAt returns a grapheme cursor over the whole text, positioned
// at pos.
func (b *Buffer) GraphemesAt(pos Position) *Cursor {
	return NewCursor(b.text, b.PosToByte(pos), ByteSpan{Start: 0, End: len(b.text)})
}

// LineGraphemesAt returns a grapheme cursor limited to row y, positioned
// at the start of the row.
func (b *Buffer) LineGraphemesAt(y int) *Cursor {
	span := b.line(y)
	return NewCursor(b.text, span.Start, span)
}

// GraphemesIn returns a grapheme cursor limited to the byte span,
// positioned at its start.
func (b *Buffer) GraphemesIn(span ByteSpan) *Cursor {
	return NewCursor(b.text, span.Start, span)
}

// Clipboard returns the wired host clipboard, or nil.
func (b *Buffer) Clipboard() Clipboard { return b.clip }

// ScrollOffset returns the first visible row.
func (b *Buffer) ScrollOffset() int { return b.scroll }

// SetScrollOffset sets the first visible row, clamped into the buffer.
func (b *Buffer) SetScrollOffset(row int) {
	if row < 0 {
		row = 0
	}
	if max := b.LineCount() - 1; row > max {
		row = max
	}
	b.scroll = row
}

// ViewportHeight returns the viewport height in rows.
func (b *Buffer) ViewportHeight() int { return b.viewH }

// SetViewportHeight sets the viewport height in rows.
func (b *Buffer) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	b.viewH = rows
}
