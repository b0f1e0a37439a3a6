package vi

import (
	"io"

	"github.com/dshills/vimotion/internal/textbuf"
)

// TextBuffer is the text-buffer collaborator contract this engine
// consumes. internal/textbuf provides the concrete implementation; the
// engine never reaches into storage directly.
type TextBuffer interface {
	// Geometry.
	Len() int
	LineCount() int
	LineWidth(y int) int

	// Cursor.
	Cursor() textbuf.Position
	SetCursor(pos textbuf.Position)

	// Byte/position conversion.
	PosToByte(pos textbuf.Position) int
	BytePos(off int) textbuf.Position
	ByteAt(pos textbuf.Position) textbuf.ByteSpan
	Slice(r textbuf.Range) string

	// Grapheme iteration and search scanning.
	GraphemesAt(pos textbuf.Position) *textbuf.Cursor
	LineGraphemesAt(y int) *textbuf.Cursor
	Reader(off int) io.RuneReader

	// Editing.
	InsertText(pos textbuf.Position, s string) textbuf.Position
	InsertNewline(pos textbuf.Position) textbuf.Position
	DeleteRange(r textbuf.Range)
	BeginEdit()
	EndEdit()
	Undo() bool
	Redo() bool

	// Style annotations keyed by integer tag.
	AddStyle(span textbuf.ByteSpan, tag int)
	RemoveStyle(span textbuf.ByteSpan, tag int)
	StylesIn(span textbuf.ByteSpan, tag int) []textbuf.ByteSpan

	// Viewport.
	ScrollOffset() int
	SetScrollOffset(row int)
	ViewportHeight() int

	// Clipboard returns the host clipboard, or nil when none is wired.
	Clipboard() textbuf.Clipboard
}
