package textbuf

import (
	"testing"
)

func TestLineAccess(t *testing.T) {
	b := FromString("alpha beta\ngamma\n\ndelta")

	if got := b.LineCount(); got != 4 {
		t.Fatalf("LineCount() = %d, want 4", got)
	}

	tests := []struct {
		row   int
		text  string
		width int
	}{
		{0, "alpha beta", 10},
		{1, "gamma", 5},
		{2, "", 0},
		{3, "delta", 5},
	}
	for _, tt := range tests {
		if got := b.Line(tt.row); got != tt.text {
			t.Errorf("Line(%d) = %q, want %q", tt.row, got, tt.text)
		}
		if got := b.LineWidth(tt.row); got != tt.width {
			t.Errorf("LineWidth(%d) = %d, want %d", tt.row, got, tt.width)
		}
	}
}

func TestByteConversionRoundTrip(t *testing.T) {
	b := FromString("one two\nthree\nfour")

	tests := []struct {
		pos Position
		off int
	}{
		{Position{0, 0}, 0},
		{Position{4, 0}, 4},
		{Position{7, 0}, 7},
		{Position{0, 1}, 8},
		{Position{5, 1}, 13},
		{Position{4, 2}, 18},
	}
	for _, tt := range tests {
		if got := b.PosToByte(tt.pos); got != tt.off {
			t.Errorf("PosToByte(%v) = %d, want %d", tt.pos, got, tt.off)
		}
		if got := b.BytePos(tt.off); got != tt.pos {
			t.Errorf("BytePos(%d) = %v, want %v", tt.off, got, tt.pos)
		}
	}
}

func TestGraphemeWidth(t *testing.T) {
	// é as e + combining accent, plus a flag emoji: 2 clusters
	b := FromString("é\U0001F1E9\U0001F1EA x")
	if got := b.LineWidth(0); got != 4 {
		t.Fatalf("LineWidth = %d, want 4", got)
	}
	if got := b.BytePos(b.PosToByte(Position{2, 0})); got != (Position{2, 0}) {
		t.Errorf("round trip through cluster = %v", got)
	}
}

func TestCursorClamping(t *testing.T) {
	b := FromString("ab\ncdef")
	b.SetCursor(Position{X: 99, Y: 0})
	if got := b.Cursor(); got != (Position{2, 0}) {
		t.Errorf("cursor = %v, want (2:0)", got)
	}
	b.SetCursor(Position{X: 1, Y: 99})
	if got := b.Cursor(); got != (Position{1, 1}) {
		t.Errorf("cursor = %v, want (1:1)", got)
	}
}

func TestInsertDelete(t *testing.T) {
	b := FromString("hello world")
	end := b.InsertText(Position{5, 0}, ", big")
	if got := b.String(); got != "hello, big world" {
		t.Fatalf("after insert: %q", got)
	}
	if end != (Position{10, 0}) {
		t.Errorf("insert end = %v, want (10:0)", end)
	}

	b.DeleteRange(NewRange(Position{5, 0}, Position{10, 0}))
	if got := b.String(); got != "hello world" {
		t.Fatalf("after delete: %q", got)
	}
	if got := b.Cursor(); got != (Position{5, 0}) {
		t.Errorf("cursor after delete = %v, want (5:0)", got)
	}
}

func TestInsertNewline(t *testing.T) {
	b := FromString("ab")
	b.InsertNewline(Position{1, 0})
	if got := b.String(); got != "a\nb" {
		t.Fatalf("text = %q", got)
	}
	if got := b.Cursor(); got != (Position{0, 1}) {
		t.Errorf("cursor = %v, want (0:1)", got)
	}
}

func TestUndoRedoGroups(t *testing.T) {
	b := FromString("abc")

	b.BeginEdit()
	b.InsertText(Position{3, 0}, "d")
	b.InsertText(Position{4, 0}, "e")
	b.EndEdit()

	if got := b.String(); got != "abcde" {
		t.Fatalf("after edits: %q", got)
	}
	if !b.Undo() {
		t.Fatal("Undo returned false")
	}
	if got := b.String(); got != "abc" {
		t.Fatalf("after undo: %q (group should revert atomically)", got)
	}
	if !b.Redo() {
		t.Fatal("Redo returned false")
	}
	if got := b.String(); got != "abcde" {
		t.Fatalf("after redo: %q", got)
	}
	if b.Redo() {
		t.Error("Redo on empty stack should return false")
	}
}

func TestStyles(t *testing.T) {
	b := FromString("0123456789")
	b.AddStyle(ByteSpan{1, 3}, 999)
	b.AddStyle(ByteSpan{5, 7}, 999)
	b.AddStyle(ByteSpan{2, 4}, 997)

	got := b.StylesIn(ByteSpan{0, 10}, 999)
	if len(got) != 2 || got[0] != (ByteSpan{1, 3}) || got[1] != (ByteSpan{5, 7}) {
		t.Fatalf("StylesIn(999) = %v", got)
	}
	if got := b.StylesIn(ByteSpan{6, 8}, 999); len(got) != 1 || got[0] != (ByteSpan{5, 7}) {
		t.Fatalf("StylesIn overlap = %v", got)
	}

	b.RemoveStyle(ByteSpan{1, 3}, 999)
	if got := b.StylesIn(ByteSpan{0, 10}, 999); len(got) != 1 {
		t.Fatalf("after remove: %v", got)
	}
}

func TestStylesShiftOnEdit(t *testing.T) {
	b := FromString("0123456789")
	b.AddStyle(ByteSpan{6, 8}, 998)
	b.InsertText(Position{0, 0}, "xx")
	if got := b.StylesIn(ByteSpan{0, 20}, 998); len(got) != 1 || got[0] != (ByteSpan{8, 10}) {
		t.Fatalf("after insert: %v", got)
	}
	b.DeleteRange(NewRange(Position{0, 0}, Position{2, 0}))
	if got := b.StylesIn(ByteSpan{0, 20}, 998); len(got) != 1 || got[0] != (ByteSpan{6, 8}) {
		t.Fatalf("after delete: %v", got)
	}
}

func TestGraphemeCursorBidirectional(t *testing.T) {
	b := FromString("ab\ncd")
	it := b.GraphemesAt(Position{0, 1})

	g, ok := it.Prev()
	if !ok || g.Str != "\n" {
		t.Fatalf("Prev = %q, %v; want newline", g.Str, ok)
	}
	g, ok = it.Prev()
	if !ok || g.Str != "b" {
		t.Fatalf("Prev = %q; want b", g.Str)
	}
	g, ok = it.Next()
	if !ok || g.Str != "b" {
		t.Fatalf("Next = %q; want b", g.Str)
	}

	it = b.LineGraphemesAt(1)
	var line string
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		line += g.Str
	}
	if line != "cd" {
		t.Errorf("line graphemes = %q, want cd", line)
	}
}

func TestScrollViewport(t *testing.T) {
	b := FromString("a\nb\nc\nd", WithViewport(2))
	if b.ViewportHeight() != 2 {
		t.Fatalf("viewport = %d", b.ViewportHeight())
	}
	b.SetScrollOffset(2)
	if b.ScrollOffset() != 2 {
		t.Fatalf("scroll = %d", b.ScrollOffset())
	}
	b.SetScrollOffset(99)
	if b.ScrollOffset() != 3 {
		t.Errorf("scroll clamp = %d, want 3", b.ScrollOffset())
	}
}
