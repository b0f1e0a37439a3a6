package vi

import (
	"strings"

	"github.com/dshills/vimotion/internal/textbuf"
)

// Change execution. Every operation that edits text invalidates the
// byte offsets held by the highlight sets, so each one flips them to
// SyncFromBuffer before returning.

func (e *Engine) syncAfterEdit() {
	e.finds.Sync = SyncFromBuffer
	e.matches.Sync = SyncFromBuffer
}

// insertRune applies one keystroke of insert mode. Backspace and
// delete are part of the insert stream so that replaying it
// reproduces the same text.
func insertRune(buf TextBuffer, r rune) {
	switch r {
	case '\n':
		buf.InsertNewline(buf.Cursor())
	case tokBS:
		c := buf.Cursor()
		it := buf.GraphemesAt(c)
		if _, ok := it.Prev(); ok {
			buf.DeleteRange(textbuf.Range{Start: buf.BytePos(it.Offset()), End: c})
		}
	case tokDEL:
		c := buf.Cursor()
		it := buf.GraphemesAt(c)
		if _, ok := it.Next(); ok {
			buf.DeleteRange(textbuf.Range{Start: c, End: buf.BytePos(it.Offset())})
		}
	default:
		buf.InsertText(buf.Cursor(), string(r))
	}
}

// insertString replays a recorded insert stream mul times at the
// cursor.
func (e *Engine) insertString(buf TextBuffer, s string, mul int) {
	if mul > 0 {
		e.syncAfterEdit()
	}
	for ; mul > 0; mul-- {
		buf.BeginEdit()
		for _, r := range s {
			insertRune(buf, r)
		}
		buf.EndEdit()
	}
}

// appendString replays an insert stream after the cursor position.
func (e *Engine) appendString(buf TextBuffer, s string, mul int) {
	if mul > 0 {
		e.syncAfterEdit()
	}
	for ; mul > 0; mul-- {
		buf.BeginEdit()
		buf.SetCursor(moveRight(buf, 1))
		for _, r := range s {
			insertRune(buf, r)
		}
		buf.EndEdit()
	}
}

// appendLineString opens a line below the cursor row and replays the
// insert stream there.
func (e *Engine) appendLineString(buf TextBuffer, s string, mul int) {
	if mul > 0 {
		e.syncAfterEdit()
	}
	for ; mul > 0; mul-- {
		c := buf.Cursor()
		buf.BeginEdit()
		buf.SetCursor(textbuf.Position{X: buf.LineWidth(c.Y), Y: c.Y})
		buf.InsertNewline(buf.Cursor())
		for _, r := range s {
			insertRune(buf, r)
		}
		buf.EndEdit()
	}
}

// prependLineString opens a line above the cursor row and replays the
// insert stream there.
func (e *Engine) prependLineString(buf TextBuffer, s string, mul int) {
	if mul > 0 {
		e.syncAfterEdit()
	}
	for ; mul > 0; mul-- {
		c := buf.Cursor()
		buf.BeginEdit()
		buf.InsertNewline(textbuf.Position{X: 0, Y: c.Y})
		buf.SetCursor(textbuf.Position{X: 0, Y: c.Y})
		for _, r := range s {
			insertRune(buf, r)
		}
		buf.EndEdit()
	}
}

// deleteMotionRange resolves the text range an operator consumes.
// dw deletes through the end of the word rather than to the start of
// the next one, so leading whitespace of the following word survives.
func (e *Engine) deleteMotionRange(buf TextBuffer, mul int, m Motion) (textbuf.Range, bool, error) {
	switch m.Kind {
	case MotionObjectBracket, MotionObjectParen, MotionObjectBrace,
		MotionObjectAngle, MotionObjectTag, MotionObjectQuoted:
		rng, ok := e.objectRange(buf, m)
		return rng, ok, nil
	}

	start, ok := e.motionStartPos(buf, m)
	if !ok {
		return textbuf.Range{}, false, nil
	}

	var end textbuf.Position
	switch m.Kind {
	case MotionNextWordStart:
		end = nextWordEnd(buf, mulOr1(mul))
	default:
		var err error
		end, ok, err = e.motionEndPos(buf, m, mul)
		if err != nil || !ok {
			return textbuf.Range{}, false, err
		}
	}
	return startEndToRange(start, end), true, nil
}

// changeMotionRange is deleteMotionRange with the change-operator
// variants: cc keeps the line break, cw behaves like ce.
func (e *Engine) changeMotionRange(buf TextBuffer, mul int, m Motion) (textbuf.Range, bool, error) {
	if m.Kind == MotionFullLine {
		start, _ := e.motionStartPos(buf, m)
		return startEndToRange(start, endOfLine(buf, mulOr1(mul))), true, nil
	}
	return e.deleteMotionRange(buf, mul, m)
}

// deleteText removes the motion's range, saving it to the yank
// register and recording a change-history entry at the cursor. An
// unresolvable or empty range is a no-op: no register, no history.
func (e *Engine) deleteText(buf TextBuffer, mul int, m Motion) error {
	rng, ok, err := e.deleteMotionRange(buf, mul, m)
	if err != nil || !ok || rng.Start == rng.End {
		return err
	}
	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
	e.syncAfterEdit()
	e.yank = e.yank[:0]
	e.yank = append(e.yank, buf.Slice(rng))
	buf.DeleteRange(rng)
	return nil
}

// changeText removes the motion's range without yanking and reports
// whether anything was deleted; the caller enters insert mode (or
// replays the memoized insert stream) only when it was.
func (e *Engine) changeText(buf TextBuffer, mul int, m Motion) (bool, error) {
	rng, ok, err := e.changeMotionRange(buf, mul, m)
	if err != nil || !ok || rng.Start == rng.End {
		return false, err
	}
	e.syncAfterEdit()
	buf.DeleteRange(rng)
	return true, nil
}

// yankText copies the motion's range into the yank register.
func (e *Engine) yankText(buf TextBuffer, mul int, m Motion) error {
	rng, ok, err := e.deleteMotionRange(buf, mul, m)
	if err != nil || !ok || rng.Start == rng.End {
		return err
	}
	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
	e.yank = e.yank[:0]
	e.yank = append(e.yank, buf.Slice(rng))
	return nil
}

// copyClipboardText copies the motion's range to the host clipboard.
func (e *Engine) copyClipboardText(buf TextBuffer, mul int, m Motion) error {
	rng, ok, err := e.deleteMotionRange(buf, mul, m)
	if err != nil || !ok || rng.Start == rng.End {
		return err
	}
	if clip := buf.Clipboard(); clip != nil {
		_ = clip.Set(buf.Slice(rng))
	}
	return nil
}

// paste inserts yanked text. Multiple strings are a block yank and go
// line by line below each other; a string containing a newline is
// linewise and opens above or below the cursor row; anything else is
// plain character text at the cursor.
func (e *Engine) paste(buf TextBuffer, text []string, mul int, before bool) {
	if len(text) == 0 {
		return
	}
	e.syncAfterEdit()

	switch {
	case len(text) > 1:
		cursor := buf.Cursor()
		lines := buf.LineCount()

		e.marks.Set(Mark{Kind: MarkChangeStart}, cursor)

		buf.BeginEdit()
		for i, part := range text {
			y := cursor.Y + i
			if y >= lines {
				break
			}
			buf.SetCursor(textbuf.Position{X: cursor.X, Y: y})
			for n := 0; n < mul; n++ {
				buf.InsertText(buf.Cursor(), part)
			}
		}
		buf.SetCursor(cursor)
		buf.EndEdit()

		e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())

	case strings.Contains(text[0], "\n"):
		nl := strings.HasSuffix(text[0], "\n")

		var start textbuf.Position
		if before {
			start = startOfLine(buf)
		} else {
			start = startOfNextLine(buf, 1)
		}

		e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())

		buf.BeginEdit()
		buf.SetCursor(start)
		for n := 0; n < mul; n++ {
			buf.InsertText(buf.Cursor(), text[0])
			if !nl {
				buf.InsertNewline(buf.Cursor())
			}
		}
		buf.SetCursor(start)
		buf.EndEdit()

		e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())

	default:
		e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
		for n := 0; n < mul; n++ {
			buf.InsertText(buf.Cursor(), text[0])
		}
		e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
	}
}

// pasteText pastes from the yank register.
func (e *Engine) pasteText(buf TextBuffer, mul int, before bool) {
	e.paste(buf, e.yank, mul, before)
}

// pasteClipboardText pastes from the host clipboard.
func (e *Engine) pasteClipboardText(buf TextBuffer, mul int, before bool) {
	clip := buf.Clipboard()
	if clip == nil {
		return
	}
	s, err := clip.Get()
	if err != nil {
		return
	}
	e.paste(buf, []string{s}, mul, before)
}

// replaceText overwrites mul characters at the cursor with cc.
func (e *Engine) replaceText(buf TextBuffer, mul int, cc rune) error {
	mul = mulOr1(mul)

	rng, ok, err := e.changeMotionRange(buf, mul, Motion{Kind: MotionRight})
	if err != nil || !ok || rng.Start == rng.End {
		return err
	}
	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
	e.syncAfterEdit()
	buf.BeginEdit()
	buf.DeleteRange(rng)
	buf.InsertText(buf.Cursor(), strings.Repeat(string(cc), mul))
	buf.EndEdit()
	return nil
}

// joinLines splices mul line breaks below the cursor, replacing each
// break and the following indentation with a single space.
func (e *Engine) joinLines(buf TextBuffer, mul int) {
	e.syncAfterEdit()

	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())

	for ; mul > 0; mul-- {
		rng := lineBreakAndLeadingSpace(buf)
		if rng.Start == rng.End {
			continue
		}
		buf.BeginEdit()
		buf.DeleteRange(rng)
		buf.InsertText(buf.Cursor(), " ")
		buf.EndEdit()
	}
}

// undoText undoes up to mul edits.
func (e *Engine) undoText(buf TextBuffer, mul int) {
	e.syncAfterEdit()
	for ; mul > 0; mul-- {
		if !buf.Undo() {
			break
		}
	}
}

// redoText redoes up to mul edits.
func (e *Engine) redoText(buf TextBuffer, mul int) {
	e.syncAfterEdit()
	for ; mul > 0; mul-- {
		if !buf.Redo() {
			break
		}
	}
}

// indentLines shifts mul lines starting at the cursor row one tab
// right.
func (e *Engine) indentLines(buf TextBuffer, mul int) {
	mul = mulOr1(mul)
	c := buf.Cursor()

	e.marks.Set(Mark{Kind: MarkChangeStart}, c)
	e.syncAfterEdit()

	buf.BeginEdit()
	for i := 0; i < mul && c.Y+i < buf.LineCount(); i++ {
		buf.InsertText(textbuf.Position{X: 0, Y: c.Y + i}, "\t")
	}
	buf.SetCursor(firstNonBlank(buf, c.Y))
	buf.EndEdit()

	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
}

// dedentLines shifts mul lines starting at the cursor row one tab
// left, eating a leading tab or up to four leading spaces.
func (e *Engine) dedentLines(buf TextBuffer, mul int) {
	mul = mulOr1(mul)
	c := buf.Cursor()

	e.marks.Set(Mark{Kind: MarkChangeStart}, c)
	e.syncAfterEdit()

	buf.BeginEdit()
	for i := 0; i < mul && c.Y+i < buf.LineCount(); i++ {
		y := c.Y + i
		it := buf.LineGraphemesAt(y)
		width := 0
		for width < 4 {
			g, ok := it.Peek()
			if !ok {
				break
			}
			if g.Str == "\t" {
				if width == 0 {
					it.Next()
					width = 4
				}
				break
			}
			if g.Str != " " {
				break
			}
			it.Next()
			width++
		}
		start := textbuf.Position{X: 0, Y: y}
		end := buf.BytePos(it.Offset())
		if start != end {
			buf.DeleteRange(textbuf.Range{Start: start, End: end})
		}
	}
	buf.SetCursor(firstNonBlank(buf, c.Y))
	buf.EndEdit()

	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
}
