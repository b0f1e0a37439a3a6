package vi

// Viewport control. The buffer stores the scroll offset; the engine
// only decides where it should be.

func (e *Engine) viewRows(buf TextBuffer) int {
	h := buf.ViewportHeight()
	if h < 1 {
		h = 1
	}
	return h
}

// scrollToCursor scrolls the minimal distance that brings the cursor
// row into view.
func (e *Engine) scrollToCursor(buf TextBuffer) {
	y := buf.Cursor().Y
	top := buf.ScrollOffset()
	h := e.viewRows(buf)

	if y < top {
		buf.SetScrollOffset(y)
	} else if y >= top+h {
		buf.SetScrollOffset(y - h + 1)
	}
}

// clampCursorToView pulls the cursor inside the viewport after a pure
// scroll moved the window away from it.
func (e *Engine) clampCursorToView(buf TextBuffer) {
	c := buf.Cursor()
	top := buf.ScrollOffset()
	h := e.viewRows(buf)
	last := top + h - 1
	if max := buf.LineCount() - 1; last > max {
		last = max
	}

	if c.Y < top {
		buf.SetCursor(firstNonBlank(buf, top))
	} else if c.Y > last {
		buf.SetCursor(firstNonBlank(buf, last))
	}
}

// scrollUp scrolls the window up by mul rows.
func (e *Engine) scrollUp(buf TextBuffer, mul int) {
	top := buf.ScrollOffset() - mulOr1(mul)
	if top < 0 {
		top = 0
	}
	buf.SetScrollOffset(top)
	e.clampCursorToView(buf)
}

// scrollDown scrolls the window down by mul rows.
func (e *Engine) scrollDown(buf TextBuffer, mul int) {
	top := buf.ScrollOffset() + mulOr1(mul)
	if max := buf.LineCount() - 1; top > max {
		top = max
	}
	buf.SetScrollOffset(top)
	e.clampCursorToView(buf)
}

// pageStep is one page of movement, keeping the configured overlap
// rows from the previous screen.
func (e *Engine) pageStep(buf TextBuffer) int {
	step := e.viewRows(buf) - e.opts.ScrollOverlap
	if step < 1 {
		step = 1
	}
	return step
}

// scrollPageUp scrolls up by mul pages.
func (e *Engine) scrollPageUp(buf TextBuffer, mul int) {
	top := buf.ScrollOffset() - e.pageStep(buf)*mulOr1(mul)
	if top < 0 {
		top = 0
	}
	buf.SetScrollOffset(top)
	e.clampCursorToView(buf)
}

// scrollPageDown scrolls down by mul pages.
func (e *Engine) scrollPageDown(buf TextBuffer, mul int) {
	top := buf.ScrollOffset() + e.pageStep(buf)*mulOr1(mul)
	if max := buf.LineCount() - 1; top > max {
		top = max
	}
	buf.SetScrollOffset(top)
	e.clampCursorToView(buf)
}

// scrollCursorToTop puts the cursor row at the top of the window.
func (e *Engine) scrollCursorToTop(buf TextBuffer) {
	buf.SetScrollOffset(buf.Cursor().Y)
}

// scrollCursorToMiddle centers the cursor row.
func (e *Engine) scrollCursorToMiddle(buf TextBuffer) {
	top := buf.Cursor().Y - e.viewRows(buf)/2
	if top < 0 {
		top = 0
	}
	buf.SetScrollOffset(top)
}

// scrollCursorToBottom puts the cursor row at the bottom of the window.
func (e *Engine) scrollCursorToBottom(buf TextBuffer) {
	top := buf.Cursor().Y - e.viewRows(buf) + 1
	if top < 0 {
		top = 0
	}
	buf.SetScrollOffset(top)
}

// scrollToMatch brings the selected search match into view without
// moving the cursor, centering it when it is off screen. Used by the
// as-you-type search preview.
func (e *Engine) scrollToMatch(buf TextBuffer) {
	pos, ok := e.matches.current(buf)
	if !ok {
		return
	}
	top := buf.ScrollOffset()
	h := e.viewRows(buf)
	if pos.Y >= top && pos.Y < top+h {
		return
	}
	top = pos.Y - h/2
	if top < 0 {
		top = 0
	}
	buf.SetScrollOffset(top)
}
