package vi

import (
	"regexp"

	"github.com/dshills/vimotion/internal/textbuf"
)

// startEndToRange orders two positions into a range.
func startEndToRange(a, b textbuf.Position) textbuf.Range {
	return textbuf.NewRange(a, b)
}

// motionStartPos is where an operator's range begins. Plain motions
// start at the cursor; text objects and the doubled-operator line form
// start at the object boundary before it.
func (e *Engine) motionStartPos(buf TextBuffer, m Motion) (textbuf.Position, bool) {
	switch m.Kind {
	case MotionFullLine:
		return startOfLine(buf), true
	case MotionObjectWord:
		return objectWordStart(buf, m.Around, false), true
	case MotionObjectBigWord:
		return objectWordStart(buf, m.Around, true), true
	case MotionObjectSentence:
		return prevSentence(buf, 1, m.Around), true
	case MotionObjectParagraph:
		return prevParagraph(buf, 1), true
	case MotionVisual:
		return e.marks.Get(Mark{Kind: MarkVisualAnchor})
	case MotionObjectBracket, MotionObjectParen, MotionObjectBrace,
		MotionObjectAngle, MotionObjectTag, MotionObjectQuoted:
		// Resolved as a whole range, see objectRange.
		return textbuf.Position{}, false
	default:
		return buf.Cursor(), true
	}
}

// objectRange resolves the delimited text objects that have no
// meaningful start-then-end decomposition.
func (e *Engine) objectRange(buf TextBuffer, m Motion) (textbuf.Range, bool) {
	switch m.Kind {
	case MotionObjectBracket:
		return delimitedObject(buf, "[", "]", m.Around)
	case MotionObjectParen:
		return delimitedObject(buf, "(", ")", m.Around)
	case MotionObjectBrace:
		return delimitedObject(buf, "{", "}", m.Around)
	case MotionObjectAngle:
		return delimitedObject(buf, "<", ">", m.Around)
	case MotionObjectQuoted:
		return quotedObject(buf, m.Char, m.Around)
	case MotionObjectTag:
		// Markup tag objects need a tag parser; treated as unresolvable
		// so the operator becomes a no-op.
		return textbuf.Range{}, false
	}
	return textbuf.Range{}, false
}

// motionEndPos resolves the target of a motion. ok is false when the
// motion cannot resolve (no match, unset mark); the only error source
// is an invalid search pattern.
func (e *Engine) motionEndPos(buf TextBuffer, m Motion, mul int) (textbuf.Position, bool, error) {
	switch m.Kind {
	case MotionVisual:
		pos, ok := e.marks.Get(Mark{Kind: MarkVisualLead})
		return pos, ok, nil

	// The character motions take the count as-is: a zero count is a
	// deliberate no-move (the _ motion on its own line).
	case MotionLeft:
		return moveLeft(buf, mul), true, nil
	case MotionRight:
		return moveRight(buf, mul), true, nil
	case MotionUp:
		return moveUp(buf, mul), true, nil
	case MotionDown:
		return moveDown(buf, mul), true, nil

	case MotionHalfPageUp:
		return moveUp(buf, e.halfPage(buf, mul)), true, nil
	case MotionHalfPageDown:
		return moveDown(buf, e.halfPage(buf, mul)), true, nil

	case MotionToTopOfScreen:
		return e.screenPos(buf, screenTop, mul), true, nil
	case MotionToMiddleOfScreen:
		return e.screenPos(buf, screenMiddle, mul), true, nil
	case MotionToBottomOfScreen:
		return e.screenPos(buf, screenBottom, mul), true, nil

	case MotionToCol:
		return colPos(buf, mul), true, nil
	case MotionToLine:
		return linePos(buf, mul), true, nil
	case MotionToLinePercent:
		return linePercentPos(buf, mul), true, nil
	case MotionToMatchingBrace:
		pos, ok := matchingBrace(buf)
		return pos, ok, nil
	case MotionToMark:
		return e.markPos(buf, m.Mark, m.LineWise)

	case MotionStartOfFile:
		return startOfFile(), true, nil
	case MotionEndOfFile:
		return endOfFile(buf), true, nil

	case MotionNextWordStart:
		return nextWordStart(buf, mulOr1(mul)), true, nil
	case MotionPrevWordStart:
		return prevWordStart(buf, mulOr1(mul)), true, nil
	case MotionNextWordEnd:
		return nextWordEnd(buf, mulOr1(mul)), true, nil
	case MotionPrevWordEnd:
		return prevWordEnd(buf, mulOr1(mul)), true, nil
	case MotionNextBigWordStart:
		return nextBigWordStart(buf, mulOr1(mul)), true, nil
	case MotionPrevBigWordStart:
		return prevBigWordStart(buf, mulOr1(mul)), true, nil
	case MotionNextBigWordEnd:
		return nextBigWordEnd(buf, mulOr1(mul)), true, nil
	case MotionPrevBigWordEnd:
		return prevBigWordEnd(buf, mulOr1(mul)), true, nil

	case MotionStartOfLine:
		return startOfLine(buf), true, nil
	case MotionEndOfLine:
		return endOfLine(buf, mulOr1(mul)), true, nil
	case MotionStartOfLineText:
		return startOfLineText(buf), true, nil
	case MotionEndOfLineText:
		return endOfLineText(buf, mulOr1(mul)), true, nil

	case MotionPrevSentence:
		return prevSentence(buf, mulOr1(mul), true), true, nil
	case MotionNextSentence:
		return nextSentence(buf, mulOr1(mul), false), true, nil
	case MotionPrevParagraph:
		return prevParagraph(buf, mulOr1(mul)), true, nil
	case MotionNextParagraph:
		return nextParagraph(buf, mulOr1(mul), true), true, nil

	case MotionFullLine:
		return startOfNextLine(buf, mulOr1(mul)), true, nil

	case MotionFindForward:
		return e.findPos(buf, m.Char, Forward, false, mul)
	case MotionFindBack:
		return e.findPos(buf, m.Char, Backward, false, mul)
	case MotionFindTillForward:
		return e.findPos(buf, m.Char, Forward, true, mul)
	case MotionFindTillBack:
		return e.findPos(buf, m.Char, Backward, true, mul)
	case MotionFindRepeatNext:
		return e.findRepeatPos(buf, Forward, mul)
	case MotionFindRepeatPrev:
		return e.findRepeatPos(buf, Backward, mul)

	case MotionSearchWordForward:
		return e.searchWordPos(buf, Forward, mul)
	case MotionSearchWordBackward:
		return e.searchWordPos(buf, Backward, mul)
	case MotionSearchForward:
		return e.searchPos(buf, m.Term, Forward, false, mul)
	case MotionSearchBack:
		return e.searchPos(buf, m.Term, Backward, false, mul)
	case MotionSearchRepeatNext:
		return e.searchRepeatPos(buf, Forward, mul)
	case MotionSearchRepeatPrev:
		return e.searchRepeatPos(buf, Backward, mul)

	case MotionObjectWord:
		return objectWordEnd(buf, mulOr1(mul), m.Around, false), true, nil
	case MotionObjectBigWord:
		return objectWordEnd(buf, mulOr1(mul), m.Around, true), true, nil
	case MotionObjectSentence:
		return nextSentence(buf, mulOr1(mul), m.Around), true, nil
	case MotionObjectParagraph:
		return nextParagraph(buf, mulOr1(mul), m.Around), true, nil
	}

	return textbuf.Position{}, false, nil
}

func mulOr1(mul int) int {
	if mul < 1 {
		return 1
	}
	return mul
}

// moveCursor resolves the motion and moves the cursor there, recording
// a jump mark at the old position for jump-classified motions. It
// reports whether the cursor actually moved.
func (e *Engine) moveCursor(buf TextBuffer, m Motion, mul int) (bool, error) {
	pos, ok, err := e.motionEndPos(buf, m, mul)
	if err != nil || !ok {
		return false, err
	}
	old := buf.Cursor()
	if pos == old {
		return false, nil
	}
	if m.IsJump() {
		e.marks.Set(Mark{Kind: MarkJump}, old)
	}
	buf.SetCursor(pos)
	e.scrollToCursor(buf)
	return true, nil
}

// markPos resolves a mark motion. The linewise ' form lands on the
// first non-blank of the mark's row; it only applies to named marks.
func (e *Engine) markPos(buf TextBuffer, mark Mark, lineWise bool) (textbuf.Position, bool, error) {
	pos, ok := e.marks.Get(mark)
	if !ok {
		return textbuf.Position{}, false, nil
	}
	if lineWise && mark.Kind == MarkNamed {
		pos = firstNonBlank(buf, pos.Y)
	}
	return pos, true, nil
}

// halfPage is the half-page scroll distance. It is recomputed when the
// viewport height changes and sticks to an explicit count once given,
// matching the vi scroll-count convention.
func (e *Engine) halfPage(buf TextBuffer, mul int) int {
	if h := buf.ViewportHeight(); e.page.h != h {
		e.page.h = h
		e.page.half = h / 2
		if e.opts.HalfPage > 0 {
			e.page.half = e.opts.HalfPage
		}
	}
	if mul > 0 {
		e.page.half = mul
	}
	if e.page.half < 1 {
		return 1
	}
	return e.page.half
}

type screenSpot uint8

const (
	screenTop screenSpot = iota
	screenMiddle
	screenBottom
)

// screenPos resolves H/M/L against the current viewport, landing on
// the first non-blank of the target row. The count offsets from the
// top or bottom edge.
func (e *Engine) screenPos(buf TextBuffer, spot screenSpot, mul int) textbuf.Position {
	top := buf.ScrollOffset()
	vis := buf.ViewportHeight()
	if vis < 1 {
		vis = 1
	}
	last := top + vis - 1
	if max := buf.LineCount() - 1; last > max {
		last = max
	}

	off := mul - 1
	if off < 0 {
		off = 0
	}

	var y int
	switch spot {
	case screenTop:
		y = top + off
	case screenMiddle:
		y = top + (last-top)/2
	case screenBottom:
		y = last - off
	}
	if y < top {
		y = top
	}
	if y > last {
		y = last
	}
	return firstNonBlank(buf, y)
}

// findPos runs a fresh single-character find and returns the landing
// position: on the far side of the match going forward, on the near
// side going backward, and just before/after it for the till forms.
func (e *Engine) findPos(buf TextBuffer, term rune, dir Direction, till bool, mul int) (textbuf.Position, bool, error) {
	e.finds.scan(buf, term, dir, till)
	e.finds.selectIdx(buf, mulOr1(mul), Forward)
	if e.finds.Idx < 0 {
		return textbuf.Position{}, false, nil
	}
	span := e.finds.Spans[e.finds.Idx]
	switch {
	case till && dir == Forward:
		return buf.BytePos(span.Start), true, nil
	case till && dir == Backward:
		return buf.BytePos(span.End), true, nil
	case dir == Forward:
		return buf.BytePos(span.End), true, nil
	default:
		return buf.BytePos(span.Start), true, nil
	}
}

// findRepeatPos repeats the last find; dir multiplies with the stored
// direction, so , after F keeps moving forward.
func (e *Engine) findRepeatPos(buf TextBuffer, dir Direction, mul int) (textbuf.Position, bool, error) {
	if !e.finds.hasTerm {
		return textbuf.Position{}, false, nil
	}
	e.finds.scan(buf, e.finds.Term, e.finds.Dir, e.finds.Till)
	e.finds.selectIdx(buf, mulOr1(mul), dir)
	if e.finds.Idx < 0 {
		return textbuf.Position{}, false, nil
	}
	span := e.finds.Spans[e.finds.Idx]
	eff := e.finds.Dir.Mul(dir)
	switch {
	case e.finds.Till && eff == Backward:
		return buf.BytePos(span.End), true, nil
	case e.finds.Till:
		return buf.BytePos(span.Start), true, nil
	case eff == Backward:
		return buf.BytePos(span.Start), true, nil
	default:
		return buf.BytePos(span.End), true, nil
	}
}

// searchPos runs a pattern search and returns the selected match start.
func (e *Engine) searchPos(buf TextBuffer, term string, dir Direction, tmp bool, mul int) (textbuf.Position, bool, error) {
	if err := e.matches.scan(buf, term, dir, tmp); err != nil {
		return textbuf.Position{}, false, err
	}
	e.matches.selectIdx(buf, mulOr1(mul), Forward)
	pos, ok := e.matches.current(buf)
	return pos, ok, nil
}

// searchWordPos searches for the word under the cursor, taken literally.
func (e *Engine) searchWordPos(buf TextBuffer, dir Direction, mul int) (textbuf.Position, bool, error) {
	start, end := wordUnderCursor(buf)
	word := buf.Slice(textbuf.Range{Start: start, End: end})
	if word == "" {
		return textbuf.Position{}, false, nil
	}
	return e.searchPos(buf, regexp.QuoteMeta(word), dir, false, mul)
}

// searchRepeatPos repeats the last pattern search without rescanning.
func (e *Engine) searchRepeatPos(buf TextBuffer, dir Direction, mul int) (textbuf.Position, bool, error) {
	if !e.matches.hasTerm {
		return textbuf.Position{}, false, nil
	}
	e.matches.selectIdx(buf, mulOr1(mul), dir)
	pos, ok := e.matches.current(buf)
	return pos, ok, nil
}
