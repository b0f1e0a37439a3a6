package vi

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/vimotion/internal/textbuf"
)

// Motion queries. Each computes a target position from the cursor by
// walking grapheme cursors; none of them mutate the buffer.

func firstRune(g textbuf.Grapheme) rune {
	r, _ := utf8.DecodeRuneInString(g.Str)
	return r
}

// isAlnum: word characters (letters, digits, underscore).
func isAlnum(g textbuf.Grapheme) bool {
	r := firstRune(g)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isWhite: whitespace excluding line breaks.
func isWhite(g textbuf.Grapheme) bool {
	r := firstRune(g)
	if r == '\n' || r == '\v' || r == '\f' || r == '\r' {
		return false
	}
	return unicode.IsSpace(r)
}

func isBreak(g textbuf.Grapheme) bool {
	r := firstRune(g)
	return r == '\n' || r == '\r'
}

func peekPrev(it *textbuf.Cursor) (textbuf.Grapheme, bool) {
	g, ok := it.Prev()
	if ok {
		it.Next()
	}
	return g, ok
}

// Cursor-walk helpers. skip* consume forward while the predicate holds,
// back* consume backward; both leave the cursor on the first
// non-matching boundary.

func skipAlnum(it *textbuf.Cursor) {
	for {
		g, ok := it.Next()
		if !ok {
			return
		}
		if !isAlnum(g) {
			it.Prev()
			return
		}
	}
}

func backAlnum(it *textbuf.Cursor) {
	for {
		g, ok := it.Prev()
		if !ok {
			return
		}
		if !isAlnum(g) {
			it.Next()
			return
		}
	}
}

func skipWhite(it *textbuf.Cursor) {
	for {
		g, ok := it.Next()
		if !ok {
			return
		}
		if !isWhite(g) {
			it.Prev()
			return
		}
	}
}

func backWhite(it *textbuf.Cursor) {
	for {
		g, ok := it.Prev()
		if !ok {
			return
		}
		if !isWhite(g) {
			it.Next()
			return
		}
	}
}

func skipNonWhite(it *textbuf.Cursor) {
	for {
		g, ok := it.Next()
		if !ok {
			return
		}
		if isWhite(g) || isBreak(g) {
			it.Prev()
			return
		}
	}
}

func backNonWhite(it *textbuf.Cursor) {
	for {
		g, ok := it.Prev()
		if !ok {
			return
		}
		if isWhite(g) || isBreak(g) {
			it.Next()
			return
		}
	}
}

// skipSame consumes a run of the punctuation cluster cc.
func skipSame(it *textbuf.Cursor, cc textbuf.Grapheme) {
	for {
		g, ok := it.Next()
		if !ok {
			return
		}
		if g.Str != cc.Str {
			it.Prev()
			return
		}
	}
}

func backSame(it *textbuf.Cursor, cc textbuf.Grapheme) {
	for {
		g, ok := it.Prev()
		if !ok {
			return
		}
		if g.Str != cc.Str {
			it.Next()
			return
		}
	}
}

// Character motions.

func moveLeft(buf TextBuffer, n int) textbuf.Position {
	pos := buf.Cursor()
	if n <= 0 {
		return pos
	}
	if pos.X == 0 {
		if pos.Y > 0 {
			pos.Y--
			pos.X = buf.LineWidth(pos.Y)
		}
	} else {
		pos.X -= n
		if pos.X < 0 {
			pos.X = 0
		}
	}
	return pos
}

func moveRight(buf TextBuffer, n int) textbuf.Position {
	pos := buf.Cursor()
	if n <= 0 {
		return pos
	}
	w := buf.LineWidth(pos.Y)
	if pos.X == w {
		if pos.Y+1 < buf.LineCount() {
			pos.Y++
			pos.X = 0
		}
	} else {
		pos.X += n
		if pos.X > w {
			pos.X = w
		}
	}
	return pos
}

func moveUp(buf TextBuffer, n int) textbuf.Position {
	pos := buf.Cursor()
	if n <= 0 {
		return pos
	}
	pos.Y -= n
	if pos.Y < 0 {
		pos.Y = 0
	}
	if w := buf.LineWidth(pos.Y); pos.X > w {
		pos.X = w
	}
	return pos
}

func moveDown(buf TextBuffer, n int) textbuf.Position {
	pos := buf.Cursor()
	if n <= 0 {
		return pos
	}
	pos.Y += n
	if pos.Y >= buf.LineCount() {
		pos.Y = buf.LineCount() - 1
	}
	if w := buf.LineWidth(pos.Y); pos.X > w {
		pos.X = w
	}
	return pos
}

// Absolute motions.

func colPos(buf TextBuffer, n int) textbuf.Position {
	c := buf.Cursor()
	w := buf.LineWidth(c.Y)
	if n > w {
		n = w
	}
	return textbuf.Position{X: n, Y: c.Y}
}

func linePos(buf TextBuffer, n int) textbuf.Position {
	y := n - 1
	if y < 0 {
		y = 0
	}
	if max := buf.LineCount() - 1; y > max {
		y = max
	}
	return textbuf.Position{X: 0, Y: y}
}

func linePercentPos(buf TextBuffer, n int) textbuf.Position {
	pc := n - 1
	if pc < 0 {
		pc = 0
	}
	if pc > 100 {
		pc = 100
	}
	y := buf.LineCount() * pc / 100
	if max := buf.LineCount() - 1; y > max {
		y = max
	}
	return textbuf.Position{X: 0, Y: y}
}

func startOfFile() textbuf.Position {
	return textbuf.Position{}
}

func endOfFile(buf TextBuffer) textbuf.Position {
	y := buf.LineCount() - 1
	return textbuf.Position{X: buf.LineWidth(y), Y: y}
}

// Line motions.

func startOfLine(buf TextBuffer) textbuf.Position {
	return textbuf.Position{X: 0, Y: buf.Cursor().Y}
}

func startOfNextLine(buf TextBuffer, n int) textbuf.Position {
	y := buf.Cursor().Y + n
	if y > buf.LineCount() {
		y = buf.LineCount()
	}
	return textbuf.Position{X: 0, Y: y}
}

func endOfLine(buf TextBuffer, n int) textbuf.Position {
	y := buf.Cursor().Y + n - 1
	if max := buf.LineCount() - 1; y > max {
		y = max
	}
	return textbuf.Position{X: buf.LineWidth(y), Y: y}
}

func startOfLineText(buf TextBuffer) textbuf.Position {
	return firstNonBlank(buf, buf.Cursor().Y)
}

// firstNonBlank is the first non-whitespace column of row y.
func firstNonBlank(buf TextBuffer, y int) textbuf.Position {
	it := buf.LineGraphemesAt(y)
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if !isWhite(g) {
			it.Prev()
			break
		}
	}
	return buf.BytePos(it.Offset())
}

func endOfLineText(buf TextBuffer, n int) textbuf.Position {
	y := buf.Cursor().Y + n - 1
	if max := buf.LineCount() - 1; y > max {
		y = max
	}
	it := buf.LineGraphemesAt(y)
	// Walk to the end of the row, then trim trailing whitespace.
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	for {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if !isWhite(g) {
			break
		}
	}
	return buf.BytePos(it.Offset())
}

// Word motions. A word is a run of alnum characters or a run of the
// same punctuation; a WORD is any run of non-whitespace.

func nextWordStart(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Next()
		if !ok {
			break
		}
		if isAlnum(g) {
			skipAlnum(it)
		} else if !isWhite(g) {
			skipSame(it, g)
		}
		skipWhite(it)
	}
	return buf.BytePos(it.Offset())
}

func prevWordStart(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if isAlnum(g) {
			backAlnum(it)
		} else if isWhite(g) {
			backWhite(it)
			d, ok := it.Prev()
			if !ok {
				break
			}
			if isAlnum(d) {
				backAlnum(it)
			} else {
				backSame(it, d)
			}
		} else {
			backSame(it, g)
		}
	}
	return buf.BytePos(it.Offset())
}

func nextWordEnd(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		skipWhite(it)
		g, ok := it.Next()
		if !ok {
			break
		}
		if isAlnum(g) {
			skipAlnum(it)
		} else {
			skipSame(it, g)
		}
	}
	return buf.BytePos(it.Offset())
}

func prevWordEnd(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if isAlnum(g) {
			backAlnum(it)
		} else if !isWhite(g) {
			backSame(it, g)
		}
		backWhite(it)
	}
	return buf.BytePos(it.Offset())
}

func nextBigWordStart(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Next()
		if !ok {
			break
		}
		if !isWhite(g) {
			skipNonWhite(it)
		}
		skipWhite(it)
	}
	return buf.BytePos(it.Offset())
}

func prevBigWordStart(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if !isWhite(g) {
			backNonWhite(it)
		} else {
			backWhite(it)
			backNonWhite(it)
		}
	}
	return buf.BytePos(it.Offset())
}

func nextBigWordEnd(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		skipWhite(it)
		g, ok := it.Next()
		if !ok {
			break
		}
		if !isWhite(g) {
			skipNonWhite(it)
		} else {
			it.Prev()
		}
	}
	return buf.BytePos(it.Offset())
}

func prevBigWordEnd(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if !isWhite(g) {
			backNonWhite(it)
		}
		backWhite(it)
	}
	return buf.BytePos(it.Offset())
}

// wordUnderCursor is the span of the word the cursor sits on, for * and #.
func wordUnderCursor(buf TextBuffer) (start, end textbuf.Position) {
	it := buf.GraphemesAt(buf.Cursor())
	if g, ok := it.Prev(); ok {
		if isAlnum(g) {
			backAlnum(it)
		} else if isWhite(g) {
			it.Next()
		} else {
			backSame(it, g)
		}
	}
	start = buf.BytePos(it.Offset())

	it = buf.GraphemesAt(buf.Cursor())
	if g, ok := it.Next(); ok {
		if isAlnum(g) {
			skipAlnum(it)
		} else if isWhite(g) {
			it.Prev()
		} else {
			skipSame(it, g)
		}
	}
	end = buf.BytePos(it.Offset())
	return start, end
}

// Sentence and paragraph motions. A paragraph boundary is a blank line;
// a sentence ends at . ! ? plus closing extras.

func isSentenceEnd(g textbuf.Grapheme) bool {
	return g.Str == "." || g.Str == "!" || g.Str == "?"
}

func isSentenceExtra(g textbuf.Grapheme) bool {
	switch g.Str {
	case ")", "]", "\"", "'":
		return true
	}
	return false
}

func skipSentenceExtra(it *textbuf.Cursor) {
	for {
		g, ok := it.Next()
		if !ok {
			return
		}
		if !isSentenceExtra(g) {
			it.Prev()
			return
		}
	}
}

func backSentenceExtra(it *textbuf.Cursor) {
	for {
		g, ok := it.Prev()
		if !ok {
			return
		}
		if !isSentenceExtra(g) {
			it.Next()
			return
		}
	}
}

func skipParaWhite(it *textbuf.Cursor) bool {
	skipped := false
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if !isWhite(g) && !isBreak(g) {
			it.Prev()
			break
		}
		skipped = true
	}
	return skipped
}

func backParaWhite(it *textbuf.Cursor) bool {
	skipped := false
	for {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if !isWhite(g) && !isBreak(g) {
			it.Next()
			break
		}
		skipped = true
	}
	return skipped
}

// trackParaFwd watches for a blank line while scanning forward. When
// one is found the cursor is rewound to the start of the blank line and
// true is returned.
func trackParaFwd(g textbuf.Grapheme, sawBreak *bool, it *textbuf.Cursor) bool {
	if isBreak(g) {
		if !*sawBreak {
			*sawBreak = true
			return false
		}
		it.Prev()
		for {
			d, ok := it.Prev()
			if !ok {
				break
			}
			if isBreak(d) {
				break
			}
		}
		return true
	}
	if !isWhite(g) {
		*sawBreak = false
	}
	return false
}

func trackParaBack(g textbuf.Grapheme, sawBreak *bool, it *textbuf.Cursor) bool {
	if isBreak(g) {
		if !*sawBreak {
			*sawBreak = true
			return false
		}
		it.Next()
		for {
			d, ok := it.Next()
			if !ok {
				break
			}
			if isBreak(d) {
				break
			}
		}
		return true
	}
	if !isWhite(g) {
		*sawBreak = false
	}
	return false
}

func prevSentence(buf TextBuffer, n int, around bool) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		backSentenceExtra(it)
		if g, ok := peekPrev(it); ok && g.Str == "." {
			it.Prev()
		}

		if backParaWhite(it) {
			continue
		}

		rewind := false
		sawBreak := false
		for {
			g, ok := it.Prev()
			if !ok {
				break
			}
			if isSentenceEnd(g) {
				it.Next()
				rewind = true
				break
			}
			if trackParaBack(g, &sawBreak, it) {
				break
			}
		}
		if rewind {
			skipSentenceExtra(it)
			if around {
				skipWhite(it)
			}
		}
	}
	return buf.BytePos(it.Offset())
}

func nextSentence(buf TextBuffer, n int, around bool) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		if skipParaWhite(it) {
			continue
		}

		forward := false
		sawBreak := false
		for {
			g, ok := it.Next()
			if !ok {
				break
			}
			if isSentenceEnd(g) {
				forward = true
				break
			}
			if trackParaFwd(g, &sawBreak, it) {
				break
			}
		}
		if forward {
			skipSentenceExtra(it)
			if around {
				skipWhite(it)
			}
		}
	}
	return buf.BytePos(it.Offset())
}

func prevParagraph(buf TextBuffer, n int) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
loop:
	for ; n > 0; n-- {
		backParaWhite(it)
		sawBreak := false
		for {
			g, ok := it.Prev()
			if !ok {
				break loop
			}
			if trackParaBack(g, &sawBreak, it) {
				break
			}
		}
	}
	return buf.BytePos(it.Offset())
}

func nextParagraph(buf TextBuffer, n int, around bool) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
loop:
	for ; n > 0; n-- {
		skipParaWhite(it)
		sawBreak := false
		for {
			g, ok := it.Next()
			if !ok {
				break loop
			}
			if trackParaFwd(g, &sawBreak, it) {
				if around {
					skipParaWhite(it)
				}
				break
			}
		}
	}
	return buf.BytePos(it.Offset())
}

// matchingBrace finds the partner of the bracket at or next to the
// cursor.
func matchingBrace(buf TextBuffer) (textbuf.Position, bool) {
	it := buf.GraphemesAt(buf.Cursor())

	// Determine which bracket we sit on and which partner to seek.
	// closing and opening are from the scan's point of view: scanning
	// backward looks for an unmatched opening bracket, forward for an
	// unmatched closing one.
	var want, other string
	back := false

	if g, ok := peekPrev(it); ok {
		switch g.Str {
		case ")":
			want, other, back = "(", ")", true
		case "}":
			want, other, back = "{", "}", true
		case "]":
			want, other, back = "[", "]", true
		case ">":
			want, other, back = "<", ">", true
		case "(":
			it.Prev()
			want, other = ")", "("
		case "{":
			it.Prev()
			want, other = "}", "{"
		case "[":
			it.Prev()
			want, other = "]", "["
		case "<":
			it.Prev()
			want, other = ">", "<"
		}
	}
	if want == "" {
		g, ok := it.Peek()
		if !ok {
			return textbuf.Position{}, false
		}
		switch g.Str {
		case "(":
			want, other = ")", "("
		case "{":
			want, other = "}", "{"
		case "[":
			want, other = "]", "["
		case "<":
			want, other = ">", "<"
		case ")":
			it.Next()
			want, other, back = "(", ")", true
		case "}":
			it.Next()
			want, other, back = "{", "}", true
		case "]":
			it.Next()
			want, other, back = "[", "]", true
		case ">":
			it.Next()
			want, other, back = "<", ">", true
		default:
			return textbuf.Position{}, false
		}
	}

	depth := 0
	if back {
		for {
			g, ok := it.Prev()
			if !ok {
				return textbuf.Position{}, false
			}
			if g.Str == want {
				depth--
			} else if g.Str == other {
				depth++
			}
			if depth == 0 {
				break
			}
		}
	} else {
		for {
			g, ok := it.Next()
			if !ok {
				return textbuf.Position{}, false
			}
			if g.Str == want {
				depth--
			} else if g.Str == other {
				depth++
			}
			if depth == 0 {
				break
			}
		}
	}
	return buf.BytePos(it.Offset()), true
}

// Text-object boundaries.

// objectWordStart is the start of the word object under the cursor.
// For the around form, trailing whitespace normally belongs to the
// object; when the word ends the line, leading whitespace is taken
// instead, which means the start moves back over it.
func objectWordStart(buf TextBuffer, around, big bool) textbuf.Position {
	leading := false
	if around {
		it := buf.GraphemesAt(buf.Cursor())
		leading = true
		for {
			g, ok := it.Next()
			if !ok {
				break
			}
			if isWhite(g) {
				leading = false
				break
			}
			if isBreak(g) {
				break
			}
		}
	}

	it := buf.GraphemesAt(buf.Cursor())
	if big {
		if g, ok := it.Peek(); ok {
			if !isWhite(g) {
				backNonWhite(it)
				if leading {
					backWhite(it)
				}
			} else {
				backWhite(it)
			}
		}
	} else {
		if g, ok := it.Next(); ok {
			if isAlnum(g) {
				backAlnum(it)
				if leading {
					backWhite(it)
				}
			} else if isWhite(g) {
				backWhite(it)
			} else {
				backSame(it, g)
				if leading {
					backWhite(it)
				}
			}
		}
	}
	return buf.BytePos(it.Offset())
}

// objectWordEnd is the end of n word objects from the cursor.
func objectWordEnd(buf TextBuffer, n int, around, big bool) textbuf.Position {
	it := buf.GraphemesAt(buf.Cursor())
	for ; n > 0; n-- {
		g, ok := it.Next()
		if !ok {
			break
		}
		if big {
			if !isWhite(g) {
				skipNonWhite(it)
				if around {
					skipWhite(it)
				}
			} else {
				skipWhite(it)
			}
		} else {
			if isAlnum(g) {
				skipAlnum(it)
				if around {
					skipWhite(it)
				}
			} else if isWhite(g) {
				skipWhite(it)
			} else {
				skipSame(it, g)
				if around {
					skipWhite(it)
				}
			}
		}
	}
	return buf.BytePos(it.Offset())
}

// delimitedObject finds the span between the innermost open/close pair
// enclosing the cursor. The around form includes the delimiters.
func delimitedObject(buf TextBuffer, open, close string, around bool) (textbuf.Range, bool) {
	it := buf.GraphemesAt(buf.Cursor())

	depth := 0
	var openSpan textbuf.ByteSpan
	found := false
	for {
		g, ok := it.Prev()
		if !ok {
			break
		}
		if g.Str == close {
			depth++
		} else if g.Str == open {
			if depth == 0 {
				openSpan = g.Span
				found = true
				break
			}
			depth--
		}
	}
	if !found {
		return textbuf.Range{}, false
	}

	it = buf.GraphemesAt(buf.Cursor())
	depth = 0
	var closeSpan textbuf.ByteSpan
	found = false
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if g.Str == open {
			depth++
		} else if g.Str == close {
			if depth == 0 {
				closeSpan = g.Span
				found = true
				break
			}
			depth--
		}
	}
	if !found {
		return textbuf.Range{}, false
	}

	if around {
		return textbuf.Range{
			Start: buf.BytePos(openSpan.Start),
			End:   buf.BytePos(closeSpan.End),
		}, true
	}
	return textbuf.Range{
		Start: buf.BytePos(openSpan.End),
		End:   buf.BytePos(closeSpan.Start),
	}, true
}

// quotedObject finds the span between the nearest pair of quote
// characters on the cursor's row.
func quotedObject(buf TextBuffer, quote rune, around bool) (textbuf.Range, bool) {
	c := buf.Cursor()
	cur := buf.ByteAt(c).Start
	want := string(quote)

	it := buf.LineGraphemesAt(c.Y)
	var spans []textbuf.ByteSpan
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		if g.Str == want {
			spans = append(spans, g.Span)
		}
	}

	// Pick the pair that surrounds (or follows) the cursor.
	for i := 0; i+1 < len(spans); i += 2 {
		if spans[i+1].End > cur || i+2 >= len(spans) {
			if around {
				return textbuf.Range{
					Start: buf.BytePos(spans[i].Start),
					End:   buf.BytePos(spans[i+1].End),
				}, true
			}
			return textbuf.Range{
				Start: buf.BytePos(spans[i].End),
				End:   buf.BytePos(spans[i+1].Start),
			}, true
		}
	}
	return textbuf.Range{}, false
}

// lineBreakAndLeadingSpace is the range J joins: the newline at the end
// of the cursor row plus the following indentation.
func lineBreakAndLeadingSpace(buf TextBuffer) textbuf.Range {
	c := buf.Cursor()
	start := textbuf.Position{X: buf.LineWidth(c.Y), Y: c.Y}

	it := buf.GraphemesAt(start)
	if g, ok := it.Peek(); ok && g.IsLinebreak() {
		it.Next()
		skipWhite(it)
	}
	return textbuf.Range{Start: start, End: buf.BytePos(it.Offset())}
}
