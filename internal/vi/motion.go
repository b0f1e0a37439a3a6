package vi

// MotionKind identifies a cursor-movement specifier.
type MotionKind uint8

const (
	MotionNone MotionKind = iota

	// MotionVisual is the pseudo-motion "operate on the current visual
	// selection".
	MotionVisual

	MotionLeft
	MotionRight
	MotionUp
	MotionDown

	MotionHalfPageUp
	MotionHalfPageDown

	MotionToTopOfScreen
	MotionToMiddleOfScreen
	MotionToBottomOfScreen

	MotionToCol
	MotionToLine
	MotionToLinePercent
	MotionToMatchingBrace
	MotionToMark

	MotionStartOfFile
	MotionEndOfFile

	MotionNextWordStart
	MotionPrevWordStart
	MotionNextWordEnd
	MotionPrevWordEnd
	MotionNextBigWordStart
	MotionPrevBigWordStart
	MotionNextBigWordEnd
	MotionPrevBigWordEnd
	MotionStartOfLine
	MotionEndOfLine
	MotionStartOfLineText
	MotionEndOfLineText
	MotionPrevSentence
	MotionNextSentence
	MotionPrevParagraph
	MotionNextParagraph

	// MotionFullLine is the operator-doubling form (dd, cc, yy).
	MotionFullLine

	MotionFindForward
	MotionFindBack
	MotionFindTillForward
	MotionFindTillBack
	MotionFindRepeatNext
	MotionFindRepeatPrev

	MotionSearchWordForward
	MotionSearchWordBackward
	MotionSearchForward
	MotionSearchBack
	MotionSearchRepeatNext
	MotionSearchRepeatPrev

	// Text objects (aw, iw, ...). Around selects surrounding
	// whitespace/delimiters, inner does not.
	MotionObjectWord
	MotionObjectBigWord
	MotionObjectSentence
	MotionObjectParagraph
	MotionObjectBracket
	MotionObjectParen
	MotionObjectBrace
	MotionObjectAngle
	MotionObjectTag
	MotionObjectQuoted
)

// Motion is a cursor-movement specifier plus its argument data.
type Motion struct {
	Kind MotionKind

	// Char is the target for find motions and the delimiter for quoted
	// text objects.
	Char rune

	// Term is the pattern for search motions.
	Term string

	// Mark is the target of a mark motion.
	Mark Mark

	// LineWise marks a ' mark motion (first non-blank of the mark's
	// row) as opposed to the exact ` form.
	LineWise bool

	// Around selects the a form of a text object.
	Around bool
}

// IsJump reports whether the motion records a Jump mark at the
// pre-motion position when it resolves.
func (m Motion) IsJump() bool {
	switch m.Kind {
	case MotionToTopOfScreen, MotionToMiddleOfScreen, MotionToBottomOfScreen,
		MotionToLine, MotionToLinePercent, MotionToMatchingBrace, MotionToMark,
		MotionEndOfFile,
		MotionPrevParagraph, MotionNextParagraph,
		MotionPrevSentence, MotionNextSentence,
		MotionSearchWordForward, MotionSearchWordBackward,
		MotionSearchForward, MotionSearchBack,
		MotionSearchRepeatNext, MotionSearchRepeatPrev:
		return true
	default:
		return false
	}
}

// isObject reports whether the motion is a text object.
func (m Motion) isObject() bool {
	switch m.Kind {
	case MotionObjectWord, MotionObjectBigWord, MotionObjectSentence,
		MotionObjectParagraph, MotionObjectBracket, MotionObjectParen,
		MotionObjectBrace, MotionObjectAngle, MotionObjectTag,
		MotionObjectQuoted:
		return true
	default:
		return false
	}
}
