package vi

// Op identifies a completed command.
type Op uint8

const (
	// OpInvalid is an unrecognized key sequence. Executing it is a
	// no-op; it never enters the repeat memo or the change history.
	OpInvalid Op = iota

	// OpRepeat replays the memoized command ('.').
	OpRepeat

	// OpPartial is an in-flight incremental search; the parser stays
	// alive and re-emits it on every keystroke until Enter.
	OpPartial

	OpMove
	OpHistory
	OpScroll
	OpMark

	OpVisual
	OpVisualSwapLead
	OpVisualSwapDiagonal

	OpUndo
	OpRedo

	OpJoinLines
	OpInsert
	OpAppend
	OpAppendLine
	OpPrependLine
	OpDelete
	OpChange
	OpYank
	OpPaste
	OpReplace
	OpIndent
	OpDedent
)

// HistoryNav selects a direction in one of the two histories.
type HistoryNav uint8

const (
	HistPrevJump HistoryNav = iota
	HistNextJump
	HistPrevChange
	HistNextChange
)

// Scrolling selects a viewport movement.
type Scrolling uint8

const (
	ScrollUp Scrolling = iota
	ScrollDown
	ScrollPageUp
	ScrollPageDown
	ScrollMiddleOfScreen
	ScrollTopOfScreen
	ScrollBottomOfScreen
)

// Command is one completed (or, for OpPartial, in-flight) command.
type Command struct {
	Op    Op
	Count int

	Motion Motion
	Hist   HistoryNav
	Scroll Scrolling
	Mark   Mark

	// Char is the replacement character for OpReplace.
	Char rune

	// Block marks a blockwise OpVisual.
	Block bool

	// Before marks the paste-before form of OpPaste.
	Before bool

	// Clipboard routes OpYank/OpPaste through the host clipboard ("*).
	Clipboard bool
}

func invalid() Command { return Command{Op: OpInvalid} }

func move(count int, m Motion) Command {
	return Command{Op: OpMove, Count: count, Motion: m}
}

// isNormalMemo reports whether a completed normal-mode command becomes
// the repeat memo.
func isNormalMemo(c Command) bool {
	switch c.Op {
	case OpJoinLines, OpInsert, OpAppend, OpAppendLine, OpPrependLine,
		OpDelete, OpChange, OpReplace, OpPaste, OpIndent, OpDedent:
		return true
	default:
		return false
	}
}

// isVisualMemo reports whether a completed visual-mode command becomes
// the repeat memo.
func isVisualMemo(c Command) bool {
	return c.Op == OpChange && c.Motion.Kind == MotionVisual
}
