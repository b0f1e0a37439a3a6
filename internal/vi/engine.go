package vi

import (
	"log/slog"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/textbuf"
)

// Mode is the current editing mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// Outcome tells the host what a keystroke did.
type Outcome uint8

const (
	// OutcomeContinue: the key was not consumed.
	OutcomeContinue Outcome = iota

	// OutcomeUnchanged: consumed, but nothing happened.
	OutcomeUnchanged

	// OutcomeChanged: cursor, selection, scroll or engine state changed.
	OutcomeChanged

	// OutcomeTextChanged: the buffer text changed.
	OutcomeTextChanged
)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the runtime options.
func WithConfig(o config.Options) Option {
	return func(e *Engine) { e.opts = o }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

type pageState struct {
	h    int
	half int
}

// Engine interprets keystrokes against a TextBuffer. It owns all
// modal state: the per-mode command parsers, the repeat memo, search
// and find results, the visual selection, and the mark registry. The
// buffer is passed into every call and never retained.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	mode Mode

	normalParse *Parser
	visualParse *Parser

	// Repeat memo: the last repeatable command and, when it entered
	// insert mode, the keystrokes typed there.
	memo     Command
	memoText string

	// Active insert session.
	insertKind Op
	insertMul  int
	insertBuf  []rune

	finds   Finds
	matches Matches
	visual  Visual
	marks   *Registry
	yank    []string

	page pageState
	opts config.Options
	log  *slog.Logger
}

// New creates an engine in normal mode.
func New(opts ...Option) *Engine {
	e := &Engine{
		normalParse: NewParser(),
		visualParse: NewVisualParser(),
		finds:       NewFinds(),
		matches:     NewMatches(),
		visual:      NewVisual(),
		opts:        config.Default(),
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.marks = NewRegistry(e.opts.JumpHistoryLimit, e.opts.ChangeHistoryLimit)
	return e
}

// Mode returns the current editing mode.
func (e *Engine) Mode() Mode { return e.mode }

// Echo returns the keys of the command being typed, for the status
// line.
func (e *Engine) Echo() string {
	switch e.mode {
	case ModeVisual:
		return e.visualParse.Echo()
	case ModeNormal:
		return e.normalParse.Echo()
	default:
		return ""
	}
}

// Marks exposes the mark registry.
func (e *Engine) Marks() *Registry { return e.marks }

// SetConfig applies reloaded options. The half-page distance is
// recomputed on the next use.
func (e *Engine) SetConfig(o config.Options) {
	e.opts = o
	e.marks.SetLimits(o.JumpHistoryLimit, o.ChangeHistoryLimit)
	e.page = pageState{}
}

// token translates a key event into the single-rune token alphabet the
// parsers consume. Control chords fold onto control runes.
func token(ev key.Event) (rune, bool) {
	switch ev.Key {
	case key.KeyEnter:
		return tokEnter, true
	case key.KeyTab:
		return '\t', true
	case key.KeyBackspace:
		return tokBS, true
	case key.KeyDelete:
		return tokDEL, true
	case key.KeyRune:
		if ev.Modifiers.HasCtrl() {
			return ctrlTok(ev.Rune), true
		}
		if ev.Modifiers.HasAlt() {
			return 0, false
		}
		return ev.Rune, true
	}
	return 0, false
}

// HandleKey feeds one keystroke to the engine. The returned error is
// non-nil only for an invalid search pattern; the engine stays
// consistent and usable after it.
func (e *Engine) HandleKey(buf TextBuffer, ev key.Event) (Outcome, error) {
	if ev.IsEscape() || ev.IsCtrl('c') {
		return e.cancel(buf), nil
	}

	tok, ok := token(ev)
	if !ok {
		return OutcomeContinue, nil
	}

	switch e.mode {
	case ModeInsert:
		return e.evalInsert(buf, tok), nil
	case ModeVisual:
		return e.evalVisual(buf, tok)
	default:
		return e.evalNormal(buf, tok)
	}
}

// cancel handles Esc: it ends insert mode, drops a visual selection,
// or resets a half-typed command and the search highlights.
func (e *Engine) cancel(buf TextBuffer) Outcome {
	switch e.mode {
	case ModeInsert:
		e.endInsert(buf)
		e.displayAll(buf)
		e.scrollToCursor(buf)
		return OutcomeTextChanged

	case ModeVisual:
		e.visual.ClearAll()
		e.visualParse = NewVisualParser()
		e.mode = ModeNormal
		e.displayAll(buf)
		e.scrollToCursor(buf)
		return OutcomeChanged

	default:
		e.normalParse = NewParser()
		e.finds.ClearAll()
		e.matches.ClearAll()
		e.displayAll(buf)
		e.scrollToCursor(buf)
		return OutcomeChanged
	}
}

func (e *Engine) evalNormal(buf TextBuffer, tok rune) (Outcome, error) {
	res := e.normalParse.Resume(tok)
	switch res.Status {
	case StatusPending:
		e.log.Debug("command pending", "echo", e.normalParse.Echo())
		return OutcomeChanged, nil

	case StatusPartial:
		out, err := e.executePartial(buf, res.Command)
		e.displayAll(buf)
		return out, err
	}

	cmd := res.Command
	e.normalParse = NewParser()
	e.log.Debug("execute", "mode", e.mode, "op", cmd.Op, "count", cmd.Count)

	if cmd.Op == OpRepeat {
		return e.repeat(buf, cmd.Count)
	}

	out, err := e.executeNormal(buf, cmd, false)
	if err == nil && isNormalMemo(cmd) {
		e.memo = cmd
	}
	e.displayAll(buf)
	return out, err
}

// repeat replays the memoized command mul times. A failure mid-way
// stops the replay but keeps the memo and any marks already set.
func (e *Engine) repeat(buf TextBuffer, mul int) (Outcome, error) {
	if e.memo.Op == OpInvalid {
		return OutcomeUnchanged, nil
	}
	out := OutcomeUnchanged
	var err error
	for n := mulOr1(mul); n > 0; n-- {
		out, err = e.executeNormal(buf, e.memo, true)
		if err != nil {
			break
		}
	}
	e.displayAll(buf)
	return out, err
}

// executePartial runs the as-you-type search preview: the match list
// and highlight update and the view scrolls to the selected match, but
// the cursor does not move and nothing is committed.
func (e *Engine) executePartial(buf TextBuffer, cmd Command) (Outcome, error) {
	var dir Direction
	switch cmd.Motion.Kind {
	case MotionSearchForward:
		dir = Forward
	case MotionSearchBack:
		dir = Backward
	default:
		return OutcomeUnchanged, nil
	}
	_, _, err := e.searchPos(buf, cmd.Motion.Term, dir, true, cmd.Count)
	if err != nil {
		return OutcomeUnchanged, err
	}
	e.scrollToMatch(buf)
	return OutcomeChanged, nil
}

func (e *Engine) executeNormal(buf TextBuffer, cmd Command, repeat bool) (Outcome, error) {
	switch cmd.Op {
	case OpInvalid:
		return OutcomeUnchanged, nil

	case OpMove:
		moved, err := e.moveCursor(buf, cmd.Motion, cmd.Count)
		if err != nil {
			return OutcomeUnchanged, err
		}
		if !moved {
			return OutcomeUnchanged, nil
		}
		return OutcomeChanged, nil

	case OpPartial:
		return e.executePartial(buf, cmd)

	case OpScroll:
		e.executeScroll(buf, cmd)
		return OutcomeChanged, nil

	case OpMark:
		e.marks.Set(cmd.Mark, buf.Cursor())
		return OutcomeChanged, nil

	case OpHistory:
		return e.executeHistory(buf, cmd), nil

	case OpVisual:
		e.beginVisual(buf, cmd.Block)
		e.visualParse = NewVisualParser()
		e.mode = ModeVisual
		return OutcomeChanged, nil

	case OpUndo:
		e.undoText(buf, mulOr1(cmd.Count))
		return OutcomeTextChanged, nil
	case OpRedo:
		e.redoText(buf, mulOr1(cmd.Count))
		return OutcomeTextChanged, nil

	case OpJoinLines:
		e.joinLines(buf, mulOr1(cmd.Count))
		return OutcomeTextChanged, nil

	case OpInsert:
		if repeat {
			e.insertString(buf, e.memoText, mulOr1(cmd.Count))
			return OutcomeTextChanged, nil
		}
		e.beginInsert(buf, OpInsert, cmd.Count)
		return OutcomeChanged, nil

	case OpAppend:
		if repeat {
			e.appendString(buf, e.memoText, mulOr1(cmd.Count))
			return OutcomeTextChanged, nil
		}
		buf.SetCursor(moveRight(buf, 1))
		e.beginInsert(buf, OpAppend, cmd.Count)
		return OutcomeChanged, nil

	case OpAppendLine:
		if repeat {
			e.appendLineString(buf, e.memoText, mulOr1(cmd.Count))
			return OutcomeTextChanged, nil
		}
		c := buf.Cursor()
		e.beginInsert(buf, OpAppendLine, cmd.Count)
		buf.SetCursor(textbuf.Position{X: buf.LineWidth(c.Y), Y: c.Y})
		buf.InsertNewline(buf.Cursor())
		return OutcomeTextChanged, nil

	case OpPrependLine:
		if repeat {
			e.prependLineString(buf, e.memoText, mulOr1(cmd.Count))
			return OutcomeTextChanged, nil
		}
		c := buf.Cursor()
		e.beginInsert(buf, OpPrependLine, cmd.Count)
		buf.InsertNewline(textbuf.Position{X: 0, Y: c.Y})
		buf.SetCursor(textbuf.Position{X: 0, Y: c.Y})
		return OutcomeTextChanged, nil

	case OpChange:
		changed, err := e.changeText(buf, cmd.Count, cmd.Motion)
		if err != nil || !changed {
			return OutcomeUnchanged, err
		}
		if repeat {
			e.insertString(buf, e.memoText, 1)
			return OutcomeTextChanged, nil
		}
		e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
		e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
		e.beginInsert(buf, OpChange, 1)
		return OutcomeTextChanged, nil

	case OpDelete:
		if err := e.deleteText(buf, cmd.Count, cmd.Motion); err != nil {
			return OutcomeUnchanged, err
		}
		return OutcomeTextChanged, nil

	case OpYank:
		var err error
		if cmd.Clipboard {
			err = e.copyClipboardText(buf, cmd.Count, cmd.Motion)
		} else {
			err = e.yankText(buf, cmd.Count, cmd.Motion)
		}
		if err != nil {
			return OutcomeUnchanged, err
		}
		return OutcomeChanged, nil

	case OpPaste:
		if cmd.Clipboard {
			e.pasteClipboardText(buf, mulOr1(cmd.Count), cmd.Before)
		} else {
			e.pasteText(buf, mulOr1(cmd.Count), cmd.Before)
		}
		return OutcomeTextChanged, nil

	case OpReplace:
		if err := e.replaceText(buf, cmd.Count, cmd.Char); err != nil {
			return OutcomeUnchanged, err
		}
		return OutcomeTextChanged, nil

	case OpIndent:
		e.indentLines(buf, cmd.Count)
		return OutcomeTextChanged, nil
	case OpDedent:
		e.dedentLines(buf, cmd.Count)
		return OutcomeTextChanged, nil
	}

	return OutcomeUnchanged, nil
}

func (e *Engine) executeScroll(buf TextBuffer, cmd Command) {
	switch cmd.Scroll {
	case ScrollUp:
		e.scrollUp(buf, cmd.Count)
	case ScrollDown:
		e.scrollDown(buf, cmd.Count)
	case ScrollPageUp:
		e.scrollPageUp(buf, cmd.Count)
	case ScrollPageDown:
		e.scrollPageDown(buf, cmd.Count)
	case ScrollMiddleOfScreen:
		e.scrollCursorToMiddle(buf)
	case ScrollTopOfScreen:
		e.scrollCursorToTop(buf)
	case ScrollBottomOfScreen:
		e.scrollCursorToBottom(buf)
	}
}

// executeHistory steps through the jump or change history. Landing on
// the newest edge is a successful no-motion; the index stays put at
// the ends instead of wrapping.
func (e *Engine) executeHistory(buf TextBuffer, cmd Command) Outcome {
	n := mulOr1(cmd.Count)
	var (
		pos textbuf.Position
		ok  bool
	)
	switch cmd.Hist {
	case HistPrevJump:
		pos, ok = e.marks.JumpHistory(-n)
	case HistNextJump:
		pos, ok = e.marks.JumpHistory(n)
	case HistPrevChange:
		pos, ok = e.marks.ChangeHistory(-n)
	case HistNextChange:
		pos, ok = e.marks.ChangeHistory(n)
	}
	if !ok {
		return OutcomeUnchanged
	}
	buf.SetCursor(pos)
	e.scrollToCursor(buf)
	return OutcomeChanged
}

func (e *Engine) evalVisual(buf TextBuffer, tok rune) (Outcome, error) {
	res := e.visualParse.Resume(tok)
	switch res.Status {
	case StatusPending:
		e.log.Debug("command pending", "echo", e.visualParse.Echo())
		return OutcomeChanged, nil

	case StatusPartial:
		out, err := e.executePartial(buf, res.Command)
		e.displayAll(buf)
		return out, err
	}

	cmd := res.Command
	e.visualParse = NewVisualParser()
	e.log.Debug("execute", "mode", e.mode, "op", cmd.Op, "count", cmd.Count)

	out, err := e.executeVisual(buf, cmd)
	if err == nil && isVisualMemo(cmd) {
		e.memo = cmd
	}
	e.displayAll(buf)
	return out, err
}

func (e *Engine) executeVisual(buf TextBuffer, cmd Command) (Outcome, error) {
	switch cmd.Op {
	case OpInvalid:
		return OutcomeUnchanged, nil

	case OpMove:
		if _, err := e.visualMove(buf, cmd.Motion, cmd.Count); err != nil {
			return OutcomeUnchanged, err
		}
		return OutcomeChanged, nil

	case OpPartial:
		return e.executePartial(buf, cmd)

	case OpVisualSwapLead:
		e.visualSwapLead(buf)
		return OutcomeChanged, nil
	case OpVisualSwapDiagonal:
		e.visualSwapDiagonal(buf)
		return OutcomeChanged, nil

	case OpDelete:
		e.visualDelete(buf)
		e.leaveVisual()
		return OutcomeTextChanged, nil

	case OpChange:
		e.visualChange(buf)
		e.leaveVisual()
		e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
		e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
		e.beginInsert(buf, OpChange, 1)
		return OutcomeTextChanged, nil

	case OpYank:
		if cmd.Clipboard {
			e.visualCopyClipboard(buf)
		} else {
			e.visualYank(buf)
		}
		e.leaveVisual()
		return OutcomeChanged, nil
	}

	return OutcomeUnchanged, nil
}

// leaveVisual drops the selection highlight and returns to normal
// mode. The selection endpoints survive as the visual marks.
func (e *Engine) leaveVisual() {
	e.visual.ClearAll()
	e.mode = ModeNormal
	e.normalParse = NewParser()
}

// beginInsert opens an insert session. The whole session, including
// the count replay at the end, forms one undo step.
func (e *Engine) beginInsert(buf TextBuffer, kind Op, mul int) {
	if kind != OpChange {
		e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	}
	e.insertKind = kind
	e.insertMul = mulOr1(mul)
	e.insertBuf = e.insertBuf[:0]
	buf.BeginEdit()
	e.mode = ModeInsert
}

// evalInsert applies one keystroke of insert mode and records it for
// replay. Control chords without an insert meaning are not consumed.
func (e *Engine) evalInsert(buf TextBuffer, tok rune) Outcome {
	if tok < 0x20 && tok != '\n' && tok != '\t' && tok != tokBS {
		return OutcomeContinue
	}
	e.insertBuf = append(e.insertBuf, tok)
	e.syncAfterEdit()
	insertRune(buf, tok)
	e.displayAll(buf)
	return OutcomeTextChanged
}

// endInsert closes the session: the typed stream is replayed count-1
// extra times, becomes the memo text for '.', and the insert mark and
// change-history end are recorded at the final cursor.
func (e *Engine) endInsert(buf TextBuffer) {
	text := string(e.insertBuf)
	extra := e.insertMul - 1

	if extra > 0 {
		switch e.insertKind {
		case OpAppendLine:
			e.appendLineString(buf, text, extra)
		case OpPrependLine:
			e.prependLineString(buf, text, extra)
		default:
			e.insertString(buf, text, extra)
		}
	}
	buf.EndEdit()

	e.memoText = text
	e.marks.Set(Mark{Kind: MarkInsert}, buf.Cursor())
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
	e.syncAfterEdit()

	e.mode = ModeNormal
	e.normalParse = NewParser()
	e.insertBuf = e.insertBuf[:0]
	e.insertMul = 0
}

// displayAll flushes every pending highlight sync into the buffer.
func (e *Engine) displayAll(buf TextBuffer) {
	e.matches.display(buf)
	e.finds.display(buf)
	e.visual.display(buf)
}
