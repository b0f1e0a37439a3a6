package vi

// Status is the result kind of feeding one token to a Parser.
type Status uint8

const (
	// StatusPending: the token was consumed as a partial prefix; feed
	// more tokens.
	StatusPending Status = iota

	// StatusPartial: an in-flight command was produced (incremental
	// search) but the parser is still alive and wants more tokens.
	StatusPartial

	// StatusComplete: a command was produced and the parser is done. A
	// fresh instance must be installed before the next token.
	StatusComplete
)

// Result is the outcome of one Resume call.
type Result struct {
	Status  Status
	Command Command
}

func pending() Result { return Result{Status: StatusPending} }

type parseState uint8

const (
	stInitial parseState = iota
	stGPrefix
	stZPrefix
	stFind
	stMarkSet
	stMarkGoto
	stSearch
	stRegister
	stRegisterStar
	stReplace
	stOperator
	stOpG
	stOpFind
	stOpObject
	stOpMarkGoto
	stOpSearch
	stDone
)

// Parser consumes one key token at a time and produces a completed
// Command. It is the explicit-state replacement for a suspended
// recursive-descent parse: all resume state lives in the struct. One
// instance parses exactly one command; the controller installs a fresh
// instance after every completion, cancellation or mode transition.
type Parser struct {
	visual bool
	state  parseState

	count1 countState
	count2 countState

	op     Op   // pending operator (OpDelete/OpChange/OpYank) or 0
	opKey  rune // key that introduced the operator, for doubling
	opClip bool // operator came in via the "* register

	findKind   MotionKind // pending f/F/t/T
	gotoLine   bool       // ' (line-wise) vs ` mark motion
	objAround  bool       // a vs i text object
	searchBack bool       // ? vs /
	term       []rune     // search term being typed

	echo []rune
}

// NewParser creates a parser for the normal-mode grammar.
func NewParser() *Parser { return &Parser{} }

// NewVisualParser creates a parser for the visual-mode grammar.
func NewVisualParser() *Parser { return &Parser{visual: true} }

// Echo returns the keys typed so far, for status-line display.
func (p *Parser) Echo() string { return string(p.echo) }

func (p *Parser) complete(cmd Command) Result {
	p.state = stDone
	return Result{Status: StatusComplete, Command: cmd}
}

// Resume feeds one token. The same tokens fed one at a time or in a
// batch produce the same completed command.
func (p *Parser) Resume(tok rune) Result {
	switch p.state {
	case stInitial:
		return p.stepInitial(tok)
	case stGPrefix:
		return p.stepG(tok, false)
	case stZPrefix:
		return p.stepZ(tok)
	case stFind:
		p.echo = append(p.echo, tok)
		return p.motionDone(Motion{Kind: p.findKind, Char: tok}, p.motionCount().get())
	case stMarkSet:
		p.echo = append(p.echo, tok)
		m := markForRune(tok)
		if m.Kind == MarkNone {
			return p.complete(invalid())
		}
		return p.complete(Command{Op: OpMark, Mark: m})
	case stMarkGoto:
		p.echo = append(p.echo, tok)
		m := markForRune(tok)
		if m.Kind == MarkNone {
			return p.complete(invalid())
		}
		return p.motionDone(Motion{Kind: MotionToMark, Mark: m, LineWise: p.gotoLine}, 1)
	case stSearch, stOpSearch:
		return p.stepSearch(tok)
	case stRegister:
		p.echo = append(p.echo, tok)
		if tok != '*' {
			return p.complete(invalid())
		}
		p.state = stRegisterStar
		return pending()
	case stRegisterStar:
		return p.stepRegisterStar(tok)
	case stReplace:
		p.echo = append(p.echo, tok)
		return p.complete(Command{Op: OpReplace, Count: p.count1.get(), Char: tok})
	case stOperator:
		return p.stepOperator(tok)
	case stOpG:
		return p.stepG(tok, true)
	case stOpFind:
		p.echo = append(p.echo, tok)
		return p.motionDone(Motion{Kind: p.findKind, Char: tok}, p.count2.get())
	case stOpObject:
		p.echo = append(p.echo, tok)
		return p.stepObject(tok)
	case stOpMarkGoto:
		p.echo = append(p.echo, tok)
		m := markForRune(tok)
		if m.Kind == MarkNone {
			return p.complete(invalid())
		}
		return p.motionDone(Motion{Kind: MotionToMark, Mark: m, LineWise: p.gotoLine}, 1)
	default:
		return p.complete(invalid())
	}
}

// motionCount is the count a completed motion uses: the post-operator
// count inside an operator, the leading count otherwise.
func (p *Parser) motionCount() *countState {
	if p.op != 0 {
		return &p.count2
	}
	return &p.count1
}

// motionDone finishes a parse that produced a motion. Under a pending
// operator the leading and motion counts multiply; bare motions become
// OpMove.
func (p *Parser) motionDone(m Motion, count int) Result {
	if p.op != 0 {
		return p.complete(Command{
			Op:        p.op,
			Count:     combine(p.count1.get(), count),
			Motion:    m,
			Clipboard: p.opClip,
		})
	}
	return p.complete(move(count, m))
}

// historyDone finishes a g,/g;/C-o/C-i production. History navigation
// is not a motion: under an operator or in visual mode it is invalid.
func (p *Parser) historyDone(h HistoryNav, count int) Result {
	if p.op != 0 || p.visual {
		return p.complete(invalid())
	}
	return p.complete(Command{Op: OpHistory, Count: count, Hist: h})
}

func (p *Parser) stepInitial(tok rune) Result {
	if tok == '0' && !p.count1.active {
		return p.motionDone(Motion{Kind: MotionStartOfLine}, 1)
	}
	if tok >= '0' && tok <= '9' {
		p.count1.push(tok)
		p.echo = append(p.echo, tok)
		return pending()
	}
	if tok == tokBS {
		if p.count1.active {
			p.count1.pop()
			p.echo = p.echo[:len(p.echo)-1]
		}
		return pending()
	}

	p.echo = append(p.echo, tok)

	if r, ok := p.stepBareMotion(tok, &p.count1); ok {
		return r
	}

	if p.visual {
		return p.stepVisualCommand(tok)
	}
	if r, ok := p.stepScroll(tok); ok {
		return r
	}
	return p.stepNormalCommand(tok)
}

// stepBareMotion handles the motion keys shared by every context. The
// second result is false when tok is not a motion introducer.
func (p *Parser) stepBareMotion(tok rune, count *countState) (Result, bool) {
	one := func(kind MotionKind) (Result, bool) {
		return p.motionDone(Motion{Kind: kind}, count.get()), true
	}

	switch tok {
	case 'h':
		return one(MotionLeft)
	case 'l':
		return one(MotionRight)
	case '-', 'k':
		return one(MotionUp)
	case '+', 'j', tokEnter:
		return one(MotionDown)
	case '_':
		return p.motionDone(Motion{Kind: MotionDown}, count.get()-1), true
	case tokCtrlU:
		return p.motionDone(Motion{Kind: MotionHalfPageUp}, count.getOr(0)), true
	case tokCtrlD:
		return p.motionDone(Motion{Kind: MotionHalfPageDown}, count.getOr(0)), true
	case 'H':
		return p.motionDone(Motion{Kind: MotionToTopOfScreen}, count.getOr(0)), true
	case 'M':
		return p.motionDone(Motion{Kind: MotionToMiddleOfScreen}, count.getOr(0)), true
	case 'L':
		return p.motionDone(Motion{Kind: MotionToBottomOfScreen}, count.getOr(0)), true
	case '|':
		return p.motionDone(Motion{Kind: MotionToCol}, count.getOr(0)), true
	case 'w':
		return one(MotionNextWordStart)
	case 'b':
		return one(MotionPrevWordStart)
	case 'e':
		return one(MotionNextWordEnd)
	case 'W':
		return one(MotionNextBigWordStart)
	case 'B':
		return one(MotionPrevBigWordStart)
	case 'E':
		return one(MotionNextBigWordEnd)
	case '(':
		return one(MotionPrevSentence)
	case ')':
		return one(MotionNextSentence)
	case '{':
		return one(MotionPrevParagraph)
	case '}':
		return one(MotionNextParagraph)
	case 'G':
		if count.active {
			return p.motionDone(Motion{Kind: MotionToLine}, count.get()), true
		}
		return p.motionDone(Motion{Kind: MotionEndOfFile}, 1), true
	case '^':
		return p.motionDone(Motion{Kind: MotionStartOfLineText}, 1), true
	case '$':
		return one(MotionEndOfLine)
	case '%':
		if count.active {
			return p.motionDone(Motion{Kind: MotionToLinePercent}, count.get()), true
		}
		return p.motionDone(Motion{Kind: MotionToMatchingBrace}, 1), true
	case ';':
		return one(MotionFindRepeatNext)
	case ',':
		return one(MotionFindRepeatPrev)
	case '*':
		return one(MotionSearchWordForward)
	case '#':
		return one(MotionSearchWordBackward)
	case 'n':
		return one(MotionSearchRepeatNext)
	case 'N':
		return one(MotionSearchRepeatPrev)
	case 'g':
		if p.op != 0 {
			p.state = stOpG
		} else {
			p.state = stGPrefix
		}
		return pending(), true
	case 'f':
		return p.startFind(MotionFindForward), true
	case 'F':
		return p.startFind(MotionFindBack), true
	case 't':
		// Inside an operator, t after i/a is the tag object; here it
		// is till-forward.
		return p.startFind(MotionFindTillForward), true
	case 'T':
		return p.startFind(MotionFindTillBack), true
	case '/':
		return p.startSearch(false), true
	case '?':
		return p.startSearch(true), true
	case '\'':
		p.gotoLine = true
		if p.op != 0 {
			p.state = stOpMarkGoto
		} else {
			p.state = stMarkGoto
		}
		return pending(), true
	case '`':
		p.gotoLine = false
		if p.op != 0 {
			p.state = stOpMarkGoto
		} else {
			p.state = stMarkGoto
		}
		return pending(), true
	case tokCtrlO:
		return p.historyDone(HistPrevJump, count.get()), true
	case tokCtrlI:
		return p.historyDone(HistNextJump, count.get()), true
	}
	return Result{}, false
}

func (p *Parser) startFind(kind MotionKind) Result {
	p.findKind = kind
	if p.op != 0 {
		p.state = stOpFind
	} else {
		p.state = stFind
	}
	return pending()
}

func (p *Parser) startSearch(back bool) Result {
	p.searchBack = back
	p.term = p.term[:0]
	if p.op != 0 {
		p.state = stOpSearch
	} else {
		p.state = stSearch
	}
	return p.partialSearch()
}

func (p *Parser) searchMotion() Motion {
	kind := MotionSearchForward
	if p.searchBack {
		kind = MotionSearchBack
	}
	return Motion{Kind: kind, Term: string(p.term)}
}

func (p *Parser) partialSearch() Result {
	return Result{
		Status: StatusPartial,
		Command: Command{
			Op:     OpPartial,
			Count:  p.motionCount().get(),
			Motion: p.searchMotion(),
		},
	}
}

func (p *Parser) stepSearch(tok rune) Result {
	switch tok {
	case tokEnter:
		return p.motionDone(p.searchMotion(), p.motionCount().get())
	case tokBS:
		if len(p.term) > 0 {
			p.term = p.term[:len(p.term)-1]
			p.echo = p.echo[:len(p.echo)-1]
		}
		return p.partialSearch()
	default:
		p.term = append(p.term, tok)
		p.echo = append(p.echo, tok)
		return p.partialSearch()
	}
}

// stepG handles the token after a g prefix, in bare or operator context.
func (p *Parser) stepG(tok rune, inOp bool) Result {
	p.echo = append(p.echo, tok)
	count := &p.count1
	if inOp {
		count = &p.count2
	}
	switch tok {
	case 'e':
		return p.motionDone(Motion{Kind: MotionPrevWordEnd}, count.get())
	case 'E':
		return p.motionDone(Motion{Kind: MotionPrevBigWordEnd}, count.get())
	case '_':
		return p.motionDone(Motion{Kind: MotionEndOfLineText}, count.get())
	case ',':
		return p.historyDone(HistNextChange, count.get())
	case ';':
		return p.historyDone(HistPrevChange, count.get())
	case 'g':
		if count.active {
			return p.motionDone(Motion{Kind: MotionToLine}, count.get())
		}
		return p.motionDone(Motion{Kind: MotionStartOfFile}, 1)
	default:
		return p.complete(invalid())
	}
}

func (p *Parser) stepZ(tok rune) Result {
	p.echo = append(p.echo, tok)
	switch tok {
	case 'z':
		return p.complete(Command{Op: OpScroll, Count: 1, Scroll: ScrollMiddleOfScreen})
	case 't':
		return p.complete(Command{Op: OpScroll, Count: 1, Scroll: ScrollTopOfScreen})
	case 'b':
		return p.complete(Command{Op: OpScroll, Count: 1, Scroll: ScrollBottomOfScreen})
	default:
		return p.complete(invalid())
	}
}

func (p *Parser) stepScroll(tok rune) (Result, bool) {
	switch tok {
	case 'z':
		p.state = stZPrefix
		return pending(), true
	case tokCtrlY:
		return p.complete(Command{Op: OpScroll, Count: p.count1.get(), Scroll: ScrollUp}), true
	case tokCtrlE:
		return p.complete(Command{Op: OpScroll, Count: p.count1.get(), Scroll: ScrollDown}), true
	case tokCtrlB:
		return p.complete(Command{Op: OpScroll, Count: p.count1.get(), Scroll: ScrollPageUp}), true
	case tokCtrlF:
		return p.complete(Command{Op: OpScroll, Count: p.count1.get(), Scroll: ScrollPageDown}), true
	}
	return Result{}, false
}

func (p *Parser) stepNormalCommand(tok rune) Result {
	count := p.count1.get()
	switch tok {
	case 'm':
		p.state = stMarkSet
		return pending()
	case 'v':
		return p.complete(Command{Op: OpVisual})
	case tokCtrlV:
		return p.complete(Command{Op: OpVisual, Block: true})
	case 'r':
		p.state = stReplace
		return pending()
	case 'd':
		return p.startOperator(OpDelete, 'd')
	case 'c':
		return p.startOperator(OpChange, 'c')
	case 'y':
		return p.startOperator(OpYank, 'y')
	case '"':
		p.state = stRegister
		return pending()
	case 'p':
		return p.complete(Command{Op: OpPaste, Count: count})
	case 'P':
		return p.complete(Command{Op: OpPaste, Count: count, Before: true})
	case 'D':
		return p.complete(Command{Op: OpDelete, Count: count, Motion: Motion{Kind: MotionEndOfLine}})
	case 'C':
		return p.complete(Command{Op: OpChange, Count: count, Motion: Motion{Kind: MotionEndOfLine}})
	case 's':
		return p.complete(Command{Op: OpChange, Count: count, Motion: Motion{Kind: MotionRight}})
	case 'S':
		return p.complete(Command{Op: OpChange, Count: count, Motion: Motion{Kind: MotionEndOfLine}})
	case 'i':
		return p.complete(Command{Op: OpInsert, Count: count})
	case 'a':
		return p.complete(Command{Op: OpAppend, Count: count})
	case 'o':
		return p.complete(Command{Op: OpAppendLine, Count: count})
	case 'O':
		return p.complete(Command{Op: OpPrependLine, Count: count})
	case 'x':
		return p.complete(Command{Op: OpDelete, Count: count, Motion: Motion{Kind: MotionRight}})
	case 'X':
		return p.complete(Command{Op: OpDelete, Count: count, Motion: Motion{Kind: MotionLeft}})
	case 'J':
		return p.complete(Command{Op: OpJoinLines, Count: count})
	case 'u':
		return p.complete(Command{Op: OpUndo, Count: count})
	case tokCtrlR:
		return p.complete(Command{Op: OpRedo, Count: count})
	case '<':
		return p.complete(Command{Op: OpDedent, Count: count})
	case '>':
		return p.complete(Command{Op: OpIndent, Count: count})
	case '.':
		return p.complete(Command{Op: OpRepeat, Count: count})
	default:
		return p.complete(invalid())
	}
}

func (p *Parser) stepVisualCommand(tok rune) Result {
	switch tok {
	case 'a':
		p.objAround = true
		p.state = stOpObject
		return pending()
	case 'i':
		p.objAround = false
		p.state = stOpObject
		return pending()
	case 'o':
		return p.complete(Command{Op: OpVisualSwapLead})
	case 'O':
		return p.complete(Command{Op: OpVisualSwapDiagonal})
	case 'd':
		return p.complete(Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionVisual}})
	case 'c':
		return p.complete(Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionVisual}})
	case 'y':
		return p.complete(Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionVisual}})
	case '"':
		p.state = stRegister
		return pending()
	default:
		return p.complete(invalid())
	}
}

func (p *Parser) stepRegisterStar(tok rune) Result {
	p.echo = append(p.echo, tok)
	if p.visual {
		if tok == 'y' {
			return p.complete(Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionVisual}, Clipboard: true})
		}
		return p.complete(invalid())
	}
	switch tok {
	case 'y':
		p.opClip = true
		return p.startOperator(OpYank, 'y')
	case 'p':
		return p.complete(Command{Op: OpPaste, Count: p.count1.get(), Clipboard: true})
	case 'P':
		return p.complete(Command{Op: OpPaste, Count: p.count1.get(), Before: true, Clipboard: true})
	default:
		return p.complete(invalid())
	}
}

func (p *Parser) startOperator(op Op, key rune) Result {
	p.op = op
	p.opKey = key
	p.state = stOperator
	return pending()
}

func (p *Parser) stepOperator(tok rune) Result {
	if tok == '0' && !p.count2.active {
		p.echo = append(p.echo, tok)
		return p.motionDone(Motion{Kind: MotionStartOfLine}, 1)
	}
	if tok >= '0' && tok <= '9' {
		p.count2.push(tok)
		p.echo = append(p.echo, tok)
		return pending()
	}
	if tok == tokBS {
		if p.count2.active {
			p.count2.pop()
			p.echo = p.echo[:len(p.echo)-1]
		}
		return pending()
	}

	p.echo = append(p.echo, tok)

	if tok == p.opKey {
		// Doubled operator key: whole lines.
		return p.motionDone(Motion{Kind: MotionFullLine}, p.count2.get())
	}
	if tok == 'a' || tok == 'i' {
		p.objAround = tok == 'a'
		p.state = stOpObject
		return pending()
	}
	if r, ok := p.stepBareMotion(tok, &p.count2); ok {
		return r
	}
	return p.complete(invalid())
}

// stepObject finishes an i/a text object.
func (p *Parser) stepObject(tok rune) Result {
	count := p.motionCount().get()
	obj := func(kind MotionKind) Result {
		return p.motionDone(Motion{Kind: kind, Around: p.objAround}, count)
	}
	switch tok {
	case 'w':
		return obj(MotionObjectWord)
	case 'W':
		return obj(MotionObjectBigWord)
	case 's':
		return obj(MotionObjectSentence)
	case 'p':
		return obj(MotionObjectParagraph)
	case 't':
		return obj(MotionObjectTag)
	case '[', ']':
		return obj(MotionObjectBracket)
	case '(', ')', 'b':
		return obj(MotionObjectParen)
	case '{', '}', 'B':
		return obj(MotionObjectBrace)
	case '<', '>':
		return obj(MotionObjectAngle)
	case '\'', '"', '`':
		return p.motionDone(Motion{Kind: MotionObjectQuoted, Char: tok, Around: p.objAround}, count)
	default:
		return p.complete(invalid())
	}
}
