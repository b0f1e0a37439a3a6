package vi

import "testing"

// parseSeq feeds a key sequence one token at a time and returns the
// completed command. Completing early or not at all is a test failure.
func parseSeq(t *testing.T, p *Parser, seq string) Command {
	t.Helper()
	var res Result
	for i, r := range seq {
		if res.Status == StatusComplete {
			t.Fatalf("parser completed before %q (index %d of %q)", r, i, seq)
		}
		res = p.Resume(r)
	}
	if res.Status != StatusComplete {
		t.Fatalf("sequence %q did not complete (status %d)", seq, res.Status)
	}
	return res.Command
}

func TestParseNormalCommands(t *testing.T) {
	tests := []struct {
		seq  string
		want Command
	}{
		{"j", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionDown}}},
		{"10j", Command{Op: OpMove, Count: 10, Motion: Motion{Kind: MotionDown}}},
		{"0", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionStartOfLine}}},
		{"$", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionEndOfLine}}},
		{"^", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionStartOfLineText}}},
		{"w", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionNextWordStart}}},
		{"ge", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionPrevWordEnd}}},
		{"gg", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionStartOfFile}}},
		{"5gg", Command{Op: OpMove, Count: 5, Motion: Motion{Kind: MotionToLine}}},
		{"G", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionEndOfFile}}},
		{"42G", Command{Op: OpMove, Count: 42, Motion: Motion{Kind: MotionToLine}}},
		{"%", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionToMatchingBrace}}},
		{"50%", Command{Op: OpMove, Count: 50, Motion: Motion{Kind: MotionToLinePercent}}},
		{"|", Command{Op: OpMove, Count: 0, Motion: Motion{Kind: MotionToCol}}},
		{"8|", Command{Op: OpMove, Count: 8, Motion: Motion{Kind: MotionToCol}}},
		{"H", Command{Op: OpMove, Count: 0, Motion: Motion{Kind: MotionToTopOfScreen}}},
		{"\x04", Command{Op: OpMove, Count: 0, Motion: Motion{Kind: MotionHalfPageDown}}},
		{"3\x04", Command{Op: OpMove, Count: 3, Motion: Motion{Kind: MotionHalfPageDown}}},

		{"fx", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionFindForward, Char: 'x'}}},
		{"2T;", Command{Op: OpMove, Count: 2, Motion: Motion{Kind: MotionFindTillBack, Char: ';'}}},
		{";", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionFindRepeatNext}}},
		{"*", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionSearchWordForward}}},
		{"n", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionSearchRepeatNext}}},

		{"`a", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionToMark, Mark: NamedMark('a')}}},
		{"'a", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionToMark, Mark: NamedMark('a'), LineWise: true}}},
		{"ma", Command{Op: OpMark, Mark: NamedMark('a')}},
		{"m[", Command{Op: OpMark, Mark: Mark{Kind: MarkChangeStart}}},

		{"dw", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionNextWordStart}}},
		{"2d3w", Command{Op: OpDelete, Count: 6, Motion: Motion{Kind: MotionNextWordStart}}},
		{"dd", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionFullLine}}},
		{"2d3d", Command{Op: OpDelete, Count: 6, Motion: Motion{Kind: MotionFullLine}}},
		{"d0", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionStartOfLine}}},
		{"dfx", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionFindForward, Char: 'x'}}},
		{"d`a", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionToMark, Mark: NamedMark('a')}}},
		{"ciw", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionObjectWord}}},
		{"ca(", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionObjectParen, Around: true}}},
		{"ci\"", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionObjectQuoted, Char: '"'}}},
		{"cc", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionFullLine}}},
		{"yy", Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionFullLine}}},
		{"dg_", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionEndOfLineText}}},

		{"x", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionRight}}},
		{"2x", Command{Op: OpDelete, Count: 2, Motion: Motion{Kind: MotionRight}}},
		{"D", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionEndOfLine}}},
		{"C", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionEndOfLine}}},
		{"s", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionRight}}},
		{"rX", Command{Op: OpReplace, Count: 1, Char: 'X'}},
		{"3J", Command{Op: OpJoinLines, Count: 3}},
		{"u", Command{Op: OpUndo, Count: 1}},
		{"\x12", Command{Op: OpRedo, Count: 1}},
		{"p", Command{Op: OpPaste, Count: 1}},
		{"P", Command{Op: OpPaste, Count: 1, Before: true}},
		{"i", Command{Op: OpInsert, Count: 1}},
		{"2i", Command{Op: OpInsert, Count: 2}},
		{"o", Command{Op: OpAppendLine, Count: 1}},
		{">", Command{Op: OpIndent, Count: 1}},
		{".", Command{Op: OpRepeat, Count: 1}},
		{"v", Command{Op: OpVisual}},
		{"\x16", Command{Op: OpVisual, Block: true}},

		{"\"*p", Command{Op: OpPaste, Count: 1, Clipboard: true}},
		{"\"*yw", Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionNextWordStart}, Clipboard: true}},

		{"zz", Command{Op: OpScroll, Count: 1, Scroll: ScrollMiddleOfScreen}},
		{"zt", Command{Op: OpScroll, Count: 1, Scroll: ScrollTopOfScreen}},
		{"3\x05", Command{Op: OpScroll, Count: 3, Scroll: ScrollDown}},
		{"\x06", Command{Op: OpScroll, Count: 1, Scroll: ScrollPageDown}},

		{"\x0f", Command{Op: OpHistory, Count: 1, Hist: HistPrevJump}},
		{"2\x09", Command{Op: OpHistory, Count: 2, Hist: HistNextJump}},
		{"g;", Command{Op: OpHistory, Count: 1, Hist: HistPrevChange}},
		{"g,", Command{Op: OpHistory, Count: 1, Hist: HistNextChange}},

		// Unrecognized sequences complete as invalid, never hang.
		{"dq", Command{Op: OpInvalid}},
		{"gx", Command{Op: OpInvalid}},
		{"q", Command{Op: OpInvalid}},
		{"d\x0f", Command{Op: OpInvalid}},
		{"mQ", Command{Op: OpInvalid}},
	}

	for _, tc := range tests {
		t.Run(tc.seq, func(t *testing.T) {
			got := parseSeq(t, NewParser(), tc.seq)
			if got != tc.want {
				t.Errorf("parse %q = %+v, want %+v", tc.seq, got, tc.want)
			}
		})
	}
}

func TestParseVisualCommands(t *testing.T) {
	tests := []struct {
		seq  string
		want Command
	}{
		{"j", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionDown}}},
		{"iw", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionObjectWord}}},
		{"ap", Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionObjectParagraph, Around: true}}},
		{"o", Command{Op: OpVisualSwapLead}},
		{"O", Command{Op: OpVisualSwapDiagonal}},
		{"d", Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionVisual}}},
		{"c", Command{Op: OpChange, Count: 1, Motion: Motion{Kind: MotionVisual}}},
		{"y", Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionVisual}}},
		{"\"*y", Command{Op: OpYank, Count: 1, Motion: Motion{Kind: MotionVisual}, Clipboard: true}},
		// Jump-history navigation is normal-mode only.
		{"\x0f", Command{Op: OpInvalid}},
		{"p", Command{Op: OpInvalid}},
	}

	for _, tc := range tests {
		t.Run(tc.seq, func(t *testing.T) {
			got := parseSeq(t, NewVisualParser(), tc.seq)
			if got != tc.want {
				t.Errorf("visual parse %q = %+v, want %+v", tc.seq, got, tc.want)
			}
		})
	}
}

func TestParseCountBackspace(t *testing.T) {
	got := parseSeq(t, NewParser(), "25\x083w")
	want := Command{Op: OpMove, Count: 23, Motion: Motion{Kind: MotionNextWordStart}}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseIncrementalSearch(t *testing.T) {
	p := NewParser()

	res := p.Resume('/')
	if res.Status != StatusPartial {
		t.Fatalf("after /: status %d, want partial", res.Status)
	}
	if res.Command.Op != OpPartial || res.Command.Motion.Term != "" {
		t.Fatalf("after /: %+v", res.Command)
	}

	res = p.Resume('a')
	if res.Status != StatusPartial || res.Command.Motion.Term != "a" {
		t.Fatalf("after /a: %+v", res.Command)
	}
	res = p.Resume('b')
	if res.Status != StatusPartial || res.Command.Motion.Term != "ab" {
		t.Fatalf("after /ab: %+v", res.Command)
	}

	// Backspace edits the term, not the command.
	res = p.Resume(tokBS)
	if res.Status != StatusPartial || res.Command.Motion.Term != "a" {
		t.Fatalf("after backspace: %+v", res.Command)
	}

	res = p.Resume(tokEnter)
	if res.Status != StatusComplete {
		t.Fatalf("after enter: status %d", res.Status)
	}
	want := Command{Op: OpMove, Count: 1, Motion: Motion{Kind: MotionSearchForward, Term: "a"}}
	if res.Command != want {
		t.Errorf("got %+v, want %+v", res.Command, want)
	}
}

func TestParseSearchUnderOperator(t *testing.T) {
	p := NewParser()
	for _, r := range "d/ab" {
		p.Resume(r)
	}
	res := p.Resume(tokEnter)
	if res.Status != StatusComplete {
		t.Fatalf("status %d", res.Status)
	}
	want := Command{Op: OpDelete, Count: 1, Motion: Motion{Kind: MotionSearchForward, Term: "ab"}}
	if res.Command != want {
		t.Errorf("got %+v, want %+v", res.Command, want)
	}
}

func TestParseEcho(t *testing.T) {
	p := NewParser()
	for _, r := range "2d3" {
		p.Resume(r)
	}
	if got := p.Echo(); got != "2d3" {
		t.Errorf("echo = %q, want %q", got, "2d3")
	}
	p.Resume(tokBS)
	if got := p.Echo(); got != "2d" {
		t.Errorf("echo after backspace = %q, want %q", got, "2d")
	}
}
