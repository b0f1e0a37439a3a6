package vi

import (
	"strings"

	"github.com/dshills/vimotion/internal/textbuf"
)

// Visual is the active visual selection: an anchor where it started
// and a lead that follows the cursor. Block mode selects the rectangle
// between them instead of the text run.
type Visual struct {
	RangeSet

	Block  bool
	Anchor textbuf.Position
	Lead   textbuf.Position
}

// NewVisual creates an empty selection under the reserved visual tag.
func NewVisual() Visual {
	return Visual{RangeSet: RangeSet{Tag: TagVisual}}
}

// ClearAll drops the selection and schedules the highlight wipe.
func (v *Visual) ClearAll() {
	v.Clear()
	v.Block = false
	v.Anchor = textbuf.Position{}
	v.Lead = textbuf.Position{}
}

// beginVisual starts a selection at the cursor.
func (e *Engine) beginVisual(buf TextBuffer, block bool) {
	e.visual.Block = block
	e.visual.Anchor = buf.Cursor()
	e.visual.Lead = buf.Cursor()
	e.visualSelect(buf)
}

// visualSelect rebuilds the highlighted spans from anchor and lead.
// A block selection clips the rectangle to each row's width.
func (e *Engine) visualSelect(buf TextBuffer) {
	v := &e.visual
	v.Sync = SyncToBuffer
	v.Spans = v.Spans[:0]

	if v.Block {
		x0, x1 := v.Anchor.X, v.Lead.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		y0, y1 := v.Anchor.Y, v.Lead.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			w := buf.LineWidth(y)
			xx0, xx1 := x0, x1
			if xx0 > w {
				xx0 = w
			}
			if xx1 > w {
				xx1 = w
			}
			v.Spans = append(v.Spans, textbuf.ByteSpan{
				Start: buf.PosToByte(textbuf.Position{X: xx0, Y: y}),
				End:   buf.PosToByte(textbuf.Position{X: xx1, Y: y}),
			})
		}
		return
	}

	rng := startEndToRange(v.Anchor, v.Lead)
	v.Spans = append(v.Spans, textbuf.ByteSpan{
		Start: buf.PosToByte(rng.Start),
		End:   buf.PosToByte(rng.End),
	})
}

// visualMove extends the selection by a motion: the lead follows the
// cursor, the anchor stays.
func (e *Engine) visualMove(buf TextBuffer, m Motion, mul int) (bool, error) {
	moved, err := e.moveCursor(buf, m, mul)
	if err != nil {
		return false, err
	}
	e.visual.Lead = buf.Cursor()
	e.visualSelect(buf)
	return moved, nil
}

// visualSwapLead moves the cursor to the other end of the selection.
func (e *Engine) visualSwapLead(buf TextBuffer) {
	v := &e.visual
	v.Anchor, v.Lead = v.Lead, v.Anchor
	buf.SetCursor(v.Lead)
	e.scrollToCursor(buf)
	e.visualSelect(buf)
}

// visualSwapDiagonal moves the cursor to the other corner of the same
// row in a block selection. Outside block mode it behaves like a lead
// swap.
func (e *Engine) visualSwapDiagonal(buf TextBuffer) {
	v := &e.visual
	if !v.Block {
		e.visualSwapLead(buf)
		return
	}
	v.Anchor.X, v.Lead.X = v.Lead.X, v.Anchor.X
	buf.SetCursor(v.Lead)
	e.scrollToCursor(buf)
	e.visualSelect(buf)
}

// saveVisualMarks records the selection endpoints so an operation on
// it can be repeated after visual mode is gone.
func (e *Engine) saveVisualMarks() {
	e.marks.Set(Mark{Kind: MarkVisualAnchor}, e.visual.Anchor)
	e.marks.Set(Mark{Kind: MarkVisualLead}, e.visual.Lead)
}

// visualSlices snapshots the selected text, one string per span.
func (e *Engine) visualSlices(buf TextBuffer) []string {
	out := make([]string, 0, len(e.visual.Spans))
	for _, s := range e.visual.Spans {
		out = append(out, buf.Slice(textbuf.Range{
			Start: buf.BytePos(s.Start),
			End:   buf.BytePos(s.End),
		}))
	}
	return out
}

// deleteVisualSpans removes every selected span, back to front so the
// earlier offsets stay valid.
func (e *Engine) deleteVisualSpans(buf TextBuffer) {
	e.syncAfterEdit()
	buf.BeginEdit()
	for i := len(e.visual.Spans) - 1; i >= 0; i-- {
		s := e.visual.Spans[i]
		buf.DeleteRange(textbuf.Range{
			Start: buf.BytePos(s.Start),
			End:   buf.BytePos(s.End),
		})
	}
	buf.EndEdit()
}

// visualDelete yanks and removes the selection.
func (e *Engine) visualDelete(buf TextBuffer) {
	e.saveVisualMarks()
	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())

	e.yank = e.visualSlices(buf)
	e.deleteVisualSpans(buf)

	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
}

// visualChange removes the selection without yanking; the engine
// enters insert mode after.
func (e *Engine) visualChange(buf TextBuffer) {
	e.saveVisualMarks()
	e.deleteVisualSpans(buf)
}

// visualYank copies the selection into the yank register.
func (e *Engine) visualYank(buf TextBuffer) {
	e.saveVisualMarks()
	e.marks.Set(Mark{Kind: MarkChangeStart}, buf.Cursor())
	e.yank = e.visualSlices(buf)
	e.marks.Set(Mark{Kind: MarkChangeEnd}, buf.Cursor())
}

// visualCopyClipboard copies the selection to the host clipboard.
// Block selections join with line breaks.
func (e *Engine) visualCopyClipboard(buf TextBuffer) {
	clip := buf.Clipboard()
	if clip == nil {
		return
	}
	e.saveVisualMarks()
	_ = clip.Set(strings.Join(e.visualSlices(buf), "\n"))
}
