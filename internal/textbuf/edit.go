package textbuf

// BeginEdit opens an undo group. Nested groups collapse into the
// outermost one.
func (b *Buffer) BeginEdit() {
	if b.editDepth == 0 {
		b.pushUndo()
	}
	b.editDepth++
}

// EndEdit closes an undo group.
func (b *Buffer) EndEdit() {
	if b.editDepth > 0 {
		b.editDepth--
	}
}

func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, b.snap())
	b.redo = b.redo[:0]
}

func (b *Buffer) snap() snapshot {
	styles := make(map[int][]ByteSpan, len(b.styles))
	for tag, spans := range b.styles {
		cp := make([]ByteSpan, len(spans))
		copy(cp, spans)
		styles[tag] = cp
	}
	return snapshot{text: b.text, cursor: b.cursor, styles: styles}
}

func (b *Buffer) restore(s snapshot) {
	b.text = s.text
	b.styles = s.styles
	b.reindex()
	b.cursor = b.clamp(s.cursor)
	b.SetScrollOffset(b.scroll)
}

// beforeMutate records undo state unless an edit group already did.
func (b *Buffer) beforeMutate() {
	if b.editDepth == 0 {
		b.pushUndo()
	}
}

// InsertText inserts s at pos and returns the position after the
// inserted text. The cursor moves to the returned position.
func (b *Buffer) InsertText(pos Position, s string) Position {
	if s == "" {
		return b.clamp(pos)
	}
	b.beforeMutate()
	off := b.PosToByte(pos)
	b.text = b.text[:off] + s + b.text[off:]
	b.reindex()
	b.shiftStyles(off, len(s))
	end := b.BytePos(off + len(s))
	b.cursor = end
	return end
}

// InsertNewline inserts a line break at pos. The cursor moves to the
// start of the new line.
func (b *Buffer) InsertNewline(pos Position) Position {
	return b.InsertText(pos, "\n")
}

// DeleteRange removes the text covered by the range. The cursor moves
// to the start of the removed range.
func (b *Buffer) DeleteRange(r Range) {
	start := b.PosToByte(r.Start)
	end := b.PosToByte(r.End)
	if end < start {
		start, end = end, start
	}
	if start == end {
		return
	}
	b.beforeMutate()
	b.text = b.text[:start] + b.text[end:]
	b.reindex()
	b.shiftStyles(start, start-end)
	b.cursor = b.BytePos(start)
}

// Undo reverts the most recent edit group. Returns false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	s := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.redo = append(b.redo, b.snap())
	b.restore(s)
	return true
}

// Redo re-applies the most recently undone edit group. Returns false
// when there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	s := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.undo = append(b.undo, b.snap())
	b.restore(s)
	return true
}

// shiftStyles adjusts style spans after an edit at off of delta bytes.
// Spans fully behind the edit move; spans overlapping it are dropped.
func (b *Buffer) shiftStyles(off, delta int) {
	for tag, spans := range b.styles {
		kept := spans[:0]
		for _, s := range spans {
			switch {
			case s.End <= off:
				kept = append(kept, s)
			case s.Start >= off:
				s.Start += delta
				s.End += delta
				if s.Start >= off && !s.IsEmpty() {
					kept = append(kept, s)
				}
			}
		}
		b.styles[tag] = kept
	}
}
