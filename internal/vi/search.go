package vi

import (
	"regexp"

	"github.com/dshills/vimotion/internal/textbuf"
)

// Direction of a search.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Mul combines two directions: repeating a backward search backwards
// goes forward again.
func (d Direction) Mul(o Direction) Direction {
	if d == o {
		return Forward
	}
	return Backward
}

// Finds is the single-character search state (f/F/t/T and ;/,).
// The match list is only valid for one row and one target character.
type Finds struct {
	RangeSet

	Term    rune
	hasTerm bool
	Row     int
	Dir     Direction
	Till    bool
	Idx     int // index into Spans, -1 when unselected
}

// NewFinds creates an empty find state under the reserved finds tag.
func NewFinds() Finds {
	return Finds{RangeSet: RangeSet{Tag: TagFinds}, Idx: -1}
}

// ClearAll drops the find state and schedules the highlight wipe.
func (f *Finds) ClearAll() {
	f.Clear()
	f.Term = 0
	f.hasTerm = false
	f.Row = 0
	f.Dir = Forward
	f.Till = false
	f.Idx = -1
}

// scan rebuilds the per-row match list when the target character or row
// changed; otherwise it only refreshes direction and till.
func (f *Finds) scan(buf TextBuffer, term rune, dir Direction, till bool) {
	row := buf.Cursor().Y
	if !f.hasTerm || f.Term != term || f.Row != row {
		f.Term = term
		f.hasTerm = true
		f.Row = row
		f.Dir = dir
		f.Till = till
		f.Idx = -1
		f.Spans = f.Spans[:0]
		f.Sync = SyncToBuffer

		it := buf.LineGraphemesAt(row)
		want := string(term)
		for {
			g, ok := it.Next()
			if !ok {
				break
			}
			if g.Str == want {
				f.Spans = append(f.Spans, g.Span)
			}
		}
	} else {
		f.Row = row
		f.Dir = dir
		f.Till = till
		f.Idx = -1
	}
}

// selectIdx picks the ordinal match relative to the cursor and stores
// it. dir multiplies with the stored search direction.
func (f *Finds) selectIdx(buf TextBuffer, mul int, dir Direction) {
	c := buf.ByteAt(buf.Cursor()).Start
	eff := f.Dir.Mul(dir)

	// A till-backward match leaves the cursor on the byte right after
	// the target; step back inside it so the same match is not
	// reselected forever.
	if f.Till && eff == Backward && f.Idx >= 0 && f.Idx < len(f.Spans) {
		if c == f.Spans[f.Idx].End {
			c = f.Spans[f.Idx].Start
		}
	}

	f.Idx = pickIndex(f.Spans, c, mul, eff)
}

// Matches is the pattern-search state (/ ? * # and n/N).
type Matches struct {
	RangeSet

	Term    string
	hasTerm bool
	Dir     Direction

	// Tmp marks an incremental as-you-type search; it is rerun per
	// keystroke and never becomes register history.
	Tmp bool
	Idx int
}

// NewMatches creates an empty match state under the reserved matches tag.
func NewMatches() Matches {
	return Matches{RangeSet: RangeSet{Tag: TagMatches}, Idx: -1}
}

// ClearAll drops the search state and schedules the highlight wipe.
func (m *Matches) ClearAll() {
	m.Clear()
	m.Term = ""
	m.hasTerm = false
	m.Dir = Forward
	m.Tmp = false
	m.Idx = -1
}

// scan compiles the pattern and collects every match in the buffer,
// reading through the buffer's rune-reader cursor so the document is
// never materialized. A compile failure surfaces as *SearchError; the
// previous match list stays untouched in that case.
func (m *Matches) scan(buf TextBuffer, term string, dir Direction, tmp bool) error {
	if m.hasTerm && m.Term == term {
		m.Dir = dir
		m.Tmp = tmp
		m.Idx = -1
		return nil
	}

	var spans []textbuf.ByteSpan
	if term != "" {
		re, err := regexp.Compile(term)
		if err != nil {
			return &SearchError{Term: term, Err: err}
		}
		base := 0
		limit := buf.Len()
		for base <= limit {
			loc := re.FindReaderIndex(buf.Reader(base))
			if loc == nil {
				break
			}
			spans = append(spans, textbuf.ByteSpan{Start: base + loc[0], End: base + loc[1]})
			if loc[1] > loc[0] {
				base += loc[1]
			} else {
				base += loc[0] + 1
			}
		}
	}

	m.Term = term
	m.hasTerm = true
	m.Dir = dir
	m.Tmp = tmp
	m.Idx = -1
	m.Spans = spans
	m.Sync = SyncToBuffer
	return nil
}

// selectIdx picks the ordinal match relative to the cursor.
func (m *Matches) selectIdx(buf TextBuffer, mul int, dir Direction) {
	c := buf.ByteAt(buf.Cursor()).Start
	m.Idx = pickIndex(m.Spans, c, mul, m.Dir.Mul(dir))
}

// current returns the start position of the selected match.
func (m *Matches) current(buf TextBuffer) (textbuf.Position, bool) {
	if m.Idx < 0 || m.Idx >= len(m.Spans) {
		return textbuf.Position{}, false
	}
	return buf.BytePos(m.Spans[m.Idx].Start), true
}

// pickIndex selects a match ordinal relative to byte offset c and
// advances mul-1 further. Selection wraps: past the last match it
// continues at the first, and before the first at the last.
func pickIndex(spans []textbuf.ByteSpan, c, mul int, dir Direction) int {
	n := len(spans)
	if n == 0 {
		return -1
	}
	steps := mul - 1
	if steps < 0 {
		steps = 0
	}

	if dir == Forward {
		idx := -1
		for i, s := range spans {
			if s.Start > c {
				idx = i
				break
			}
		}
		if idx < 0 {
			idx = 0 // wrap
		}
		return (idx + steps) % n
	}

	idx := -1
	for i, s := range spans {
		if s.End < c {
			idx = i
		}
	}
	if idx < 0 {
		idx = n - 1 // wrap
	}
	return ((idx-steps)%n + n) % n
}
