package vi

import "github.com/dshills/vimotion/internal/textbuf"

// ChangePair is one change-history entry: where an edit began and where
// it ended.
type ChangePair struct {
	Start textbuf.Position
	End   textbuf.Position
}

// Registry holds named marks plus the two bounded histories. Histories
// carry a current index in [0, len]; len is the "newest" edge and is a
// valid no-motion landing spot.
type Registry struct {
	named map[rune]textbuf.Position

	insert       textbuf.Position
	hasInsert    bool
	visualAnchor textbuf.Position
	hasAnchor    bool
	visualLead   textbuf.Position
	hasLead      bool

	change    []ChangePair
	changeIdx int
	jump      []textbuf.Position
	jumpIdx   int

	jumpLimit   int
	changeLimit int
}

// NewRegistry creates a registry with the given history bounds. A bound
// of zero disables that history.
func NewRegistry(jumpLimit, changeLimit int) *Registry {
	return &Registry{
		named:       make(map[rune]textbuf.Position),
		jumpLimit:   jumpLimit,
		changeLimit: changeLimit,
	}
}

// SetLimits changes the history bounds, evicting the oldest entries
// when a history is already over the new bound.
func (r *Registry) SetLimits(jumpLimit, changeLimit int) {
	r.jumpLimit = jumpLimit
	r.changeLimit = changeLimit
	if jumpLimit >= 0 && len(r.jump) > jumpLimit {
		drop := len(r.jump) - jumpLimit
		r.jump = r.jump[drop:]
		r.jumpIdx = clampIdx(r.jumpIdx, -drop, len(r.jump))
	}
	if changeLimit >= 0 && len(r.change) > changeLimit {
		drop := len(r.change) - changeLimit
		r.change = r.change[drop:]
		r.changeIdx = clampIdx(r.changeIdx, -drop, len(r.change))
	}
}

// Set records pos under the mark. Setting MarkChangeStart truncates the
// forward tail of the change history and appends a fresh pair; setting
// MarkChangeEnd updates the most recent pair; MarkJump appends to the
// jump history the same way.
func (r *Registry) Set(mark Mark, pos textbuf.Position) {
	switch mark.Kind {
	case MarkNamed:
		if mark.Name >= 'a' && mark.Name <= 'z' {
			r.named[mark.Name] = pos
		}
	case MarkInsert:
		r.insert, r.hasInsert = pos, true
	case MarkVisualAnchor:
		r.visualAnchor, r.hasAnchor = pos, true
	case MarkVisualLead:
		r.visualLead, r.hasLead = pos, true
	case MarkChangeStart:
		if r.changeLimit <= 0 {
			return
		}
		if r.changeIdx < len(r.change) {
			r.change = r.change[:r.changeIdx+1]
		}
		r.change = append(r.change, ChangePair{Start: pos, End: pos})
		if len(r.change) > r.changeLimit {
			r.change = r.change[len(r.change)-r.changeLimit:]
		}
		r.changeIdx = len(r.change)
	case MarkChangeEnd:
		if n := len(r.change); n > 0 {
			r.change[n-1].End = pos
		}
	case MarkJump:
		if r.jumpLimit <= 0 {
			return
		}
		if r.jumpIdx < len(r.jump) {
			r.jump = r.jump[:r.jumpIdx+1]
		}
		r.jump = append(r.jump, pos)
		if len(r.jump) > r.jumpLimit {
			r.jump = r.jump[len(r.jump)-r.jumpLimit:]
		}
		r.jumpIdx = len(r.jump)
	}
}

// Get resolves a mark to its position. Looking up MarkChangeStart,
// MarkChangeEnd or MarkJump returns the newest entry and resets that
// history's index to the newest edge.
func (r *Registry) Get(mark Mark) (textbuf.Position, bool) {
	switch mark.Kind {
	case MarkNamed:
		pos, ok := r.named[mark.Name]
		return pos, ok
	case MarkInsert:
		return r.insert, r.hasInsert
	case MarkVisualAnchor:
		return r.visualAnchor, r.hasAnchor
	case MarkVisualLead:
		return r.visualLead, r.hasLead
	case MarkChangeStart:
		r.changeIdx = len(r.change)
		if len(r.change) == 0 {
			return textbuf.Position{}, false
		}
		return r.change[len(r.change)-1].Start, true
	case MarkChangeEnd:
		r.changeIdx = len(r.change)
		if len(r.change) == 0 {
			return textbuf.Position{}, false
		}
		return r.change[len(r.change)-1].End, true
	case MarkJump:
		r.jumpIdx = len(r.jump)
		if len(r.jump) == 0 {
			return textbuf.Position{}, false
		}
		return r.jump[len(r.jump)-1], true
	}
	return textbuf.Position{}, false
}

// clampIdx moves idx by n within [0, length].
func clampIdx(idx, n, length int) int {
	idx += n
	if idx < 0 {
		idx = 0
	}
	if idx > length {
		idx = length
	}
	return idx
}

// JumpHistory moves the jump index by n (negative = older). The
// returned position is valid only when the index lands on a stored
// entry; landing at the newest edge is a successful no-motion.
func (r *Registry) JumpHistory(n int) (textbuf.Position, bool) {
	r.jumpIdx = clampIdx(r.jumpIdx, n, len(r.jump))
	if r.jumpIdx < len(r.jump) {
		return r.jump[r.jumpIdx], true
	}
	return textbuf.Position{}, false
}

// ChangeHistory moves the change index by n (negative = older) and
// returns the start position of the entry landed on.
func (r *Registry) ChangeHistory(n int) (textbuf.Position, bool) {
	r.changeIdx = clampIdx(r.changeIdx, n, len(r.change))
	if r.changeIdx < len(r.change) {
		return r.change[r.changeIdx].Start, true
	}
	return textbuf.Position{}, false
}

// JumpLen returns the number of stored jump entries.
func (r *Registry) JumpLen() int { return len(r.jump) }

// ChangeLen returns the number of stored change entries.
func (r *Registry) ChangeLen() int { return len(r.change) }
