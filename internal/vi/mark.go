package vi

// MarkKind identifies a mark slot.
type MarkKind uint8

const (
	// MarkNone is the zero value; no mark.
	MarkNone MarkKind = iota

	// MarkNamed is one of the a-z marks.
	MarkNamed

	// MarkInsert is the position of the last insert ('^).
	MarkInsert

	// MarkVisualAnchor is the anchor of the last visual selection ('<).
	MarkVisualAnchor

	// MarkVisualLead is the lead of the last visual selection ('>).
	MarkVisualLead

	// MarkChangeStart is the start of the last change ('[).
	MarkChangeStart

	// MarkChangeEnd is the end of the last change (']).
	MarkChangeEnd

	// MarkJump is the most recent jump position ('').
	MarkJump
)

// Mark names a saved text position.
type Mark struct {
	Kind MarkKind
	Name rune // only for MarkNamed
}

// NamedMark returns the mark for one of the a-z slots.
func NamedMark(r rune) Mark {
	return Mark{Kind: MarkNamed, Name: r}
}

// markForRune maps the key following m, ' or ` onto a mark.
// Returns MarkNone for anything unassigned.
func markForRune(r rune) Mark {
	switch {
	case r >= 'a' && r <= 'z':
		return NamedMark(r)
	case r == '\'' || r == '`':
		return Mark{Kind: MarkJump}
	case r == '[':
		return Mark{Kind: MarkChangeStart}
	case r == ']':
		return Mark{Kind: MarkChangeEnd}
	case r == '<':
		return Mark{Kind: MarkVisualAnchor}
	case r == '>':
		return Mark{Kind: MarkVisualLead}
	case r == '^':
		return Mark{Kind: MarkInsert}
	default:
		return Mark{}
	}
}
