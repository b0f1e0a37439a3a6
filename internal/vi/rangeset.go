package vi

import "github.com/dshills/vimotion/internal/textbuf"

// Reserved style tags. These three ids are a fixed wire contract with
// the rendering layer and must never be reassigned.
const (
	TagVisual  = 997
	TagFinds   = 998
	TagMatches = 999
)

// SyncDirection says which side holds the authoritative copy of a
// highlighted-range list.
type SyncDirection uint8

const (
	// SyncNone: nothing pending.
	SyncNone SyncDirection = iota

	// SyncToBuffer: the engine's list is authoritative and must be
	// pushed into the buffer's style storage.
	SyncToBuffer

	// SyncFromBuffer: the engine's list is stale (an edit shifted byte
	// offsets) and must be rebuilt from the buffer's style storage.
	SyncFromBuffer
)

// RangeSet is an ordered list of byte spans under one style tag, plus
// the pending sync direction. At most one direction is pending at a
// time; whoever performs the sync resets the flag to SyncNone.
type RangeSet struct {
	Tag   int
	Spans []textbuf.ByteSpan
	Sync  SyncDirection
}

// Clear drops all spans and schedules a push so the buffer's copy is
// emptied too.
func (rs *RangeSet) Clear() {
	rs.Spans = rs.Spans[:0]
	rs.Sync = SyncToBuffer
}

// display performs the pending synchronization against the buffer and
// resets the flag. ToBuffer replaces everything stored under the tag
// within the whole buffer; FromBuffer rebuilds the span list from the
// buffer's own annotations.
func (rs *RangeSet) display(buf TextBuffer) {
	switch rs.Sync {
	case SyncToBuffer:
		whole := textbuf.ByteSpan{Start: 0, End: buf.Len()}
		for _, s := range buf.StylesIn(whole, rs.Tag) {
			buf.RemoveStyle(s, rs.Tag)
		}
		for _, s := range rs.Spans {
			buf.AddStyle(s, rs.Tag)
		}
	case SyncFromBuffer:
		whole := textbuf.ByteSpan{Start: 0, End: buf.Len()}
		rs.Spans = append(rs.Spans[:0], buf.StylesIn(whole, rs.Tag)...)
	}
	rs.Sync = SyncNone
}
