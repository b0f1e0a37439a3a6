package textbuf

import "sort"

// AddStyle annotates the byte span with the given tag.
func (b *Buffer) AddStyle(span ByteSpan, tag int) {
	if span.IsEmpty() {
		return
	}
	spans := append(b.styles[tag], span)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	b.styles[tag] = spans
}

// RemoveStyle removes an annotation previously added with AddStyle.
// Only an exact span match is removed.
func (b *Buffer) RemoveStyle(span ByteSpan, tag int) {
	spans := b.styles[tag]
	for i, s := range spans {
		if s == span {
			b.styles[tag] = append(spans[:i], spans[i+1:]...)
			return
		}
	}
}

// StylesIn returns all spans tagged with tag that intersect the given
// span, in start order.
func (b *Buffer) StylesIn(span ByteSpan, tag int) []ByteSpan {
	var out []ByteSpan
	for _, s := range b.styles[tag] {
		if s.Overlaps(span) {
			out = append(out, s)
		}
	}
	return out
}

// Tags returns the tags that currently have at least one annotation.
func (b *Buffer) Tags() []int {
	var out []int
	for tag, spans := range b.styles {
		if len(spans) > 0 {
			out = append(out, tag)
		}
	}
	sort.Ints(out)
	return out
}
