// Package textbuf provides the text-buffer collaborator the Vi engine edits.
//
// The buffer stores text addressed two ways: byte offsets into the full
// text, and (column, row) positions where columns count grapheme clusters.
// It carries the cursor, the scroll viewport, snapshot-based undo, and style
// annotations keyed by an integer tag. The engine pushes its highlight
// ranges into the style storage and re-derives them from it after edits.
package textbuf
