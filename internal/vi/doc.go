// Package vi implements a Vi-style modal command engine for text
// widgets: an incremental key-by-key command parser, a mode controller
// for Normal/Insert/Visual, motion resolution, change execution, marks
// and bounded jump/change histories, incremental search, and lazy
// highlight-range synchronization with the text buffer.
//
// The engine never owns a text buffer. Every call borrows one through
// the TextBuffer interface and returns before the next key event is
// accepted; there is no concurrency inside this package.
package vi
