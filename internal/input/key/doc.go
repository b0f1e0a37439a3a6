// Package key defines the key-press tokens the Vi engine consumes.
//
// The host event loop delivers one Event per key press. Events carry either
// a printable rune or a symbolic key, plus the modifier state. The package
// also translates tcell key events into this form so terminal hosts do not
// leak tcell types into the engine.
package key
