package key

import "strings"

// Modifier is a bitmask of modifier keys held during a key press.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl is the Control key.
	ModCtrl

	// ModAlt is the Alt/Option key.
	ModAlt
)

// HasShift returns true if Shift is set.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Ctrl is set.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is set.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// With returns the modifier set with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns the modifier set with mod removed.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String returns a canonical "C-A-S" style representation.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "C")
	}
	if m.HasAlt() {
		parts = append(parts, "A")
	}
	if m.HasShift() {
		parts = append(parts, "S")
	}
	return strings.Join(parts, "-")
}
