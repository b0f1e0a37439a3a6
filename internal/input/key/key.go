package key

// Key identifies a pressed key. Printable characters use KeyRune with the
// rune carried on the Event; everything else is a symbolic key.
type Key uint8

const (
	// KeyNone is the zero value, no key.
	KeyNone Key = iota

	// KeyRune is a printable character key.
	KeyRune

	// KeyEscape is the Escape key.
	KeyEscape

	// KeyEnter is the Enter/Return key.
	KeyEnter

	// KeyTab is the Tab key.
	KeyTab

	// KeyBackspace is the Backspace key.
	KeyBackspace

	// KeyDelete is the forward-delete key.
	KeyDelete

	// KeyUp, KeyDown, KeyLeft, KeyRight are the arrow keys.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyHome and KeyEnd are the line navigation keys.
	KeyHome
	KeyEnd

	// KeyPageUp and KeyPageDown are the page navigation keys.
	KeyPageUp
	KeyPageDown
)

// String returns a short name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	default:
		return "unknown"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
