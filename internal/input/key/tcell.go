package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell translates a tcell key event into an Event.
// Named keys are mapped first; the Ctrl-letter range is folded back onto
// rune events with ModCtrl so the engine sees "C-d" rather than a raw
// control code.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Modifiers: mods}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Modifiers: mods}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Modifiers: mods}
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods.With(ModCtrl)}
	}

	return Event{Key: KeyNone, Modifiers: mods}
}
