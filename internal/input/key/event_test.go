package key

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEventPredicates(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		isRune   bool
		modified bool
	}{
		{"plain rune", NewRuneEvent('a', ModNone), true, false},
		{"shifted rune", NewRuneEvent('A', ModShift), true, false},
		{"ctrl rune", NewRuneEvent('d', ModCtrl), true, true},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), false, false},
		{"shifted special", NewSpecialEvent(KeyTab, ModShift), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsRune(); got != tt.isRune {
				t.Errorf("IsRune() = %v, want %v", got, tt.isRune)
			}
			if got := tt.event.IsModified(); got != tt.modified {
				t.Errorf("IsModified() = %v, want %v", got, tt.modified)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('d', ModCtrl), "C-d"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsCtrl(t *testing.T) {
	ev := NewRuneEvent('d', ModCtrl)
	if !ev.IsCtrl('d') || !ev.IsCtrl('D') {
		t.Error("expected C-d to match both cases")
	}
	if NewRuneEvent('d', ModNone).IsCtrl('d') {
		t.Error("plain d should not match IsCtrl")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), NewRuneEvent('x', ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), NewSpecialEvent(KeyEscape, ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), NewSpecialEvent(KeyEnter, ModNone)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), NewSpecialEvent(KeyBackspace, ModNone)},
		{"ctrl-d", tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), NewRuneEvent('d', ModCtrl)},
		{"ctrl-v", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), NewRuneEvent('v', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTcell(tt.ev); !got.Equal(tt.want) {
				t.Errorf("FromTcell() = %v, want %v", got, tt.want)
			}
		})
	}
}
