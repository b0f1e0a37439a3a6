package vi

import (
	"testing"

	"github.com/dshills/vimotion/internal/textbuf"
)

func pos(x, y int) textbuf.Position { return textbuf.Position{X: x, Y: y} }

func TestRegistryNamedMarks(t *testing.T) {
	r := NewRegistry(10, 10)

	r.Set(Mark{Kind: MarkNamed, Name: 'a'}, pos(3, 5))
	got, ok := r.Get(Mark{Kind: MarkNamed, Name: 'a'})
	if !ok || got != pos(3, 5) {
		t.Fatalf("mark a = %v ok=%v", got, ok)
	}
	if _, ok := r.Get(Mark{Kind: MarkNamed, Name: 'b'}); ok {
		t.Fatal("unset mark resolved")
	}

	// Overwrite.
	r.Set(Mark{Kind: MarkNamed, Name: 'a'}, pos(0, 1))
	got, _ = r.Get(Mark{Kind: MarkNamed, Name: 'a'})
	if got != pos(0, 1) {
		t.Fatalf("mark a after overwrite = %v", got)
	}
}

func TestRegistryChangeHistory(t *testing.T) {
	r := NewRegistry(10, 10)

	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 0))
	r.Set(Mark{Kind: MarkChangeEnd}, pos(2, 0))
	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 4))
	r.Set(Mark{Kind: MarkChangeEnd}, pos(1, 4))

	// Walk back: newest first, then older, clamped at the oldest.
	got, ok := r.ChangeHistory(-1)
	if !ok || got != pos(0, 4) {
		t.Fatalf("first step back = %v ok=%v", got, ok)
	}
	got, ok = r.ChangeHistory(-1)
	if !ok || got != pos(0, 0) {
		t.Fatalf("second step back = %v ok=%v", got, ok)
	}
	got, ok = r.ChangeHistory(-5)
	if !ok || got != pos(0, 0) {
		t.Fatalf("clamped step back = %v ok=%v", got, ok)
	}

	// Forward again, then off the newest edge: a no-motion landing.
	got, ok = r.ChangeHistory(1)
	if !ok || got != pos(0, 4) {
		t.Fatalf("step forward = %v ok=%v", got, ok)
	}
	if _, ok = r.ChangeHistory(1); ok {
		t.Fatal("newest edge resolved to an entry")
	}
}

func TestRegistryChangeTruncatesForwardTail(t *testing.T) {
	r := NewRegistry(10, 10)

	for i := 0; i < 3; i++ {
		r.Set(Mark{Kind: MarkChangeStart}, pos(0, i))
	}
	r.ChangeHistory(-2) // index now at entry 1

	// A new change drops everything newer than the current index.
	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 9))
	if n := r.ChangeLen(); n != 3 {
		t.Fatalf("entries after truncate+append = %d, want 3", n)
	}
	got, ok := r.ChangeHistory(-1)
	if !ok || got != pos(0, 9) {
		t.Fatalf("newest after truncate = %v ok=%v", got, ok)
	}
	got, ok = r.ChangeHistory(-1)
	if !ok || got != pos(0, 1) {
		t.Fatalf("second newest = %v ok=%v", got, ok)
	}
}

func TestRegistryGetResetsIndex(t *testing.T) {
	r := NewRegistry(10, 10)

	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 0))
	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 1))
	r.ChangeHistory(-2)

	// `[ resolves the newest entry and snaps the index back to it.
	got, ok := r.Get(Mark{Kind: MarkChangeStart})
	if !ok || got != pos(0, 1) {
		t.Fatalf("change-start mark = %v ok=%v", got, ok)
	}
	got, ok = r.ChangeHistory(-1)
	if !ok || got != pos(0, 1) {
		t.Fatalf("step back after reset = %v ok=%v", got, ok)
	}
}

func TestRegistryJumpEviction(t *testing.T) {
	r := NewRegistry(3, 3)

	for i := 0; i < 5; i++ {
		r.Set(Mark{Kind: MarkJump}, pos(0, i))
	}
	if n := r.JumpLen(); n != 3 {
		t.Fatalf("jump entries = %d, want 3", n)
	}
	got, ok := r.JumpHistory(-3)
	if !ok || got != pos(0, 2) {
		t.Fatalf("oldest surviving jump = %v ok=%v", got, ok)
	}
}

func TestRegistryZeroLimitDisablesHistory(t *testing.T) {
	r := NewRegistry(0, 0)

	r.Set(Mark{Kind: MarkJump}, pos(0, 1))
	r.Set(Mark{Kind: MarkChangeStart}, pos(0, 1))
	if r.JumpLen() != 0 || r.ChangeLen() != 0 {
		t.Fatalf("histories recorded with zero limits: %d %d", r.JumpLen(), r.ChangeLen())
	}
	if _, ok := r.JumpHistory(-1); ok {
		t.Fatal("empty jump history resolved")
	}
}

func TestRegistrySetLimitsEvicts(t *testing.T) {
	r := NewRegistry(10, 10)

	for i := 0; i < 6; i++ {
		r.Set(Mark{Kind: MarkJump}, pos(0, i))
	}
	r.JumpHistory(-6) // index at the oldest entry

	r.SetLimits(2, 2)
	if n := r.JumpLen(); n != 2 {
		t.Fatalf("jump entries after shrink = %d, want 2", n)
	}
	// The index followed the eviction and still points at the oldest
	// surviving entry.
	got, ok := r.JumpHistory(0)
	if !ok || got != pos(0, 4) {
		t.Fatalf("entry at index after shrink = %v ok=%v", got, ok)
	}
}

func TestMarkForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Mark
	}{
		{'a', Mark{Kind: MarkNamed, Name: 'a'}},
		{'z', Mark{Kind: MarkNamed, Name: 'z'}},
		{'[', Mark{Kind: MarkChangeStart}},
		{']', Mark{Kind: MarkChangeEnd}},
		{'<', Mark{Kind: MarkVisualAnchor}},
		{'>', Mark{Kind: MarkVisualLead}},
		{'^', Mark{Kind: MarkInsert}},
		{'A', Mark{Kind: MarkNone}},
		{'1', Mark{Kind: MarkNone}},
	}
	for _, tc := range tests {
		if got := markForRune(tc.r); got != tc.want {
			t.Errorf("markForRune(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}
