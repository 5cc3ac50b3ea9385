package ebitenpad

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/padkit/padkit/internal/gamepad"
)

func TestStandardButtons_CoversButtonSet(t *testing.T) {
	if len(standardButtons) != gamepad.NumButtons {
		t.Fatalf("standardButtons has %d entries, want %d", len(standardButtons), gamepad.NumButtons)
	}

	seen := map[ebiten.StandardGamepadButton]gamepad.Button{}
	for b := gamepad.FirstButton; b < gamepad.LastButton; b++ {
		sb, ok := standardButtons[b]
		if !ok {
			t.Errorf("no standard layout mapping for %v", b)
			continue
		}
		if prev, dup := seen[sb]; dup {
			t.Errorf("%v and %v map to the same standard button %d", prev, b, sb)
		}
		seen[sb] = b
	}
}

func TestSlotBookkeeping(t *testing.T) {
	e := New()

	if got := e.freeSlot(); got != 0 {
		t.Errorf("freeSlot() = %d on empty backend, want 0", got)
	}
	if got := e.slotOf(7); got != -1 {
		t.Errorf("slotOf(7) = %d on empty backend, want -1", got)
	}

	e.ids[0] = 7
	e.attached[0] = true
	e.ids[1] = 9
	e.attached[1] = true

	if got := e.slotOf(9); got != 1 {
		t.Errorf("slotOf(9) = %d, want 1", got)
	}
	if got := e.freeSlot(); got != 2 {
		t.Errorf("freeSlot() = %d, want 2", got)
	}

	for num := range e.attached {
		e.attached[num] = true
	}
	if got := e.freeSlot(); got != -1 {
		t.Errorf("freeSlot() = %d with all slots taken, want -1", got)
	}
}

func TestPadName_AbsenceRules(t *testing.T) {
	e := New()
	g, err := gamepad.New(nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, ok := e.PadName(g, 0); ok {
		t.Error("PadName ok = true for detached slot, want false")
	}
	if _, ok := e.PadName(g, -1); ok {
		t.Error("PadName ok = true for negative slot, want false")
	}
	if _, ok := e.PadName(g, gamepad.MaxGamepads); ok {
		t.Error("PadName ok = true for out-of-range slot, want false")
	}
}
