package keyboard

import (
	"testing"

	"github.com/padkit/padkit/internal/gamepad"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	if len(km) != gamepad.NumButtons {
		t.Fatalf("DefaultKeymap has %d entries, want %d", len(km), gamepad.NumButtons)
	}

	covered := map[gamepad.Button]bool{}
	for key, b := range km {
		if !b.Valid() {
			t.Errorf("key %v maps to invalid button %d", key, b)
		}
		if covered[b] {
			t.Errorf("button %v mapped from more than one key", b)
		}
		covered[b] = true
	}
	for b := gamepad.FirstButton; b < gamepad.LastButton; b++ {
		if !covered[b] {
			t.Errorf("button %v has no key", b)
		}
	}
}

func TestInit_OnlySlotZeroAvailable(t *testing.T) {
	g, err := gamepad.New(New(nil), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !g.IsAvailable(0) {
		t.Error("IsAvailable(0) = false, want true")
	}
	for num := 1; num < g.Count(); num++ {
		if g.IsAvailable(num) {
			t.Errorf("IsAvailable(%d) = true, want false", num)
		}
	}
}

func TestPadName(t *testing.T) {
	g, err := gamepad.New(New(nil), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, ok := g.Name(0); !ok || got != "Keyboard" {
		t.Errorf("Name(0) = %q, %v, want %q, true", got, ok, "Keyboard")
	}
	if _, ok := g.Name(1); ok {
		t.Error("Name(1) ok = true, want false (slot unavailable)")
	}
}
