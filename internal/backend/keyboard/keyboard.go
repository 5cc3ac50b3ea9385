// Package keyboard implements a gamepad backend that drives slot 0 from
// the keyboard, for machines without a physical gamepad.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/padkit/padkit/internal/gamepad"
)

// Keymap associates keyboard keys with gamepad buttons.
type Keymap map[ebiten.Key]gamepad.Button

// DefaultKeymap is the mapping used when none is supplied: arrows for the
// d-pad, Z/X for A/B, A/S for X/Y, Q/W for the bumpers, Backspace and
// Enter for Back and Start.
func DefaultKeymap() Keymap {
	return Keymap{
		ebiten.KeyArrowUp:    gamepad.ButtonUp,
		ebiten.KeyArrowDown:  gamepad.ButtonDown,
		ebiten.KeyArrowLeft:  gamepad.ButtonLeft,
		ebiten.KeyArrowRight: gamepad.ButtonRight,
		ebiten.KeyZ:          gamepad.ButtonA,
		ebiten.KeyX:          gamepad.ButtonB,
		ebiten.KeyA:          gamepad.ButtonX,
		ebiten.KeyS:          gamepad.ButtonY,
		ebiten.KeyQ:          gamepad.ButtonLB,
		ebiten.KeyW:          gamepad.ButtonRB,
		ebiten.KeyBackspace:  gamepad.ButtonBack,
		ebiten.KeyEnter:      gamepad.ButtonStart,
	}
}

// Backend maps keyboard state onto gamepad slot 0.
type Backend struct {
	keymap Keymap
}

// New creates a keyboard backend. A nil keymap selects DefaultKeymap.
func New(keymap Keymap) *Backend {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Backend{keymap: keymap}
}

// Init marks every slot but 0 unavailable; the keyboard is always attached.
func (k *Backend) Init(g *gamepad.Gamepads) error {
	for num := 1; num < g.Count(); num++ {
		g.SetAvailable(num, false)
	}
	return nil
}

// Poll reports each mapped key that is currently held.
func (k *Backend) Poll(g *gamepad.Gamepads) {
	for key, button := range k.keymap {
		if ebiten.IsKeyPressed(key) {
			g.SetButton(0, button, true)
		}
	}
}

// Free implements gamepad.Backend; the keyboard holds no device handles.
func (k *Backend) Free(g *gamepad.Gamepads) {}

// PadName names slot 0 after the device it really is.
func (k *Backend) PadName(g *gamepad.Gamepads, num int) (string, bool) {
	if num != 0 {
		return "", false
	}
	return "Keyboard", true
}
