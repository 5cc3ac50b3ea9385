// Package ebitenpad implements a gamepad backend on top of Ebiten's input
// API. It assigns connected devices to tracker slots in order, follows
// hot-plug by toggling slot availability, and reports held buttons through
// the standard gamepad layout when the device provides one.
package ebitenpad

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/padkit/padkit/internal/gamepad"
)

// standardButtons maps each tracker button to its standard gamepad layout
// counterpart.
var standardButtons = map[gamepad.Button]ebiten.StandardGamepadButton{
	gamepad.ButtonUp:    ebiten.StandardGamepadButtonLeftTop,
	gamepad.ButtonDown:  ebiten.StandardGamepadButtonLeftBottom,
	gamepad.ButtonLeft:  ebiten.StandardGamepadButtonLeftLeft,
	gamepad.ButtonRight: ebiten.StandardGamepadButtonLeftRight,
	gamepad.ButtonA:     ebiten.StandardGamepadButtonRightBottom,
	gamepad.ButtonB:     ebiten.StandardGamepadButtonRightRight,
	gamepad.ButtonX:     ebiten.StandardGamepadButtonRightLeft,
	gamepad.ButtonY:     ebiten.StandardGamepadButtonRightTop,
	gamepad.ButtonLB:    ebiten.StandardGamepadButtonFrontTopLeft,
	gamepad.ButtonRB:    ebiten.StandardGamepadButtonFrontTopRight,
	gamepad.ButtonBack:  ebiten.StandardGamepadButtonCenterLeft,
	gamepad.ButtonStart: ebiten.StandardGamepadButtonCenterRight,
}

// Backend polls Ebiten for gamepad state. The slot-to-device association
// lives here, not on the tracker: each slot remembers the ebiten.GamepadID
// it was assigned and whether a device is currently attached.
type Backend struct {
	ids      [gamepad.MaxGamepads]ebiten.GamepadID
	attached [gamepad.MaxGamepads]bool
	buf      []ebiten.GamepadID
}

// New creates an ebiten-backed gamepad backend.
func New() *Backend {
	return &Backend{}
}

// Init probes the initially connected devices and marks device-less slots
// unavailable.
func (e *Backend) Init(g *gamepad.Gamepads) error {
	e.refresh(g)
	return nil
}

// Poll refreshes device assignments and reports every held button on every
// attached slot.
func (e *Backend) Poll(g *gamepad.Gamepads) {
	e.refresh(g)

	for num := 0; num < g.Count(); num++ {
		if !e.attached[num] {
			continue
		}
		id := e.ids[num]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			for b, sb := range standardButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, sb) {
					g.SetButton(num, b, true)
				}
			}
			continue
		}
		// No standard layout: fall back to raw buttons in ordinal order.
		for b := gamepad.FirstButton; b < gamepad.LastButton; b++ {
			if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b)) {
				g.SetButton(num, b, true)
			}
		}
	}
}

// Free releases the slot assignments.
func (e *Backend) Free(g *gamepad.Gamepads) {
	for num := range e.attached {
		e.attached[num] = false
	}
}

// PadName reports the device name for an attached slot.
func (e *Backend) PadName(g *gamepad.Gamepads, num int) (string, bool) {
	if num < 0 || num >= gamepad.MaxGamepads || !e.attached[num] {
		return "", false
	}
	return ebiten.GamepadName(e.ids[num]), true
}

// refresh reconciles slot assignments with the currently connected devices.
// Attached slots keep their device for as long as it remains connected;
// newly connected devices take the lowest free slot.
func (e *Backend) refresh(g *gamepad.Gamepads) {
	e.buf = ebiten.AppendGamepadIDs(e.buf[:0])

	connected := make(map[ebiten.GamepadID]bool, len(e.buf))
	for _, id := range e.buf {
		connected[id] = true
	}

	// Drop slots whose device went away.
	for num := range e.ids {
		if e.attached[num] && !connected[e.ids[num]] {
			log.Info().Int("slot", num).Int("id", int(e.ids[num])).Msg("gamepad disconnected")
			e.attached[num] = false
			g.SetAvailable(num, false)
		}
	}

	// Assign new devices to free slots, lowest slot first.
	for _, id := range e.buf {
		if e.slotOf(id) >= 0 {
			continue
		}
		num := e.freeSlot()
		if num < 0 {
			break
		}
		log.Info().Int("slot", num).Int("id", int(id)).Str("name", ebiten.GamepadName(id)).Msg("gamepad connected")
		e.ids[num] = id
		e.attached[num] = true
		g.SetAvailable(num, true)
		g.SetName(num, ebiten.GamepadName(id))
	}

	// Slots that never got a device stay unavailable.
	for num := range e.attached {
		if !e.attached[num] {
			g.SetAvailable(num, false)
		}
	}
}

func (e *Backend) slotOf(id ebiten.GamepadID) int {
	for num := range e.ids {
		if e.attached[num] && e.ids[num] == id {
			return num
		}
	}
	return -1
}

func (e *Backend) freeSlot() int {
	for num := range e.attached {
		if !e.attached[num] {
			return num
		}
	}
	return -1
}
