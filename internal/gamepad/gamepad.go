// Package gamepad tracks per-button gamepad state across discrete update
// ticks and exposes the edge-detection queries (down / pressed / released)
// a GUI layer polls each frame.
//
// The tracker owns a fixed array of slots, one per potential gamepad. Each
// slot keeps the current tick's held-button mask alongside the previous
// tick's, so press and release events fall out of comparing the two. Device
// I/O is delegated entirely to a Backend.
package gamepad

import (
	"errors"
	"fmt"
	"strconv"
)

// Compile-time configuration, mirroring the tracker's fixed-capacity model.
const (
	// MaxGamepads is the number of slots a tracker holds. Slot identity is
	// positional and the count never changes at runtime.
	MaxGamepads = 4

	// NamePrefix is the prefix for default slot names ("Controller 1" ...).
	NamePrefix = "Controller "

	// NameSize bounds the length of a stored slot name.
	NameSize = 16
)

var (
	// ErrNilGamepads indicates an operation was attempted on a nil tracker.
	ErrNilGamepads = errors.New("nil gamepads")

	// ErrBackendInit indicates the backend's init hook reported failure.
	ErrBackendInit = errors.New("backend init failed")
)

// pad is one gamepad slot. Slots are never added or removed, only toggled
// available.
type pad struct {
	available bool
	buttons   uint32 // held during this tick
	prev      uint32 // held during the prior tick
	name      string
}

// Gamepads tracks the connection and button state of up to MaxGamepads
// gamepads. The zero value is inert (every slot unavailable); use New or
// Init to bring it up.
//
// All methods are safe on a nil receiver and return neutral values. No
// method is safe for concurrent use: the caller drives Update and all
// queries from a single frame thread.
type Gamepads struct {
	pads     [MaxGamepads]pad
	backend  Backend
	ctx      any
	userData any
}

// New creates and initializes a tracker. backend may be nil, in which case
// a no-op backend is used. ctx and userData are opaque: the tracker stores
// them untouched for the backend's and caller's convenience.
func New(backend Backend, ctx, userData any) (*Gamepads, error) {
	g := &Gamepads{}
	if err := g.Init(backend, ctx, userData); err != nil {
		return nil, err
	}
	return g, nil
}

// Init fully resets the tracker and brings it to the initial state: every
// slot available with its default name and no buttons held. The backend's
// init hook runs after the reset; if it fails, Init returns an error
// wrapping ErrBackendInit and the tracker is left zeroed, with every slot
// unavailable.
//
// Both masks of every slot are equal after Init, so the first Update cannot
// manufacture phantom press events.
func (g *Gamepads) Init(backend Backend, ctx, userData any) error {
	if g == nil {
		return ErrNilGamepads
	}

	*g = Gamepads{
		backend:  backend,
		ctx:      ctx,
		userData: userData,
	}
	if g.backend == nil {
		g.backend = Nop{}
	}

	for i := range g.pads {
		g.pads[i].available = true
		g.pads[i].name = defaultName(i)
	}

	if err := g.backend.Init(g); err != nil {
		*g = Gamepads{}
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}

	// The backend may have reported buttons during init; seed the previous
	// masks from the current ones so no edges fire on the first tick.
	for i := range g.pads {
		g.pads[i].prev = g.pads[i].buttons
	}

	return nil
}

// Free notifies the backend so it can release device handles, then resets
// the tracker to its zero state. Calling Free twice is safe; the second
// call operates on already-zeroed state. No-op on nil.
func (g *Gamepads) Free() {
	if g == nil {
		return
	}
	if g.backend != nil {
		g.backend.Free(g)
	}
	*g = Gamepads{}
}

// Update advances the tracker by one tick. Every available slot's current
// mask rotates into its previous mask and clears; only then does the
// backend's poll hook run, so the backend never observes a half-rotated
// tracker. The backend reports held buttons through SetButton.
//
// Update is non-reentrant: calling it from inside the poll hook is
// undefined. No-op on nil.
func (g *Gamepads) Update() {
	if g == nil {
		return
	}

	for i := range g.pads {
		if !g.pads[i].available {
			continue
		}
		g.pads[i].prev = g.pads[i].buttons
		g.pads[i].buttons = 0
	}

	if g.backend != nil {
		g.backend.Poll(g)
	}
}

// SetButton records button as held (down=true) or released (down=false) on
// slot num for the current tick. This is the sole write path into the
// current mask and is idempotent. It is a no-op on a nil tracker, an
// out-of-range slot or button, or an unavailable slot.
func (g *Gamepads) SetButton(num int, button Button, down bool) {
	if g == nil || num < 0 || num >= MaxGamepads || !g.pads[num].available || !button.Valid() {
		return
	}

	if down {
		g.pads[num].buttons |= button.flag()
	} else {
		g.pads[num].buttons &^= button.flag()
	}
}

// SetAvailable marks slot num as able (or unable) to produce events.
// Backends toggle this from their init and poll hooks to reflect hot-plug
// state. The slot's stored name survives unavailability. No-op on a nil
// tracker or an out-of-range slot.
func (g *Gamepads) SetAvailable(num int, available bool) {
	if g == nil || num < 0 || num >= MaxGamepads {
		return
	}
	g.pads[num].available = available
}

// IsButtonDown reports whether button is held on slot num this tick. A
// negative num checks every available slot and reports true if any holds
// the button.
func (g *Gamepads) IsButtonDown(num int, button Button) bool {
	if g == nil || !button.Valid() {
		return false
	}

	if num < 0 {
		for i := range g.pads {
			if g.pads[i].available && g.pads[i].buttons&button.flag() != 0 {
				return true
			}
		}
		return false
	}

	if num >= MaxGamepads || !g.pads[num].available {
		return false
	}
	return g.pads[num].buttons&button.flag() != 0
}

// IsButtonPressed reports whether button transitioned from up to down
// between the previous tick and this one on slot num. A negative num
// reports true if any available slot individually shows the rising edge.
func (g *Gamepads) IsButtonPressed(num int, button Button) bool {
	if g == nil || !button.Valid() {
		return false
	}

	if num < 0 {
		for i := range g.pads {
			if g.pads[i].available && pressed(&g.pads[i], button) {
				return true
			}
		}
		return false
	}

	if num >= MaxGamepads || !g.pads[num].available {
		return false
	}
	return pressed(&g.pads[num], button)
}

// IsButtonReleased reports whether button transitioned from down to up
// between the previous tick and this one on slot num. A negative num
// reports true if any available slot individually shows the falling edge.
func (g *Gamepads) IsButtonReleased(num int, button Button) bool {
	if g == nil || !button.Valid() {
		return false
	}

	if num < 0 {
		for i := range g.pads {
			if g.pads[i].available && released(&g.pads[i], button) {
				return true
			}
		}
		return false
	}

	if num >= MaxGamepads || !g.pads[num].available {
		return false
	}
	return released(&g.pads[num], button)
}

func pressed(p *pad, button Button) bool {
	return p.prev&button.flag() == 0 && p.buttons&button.flag() != 0
}

func released(p *pad, button Button) bool {
	return p.prev&button.flag() != 0 && p.buttons&button.flag() == 0
}

// AnyButtonPressed returns the first button showing a rising edge this
// tick. With a negative num it scans slots in ascending index order and,
// within each slot, buttons in ascending ordinal order; the first match
// wins. With a specific num only that slot's buttons are scanned. The
// ordering is part of the contract.
//
// It reports ok=false when nothing was pressed, num is out of range, or
// the named slot is unavailable.
func (g *Gamepads) AnyButtonPressed(num int) (padNum int, button Button, ok bool) {
	if g == nil || num >= MaxGamepads {
		return 0, ButtonInvalid, false
	}

	if num < 0 {
		for n := 0; n < MaxGamepads; n++ {
			for b := FirstButton; b < LastButton; b++ {
				if g.IsButtonPressed(n, b) {
					return n, b, true
				}
			}
		}
		return 0, ButtonInvalid, false
	}

	if !g.pads[num].available {
		return 0, ButtonInvalid, false
	}

	for b := FirstButton; b < LastButton; b++ {
		if g.IsButtonPressed(num, b) {
			return num, b, true
		}
	}
	return 0, ButtonInvalid, false
}

// IsAvailable reports whether slot num can produce events. A negative num
// reports whether at least one slot is available.
func (g *Gamepads) IsAvailable(num int) bool {
	if g == nil {
		return false
	}

	if num < 0 {
		for i := range g.pads {
			if g.pads[i].available {
				return true
			}
		}
		return false
	}

	if num >= MaxGamepads {
		return false
	}
	return g.pads[num].available
}

// Count returns the number of slots the tracker could ever report: the
// fixed capacity, not the count of attached devices. Zero on nil.
func (g *Gamepads) Count() int {
	if g == nil {
		return 0
	}
	return MaxGamepads
}

// Name returns the name of slot num. It reports ok=false on a nil tracker,
// an out-of-range slot, or an unavailable slot. A backend implementing
// NameResolver overrides stored-name lookup entirely; the absence rules
// above still apply first.
func (g *Gamepads) Name(num int) (string, bool) {
	if g == nil || num < 0 || num >= MaxGamepads || !g.pads[num].available {
		return "", false
	}

	if r, ok := g.backend.(NameResolver); ok {
		return r.PadName(g, num)
	}
	return g.pads[num].name, true
}

// SetName replaces the stored name of slot num, truncated to NameSize.
// Backends may use it to persist a device name; the name survives the slot
// becoming unavailable. No-op on a nil tracker or an out-of-range slot.
func (g *Gamepads) SetName(num int, name string) {
	if g == nil || num < 0 || num >= MaxGamepads {
		return
	}
	if len(name) > NameSize {
		name = name[:NameSize]
	}
	g.pads[num].name = name
}

// Context returns the opaque context supplied at Init.
func (g *Gamepads) Context() any {
	if g == nil {
		return nil
	}
	return g.ctx
}

// UserData returns the opaque user data supplied at Init.
func (g *Gamepads) UserData() any {
	if g == nil {
		return nil
	}
	return g.userData
}

func defaultName(num int) string {
	name := NamePrefix + strconv.Itoa(num+1)
	if len(name) > NameSize {
		name = name[:NameSize]
	}
	return name
}
