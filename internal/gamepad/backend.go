package gamepad

// Backend supplies device input to a Gamepads system. Implementations
// translate real hardware state into SetButton calls; the tracker itself
// never touches a device.
//
// Poll and Free are best-effort: their outcomes are not surfaced to the
// caller. Only Init can fail, and an Init failure aborts the tracker's own
// initialization.
type Backend interface {
	// Init is called once during tracker initialization. It may probe
	// hardware and mark slots unavailable via SetAvailable.
	Init(g *Gamepads) error

	// Poll is called exactly once per Update, after every slot's state has
	// rotated into the previous tick. It is expected to call SetButton for
	// each currently-held button on each attached slot, and may toggle
	// availability to reflect hot-plug state.
	Poll(g *Gamepads)

	// Free is called once during Free, before the tracker resets itself,
	// so the backend can release device handles.
	Free(g *Gamepads)
}

// NameResolver is implemented by backends that resolve gamepad names
// themselves (from the device) instead of using the tracker's stored
// defaults. The tracker's nil/range/availability checks still apply before
// the resolver is consulted.
type NameResolver interface {
	PadName(g *Gamepads, num int) (string, bool)
}

// Nop is a Backend with no device support. Every slot stays available and
// no buttons are ever reported, which suits tests and environments without
// a real input source.
type Nop struct{}

// Init implements Backend.
func (Nop) Init(*Gamepads) error { return nil }

// Poll implements Backend.
func (Nop) Poll(*Gamepads) {}

// Free implements Backend.
func (Nop) Free(*Gamepads) {}
