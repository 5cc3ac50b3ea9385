package gamepad

// Button identifies one digital gamepad button.
//
// The set is closed and ordinal-indexed: each button owns exactly one bit
// (1 << ordinal) in a slot's state mask, and no bit outside
// [FirstButton, LastButton) is ever set.
type Button int

// The supported buttons, in scan order.
const (
	ButtonInvalid Button = iota - 1
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonBack
	ButtonStart

	// FirstButton and LastButton bound the valid ordinals; LastButton is
	// one past the final button, so scans run [FirstButton, LastButton).
	FirstButton = ButtonUp
	LastButton  = ButtonStart + 1
)

// NumButtons is the number of distinct buttons.
const NumButtons = int(LastButton - FirstButton)

var buttonNames = [NumButtons]string{
	"Up", "Down", "Left", "Right",
	"A", "B", "X", "Y",
	"LB", "RB", "Back", "Start",
}

// String returns the button's display name, or "Invalid" for out-of-range
// values.
func (b Button) String() string {
	if b < FirstButton || b >= LastButton {
		return "Invalid"
	}
	return buttonNames[b]
}

// Valid reports whether b is a member of the button set.
func (b Button) Valid() bool {
	return b >= FirstButton && b < LastButton
}

// flag returns the button's bit in a state mask. Callers must have checked
// Valid first.
func (b Button) flag() uint32 {
	return 1 << uint(b)
}
