package gamepad

import "testing"

func TestButtonFlags_Distinct(t *testing.T) {
	var seen uint32
	for b := FirstButton; b < LastButton; b++ {
		f := b.flag()
		if f == 0 {
			t.Errorf("flag(%v) = 0", b)
		}
		if seen&f != 0 {
			t.Errorf("flag(%v) = %#x overlaps another button", b, f)
		}
		seen |= f
	}
	if seen != (1<<uint(NumButtons))-1 {
		t.Errorf("combined flags = %#x, want %#x", seen, (1<<uint(NumButtons))-1)
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonUp, "Up"},
		{ButtonStart, "Start"},
		{ButtonInvalid, "Invalid"},
		{LastButton, "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Button(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestButtonValid(t *testing.T) {
	if ButtonInvalid.Valid() {
		t.Error("ButtonInvalid.Valid() = true, want false")
	}
	if LastButton.Valid() {
		t.Error("LastButton.Valid() = true, want false")
	}
	for b := FirstButton; b < LastButton; b++ {
		if !b.Valid() {
			t.Errorf("%v.Valid() = false, want true", b)
		}
	}
}
