//go:build linux

// Package linuxjs implements a gamepad backend over the Linux joystick
// interface. Slot n reads /dev/input/jsn; devices are opened nonblocking
// and their event streams drained once per poll.
package linuxjs

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/padkit/padkit/internal/gamepad"
)

const (
	devicePattern = "/dev/input/js%d"

	eventSize = 8

	// Joystick event types. Init-flagged events carry the device's state
	// at open time and are folded in like live events.
	eventButton = 0x01
	eventAxis   = 0x02
	eventInit   = 0x80

	// JSIOCGNAME(128): read the device name.
	ioctlName = 0x80006a13 + (128 << 16)

	// Axis deflection beyond this counts as a held d-pad direction.
	axisThreshold = 0x4000
)

// buttonMap translates joystick button numbers to tracker buttons,
// following the usual BTN_A.. ordering of Linux gamepads.
var buttonMap = [...]gamepad.Button{
	gamepad.ButtonA,
	gamepad.ButtonB,
	gamepad.ButtonX,
	gamepad.ButtonY,
	gamepad.ButtonLB,
	gamepad.ButtonRB,
	gamepad.ButtonBack,
	gamepad.ButtonStart,
}

// event is one decoded js_event record.
type event struct {
	time   uint32
	value  int16
	typ    uint8
	number uint8
}

// device is the backend-owned state for one slot.
type device struct {
	fd   int
	name string
	held uint32
}

// Backend reads Linux joystick devices, one per slot.
type Backend struct {
	devs [gamepad.MaxGamepads]device
	buf  [eventSize]byte
}

// New creates a Linux joystick backend.
func New() *Backend {
	b := &Backend{}
	for num := range b.devs {
		b.devs[num].fd = -1
	}
	return b
}

// Init opens whatever devices are present and marks the rest unavailable.
func (b *Backend) Init(g *gamepad.Gamepads) error {
	for num := range b.devs {
		if !b.open(g, num) {
			g.SetAvailable(num, false)
		}
	}
	return nil
}

// Poll reopens missing devices, drains pending events into each device's
// held mask, and replays the masks through SetButton.
func (b *Backend) Poll(g *gamepad.Gamepads) {
	for num := range b.devs {
		dev := &b.devs[num]
		if dev.fd < 0 && !b.open(g, num) {
			continue
		}

		b.drain(g, num)
		if dev.fd < 0 {
			continue
		}

		for btn := gamepad.FirstButton; btn < gamepad.LastButton; btn++ {
			if dev.held&(1<<uint(btn)) != 0 {
				g.SetButton(num, btn, true)
			}
		}
	}
}

// Free closes every open device.
func (b *Backend) Free(g *gamepad.Gamepads) {
	for num := range b.devs {
		b.close(num)
	}
}

// PadName reports the kernel-supplied device name.
func (b *Backend) PadName(g *gamepad.Gamepads, num int) (string, bool) {
	if num < 0 || num >= gamepad.MaxGamepads || b.devs[num].fd < 0 {
		return "", false
	}
	return b.devs[num].name, true
}

// open attempts to attach slot num to its device node.
func (b *Backend) open(g *gamepad.Gamepads, num int) bool {
	path := fmt.Sprintf(devicePattern, num)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return false
	}

	dev := &b.devs[num]
	dev.fd = fd
	dev.held = 0
	dev.name = deviceName(fd)

	log.Info().Int("slot", num).Str("path", path).Str("name", dev.name).Msg("joystick attached")
	g.SetAvailable(num, true)
	if dev.name != "" {
		g.SetName(num, dev.name)
	}
	return true
}

// drain folds all pending events into the slot's held mask. A hard read
// error detaches the device; EAGAIN just means the queue is empty.
func (b *Backend) drain(g *gamepad.Gamepads, num int) {
	dev := &b.devs[num]
	for {
		n, err := unix.Read(dev.fd, b.buf[:])
		if err == unix.EAGAIN {
			return
		}
		if err != nil || n != eventSize {
			log.Info().Int("slot", num).Str("name", dev.name).Msg("joystick detached")
			b.close(num)
			g.SetAvailable(num, false)
			return
		}
		dev.held = applyEvent(dev.held, parseEvent(b.buf[:]))
	}
}

func (b *Backend) close(num int) {
	if b.devs[num].fd >= 0 {
		unix.Close(b.devs[num].fd)
		b.devs[num].fd = -1
	}
	b.devs[num].held = 0
}

// parseEvent decodes one little-endian js_event record.
func parseEvent(buf []byte) event {
	return event{
		time:   binary.LittleEndian.Uint32(buf[0:4]),
		value:  int16(binary.LittleEndian.Uint16(buf[4:6])),
		typ:    buf[6],
		number: buf[7],
	}
}

// applyEvent returns the held mask after folding in one event. Buttons map
// through buttonMap; axes 0 and 1 act as the d-pad, with deflection past
// axisThreshold holding a direction and anything closer to center
// releasing both ends of that axis.
func applyEvent(held uint32, e event) uint32 {
	switch e.typ &^ eventInit {
	case eventButton:
		if int(e.number) >= len(buttonMap) {
			return held
		}
		flag := uint32(1) << uint(buttonMap[e.number])
		if e.value != 0 {
			return held | flag
		}
		return held &^ flag

	case eventAxis:
		var neg, pos gamepad.Button
		switch e.number {
		case 0:
			neg, pos = gamepad.ButtonLeft, gamepad.ButtonRight
		case 1:
			neg, pos = gamepad.ButtonUp, gamepad.ButtonDown
		default:
			return held
		}
		held &^= (1 << uint(neg)) | (1 << uint(pos))
		if e.value <= -axisThreshold {
			held |= 1 << uint(neg)
		} else if e.value >= axisThreshold {
			held |= 1 << uint(pos)
		}
		return held
	}

	return held
}

// deviceName issues JSIOCGNAME against fd. An empty string means the ioctl
// failed; the tracker's default name stands in that case.
func deviceName(fd int) string {
	var name [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(ioctlName), uintptr(unsafe.Pointer(&name[0])))
	if errno != 0 {
		return ""
	}
	for i, c := range name {
		if c == 0 {
			return string(name[:i])
		}
	}
	return string(name[:])
}
