package main

import (
	"github.com/padkit/padkit/internal/backend/ebitenpad"
	"github.com/padkit/padkit/internal/backend/keyboard"
	"github.com/padkit/padkit/internal/gamepad"
)

// selectBackend maps the --backend flag to a backend implementation. The
// flag's enum constraint guarantees the name is one of auto, keyboard, js.
func selectBackend(name string) (gamepad.Backend, error) {
	switch name {
	case "keyboard":
		return keyboard.New(nil), nil
	case "js":
		return jsBackend()
	default:
		return ebitenpad.New(), nil
	}
}
