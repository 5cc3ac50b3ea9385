//go:build linux

package main

import (
	"github.com/padkit/padkit/internal/backend/linuxjs"
	"github.com/padkit/padkit/internal/gamepad"
)

func jsBackend() (gamepad.Backend, error) {
	return linuxjs.New(), nil
}
