//go:build !linux

package main

import (
	"fmt"

	"github.com/padkit/padkit/internal/gamepad"
)

func jsBackend() (gamepad.Backend, error) {
	return nil, fmt.Errorf("%w: js", ErrBackendUnsupported)
}
