// Package main provides the padkit CLI application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padkit/padkit/internal/gamepad"
)

var (
	// ErrInvalidScale indicates the scale factor is out of valid range.
	ErrInvalidScale = errors.New("scale must be between 1 and 10")

	// ErrBackendUnsupported indicates the selected backend does not exist
	// on this platform.
	ErrBackendUnsupported = errors.New("backend not supported on this platform")
)

// CLI represents the command-line interface structure.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Open the interactive gamepad viewer."`
	Buttons ButtonsCmd `cmd:"" help:"List the tracked buttons and their mask bits."`
}

// RunCmd opens a window visualizing live gamepad state.
type RunCmd struct {
	Scale   int    `help:"Display scale factor (1-10)." default:"3"`
	Backend string `help:"Input backend." enum:"auto,keyboard,js" default:"auto"`
}

// Run executes the run command.
func (c *RunCmd) Run() error {
	// Validate scale factor
	if c.Scale < 1 || c.Scale > 10 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, c.Scale)
	}

	backend, err := selectBackend(c.Backend)
	if err != nil {
		return err
	}

	pads, err := gamepad.New(backend, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize gamepads: %w", err)
	}
	defer pads.Free()

	viewer := NewViewer(pads, c.Backend)

	// Configure Ebiten window
	ebiten.SetWindowTitle("padkit - gamepad viewer")
	ebiten.SetWindowSize(viewWidth*c.Scale, viewHeight*c.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(viewer); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}

	return nil
}

// ButtonsCmd lists the button set.
type ButtonsCmd struct{}

// Run executes the buttons command.
func (c *ButtonsCmd) Run() error {
	fmt.Printf("Tracked buttons (%d slots per tracker):\n", gamepad.MaxGamepads)
	for b := gamepad.FirstButton; b < gamepad.LastButton; b++ {
		fmt.Printf("  %2d  %-6s mask 0x%04x\n", int(b), b, 1<<uint(b))
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("padkit"),
		kong.Description("A frame-polled gamepad state viewer."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
