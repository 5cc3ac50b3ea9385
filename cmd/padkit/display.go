package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/padkit/padkit/internal/gamepad"
)

// Viewer geometry, in unscaled pixels.
const (
	cellSize   = 12
	labelWidth = 72
	headerH    = 16
	footerH    = 16

	gridW = gamepad.NumButtons * cellSize
	gridH = gamepad.MaxGamepads * cellSize

	viewWidth  = labelWidth + gridW
	viewHeight = headerH + gridH + footerH
)

// Cell colors for the button matrix.
var (
	colorBackdrop    = color.RGBA{0x10, 0x14, 0x1C, 0xFF}
	colorUnavailable = color.RGBA{0x1A, 0x1E, 0x28, 0xFF}
	colorIdle        = color.RGBA{0x3A, 0x40, 0x50, 0xFF}
	colorDown        = color.RGBA{0x4C, 0xAF, 0x50, 0xFF}
	colorPressed     = color.RGBA{0xF0, 0xF4, 0xFF, 0xFF}
	colorReleased    = color.RGBA{0xD0, 0x60, 0x48, 0xFF}
)

// Viewer implements the Ebiten game interface and renders one tracker tick
// per frame as a pads-by-buttons matrix.
type Viewer struct {
	pads        *gamepad.Gamepads
	backendName string
	grid        *ebiten.Image
	pixels      []byte // Pre-allocated pixel buffer to avoid GC pressure
	lastPress   string
}

// NewViewer creates a viewer for the given tracker.
func NewViewer(pads *gamepad.Gamepads, backendName string) *Viewer {
	return &Viewer{
		pads:        pads,
		backendName: backendName,
		grid:        ebiten.NewImage(gridW, gridH),
		pixels:      make([]byte, gridW*gridH*4), // RGBA format
	}
}

// Update advances the tracker by one tick.
// This is called 60 times per second by Ebiten.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.pads.Update()

	if num, button, ok := v.pads.AnyButtonPressed(-1); ok {
		name, _ := v.pads.Name(num)
		if name == "" {
			name = fmt.Sprintf("pad %d", num)
		}
		v.lastPress = fmt.Sprintf("%s: %s", name, button)
	}

	return nil
}

// Draw renders the button matrix and status text.
// This is called after Update.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)

	// Paint every cell into the pre-allocated buffer, then push the whole
	// grid at once. One WritePixels call beats per-cell fill rects.
	for num := 0; num < v.pads.Count(); num++ {
		for b := gamepad.FirstButton; b < gamepad.LastButton; b++ {
			v.paintCell(int(b), num, v.cellColor(num, b))
		}
	}
	v.grid.WritePixels(v.pixels)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(labelWidth, headerH)
	screen.DrawImage(v.grid, &op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("padkit [%s]  esc quits", v.backendName))

	for num := 0; num < v.pads.Count(); num++ {
		label, ok := v.pads.Name(num)
		if !ok {
			label = "-"
		}
		ebitenutil.DebugPrintAt(screen, label, 2, headerH+num*cellSize-2)
	}

	if v.lastPress != "" {
		ebitenutil.DebugPrintAt(screen, "last: "+v.lastPress, 2, headerH+gridH)
	}
}

// cellColor picks the cell color for one slot/button pair, favoring edges
// over the steady held state so single-tick events stay visible.
func (v *Viewer) cellColor(num int, b gamepad.Button) color.RGBA {
	switch {
	case !v.pads.IsAvailable(num):
		return colorUnavailable
	case v.pads.IsButtonPressed(num, b):
		return colorPressed
	case v.pads.IsButtonReleased(num, b):
		return colorReleased
	case v.pads.IsButtonDown(num, b):
		return colorDown
	default:
		return colorIdle
	}
}

// paintCell fills one cell, leaving a one-pixel gutter on the right and
// bottom so the matrix reads as separate keys.
func (v *Viewer) paintCell(col, row int, c color.RGBA) {
	x0 := col * cellSize
	y0 := row * cellSize
	for y := y0; y < y0+cellSize-1; y++ {
		for x := x0; x < x0+cellSize-1; x++ {
			offset := (y*gridW + x) * 4
			v.pixels[offset] = c.R
			v.pixels[offset+1] = c.G
			v.pixels[offset+2] = c.B
			v.pixels[offset+3] = c.A
		}
	}
}

// Layout returns the game screen size.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return viewWidth, viewHeight
}
