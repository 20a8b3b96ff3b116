package main

import (
	"image/color"

	"github.com/plus3/blockfall/game"
)

// tintColors is the block palette, indexed by game.Tint.
var tintColors = [game.PaletteSize]color.RGBA{
	{R: 0x03, G: 0x40, B: 0xad, A: 0xff}, // blue
	{G: 0xe6, A: 0xff},                   // green
	{R: 0xff, G: 0xd4, A: 0xff},          // yellow
	{R: 0xff, G: 0x47, A: 0xff},          // orange
	{R: 0xff, A: 0xff},                   // red
}

// hostPalette is the render palette in place before a session starts. It
// stands in for the host application's color scheme and is what the theme
// guard must put back on teardown.
var hostPalette = game.ThemeState{
	Background: color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
	Grid:       color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
	Accent:     color.RGBA{R: 0xba, G: 0xba, B: 0xba, A: 0xff},
}

// gamePalette is the override applied for the duration of a session.
var gamePalette = game.ThemeState{
	Background: color.RGBA{A: 0xff},
	Grid:       color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
	Accent:     color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
}

// windowPalette is the window's color settings surface. The draw code reads
// whatever state is currently applied, so acquiring and restoring the theme
// visibly switches the whole window.
type windowPalette struct {
	state game.ThemeState
}

func newWindowPalette() *windowPalette {
	return &windowPalette{state: hostPalette}
}

func (p *windowPalette) Snapshot() (game.ThemeState, error) {
	return p.state, nil
}

func (p *windowPalette) Apply(st game.ThemeState) error {
	p.state = st
	return nil
}
