package game

import "image/color"

// Align selects horizontal text placement on the display.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// Display is the presentation surface. The machine calls it only at
// state entry; coordinates are pixels from the top-left of the panel.
type Display interface {
	Clear(c color.RGBA)
	DrawText(x, y int16, text string, align Align)
}

// LED is a single boolean output.
type LED interface {
	Set(on bool)
	Toggle()
}
