/*
 * Reflex for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package screen

import (
	"image/color"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont"

	"reflex/game"
)

// Screen renders the game's status text on an ili9341 panel. The ink
// colour and typeface are fixed at construction; callers choose only the
// background, the text and its placement.
type Screen struct {
	panel *ili9341.Device
	font  *tinyfont.Font
	ink   color.RGBA
}

func New(panel *ili9341.Device, font *tinyfont.Font, ink color.RGBA) *Screen {
	return &Screen{panel: panel, font: font, ink: ink}
}

func (s *Screen) Clear(c color.RGBA) {
	s.panel.FillScreen(c)
}

func (s *Screen) DrawText(x, y int16, text string, align game.Align) {
	if align == game.AlignCenter {
		// Centre on the glyph box width for the panel's current rotation
		_, w := tinyfont.LineWidth(s.font, text)
		pw, _ := s.panel.Size()
		x = (pw - int16(w)) / 2
	}
	tinyfont.WriteLine(s.panel, s.font, x, y, text, s.ink)
}
