package gfx

import "image/color"

// Color is an RGB565 pixel value, the wire format used by the small TFT and
// OLED panels this library emulates. Red occupies the top 5 bits, green the
// middle 6, blue the low 5.
type Color uint16

// Common panel colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = 0xFFE0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
)

// RGB packs 8-bit color components into RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA expands the color back to 8-bit components. The low bits are filled
// by replicating the high bits so that full-scale values round-trip
// (0x1F -> 0xFF, not 0xF8).
func (c Color) RGBA() (r, g, b, a uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2, 0xFF
}

// Color converts to the standard library color.Color interface.
func (c Color) Color() color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard library color to the nearest RGB565 value.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
