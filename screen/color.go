package screen

import "image/color"

// Color is an RGB color in 8-bit channels.
//
// Backends convert it to their native encoding: 4-bit grayscale for
// SSD1327-class panels, RGB565 for TFTs, plain RGB for the simulator.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Gray4 builds a Color from a legacy 4-bit grayscale value (0-15).
// The scalar is expanded to 8-bit channels at construction time.
func Gray4(v uint8) Color {
	if v > 15 {
		v = 15
	}
	v *= 17
	return Color{R: v, G: v, B: v}
}

// Gray4 returns the 4-bit grayscale encoding of c.
//
// Luminance uses fixed-point BT.601 weights. Colors built with the Gray4
// constructor round-trip exactly.
func (c Color) Gray4() uint8 {
	y := (uint32(c.R)*77 + uint32(c.G)*150 + uint32(c.B)*29) >> 8
	return uint8(y >> 4)
}

// RGB565 returns the 16-bit packed encoding of c.
func (c Color) RGB565() uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}

// RGBA returns c as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Grayscale palette used by the widget defaults, expressed as five SSD1327
// gray levels so it renders the same on 4-bit panels.
var (
	Black = Gray4(0)
	Dark  = Gray4(6)
	Gray  = Gray4(9)
	Light = Gray4(11)
	White = Gray4(15)
)

// Accent colors for RGB-capable backends. Grayscale backends quantize them
// through Gray4.
var (
	Red    = RGB(0xE0, 0x40, 0x40)
	Green  = RGB(0x40, 0xD0, 0x60)
	Yellow = RGB(0xE8, 0xC8, 0x40)
	Blue   = RGB(0x50, 0x80, 0xE8)
)
