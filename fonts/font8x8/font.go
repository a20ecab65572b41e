package font8x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is the reference 8x8 monospace bitmap font for the widget engine.
// Every glyph advances exactly 8 pixels, which is what the layout resolver's
// footprint math assumes.
//
// It implements tinyfont.Fonter so it can be drawn on any drivers.Displayer.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font8x8{}

type font8x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	idx := glyphIndex(g.r)
	if idx < 0 {
		idx = glyphIndex('?')
	}

	base := idx * 8
	for row := 0; row < 8; row++ {
		b := glyphData[base+row]
		// Bit 0 is the leftmost pixel.
		for col := 0; col < 8; col++ {
			if b&(1<<col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    8,
		Height:   8,
		XAdvance: 8,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font8x8) GetYAdvance() uint8 { return 8 }

func (f *font8x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Glyph copies the raw 8-byte bitmap for r, for callers that scale or pack
// glyphs themselves. ok is false for uncovered runes.
func Glyph(r rune) (rows [8]uint8, ok bool) {
	idx := glyphIndex(r)
	if idx < 0 {
		return rows, false
	}
	copy(rows[:], glyphData[idx*8:idx*8+8])
	return rows, true
}

func glyphIndex(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return int(r) - 0x20
	}
	switch r {
	case '°':
		return 95
	case ' ': // NBSP
		return 0
	}
	return -1
}
