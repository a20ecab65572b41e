package screen

// Bitmap is an 8x8 monochrome face: one byte per row, bit 7 is the leftmost
// pixel, a set bit is lit.
type Bitmap [8]uint8

// Named pixel-art expressions. The table is immutable process-wide data.
var faces = map[string]Bitmap{
	"happy": {
		0b00000000,
		0b01100110,
		0b01100110,
		0b00000000,
		0b00000000,
		0b10000001,
		0b01000010,
		0b00111100,
	},
	"sad": {
		0b00000000,
		0b01100110,
		0b01100110,
		0b00000000,
		0b00000000,
		0b00111100,
		0b01000010,
		0b10000001,
	},
	"surprised": {
		0b00000000,
		0b01100110,
		0b01100110,
		0b00000000,
		0b00011000,
		0b00100100,
		0b00100100,
		0b00011000,
	},
	"sleeping": {
		0b00000000,
		0b00000000,
		0b01100110,
		0b00000000,
		0b00000000,
		0b00111100,
		0b00000000,
		0b00000000,
	},
	"angry": {
		0b01000010,
		0b00100100,
		0b01100110,
		0b00000000,
		0b00000000,
		0b00111100,
		0b01000010,
		0b00000000,
	},
	"love": {
		0b01100110,
		0b11111111,
		0b11111111,
		0b11111111,
		0b01111110,
		0b00111100,
		0b00011000,
		0b00000000,
	},
}

// FaceNames lists the named expressions.
func FaceNames() []string {
	return []string{"happy", "sad", "surprised", "sleeping", "angry", "love"}
}

// Face draws a named expression. Unknown names draw nothing. Compact mode
// uses a smaller grid shifted upward so a title and subtitle fit around it.
func (s *Screen) Face(name string, c Color, compact bool) {
	bits, ok := faces[name]
	if !ok {
		return
	}
	s.CustomFace(bits, c, compact)
}

// CustomFace draws a caller-supplied 8x8 bitmap as a grid of filled squares
// scaled to the viewport.
func (s *Screen) CustomFace(bits Bitmap, c Color, compact bool) {
	cx, cy := s.Center()
	r := s.Radius()

	// Cell size fills about three quarters of the diameter; compact mode
	// drops to half and leaves the bottom rows for text.
	cell := 2 * r * 3 / 4 / 8
	shift := 0
	if compact {
		cell = 2 * r / 2 / 8
		shift = -6
	}
	if cell < 1 {
		cell = 1
	}

	grid := cell * 8
	x0 := cx - grid/2
	y0 := cy - grid/2 + shift

	for row := 0; row < 8; row++ {
		b := bits[row]
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			// One pixel of gap keeps the pixel-art look at larger cells.
			side := cell
			if side > 2 {
				side--
			}
			s.fillRect(x0+col*cell, y0+row*cell, side, side, c)
		}
	}
}
