package display

import (
	"image/color"

	"roundel/screen"
)

// Gray4Buffer is an in-memory 4-bit grayscale framebuffer implementing
// drivers.Displayer, laid out like SSD1327 GDDRAM: two pixels per byte, the
// even-x pixel in the high nibble. Colors quantize through the BT.601
// luminance used everywhere else in the engine.
type Gray4Buffer struct {
	buf   []byte
	w, h  int
	flush func([]byte) error
}

// NewGray4Buffer allocates a w x h buffer; w is rounded up to even so rows
// pack whole bytes. flush may be nil for offscreen use.
func NewGray4Buffer(w, h int, flush func([]byte) error) *Gray4Buffer {
	if w <= 0 || h <= 0 {
		return &Gray4Buffer{}
	}
	if w%2 != 0 {
		w++
	}
	return &Gray4Buffer{
		buf:   make([]byte, w/2*h),
		w:     w,
		h:     h,
		flush: flush,
	}
}

func (t *Gray4Buffer) Size() (x, y int16) { return int16(t.w), int16(t.h) }

func (t *Gray4Buffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if t.buf == nil || ix < 0 || iy < 0 || ix >= t.w || iy >= t.h {
		return
	}
	v := screen.RGB(c.R, c.G, c.B).Gray4()
	off := iy*(t.w/2) + ix/2
	if ix%2 == 0 {
		t.buf[off] = t.buf[off]&0x0F | v<<4
	} else {
		t.buf[off] = t.buf[off]&0xF0 | v
	}
}

func (t *Gray4Buffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, t.w)
	y0 := clampInt(int(y), 0, t.h)
	x1 := clampInt(int(x)+int(width), 0, t.w)
	y1 := clampInt(int(y)+int(height), 0, t.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.SetPixel(int16(px), int16(py), c)
		}
	}
	return nil
}

func (t *Gray4Buffer) Display() error {
	if t.flush == nil {
		return nil
	}
	return t.flush(t.buf)
}

// Pix exposes the packed nibbles, ready for an SSD1327-style bus write.
func (t *Gray4Buffer) Pix() []byte { return t.buf }

// At reads back one pixel's 4-bit value, zero when out of bounds.
func (t *Gray4Buffer) At(x, y int) uint8 {
	if t.buf == nil || x < 0 || y < 0 || x >= t.w || y >= t.h {
		return 0
	}
	b := t.buf[y*(t.w/2)+x/2]
	if x%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}
