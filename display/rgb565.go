package display

import "image/color"

// RGB565Buffer is an in-memory RGB565 framebuffer implementing
// drivers.Displayer. It suits panels whose bus wants the full frame pushed
// at once: draw into the buffer, then Display hands the raw bytes to the
// flush callback.
//
// Callers provide the layout (stride in bytes); pixels are little-endian
// RGB565, two bytes each.
type RGB565Buffer struct {
	buf    []byte
	stride int
	w, h   int
	flush  func([]byte) error
}

// NewRGB565Buffer allocates a w x h buffer. flush may be nil for purely
// offscreen use.
func NewRGB565Buffer(w, h int, flush func([]byte) error) *RGB565Buffer {
	if w <= 0 || h <= 0 {
		return &RGB565Buffer{}
	}
	stride := w * 2
	return &RGB565Buffer{
		buf:    make([]byte, stride*h),
		stride: stride,
		w:      w,
		h:      h,
		flush:  flush,
	}
}

func (t *RGB565Buffer) Size() (x, y int16) { return int16(t.w), int16(t.h) }

func (t *RGB565Buffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if t.buf == nil || ix < 0 || iy < 0 || ix >= t.w || iy >= t.h {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	off := iy*t.stride + ix*2
	if off < 0 || off+1 >= len(t.buf) {
		return
	}
	t.buf[off] = byte(p)
	t.buf[off+1] = byte(p >> 8)
}

func (t *RGB565Buffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if t.buf == nil {
		return nil
	}
	x0 := clampInt(int(x), 0, t.w)
	y0 := clampInt(int(y), 0, t.h)
	x1 := clampInt(int(x)+int(width), 0, t.w)
	y1 := clampInt(int(y)+int(height), 0, t.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for py := y0; py < y1; py++ {
		row := py * t.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(t.buf) {
				continue
			}
			t.buf[off] = lo
			t.buf[off+1] = hi
		}
	}
	return nil
}

func (t *RGB565Buffer) Display() error {
	if t.flush == nil {
		return nil
	}
	return t.flush(t.buf)
}

// Pix exposes the backing bytes (stride-packed, little-endian RGB565).
func (t *RGB565Buffer) Pix() []byte { return t.buf }

// At reads back one packed pixel, zero when out of bounds.
func (t *RGB565Buffer) At(x, y int) uint16 {
	if t.buf == nil || x < 0 || y < 0 || x >= t.w || y >= t.h {
		return 0
	}
	off := y*t.stride + x*2
	return uint16(t.buf[off]) | uint16(t.buf[off+1])<<8
}

func rgb565From888(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | uint16(b>>3)&0x1F
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
