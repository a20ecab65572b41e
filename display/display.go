// Package display adapts TinyGo display drivers and raw framebuffers to the
// screen.Device contract.
//
// Any tinygo.org/x/drivers Displayer can back a screen.Screen through New;
// colors are converted to the device's native encoding by the driver or, for
// the in-memory Gray4/RGB565 buffers in this package, by the buffer itself.
package display

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"roundel/fonts/font8x8"
	"roundel/screen"
)

// rectFiller is the optional fast-fill capability many TinyGo drivers
// expose (ili9341, st77xx, and the buffers below).
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Device adapts a drivers.Displayer to screen.Device. Text renders through
// tinyfont with the reference 8x8 font, so the engine's cell math matches
// the glyphs exactly.
type Device struct {
	disp drivers.Displayer
	w, h int
}

// New wraps a TinyGo display driver. The driver must already be configured;
// this package never touches power or init sequences.
func New(disp drivers.Displayer) (*Device, error) {
	if disp == nil {
		return nil, errors.New("display: nil displayer")
	}
	w, h := disp.Size()
	if w <= 0 || h <= 0 {
		return nil, errors.New("display: displayer reports zero size")
	}
	return &Device{disp: disp, w: int(w), h: int(h)}, nil
}

func (d *Device) Size() (w, h int) { return d.w, d.h }

func (d *Device) Fill(c screen.Color) {
	d.FillRect(0, 0, d.w, d.h, c)
}

func (d *Device) Pixel(x, y int, c screen.Color) {
	d.disp.SetPixel(int16(x), int16(y), c.RGBA())
}

// Line draws with the integer Bresenham walk; drivers have no line
// primitive of their own.
func (d *Device) Line(x1, y1, x2, y2 int, c screen.Color) {
	rgba := c.RGBA()
	dx := abs(x2 - x1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dy := -abs(y2 - y1)
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy
	for {
		d.disp.SetPixel(int16(x1), int16(y1), rgba)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func (d *Device) Text(s string, x, y int, c screen.Color) {
	// tinyfont positions glyphs on the baseline; the engine hands us the
	// top-left corner of the 8x8 cell.
	tinyfont.WriteLine(d.disp, font8x8.Font, int16(x), int16(y+7), s, c.RGBA())
}

// FillRect uses the driver's native rectangle fill when it has one.
func (d *Device) FillRect(x, y, w, h int, c screen.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := d.disp.(rectFiller); ok {
		_ = f.FillRectangle(int16(x), int16(y), int16(w), int16(h), c.RGBA())
		return
	}
	rgba := c.RGBA()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			d.disp.SetPixel(int16(x+col), int16(y+row), rgba)
		}
	}
}

func (d *Device) Show() error { return d.disp.Display() }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
