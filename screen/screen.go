package screen

import "fmt"

// Cell dimensions of the base font. The layout math assumes fixed 8x8
// logical cells regardless of how a backend actually shapes its glyphs.
const (
	CharW = 8
	CharH = 8
)

// Screen wraps a pixel backend with the round-display widget API.
//
// A Screen owns its Device for the duration of a draw sequence and keeps no
// other state; every widget call is an immediate, idempotent rasterization.
type Screen struct {
	dev    Device
	width  int
	height int
}

// New validates the backend and binds a Screen to it.
func New(dev Device) (*Screen, error) {
	if dev == nil {
		return nil, errNilDevice
	}
	w, h := dev.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("screen: degenerate device size %dx%d", w, h)
	}
	return &Screen{dev: dev, width: w, height: h}, nil
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Center returns the viewport center in pixels.
func (s *Screen) Center() (x, y int) { return s.width / 2, s.height / 2 }

// Radius returns the radius of the inscribed circle, the effective visible
// area on a round panel.
func (s *Screen) Radius() int { return min(s.width, s.height) / 2 }

// MaxChars is the number of base-font cells that fit across the full width.
func (s *Screen) MaxChars() int { return s.width / CharW }

// Clear floods the display with black.
func (s *Screen) Clear() { s.dev.Fill(Black) }

// Fill floods the display with c.
func (s *Screen) Fill(c Color) { s.dev.Fill(c) }

// Show flushes the backend. What flushing means (SPI transfer, window
// present, nothing at all) is backend-defined.
func (s *Screen) Show() error { return s.dev.Show() }

// Pixel sets one pixel, silently dropping out-of-viewport coordinates.
func (s *Screen) Pixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.dev.Pixel(x, y, c)
}

// Line draws a segment between two points.
func (s *Screen) Line(x1, y1, x2, y2 int, c Color) {
	s.dev.Line(x1, y1, x2, y2, c)
}

// Circle draws a circle outline, or a filled disc when fill is set.
func (s *Screen) Circle(x, y, r int, c Color, fill bool) {
	if fill {
		s.fillCircle(x, y, r, c)
		return
	}
	s.strokeCircle(x, y, r, c)
}

// Rect draws a rectangle outline, or a filled rectangle when fill is set.
func (s *Screen) Rect(x, y, w, h int, c Color, fill bool) {
	if fill {
		s.fillRect(x, y, w, h, c)
		return
	}
	s.strokeRect(x, y, w, h, c)
}

// Text draws a string anchored at a cardinal position. Scale 1 uses the
// backend's base font; larger scales go through the scaled-text path.
func (s *Screen) Text(text string, at Position, c Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	x, y := s.resolve(at, len(text), scale)
	s.TextAt(text, x, y, c, scale)
}

// TextAt draws a string with its top-left corner at raw pixel coordinates.
func (s *Screen) TextAt(text string, x, y int, c Color, scale int) {
	if scale > 1 {
		s.drawScaledText(text, x, y, c, scale)
		return
	}
	s.dev.Text(text, x, y, c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
