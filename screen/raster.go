package screen

import "math"

// Rasterization primitives. Everything here works in backend pixel space,
// clips per-pixel to the viewport, and prefers a native backend capability
// over its own emulation when one is present.

// strokeCircle draws a circle outline with the integer midpoint algorithm,
// emitting the 8-way symmetric point set at each step.
func (s *Screen) strokeCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		s.Pixel(cx+x, cy+y, c)
		s.Pixel(cx+y, cy+x, c)
		s.Pixel(cx-x, cy+y, c)
		s.Pixel(cx-y, cy+x, c)
		s.Pixel(cx+x, cy-y, c)
		s.Pixel(cx+y, cy-x, c)
		s.Pixel(cx-x, cy-y, c)
		s.Pixel(cx-y, cy-x, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// fillCircle fills a disc with one horizontal span per scanline.
func (s *Screen) fillCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= s.height {
			continue
		}
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		x1 := max(0, cx-dx)
		x2 := min(s.width-1, cx+dx)
		if x1 <= x2 {
			s.dev.Line(x1, y, x2, y, c)
		}
	}
}

// drawArc draws a stroked arc of the given pixel width. Angles are in
// degrees, measured like the rest of the pixel space: 0 points right, 90
// points down.
//
// A backend with a native arc is preferred; the emulation steps the sweep in
// max(sweep, 60) increments and plots one pixel per radial offset, which is
// a visual approximation rather than an exact scan conversion.
func (s *Screen) drawArc(cx, cy, r, startDeg, sweepDeg int, c Color, width int) {
	if r <= 0 || sweepDeg <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	if a, ok := s.dev.(ArcDrawer); ok {
		a.DrawArc(cx, cy, r, startDeg, sweepDeg, c, width)
		return
	}
	steps := sweepDeg
	if steps < 60 {
		steps = 60
	}
	half := width / 2
	for i := 0; i <= steps; i++ {
		angle := (float64(startDeg) + float64(i)*float64(sweepDeg)/float64(steps)) * math.Pi / 180
		sin, cos := math.Sincos(angle)
		for dr := -half; dr <= half; dr++ {
			x := cx + int(math.Round(float64(r+dr)*cos))
			y := cy + int(math.Round(float64(r+dr)*sin))
			s.Pixel(x, y, c)
		}
	}
}

// fillTriangle fills a triangle with scanline spans. Vertices are sorted by
// y and each scanline interpolates x along the two active edges, split at
// the middle vertex.
func (s *Screen) fillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y0 > y2 {
		x0, y0, x2, y2 = x2, y2, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	interp := func(ya, xa, yb, xb, y int) int {
		if yb == ya {
			return xa
		}
		return xa + (xb-xa)*(y-ya)/(yb-ya)
	}

	for y := y0; y <= y2; y++ {
		if y < 0 || y >= s.height {
			continue
		}
		xl := interp(y0, x0, y2, x2, y)
		var xr int
		if y < y1 {
			xr = interp(y0, x0, y1, x1, y)
		} else {
			xr = interp(y1, x1, y2, x2, y)
		}
		if xl > xr {
			xl, xr = xr, xl
		}
		xl = max(0, xl)
		xr = min(s.width-1, xr)
		if xl <= xr {
			s.dev.Line(xl, y, xr, y, c)
		}
	}
}

// fillRect prefers a native rectangle fill and falls back to row spans.
func (s *Screen) fillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if f, ok := s.dev.(RectFiller); ok {
		f.FillRect(x, y, w, h, c)
		return
	}
	for row := 0; row < h; row++ {
		s.dev.Line(x, y+row, x+w-1, y+row, c)
	}
}

// strokeRect prefers a native rectangle outline and falls back to four
// segments.
func (s *Screen) strokeRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if r, ok := s.dev.(RectStroker); ok {
		r.Rect(x, y, w, h, c)
		return
	}
	s.dev.Line(x, y, x+w-1, y, c)
	s.dev.Line(x, y+h-1, x+w-1, y+h-1, c)
	s.dev.Line(x, y, x, y+h-1, c)
	s.dev.Line(x+w-1, y, x+w-1, y+h-1, c)
}

// drawScaledText draws text at an integer scale. Without a native scaled
// text capability, scales 2 and 3 are approximated by overdrawing the base
// glyphs at every offset of a scale x scale grid (faux bold), which keeps
// the footprint math of len*8*scale while thickening strokes.
func (s *Screen) drawScaledText(text string, x, y int, c Color, scale int) {
	if d, ok := s.dev.(ScaledTextDrawer); ok {
		d.DrawScaledText(text, x, y, c, scale)
		return
	}
	switch scale {
	case 2, 3:
		for dx := 0; dx < scale; dx++ {
			for dy := 0; dy < scale; dy++ {
				s.dev.Text(text, x+dx, y+dy, c)
			}
		}
	default:
		s.dev.Text(text, x, y, c)
	}
}

// drawMediumText draws unit/label text, slightly larger than base when the
// backend can do it.
func (s *Screen) drawMediumText(text string, x, y int, c Color) {
	if d, ok := s.dev.(MediumTextDrawer); ok {
		d.DrawMediumText(text, x, y, c)
		return
	}
	s.dev.Text(text, x, y, c)
}

func (s *Screen) hline(x, y, w int, c Color) {
	if w <= 0 {
		return
	}
	s.dev.Line(x, y, x+w-1, y, c)
}

func (s *Screen) vline(x, y, h int, c Color) {
	if h <= 0 {
		return
	}
	s.dev.Line(x, y, x, y+h-1, c)
}
