package screen

import "math"

// Compass draws a compass rose with a two-color needle. The heading is in
// degrees clockwise from north; the bright needle half points toward it and
// the dark half toward the reciprocal.
func (s *Screen) Compass(heading int) {
	cx, cy := s.Center()
	r := s.Radius() - 12

	// Rose circles.
	s.strokeCircle(cx, cy, r, Dark)
	s.strokeCircle(cx, cy, r*7/10, Dark)

	// Cardinal letters just outside the rose. North gets the bright one.
	for _, l := range [...]struct {
		label string
		deg   int
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}} {
		sin, cos := math.Sincos(float64(l.deg) * math.Pi / 180)
		lx := cx + int(float64(r+8)*sin)
		ly := cy - int(float64(r+8)*cos)
		c := Gray
		if l.deg == 0 {
			c = White
		}
		s.dev.Text(l.label, lx-CharW/2, ly-CharH/2, c)
	}

	// Tick marks every 45 degrees, cardinal ticks bolder.
	for deg := 0; deg < 360; deg += 45 {
		sin, cos := math.Sincos(float64(deg) * math.Pi / 180)
		x1 := cx + int(float64(r-6)*sin)
		y1 := cy - int(float64(r-6)*cos)
		x2 := cx + int(float64(r)*sin)
		y2 := cy - int(float64(r)*cos)
		c := Dark
		if deg%90 == 0 {
			c = Light
		}
		s.dev.Line(x1, y1, x2, y2, c)
	}

	// Needle: two triangles sharing a perpendicular base through the pivot.
	sin, cos := math.Sincos(float64(heading) * math.Pi / 180)
	needleLen := float64(r) * 0.85
	const halfW = 3

	nx := cx + int(needleLen*sin)
	ny := cy - int(needleLen*cos)
	sx := cx - int(needleLen*sin)
	sy := cy + int(needleLen*cos)
	px := int(halfW * cos)
	py := int(halfW * sin)

	s.fillTriangle(nx, ny, cx-px, cy-py, cx+px, cy+py, Light)
	s.fillTriangle(sx, sy, cx-px, cy-py, cx+px, cy+py, Dark)

	// Center pivot.
	s.fillCircle(cx, cy, 3, Gray)
}
