package screen

import "math"

// Watch draws an analog clock face for the given time of day: a tick ring
// with bolder quarter ticks, numerals at 12/3/6/9, triangular hour and
// minute hands and a thin second hand.
func (s *Screen) Watch(hour, minute, second int) {
	cx, cy := s.Center()
	r := s.Radius() - 10

	// Tick ring, one mark per hour.
	for deg := 0; deg < 360; deg += 30 {
		sin, cos := math.Sincos(float64(deg) * math.Pi / 180)
		inner := r - 5
		c := Dark
		if deg%90 == 0 {
			inner = r - 8
			c = Light
		}
		x1 := cx + int(float64(inner)*sin)
		y1 := cy - int(float64(inner)*cos)
		x2 := cx + int(float64(r)*sin)
		y2 := cy - int(float64(r)*cos)
		s.dev.Line(x1, y1, x2, y2, c)
	}

	// Numerals at the quarters.
	for _, n := range [...]struct {
		label string
		deg   int
	}{{"12", 0}, {"3", 90}, {"6", 180}, {"9", 270}} {
		sin, cos := math.Sincos(float64(n.deg) * math.Pi / 180)
		nx := cx + int(float64(r-16)*sin)
		ny := cy - int(float64(r-16)*cos)
		s.dev.Text(n.label, nx-len(n.label)*CharW/2, ny-CharH/2, Gray)
	}

	hourDeg := (float64(hour%12) + float64(minute)/60) * 30
	minuteDeg := (float64(minute) + float64(second)/60) * 6
	secondDeg := float64(second) * 6

	s.hand(cx, cy, hourDeg, float64(r)*0.55, 3, White)
	s.hand(cx, cy, minuteDeg, float64(r)*0.8, 2, Light)

	sin, cos := math.Sincos(secondDeg * math.Pi / 180)
	s.dev.Line(cx, cy, cx+int(float64(r)*0.85*sin), cy-int(float64(r)*0.85*cos), Red)

	s.fillCircle(cx, cy, 3, Gray)
}

// hand draws one clock hand as a filled triangle from a perpendicular base
// at the pivot to the tip.
func (s *Screen) hand(cx, cy int, deg, length float64, halfW int, c Color) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	tx := cx + int(length*sin)
	ty := cy - int(length*cos)
	px := int(float64(halfW) * cos)
	py := int(float64(halfW) * sin)
	s.fillTriangle(tx, ty, cx-px, cy-py, cx+px, cy+py, c)
}
