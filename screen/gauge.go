package screen

import (
	"math"
	"strconv"
)

// Gauge geometry: a 270 degree sweep starting at 135 degrees in pixel-space
// angles, which leaves the gap at the bottom of the dial.
const (
	gaugeStart = 135
	gaugeSweep = 270
)

// Gauge draws a circular arc gauge with the current value in the center.
//
// The background arc spans the full sweep; the foreground arc covers
// clamp((val-min)/(max-min), 0, 1) of it, truncated to whole degrees. A
// zero-width range renders as fully empty below max and fully full at or
// above it. Draw the gauge before any title text that overlaps the arc.
func (s *Screen) Gauge(val, minVal, maxVal int, unit string) {
	cx, cy := s.Center()
	r := s.Radius() - 8

	ratio := gaugeRatio(val, minVal, maxVal)

	s.drawArc(cx, cy, r, gaugeStart, gaugeSweep, Dark, 3)
	if fill := int(gaugeSweep * ratio); fill > 0 {
		s.drawArc(cx, cy, r, gaugeStart, fill, Light, 3)
	}

	// Current value, large, in the middle of the dial.
	text := strconv.Itoa(val)
	s.drawScaledText(text, cx-len(text)*CharW, cy-CharH, White, 2)
	if unit != "" {
		s.dev.Text(unit, cx-len(unit)*CharW/2, cy+CharH+2, Light)
	}

	// Range labels near the arc endpoints, nudged along the sweep so they
	// stay inside the circle.
	s.gaugeLabel(strconv.Itoa(minVal), cx, cy, r, gaugeStart+14)
	s.gaugeLabel(strconv.Itoa(maxVal), cx, cy, r, gaugeStart+gaugeSweep-14)
}

func gaugeRatio(val, minVal, maxVal int) float64 {
	if maxVal == minVal {
		if val >= maxVal {
			return 1
		}
		return 0
	}
	ratio := float64(val-minVal) / float64(maxVal-minVal)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

func (s *Screen) gaugeLabel(text string, cx, cy, r, deg int) {
	sin, cos := math.Sincos(float64(deg) * math.Pi / 180)
	lr := float64(r - 12)
	x := cx + int(lr*cos) - len(text)*CharW/2
	y := cy + int(lr*sin) - CharH/2
	s.dev.Text(text, x, y, Gray)
}
