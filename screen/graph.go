package screen

import "strconv"

// Graph draws a fixed-geometry line chart in the lower portion of the
// display: y/x axis lines, a dashed midline reference, three y-axis labels
// (max, mid, min) and a polyline through the samples. The most recent
// sample is repeated as a large readout above the plot.
//
// Fewer than two samples draw the frame only. A zero-width value range is
// treated as a unit span so mapping never divides by zero; out-of-range
// samples clamp to the plot edges.
func (s *Screen) Graph(data []int, minVal, maxVal int) {
	cx, cy := s.Center()
	const margin = 20
	gx := margin + 10
	gy := cy - 5
	gw := s.width - margin*2 - 10
	gh := s.height - gy - margin

	s.vline(gx, gy, gh, Dark)
	s.hline(gx, gy+gh, gw, Dark)

	midY := gy + gh/2
	for x := gx + 3; x < gx+gw; x += 6 {
		s.hline(x, midY, 3, Dark)
	}

	s.graphLabel(maxVal, gx, gy)
	s.graphLabel((minVal+maxVal)/2, gx, midY)
	s.graphLabel(minVal, gx, gy+gh)

	if len(data) < 2 {
		return
	}

	span := maxVal - minVal
	if span == 0 {
		span = 1
	}
	step := float64(gw) / float64(len(data)-1)

	prevX, prevY := 0, 0
	for i, v := range data {
		px := gx + int(float64(i)*step)
		ratio := float64(v-minVal) / float64(span)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		py := gy + gh - int(ratio*float64(gh))
		if i > 0 {
			s.dev.Line(prevX, prevY, px, py, Light)
		}
		prevX, prevY = px, py
	}

	// Latest sample as a large readout above the plot, below the title row.
	latest := strconv.Itoa(data[len(data)-1])
	s.drawScaledText(latest, cx-len(latest)*CharW, gy-22, White, 2)
}

// graphLabel draws a y-axis label right-aligned against the axis, with
// values at thousand boundaries abbreviated with a "k" suffix.
func (s *Screen) graphLabel(v, gx, tickY int) {
	text := abbrevThousands(v)
	x := gx - len(text)*CharW - 2
	if x < 0 {
		x = 0
	}
	s.dev.Text(text, x, tickY-CharH/2, Dark)
}

func abbrevThousands(v int) string {
	if v >= 1000 || v <= -1000 {
		return strconv.Itoa(v/1000) + "k"
	}
	return strconv.Itoa(v)
}
