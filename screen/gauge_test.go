package screen

import "testing"

func TestGaugeRatio(t *testing.T) {
	tcs := []struct {
		val, min, max int
		want          float64
	}{
		{0, 0, 100, 0},
		{100, 0, 100, 1},
		{50, 0, 100, 0.5},
		{-10, 0, 100, 0},
		{500, 0, 100, 1},
		{25, 20, 30, 0.5},
		{5, 10, 10, 0},  // degenerate range, below
		{10, 10, 10, 1}, // degenerate range, at max
		{15, 10, 10, 1}, // degenerate range, above
	}
	for _, tc := range tcs {
		got := gaugeRatio(tc.val, tc.min, tc.max)
		if got != tc.want {
			t.Errorf("gaugeRatio(%d,%d,%d) = %v; want %v", tc.val, tc.min, tc.max, got, tc.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("gaugeRatio(%d,%d,%d) = %v outside [0,1]", tc.val, tc.min, tc.max, got)
		}
	}
}

func TestGaugeEndToEnd(t *testing.T) {
	dev := newCapRecorder(128, 128)
	s := mustScreen(t, dev)

	s.Gauge(342, 0, 500, "mm")
	s.Title("Distance")
	s.Subtitle("VL53L1X ToF")

	if len(dev.arcs) != 2 {
		t.Fatalf("got %d arcs; want background + fill", len(dev.arcs))
	}
	bg, fg := dev.arcs[0], dev.arcs[1]
	if bg != [6]int{64, 64, 56, 135, 270, 3} {
		t.Errorf("background arc = %v", bg)
	}
	// 270 * 342/500 = 184.68, truncated.
	if fg[4] != 184 {
		t.Errorf("fill sweep = %d; want 184", fg[4])
	}
	if fg[2] != bg[2] || fg[3] != bg[3] {
		t.Errorf("fill arc geometry %v differs from background %v", fg, bg)
	}

	// Center readout stacked over the unit, both horizontally centered.
	if len(dev.scaled) != 1 || dev.scaled[0].s != "342" {
		t.Fatalf("center value = %v", dev.scaled)
	}
	if !dev.hasText("mm") {
		t.Fatal("unit not drawn")
	}
	v := dev.scaled[0]
	if v.x != 64-3*CharW || v.y != 64-CharH {
		t.Errorf("value at (%d,%d)", v.x, v.y)
	}
	for _, tc := range dev.texts {
		if tc.s == "mm" && tc.y <= v.y {
			t.Errorf("unit above value: unit y=%d value y=%d", tc.y, v.y)
		}
	}

	// Range labels present.
	if !dev.hasText("0") || !dev.hasText("500") {
		t.Errorf("range labels missing: %v", dev.texts)
	}
}

func TestGaugeZeroFillDrawsNoForeground(t *testing.T) {
	dev := newCapRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Gauge(0, 0, 500, "")
	if len(dev.arcs) != 1 {
		t.Fatalf("got %d arcs; want background only", len(dev.arcs))
	}
}
