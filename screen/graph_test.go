package screen

import "testing"

func diagonalLines(dev *recorder) [][5]int {
	var out [][5]int
	for _, l := range dev.lines {
		if l[0] != l[2] && l[1] != l[3] {
			out = append(out, l)
		}
	}
	return out
}

func TestGraphNeedsTwoSamples(t *testing.T) {
	for _, data := range [][]int{nil, {42}} {
		dev := newRecorder(128, 128)
		s := mustScreen(t, dev)
		s.Graph(data, 0, 100)

		if len(dev.lines) == 0 {
			t.Fatal("axes not drawn")
		}
		for _, l := range dev.lines {
			if l[0] != l[2] && l[1] != l[3] {
				t.Errorf("polyline segment %v drawn with %d samples", l, len(data))
			}
		}
	}
}

func TestGraphLinearMapping(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Graph([]int{10, 90}, 0, 100)

	// Plot rect on 128x128: gx=30, gy=59, gw=78, gh=49.
	segs := diagonalLines(dev)
	if len(segs) != 1 {
		t.Fatalf("got %d polyline segments; want 1", len(segs))
	}
	seg := segs[0]
	want := [4]int{30, 104, 108, 64}
	if seg[0] != want[0] || seg[1] != want[1] || seg[2] != want[2] || seg[3] != want[3] {
		t.Errorf("segment = %v; want %v", seg, want)
	}
}

func TestGraphClampsOutOfRangeSamples(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Graph([]int{-50, 500}, 0, 100)

	segs := diagonalLines(dev)
	if len(segs) != 1 {
		t.Fatalf("got %d segments; want 1", len(segs))
	}
	// Clamped to the bottom and top plot edges.
	if segs[0][1] != 108 || segs[0][3] != 59 {
		t.Errorf("segment = %v; want plot edges 108 and 59", segs[0])
	}
}

func TestGraphZeroSpanDoesNotDivide(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Graph([]int{5, 5, 5}, 5, 5) // must not panic
}

func TestGraphAxisLabels(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Graph([]int{100, 900}, 0, 1000)

	for _, want := range []string{"1k", "500", "0"} {
		if !dev.hasText(want) {
			t.Errorf("missing y-axis label %q in %v", want, dev.texts)
		}
	}
}

func TestGraphShowsLatestSample(t *testing.T) {
	dev := newCapRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Graph([]int{10, 20, 77}, 0, 100)

	if len(dev.scaled) != 1 || dev.scaled[0].s != "77" {
		t.Fatalf("latest readout = %v; want \"77\"", dev.scaled)
	}
	if dev.scaled[0].y >= 59 {
		t.Errorf("latest readout y=%d not above the plot", dev.scaled[0].y)
	}
}

func TestAbbrevThousands(t *testing.T) {
	tcs := []struct {
		v    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{2500, "2k"},
		{-1200, "-1k"},
		{-500, "-500"},
	}
	for _, tc := range tcs {
		if got := abbrevThousands(tc.v); got != tc.want {
			t.Errorf("abbrevThousands(%d) = %q; want %q", tc.v, got, tc.want)
		}
	}
}
