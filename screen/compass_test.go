package screen

import "testing"

func TestCompassNeedleDueEast(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Compass(90)

	// r = 52, needle length = int(52*0.85) = 44, tip at (64+44, 64).
	found := false
	for _, l := range dev.lines {
		if l[1] == 64 && l[3] == 64 && l[0] <= 70 && l[2] >= 107 && l[2] <= 109 {
			found = true
		}
	}
	if !found {
		t.Fatal("no bright needle span reaching the east tip")
	}
}

func TestCompassCardinalLabels(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Compass(0)

	for _, want := range []string{"N", "E", "S", "W"} {
		if !dev.hasText(want) {
			t.Errorf("missing cardinal label %q", want)
		}
	}
	for _, tc := range dev.texts {
		if tc.s == "N" && tc.c != White {
			t.Errorf("north label color = %v; want white", tc.c)
		}
		if tc.s == "S" && tc.c != Gray {
			t.Errorf("south label color = %v; want gray", tc.c)
		}
	}
}

func TestCompassTickCount(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Compass(37)

	// 8 radial ticks plus needle and pivot spans; ticks are the only
	// segments touching the outer rose radius.
	ticks := 0
	for _, l := range dev.lines {
		for _, p := range [][2]int{{l[0], l[1]}, {l[2], l[3]}} {
			dx, dy := p[0]-64, p[1]-64
			d2 := dx*dx + dy*dy
			if d2 >= 50*50 && d2 <= 53*53 {
				ticks++
				break
			}
		}
	}
	if ticks != 8 {
		t.Errorf("outer-radius tick segments = %d; want 8", ticks)
	}
}
