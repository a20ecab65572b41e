package screen

import "testing"

func TestWatchSecondHand(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Watch(10, 8, 0)

	// Second hand at 0s points straight up: r=54, 0.85*54 = 45.9 -> 45.
	found := false
	for _, l := range dev.lines {
		if l == [5]int{64, 64, 64, 19, int(Red.Gray4())} {
			found = true
		}
	}
	if !found {
		t.Fatalf("second hand segment missing in %v", dev.lines)
	}
}

func TestWatchNumerals(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Watch(3, 30, 15)

	for _, want := range []string{"12", "3", "6", "9"} {
		if !dev.hasText(want) {
			t.Errorf("missing numeral %q", want)
		}
	}
}

func TestWatchHourHandDirection(t *testing.T) {
	// At 3:00 the hour hand points due east; at 9:00 it points west, so the
	// east-most span endpoint on the pivot row shrinks.
	reach := func(h, m int) int {
		dev := newRecorder(128, 128)
		s := mustScreen(t, dev)
		s.Watch(h, m, 0)
		maxX := 0
		for _, l := range dev.lines {
			if l[1] == 64 && l[3] == 64 && l[0] <= 70 && l[2] > maxX {
				maxX = l[2]
			}
		}
		return maxX
	}
	if reach(3, 0) <= reach(9, 0) {
		t.Errorf("3:00 hour hand does not reach east: %d vs %d", reach(3, 0), reach(9, 0))
	}
}

func TestWatchTickRing(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)
	s.Watch(0, 0, 0)

	// 12 tick segments end on the outer radius r=54.
	ticks := 0
	for _, l := range dev.lines {
		for _, p := range [][2]int{{l[0], l[1]}, {l[2], l[3]}} {
			dx, dy := p[0]-64, p[1]-64
			d2 := dx*dx + dy*dy
			if d2 >= 52*52 && d2 <= 55*55 {
				ticks++
				break
			}
		}
	}
	if ticks != 12 {
		t.Errorf("tick segments = %d; want 12", ticks)
	}
}
