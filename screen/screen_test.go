package screen

import "testing"

// recorder is a mandatory-contract-only test backend that remembers every
// call, so widget tests can assert on emitted geometry without any real
// display.
type recorder struct {
	w, h   int
	pixels map[[2]int]Color
	lines  [][5]int // x1, y1, x2, y2, gray4
	texts  []textCall
	fills  []Color
	shown  int
}

type textCall struct {
	s    string
	x, y int
	c    Color
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, pixels: make(map[[2]int]Color)}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Fill(c Color)     { r.fills = append(r.fills, c) }
func (r *recorder) Pixel(x, y int, c Color) {
	r.pixels[[2]int{x, y}] = c
}
func (r *recorder) Line(x1, y1, x2, y2 int, c Color) {
	r.lines = append(r.lines, [5]int{x1, y1, x2, y2, int(c.Gray4())})
}
func (r *recorder) Text(s string, x, y int, c Color) {
	r.texts = append(r.texts, textCall{s: s, x: x, y: y, c: c})
}
func (r *recorder) Show() error { r.shown++; return nil }

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

// capRecorder additionally advertises the optional capabilities, recording
// them instead of forcing the emulation paths.
type capRecorder struct {
	recorder
	rects   [][4]int
	scaled  []textCall
	scales  []int
	arcs    [][6]int // cx, cy, r, start, sweep, width
	arcCols []Color
}

func newCapRecorder(w, h int) *capRecorder {
	return &capRecorder{recorder: *newRecorder(w, h)}
}

func (r *capRecorder) FillRect(x, y, w, h int, c Color) {
	r.rects = append(r.rects, [4]int{x, y, w, h})
}

func (r *capRecorder) DrawScaledText(s string, x, y int, c Color, scale int) {
	r.scaled = append(r.scaled, textCall{s: s, x: x, y: y, c: c})
	r.scales = append(r.scales, scale)
}

func (r *capRecorder) DrawArc(cx, cy, rad, startDeg, sweepDeg int, c Color, width int) {
	r.arcs = append(r.arcs, [6]int{cx, cy, rad, startDeg, sweepDeg, width})
	r.arcCols = append(r.arcCols, c)
}

func mustScreen(t *testing.T, dev Device) *Screen {
	t.Helper()
	s, err := New(dev)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadDevices(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("New(nil) succeeded")
	}
	if _, err := New(newRecorder(0, 128)); err == nil {
		t.Fatalf("New with zero width succeeded")
	}
}

func TestScreenGeometry(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)

	cx, cy := s.Center()
	if cx != 64 || cy != 64 {
		t.Errorf("Center() = (%d,%d); want (64,64)", cx, cy)
	}
	if r := s.Radius(); r != 64 {
		t.Errorf("Radius() = %d; want 64", r)
	}
	if n := s.MaxChars(); n != 16 {
		t.Errorf("MaxChars() = %d; want 16", n)
	}
}

func TestPixelClipsSilently(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)

	s.Pixel(-1, 5, White)
	s.Pixel(5, -1, White)
	s.Pixel(128, 5, White)
	s.Pixel(5, 128, White)
	if len(dev.pixels) != 0 {
		t.Fatalf("out-of-viewport pixels reached the device: %v", dev.pixels)
	}

	s.Pixel(0, 0, White)
	s.Pixel(127, 127, White)
	if len(dev.pixels) != 2 {
		t.Fatalf("in-viewport pixels dropped, got %d", len(dev.pixels))
	}
}

func TestClearAndShow(t *testing.T) {
	dev := newRecorder(128, 128)
	s := mustScreen(t, dev)

	s.Clear()
	if len(dev.fills) != 1 || dev.fills[0] != Black {
		t.Fatalf("Clear fills = %v; want one black fill", dev.fills)
	}
	if err := s.Show(); err != nil || dev.shown != 1 {
		t.Fatalf("Show: err=%v shown=%d", err, dev.shown)
	}
}
