package screen

import "testing"

func TestGray4RoundTrip(t *testing.T) {
	for v := uint8(0); v <= 15; v++ {
		c := Gray4(v)
		if got := c.Gray4(); got != v {
			t.Errorf("Gray4(%d).Gray4() = %d; want %d", v, got, v)
		}
	}
}

func TestGray4Clamps(t *testing.T) {
	if Gray4(200) != Gray4(15) {
		t.Errorf("Gray4(200) = %v; want white", Gray4(200))
	}
}

func TestRGB565Packing(t *testing.T) {
	tcs := []struct {
		c    Color
		want uint16
	}{
		{RGB(0, 0, 0), 0x0000},
		{RGB(255, 255, 255), 0xFFFF},
		{RGB(255, 0, 0), 0xF800},
		{RGB(0, 255, 0), 0x07E0},
		{RGB(0, 0, 255), 0x001F},
	}
	for _, tc := range tcs {
		if got := tc.c.RGB565(); got != tc.want {
			t.Errorf("RGB565(%v) = %#04x; want %#04x", tc.c, got, tc.want)
		}
	}
}

func TestRGBAIsOpaque(t *testing.T) {
	got := RGB(10, 20, 30).RGBA()
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 0xFF {
		t.Errorf("RGBA() = %v", got)
	}
}

func TestLuminanceOrdering(t *testing.T) {
	// Green weighs heaviest, blue lightest, per BT.601.
	g := RGB(0, 255, 0).Gray4()
	r := RGB(255, 0, 0).Gray4()
	b := RGB(0, 0, 255).Gray4()
	if !(g > r && r > b) {
		t.Errorf("luminance ordering g=%d r=%d b=%d; want g > r > b", g, r, b)
	}
}
