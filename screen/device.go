package screen

import "errors"

// Device is the mandatory pixel backend contract.
//
// Implementations should tolerate out-of-bounds coordinates; the engine also
// clips on its side before emitting pixels. Text renders a string in the
// backend's base font, which is expected to advance 8 pixels per character
// so that the layout resolver's footprint math holds.
type Device interface {
	// Size reports the backend dimensions in pixels.
	Size() (w, h int)
	// Fill floods the whole backend with one color.
	Fill(c Color)
	// Pixel sets a single pixel.
	Pixel(x, y int, c Color)
	// Line draws a straight segment between two points, inclusive.
	Line(x1, y1, x2, y2 int, c Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y int, c Color)
	// Show flushes buffered pixels to the physical device, if any.
	Show() error
}

// Optional capabilities. A backend advertises one by implementing the
// interface; the engine detects it with a type assertion and otherwise falls
// back to an emulation built on the mandatory contract. Absence is never an
// error.
type (
	// RectFiller fills an axis-aligned rectangle.
	RectFiller interface {
		FillRect(x, y, w, h int, c Color)
	}

	// RectStroker outlines an axis-aligned rectangle.
	RectStroker interface {
		Rect(x, y, w, h int, c Color)
	}

	// ScaledTextDrawer draws text at an integer scale factor with true
	// glyph scaling. The engine's emulation is a faux-bold overdraw.
	ScaledTextDrawer interface {
		DrawScaledText(s string, x, y int, c Color, scale int)
	}

	// MediumTextDrawer draws text slightly larger than the base font,
	// used for units and labels.
	MediumTextDrawer interface {
		DrawMediumText(s string, x, y int, c Color)
	}

	// ArcDrawer draws a stroked arc of the given width, angles in degrees.
	ArcDrawer interface {
		DrawArc(cx, cy, r int, startDeg, sweepDeg int, c Color, width int)
	}
)

var errNilDevice = errors.New("screen: nil device")
