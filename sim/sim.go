// Package sim is an image-backed display backend for screenshots, tests and
// documentation. It implements the screen.Device contract over an RGBA
// image, optionally renders text with a system TrueType font for nicer
// output, and saves PNGs with the circular mask of the physical panel.
package sim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"

	"roundel/fonts/font8x8"
	"roundel/screen"
)

// Candidate monospace fonts for the medium/large text faces. The bitmap
// font stays the source of truth for base text so sim output matches
// hardware pixel for pixel; TrueType only upgrades the optional sizes.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/freefont/FreeMono.ttf",
}

// Simulator renders a logical w x h display into an RGBA image, optionally
// at an integer supersampling scale for nicer documentation shots.
type Simulator struct {
	w, h  int
	scale int
	img   *image.RGBA

	medium font.Face
	large  map[int]font.Face
}

// New creates a 1:1 simulator.
func New(w, h int) *Simulator { return NewScaled(w, h, 1) }

// NewScaled creates a simulator rendering each logical pixel as a
// scale x scale block.
func NewScaled(w, h, scale int) *Simulator {
	if scale < 1 {
		scale = 1
	}
	s := &Simulator{
		w:     w,
		h:     h,
		scale: scale,
		img:   image.NewRGBA(image.Rect(0, 0, w*scale, h*scale)),
		large: make(map[int]font.Face),
	}
	s.loadFaces()
	return s
}

func (s *Simulator) loadFaces() {
	base := float64(8 * s.scale)
	tt := systemFont()
	if tt == nil {
		s.medium = basicfont.Face7x13
		return
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72})
	}
	s.medium = face(base * 1.3)
	s.large[2] = face(base * 2.8)
	s.large[3] = face(base * 4)
}

func systemFont() *truetype.Font {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		tt, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return tt
	}
	return nil
}

// Image exposes the backing image (w*scale x h*scale).
func (s *Simulator) Image() *image.RGBA { return s.img }

func (s *Simulator) Size() (w, h int) { return s.w, s.h }

func (s *Simulator) Fill(c screen.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

func (s *Simulator) Pixel(x, y int, c screen.Color) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	rgba := c.RGBA()
	for dy := 0; dy < s.scale; dy++ {
		for dx := 0; dx < s.scale; dx++ {
			s.img.SetRGBA(x*s.scale+dx, y*s.scale+dy, rgba)
		}
	}
}

func (s *Simulator) Line(x1, y1, x2, y2 int, c screen.Color) {
	dx := abs(x2 - x1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dy := -abs(y2 - y1)
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy
	for {
		s.Pixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func (s *Simulator) Text(text string, x, y int, c screen.Color) {
	tinyfont.WriteLine(&fontTarget{sim: s}, font8x8.Font, int16(x), int16(y+7), text, c.RGBA())
}

// Show is a no-op; the image is always current.
func (s *Simulator) Show() error { return nil }

func (s *Simulator) FillRect(x, y, w, h int, c screen.Color) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s.Pixel(x+col, y+row, c)
		}
	}
}

func (s *Simulator) Rect(x, y, w, h int, c screen.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Line(x, y, x+w-1, y, c)
	s.Line(x, y+h-1, x+w-1, y+h-1, c)
	s.Line(x, y, x, y+h-1, c)
	s.Line(x+w-1, y, x+w-1, y+h-1, c)
}

// DrawMediumText draws unit/label text slightly larger than base, with the
// TrueType face when one was found.
func (s *Simulator) DrawMediumText(text string, x, y int, c screen.Color) {
	if s.medium == nil {
		s.Text(text, x, y, c)
		return
	}
	s.drawString(text, x, y, 1, c, s.medium)
}

// DrawScaledText draws large text with true glyph scaling: a TrueType face
// when available, otherwise the 8x8 bitmap glyphs magnified.
func (s *Simulator) DrawScaledText(text string, x, y int, c screen.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	if face, ok := s.large[scale]; ok {
		s.drawString(text, x, y, scale, c, face)
		return
	}
	for i, r := range text {
		rows, ok := font8x8.Glyph(r)
		if !ok {
			continue
		}
		gx := x + i*screen.CharW*scale
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if rows[row]&(1<<col) == 0 {
					continue
				}
				s.FillRect(gx+col*scale, y+row*scale, scale, scale, c)
			}
		}
	}
}

// DrawArc draws a smoother arc than the engine emulation by stepping at
// double angular resolution.
func (s *Simulator) DrawArc(cx, cy, r, startDeg, sweepDeg int, c screen.Color, width int) {
	if r <= 0 || sweepDeg <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	steps := sweepDeg * 2
	if steps < 120 {
		steps = 120
	}
	half := width / 2
	for i := 0; i <= steps; i++ {
		angle := (float64(startDeg) + float64(i)*float64(sweepDeg)/float64(steps)) * math.Pi / 180
		sin, cos := math.Sincos(angle)
		for dr := -half; dr <= half; dr++ {
			s.Pixel(cx+int(math.Round(float64(r+dr)*cos)), cy+int(math.Round(float64(r+dr)*sin)), c)
		}
	}
}

// drawString renders with an x/image font face, horizontally centered on
// the footprint the 8px cell grid expects, so TrueType output lines up with
// the layout resolver's math.
func (s *Simulator) drawString(text string, x, y, textScale int, c screen.Color, face font.Face) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: face,
	}
	expected := fixed.I(len(text) * screen.CharW * textScale * s.scale)
	actual := d.MeasureString(text)
	ax := fixed.I(x*s.scale) + (expected-actual)/2
	ascent := face.Metrics().Ascent
	d.Dot = fixed.Point26_6{X: ax, Y: fixed.I(y*s.scale) + ascent}
	d.DrawString(text)
}

// Save writes the image as PNG. circular masks everything outside the
// inscribed circle to black, like the round bezel does on hardware; border
// adds a dim ring just inside the edge.
func (s *Simulator) Save(path string, circular, border bool) error {
	out := image.NewRGBA(s.img.Bounds())
	draw.Draw(out, out.Bounds(), s.img, image.Point{}, draw.Src)

	if circular {
		w := out.Bounds().Dx()
		h := out.Bounds().Dy()
		cx := float64(w) / 2
		cy := float64(h) / 2
		radius := math.Min(cx, cy)
		ringColor := screen.Gray4(5).RGBA()
		ringOuter := radius - float64(s.scale)
		ringInner := ringOuter - float64(2*s.scale)

		for py := 0; py < h; py++ {
			for px := 0; px < w; px++ {
				d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
				switch {
				case d > radius:
					out.SetRGBA(px, py, screen.Black.RGBA())
				case border && d >= ringInner && d <= ringOuter:
					out.SetRGBA(px, py, ringColor)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sim: save %s: %w", path, err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("sim: encode %s: %w", path, err)
	}
	return f.Close()
}

// fontTarget adapts the simulator to drivers.Displayer for tinyfont.
type fontTarget struct {
	sim *Simulator
}

func (t *fontTarget) Size() (x, y int16) { return int16(t.sim.w), int16(t.sim.h) }

func (t *fontTarget) SetPixel(x, y int16, c color.RGBA) {
	t.sim.Pixel(int(x), int(y), screen.RGB(c.R, c.G, c.B))
}

func (t *fontTarget) Display() error { return nil }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
