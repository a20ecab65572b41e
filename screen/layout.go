package screen

import "math"

// Position is a symbolic anchor on the round display: the eight compass
// points plus the center. The zero value is Center.
type Position uint8

const (
	Center Position = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

func (p Position) String() string {
	switch p {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "CENTER"
	}
}

// safeMargin computes the minimum top/bottom margin that keeps a text block
// of pixel width tw fully inside the inscribed circle.
//
// At vertical distance d from center the circle offers 2*sqrt(r^2-d^2)
// horizontal pixels, so the block fits while d <= sqrt(r^2-(tw/2)^2). The
// result is padded by 2 pixels and never less than fromEdge (the glyph
// height at the current scale). Text wider than the circle is pushed to the
// vertical center.
func (s *Screen) safeMargin(tw, fromEdge int) int {
	r := s.Radius()
	half := tw / 2
	if half >= r {
		return r
	}
	maxD := int(math.Sqrt(float64(r*r - half*half)))
	m := r - maxD + 2
	if m < fromEdge {
		m = fromEdge
	}
	return m
}

// resolve maps a cardinal position and a text footprint (character count at
// a scale, fixed 8x8 cells) to the absolute top-left corner of the block.
//
// North/south margins adapt to the text width because the circle narrows
// toward the poles; east/west use a fixed side margin since mid-height is
// the widest region. Center ignores circular clipping entirely.
func (s *Screen) resolve(at Position, textLen, scale int) (x, y int) {
	cx, cy := s.Center()
	ch := CharH * scale
	tw := textLen * CharW * scale

	marginNS := s.safeMargin(tw, ch)
	marginEW := ch + 4

	switch at {
	case North:
		return cx - tw/2, marginNS
	case NorthEast:
		return s.width - marginEW - tw, marginNS
	case East:
		return s.width - marginEW - tw, cy - ch/2
	case SouthEast:
		return s.width - marginEW - tw, s.height - marginNS - ch
	case South:
		return cx - tw/2, s.height - marginNS - ch
	case SouthWest:
		return marginEW, s.height - marginNS - ch
	case West:
		return marginEW, cy - ch/2
	case NorthWest:
		return marginEW, marginNS
	default:
		return cx - tw/2, cy - ch/2
	}
}
