package screen

// Title draws a single line of text at the top of the display.
func (s *Screen) Title(text string) {
	x, y := s.resolve(North, len(text), 1)
	s.dev.Text(text, x, y, Gray)
}

// Subtitle draws up to a few short lines at the bottom of the display. The
// block is vertically centered around the south anchor with a fixed
// inter-line spacing.
func (s *Screen) Subtitle(lines ...string) {
	s.SubtitleColor(Dark, lines...)
}

// SubtitleColor is Subtitle with an explicit color for the first line;
// following lines stay dark.
func (s *Screen) SubtitleColor(c Color, lines ...string) {
	if len(lines) == 0 {
		return
	}
	const spacing = CharH + 2
	_, anchorY := s.resolve(South, len(lines[0]), 1)
	anchorY += CharH
	startY := anchorY - (len(lines)-1)*spacing/2
	for i, line := range lines {
		x, _ := s.resolve(South, len(line), 1)
		col := c
		if i > 0 {
			col = Dark
		}
		s.dev.Text(line, x, startY+i*spacing, col)
	}
}

// ValueStyle configures the Value widget. The zero value means: centered,
// scale 2, white, no label or unit.
type ValueStyle struct {
	Unit    string   // drawn below the value in the medium font
	Label   string   // drawn above the value in gray
	At      Position // Center, or West/East for the quarter presets
	Scale   int
	YOffset int
	Color   Color
}

// Value draws a large readout with an optional label above and unit below.
//
// When a unit is present the label+value+unit stack is centered as one
// block, so the visual center of the whole readout lands on the requested
// anchor rather than the value's own midline. West and East place the block
// on the quarter-width columns used by two-column layouts; any other
// position falls back to the cardinal resolver.
func (s *Screen) Value(val string, style ValueStyle) {
	scale := style.Scale
	if scale < 1 {
		scale = 2
	}
	col := style.Color
	if col == (Color{}) {
		col = White
	}

	cx, cy := s.Center()
	charW := CharW * scale
	charH := CharH * scale
	tw := len(val) * charW

	var x, y int
	switch style.At {
	case Center:
		x = cx - tw/2
		if style.Unit != "" {
			// Center the full value + gap + unit block vertically.
			gap := charH / 2
			blockH := charH + gap + CharH
			y = cy - blockH/2
		} else {
			y = cy - charH/2
		}
	case West:
		x = s.width/4 - tw/2
		y = cy - charH/2
	case East:
		x = 3*s.width/4 - tw/2
		y = cy - charH/2
	default:
		x, y = s.resolve(style.At, len(val), scale)
	}
	y += style.YOffset

	if style.Label != "" {
		lx := x + tw/2 - len(style.Label)*CharW/2
		s.dev.Text(style.Label, lx, y-CharH-4, Gray)
	}

	s.drawScaledText(val, x, y, col, scale)

	if style.Unit != "" {
		uy := y + charH + charH/2
		ux := x + tw/2 - len(style.Unit)*CharW/2
		s.drawMediumText(style.Unit, ux, uy, Light)
	}
}

// Bar draws a horizontal progress bar below the center: a dark track with a
// proportional fill. A non-positive max is treated as an empty bar rather
// than a division by zero.
func (s *Screen) Bar(val, maxVal, yOffset int, c Color) {
	cx, cy := s.Center()
	barW := s.width - 40
	const barH = 8
	bx := cx - barW/2
	by := cy + 20 + yOffset

	fillW := 0
	if maxVal > 0 {
		fillW = barW * clamp(val, 0, maxVal) / maxVal
	}

	s.fillRect(bx, by, barW, barH, Dark)
	if fillW > 0 {
		s.fillRect(bx, by, fillW, barH, c)
	}
}

// Menu draws a vertically scrolling list. The visible window is centered on
// the selection, clamped to the list bounds, and the selected row gets a
// filled band plus a leading marker.
func (s *Screen) Menu(items []string, selected int) {
	if len(items) == 0 {
		return
	}
	selected = clamp(selected, 0, len(items)-1)

	itemH := CharH + 6
	visible := (s.height - 40) / itemH
	if visible > len(items) {
		visible = len(items)
	}
	if visible < 1 {
		visible = 1
	}

	start := clamp(selected-visible/2, 0, len(items)-visible)

	y := 25
	for i := start; i < start+visible && i < len(items); i++ {
		iy := y + (i-start)*itemH
		if i == selected {
			s.fillRect(15, iy-2, s.width-30, itemH, Dark)
			s.dev.Text("> "+items[i], 18, iy, White)
		} else {
			s.dev.Text("  "+items[i], 18, iy, Gray)
		}
	}
}
