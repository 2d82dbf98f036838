package sparkline

// Line is a straight segment between two points. It is the primitive the
// default drawing capability produces for each consecutive sample pair.
type Line struct {
	P0, P1 Point
}

// NewLine creates a line segment from p0 to p1.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Render rasterizes the segment onto the canvas using Bresenham's
// algorithm with a square brush of st.StrokeWidth pixels. All pixels of
// the segment are written in a single WritePixels batch.
func (l Line) Render(c Canvas, st Style) error {
	w := st.StrokeWidth
	if w < 1 {
		w = 1
	}

	x0, y0 := round(l.P0.X), round(l.P0.Y)
	x1, y1 := round(l.P1.X), round(l.P1.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	px := make([]Pixel, 0, (dx-dy+1)*w*w)
	for {
		px = appendBrush(px, x0, y0, w, st.Color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
	return c.WritePixels(px)
}

// Dot is a filled disc, useful as an alternative drawing capability that
// marks each sample instead of connecting pairs. StrokeWidth is ignored;
// the disc size is controlled by Radius.
type Dot struct {
	Center Point
	Radius float64
}

// Render rasterizes the disc onto the canvas in one WritePixels batch.
func (d Dot) Render(c Canvas, st Style) error {
	r := d.Radius
	if r < 0 {
		r = 0
	}
	cx, cy := round(d.Center.X), round(d.Center.Y)
	ri := int(r)

	px := make([]Pixel, 0, (2*ri+1)*(2*ri+1))
	for oy := -ri; oy <= ri; oy++ {
		for ox := -ri; ox <= ri; ox++ {
			if float64(ox*ox+oy*oy) <= r*r {
				px = append(px, Pixel{X: cx + ox, Y: cy + oy, Color: st.Color})
			}
		}
	}
	return c.WritePixels(px)
}

// appendBrush plots a square brush of side w centered on (x, y).
// Even widths bias one pixel toward the bottom-right.
func appendBrush(px []Pixel, x, y, w int, col RGBA) []Pixel {
	lo := -(w - 1) / 2
	hi := w / 2
	for oy := lo; oy <= hi; oy++ {
		for ox := lo; ox <= hi; ox++ {
			px = append(px, Pixel{X: x + ox, Y: y + oy, Color: col})
		}
	}
	return px
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
