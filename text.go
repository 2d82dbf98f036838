package sparkline

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text overlays for demo and debug output. A sparkline is usually
// embedded next to a numeric readout; these helpers draw small monospace
// labels straight onto a Pixmap using the x/image basic font, which is
// enough for harness annotations without pulling in a shaping stack.

// labelFace is the fixed 7x13 monospace face used for all labels.
var labelFace = basicfont.Face7x13

// MeasureString returns the pixel width and height of s when drawn with
// DrawString.
func MeasureString(s string) (w, h int) {
	return font.MeasureString(labelFace, s).Ceil(), labelFace.Metrics().Height.Ceil()
}

// DrawString draws s onto the pixmap with the text baseline starting at
// (x, y).
func (p *Pixmap) DrawString(s string, x, y int, c RGBA) {
	d := font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c.Color()),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawStringAnchored draws s with the anchor point of its bounding box
// at (x, y). ax and ay run from 0 to 1: ax=0 anchors the left edge,
// ax=1 the right edge; ay=0 the top, ay=1 the bottom. So ax=1, ay=1
// right-aligns the label just above (x, y).
func (p *Pixmap) DrawStringAnchored(s string, x, y int, ax, ay float64, c RGBA) {
	w, h := MeasureString(s)
	ascent := labelFace.Metrics().Ascent.Ceil()
	px := x - round(ax*float64(w))
	py := y - round(ay*float64(h)) + ascent
	p.DrawString(s, px, py, c)
}
