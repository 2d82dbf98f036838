package sparkline

// Pixel is a single colored pixel at integer device coordinates.
type Pixel struct {
	X, Y  int
	Color RGBA
}

// Canvas is a pixel-addressable draw target. It is the only I/O boundary
// of this package: the core borrows a Canvas for the duration of one Draw
// call and never retains it.
//
// WritePixels paints a batch of pixels. Pixels outside the canvas are the
// canvas's concern; Pixmap clips them silently, while a hardware driver
// may reject them with an error. Any returned error is propagated
// unchanged to the caller of Sparkline.Draw.
type Canvas interface {
	WritePixels(px []Pixel) error
}

// Style carries the cosmetic attributes of a sparkline: a color token and
// a stroke width. The core forwards both unmodified to the primitives the
// drawing capability produces; it never interprets them.
type Style struct {
	Color       RGBA
	StrokeWidth int
}

// Primitive is a drawable shape that knows how to rasterize itself onto
// a Canvas with a given Style.
type Primitive interface {
	Render(c Canvas, st Style) error
}

// DrawFunc is the injected drawing capability. Given the previous and
// current mapped pixel points of a sample pair, it produces the primitive
// to paint for that segment. The default capability connects the points
// with a Line; supplying a different function changes the look of the
// graph without touching the core:
//
//	// dotted graph: one disc per sample, segment endpoint ignored
//	sparkline.WithDrawFunc(func(p0, p1 sparkline.Point) sparkline.Primitive {
//		return sparkline.Dot{Center: p0, Radius: 2}
//	})
type DrawFunc func(p0, p1 Point) Primitive
