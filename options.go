package sparkline

// Option configures a Sparkline during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: white 1px line segments
//	sp, err := sparkline.New(box, 32)
//
//	// Thick colored line
//	sp, err := sparkline.New(box, 32,
//		sparkline.WithColor(sparkline.Hex("#1E90FF")),
//		sparkline.WithStrokeWidth(2))
type Option func(*sparklineOptions)

// sparklineOptions holds optional configuration for Sparkline creation.
type sparklineOptions struct {
	color       RGBA
	strokeWidth int
	drawFn      DrawFunc
}

// defaultOptions returns the default sparkline options.
func defaultOptions() sparklineOptions {
	return sparklineOptions{
		color:       White,
		strokeWidth: 1,
		drawFn: func(p0, p1 Point) Primitive {
			return Line{P0: p0, P1: p1}
		},
	}
}

// WithColor sets the color token forwarded to the drawing capability.
// The core never interprets it.
func WithColor(c RGBA) Option {
	return func(o *sparklineOptions) {
		o.color = c
	}
}

// WithStrokeWidth sets the cosmetic line thickness in pixels.
// It is forwarded unmodified to the primitives; must be at least 1.
func WithStrokeWidth(w int) Option {
	return func(o *sparklineOptions) {
		o.strokeWidth = w
	}
}

// WithDrawFunc sets a custom drawing capability. Use this for dependency
// injection of alternative segment shapes:
//
//	// dotted sparkline
//	sparkline.WithDrawFunc(func(p0, p1 sparkline.Point) sparkline.Primitive {
//		return sparkline.Dot{Center: p0, Radius: 2}
//	})
//
// A nil fn restores the default line-segment capability.
func WithDrawFunc(fn DrawFunc) Option {
	return func(o *sparklineOptions) {
		if fn != nil {
			o.drawFn = fn
		}
	}
}
