package sparkline

// flatRangeEpsilon guards the vertical normalization against division by
// a vanishing range. Anything smaller is treated as a flat signal.
const flatRangeEpsilon = 1e-9

// linearScale maps a chronological sample index and value onto a pixel
// point inside a bounding box. The horizontal axis distributes n samples
// evenly across the box width; the vertical axis normalizes values
// against the observed min/max, so every mapped point lies inside the
// closed box by construction.
type linearScale struct {
	box  Rect
	step float64 // horizontal pixels per sample interval
	min  float64
	rng  float64 // 0 when the observed range is degenerate
}

// newLinearScale builds the mapping for a pass over n samples (n >= 1)
// with the given observed value range. min and max are computed once per
// render pass so the vertical scale stays stable across the whole line.
func newLinearScale(box Rect, n int, min, max float64) linearScale {
	segments := float64(n - 1)
	if segments < 1 {
		segments = 1
	}
	rng := max - min
	if rng < flatRangeEpsilon {
		rng = 0
	}
	return linearScale{
		box:  box,
		step: box.Width() / segments,
		min:  min,
		rng:  rng,
	}
}

// point maps sample i with value v to its pixel position.
//
// A lone sample (n == 1) maps to the left edge of the box. A degenerate
// value range maps every sample to the vertical midpoint, rendering a
// flat line.
func (s linearScale) point(i int, v float64) Point {
	x := s.box.Min.X + float64(i)*s.step
	y := s.box.Min.Y + s.box.Height()/2
	if s.rng != 0 {
		y = s.box.Min.Y + s.box.Height() - (v-s.min)/s.rng*s.box.Height()
	}
	// Rounding in the normalization can land a hair outside the closed
	// box; clamp so the containment guarantee holds exactly.
	return Point{
		X: clamp(x, s.box.Min.X, s.box.Max.X),
		Y: clamp(y, s.box.Min.Y, s.box.Max.Y),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
