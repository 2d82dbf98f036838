package sparkline

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a construction-time configuration error: a
// non-positive capacity, a zero-area bounding box, or a non-positive
// stroke width. It is never returned after construction succeeds.
var ErrInvalidConfig = errors.New("sparkline: invalid config")

// Sparkline accumulates numeric samples in a bounded buffer and renders
// them as a trend line inside a fixed bounding box.
//
// The bounding box and style are fixed for the lifetime of the sparkline.
// The canvas is borrowed per Draw call and never retained. A Sparkline is
// reusable indefinitely: there is no terminal state, and Draw has no side
// effect on the stored samples.
type Sparkline struct {
	box    Rect
	store  *SampleStore
	style  Style
	drawFn DrawFunc
}

// New creates a sparkline that draws inside box and retains at most
// capacity samples. Defaults: white color, stroke width 1, and a drawing
// capability that connects sample pairs with a Line.
//
// It returns an error wrapping ErrInvalidConfig when capacity < 1, the
// box has zero area, or a configured stroke width is < 1.
func New(box Rect, capacity int, opts ...Option) (*Sparkline, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if box.Width() <= 0 || box.Height() <= 0 {
		return nil, fmt.Errorf("%w: bounding box must have positive area, got %gx%g",
			ErrInvalidConfig, box.Width(), box.Height())
	}
	if options.strokeWidth < 1 {
		return nil, fmt.Errorf("%w: stroke width must be at least 1, got %d",
			ErrInvalidConfig, options.strokeWidth)
	}

	store, err := NewSampleStore(capacity)
	if err != nil {
		return nil, err
	}

	return &Sparkline{
		box:   box,
		store: store,
		style: Style{
			Color:       options.color,
			StrokeWidth: options.strokeWidth,
		},
		drawFn: options.drawFn,
	}, nil
}

// Add appends a sample, evicting the oldest one when the buffer is full.
func (s *Sparkline) Add(v float64) {
	s.store.Add(v)
}

// Draw renders the current samples onto the canvas.
//
// An empty buffer renders nothing and returns nil. So does a buffer with
// exactly one sample: a single point has no segment to connect, and this
// package's documented policy is to draw no degenerate marker for it.
// Otherwise the observed min/max is computed once for the pass, the
// buffer is walked pairwise in chronological order, and the drawing
// capability's primitive is rendered for each pair.
//
// Draw is idempotent with respect to buffer state: repeated calls with no
// intervening Add produce the identical sequence of capability
// invocations. The only failure mode is an error from the canvas, which
// is propagated unchanged; the pass stops at the first such error.
func (s *Sparkline) Draw(c Canvas) error {
	n := s.store.Len()
	if n < 2 {
		return nil
	}

	min, max, _ := s.store.Range()
	Logger().Debug("sparkline: draw pass", "samples", n, "min", min, "max", max)

	scale := newLinearScale(s.box, n, min, max)
	prev := scale.point(0, s.store.At(0))
	for i := 1; i < n; i++ {
		curr := scale.point(i, s.store.At(i))
		if err := s.drawFn(prev, curr).Render(c, s.style); err != nil {
			return err
		}
		prev = curr
	}
	return nil
}

// Values returns a copy of the stored samples, oldest to newest.
func (s *Sparkline) Values() []float64 {
	return s.store.Values()
}

// Len returns the number of samples currently stored.
func (s *Sparkline) Len() int {
	return s.store.Len()
}

// Capacity returns the maximum number of retained samples.
func (s *Sparkline) Capacity() int {
	return s.store.Cap()
}

// Bounds returns the bounding box the sparkline draws into.
func (s *Sparkline) Bounds() Rect {
	return s.box
}

// Style returns the configured cosmetic attributes.
func (s *Sparkline) Style() Style {
	return s.style
}
