package sparkline

import (
	"fmt"
	"strings"
	"testing"
)

// patternCanvas is a boolean pixel grid with a textual dump, the test
// double for a tiny monochrome display. Writes outside the grid fail,
// like a strict display driver.
type patternCanvas struct {
	w, h int
	set  [][]bool
}

func newPatternCanvas(w, h int) *patternCanvas {
	set := make([][]bool, h)
	for i := range set {
		set[i] = make([]bool, w)
	}
	return &patternCanvas{w: w, h: h, set: set}
}

func (c *patternCanvas) WritePixels(px []Pixel) error {
	for _, p := range px {
		if p.X < 0 || p.X >= c.w || p.Y < 0 || p.Y >= c.h {
			return fmt.Errorf("pixel (%d, %d) out of bounds %dx%d", p.X, p.Y, c.w, c.h)
		}
		c.set[p.Y][p.X] = true
	}
	return nil
}

func (c *patternCanvas) String() string {
	var b strings.Builder
	for y, row := range c.set {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

func assertPattern(t *testing.T, c *patternCanvas, want []string) {
	t.Helper()
	got := c.String()
	if got != strings.Join(want, "\n") {
		t.Errorf("pattern mismatch\ngot:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

// recordingCanvas captures every WritePixels batch.
type recordingCanvas struct {
	batches [][]Pixel
}

func (c *recordingCanvas) WritePixels(px []Pixel) error {
	batch := make([]Pixel, len(px))
	copy(batch, px)
	c.batches = append(c.batches, batch)
	return nil
}

// failingCanvas rejects every write with a fixed error, counting the
// attempts.
type failingCanvas struct {
	err   error
	calls int
}

func (c *failingCanvas) WritePixels([]Pixel) error {
	c.calls++
	return c.err
}
