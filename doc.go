// Package sparkline renders bounded-history numeric trends onto
// pixel-addressable surfaces.
//
// # Overview
//
// A sparkline is a small, word-sized trend graphic. This package owns the
// sample storage and the value-to-pixel mapping, and emits line segments
// through a caller-supplied drawing function, so the same sparkline can be
// painted onto an embedded display driver, an in-memory pixmap, or a
// terminal simulator without the core knowing which.
//
// # Quick Start
//
//	import "github.com/gogpu/sparkline"
//
//	// A 120x40 graph at the top-left of the surface, keeping 32 samples.
//	sp, err := sparkline.New(sparkline.RectXYWH(0, 0, 120, 40), 32)
//	if err != nil {
//		// invalid configuration
//	}
//
//	for i := 0; i < 100; i++ {
//		sp.Add(math.Sin(float64(i) / 8))
//	}
//
//	pm := sparkline.NewPixmap(121, 41)
//	if err := sp.Draw(pm); err != nil {
//		// canvas failure
//	}
//	pm.SavePNG("trend.png")
//
// # Architecture
//
// The package is organized into:
//   - Core: SampleStore (bounded ring buffer), coordinate mapping, Sparkline
//   - Boundary: Canvas, Primitive and DrawFunc, the only I/O surface
//   - Collaborators: Pixmap (software canvas), Line and Dot primitives
//   - sim/: terminal simulator window for interactive development
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Mapped points always lie inside the closed bounding box: the vertical
// scale is a normalization over the buffer's own observed min/max, so no
// input clipping is ever required.
//
// # Concurrency
//
// The core is single-threaded by design. A Sparkline must not be mutated
// and drawn concurrently; drive Add and Draw from one goroutine or guard
// them externally.
package sparkline

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
