package sparkline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 4, Red)
	got := pm.GetPixel(3, 4)
	if got.R != 1.0 || got.G != 0.0 || got.B != 0.0 || got.A != 1.0 {
		t.Errorf("GetPixel(3, 4) = %+v, want Red", got)
	}

	if got := pm.GetPixel(5, 5); got != Transparent {
		t.Errorf("untouched pixel = %+v, want Transparent", got)
	}
}

func TestPixmapOutOfBoundsIgnored(t *testing.T) {
	pm := NewPixmap(4, 4)

	// Writes outside must not panic and must not change anything.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(0, -1, Red)
	pm.SetPixel(4, 0, Red)
	pm.SetPixel(0, 4, Red)

	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds read = %+v, want Transparent", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if pm.GetPixel(x, y) != Transparent {
				t.Fatalf("pixel (%d, %d) changed by out-of-bounds write", x, y)
			}
		}
	}
}

func TestPixmapWritePixelsClips(t *testing.T) {
	pm := NewPixmap(4, 4)

	err := pm.WritePixels([]Pixel{
		{X: 1, Y: 1, Color: Green},
		{X: -5, Y: 0, Color: Red},
		{X: 9, Y: 9, Color: Red},
	})
	if err != nil {
		t.Fatalf("WritePixels() = %v, want nil (silent clipping)", err)
	}
	if got := pm.GetPixel(1, 1); got.G != 1.0 {
		t.Errorf("GetPixel(1, 1) = %+v, want Green", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Blue)

	for _, p := range []image.Point{{0, 0}, {7, 7}, {3, 5}} {
		if got := pm.GetPixel(p.X, p.Y); got.B != 1.0 || got.A != 1.0 {
			t.Errorf("GetPixel(%d, %d) = %+v, want Blue", p.X, p.Y, got)
		}
	}
}

func TestPixmapImageInterfaces(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.SetPixel(2, 1, Yellow)

	if got := pm.Bounds(); got != image.Rect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %v, want (0,0)-(6,4)", got)
	}

	// draw.Image round trip through the stdlib color path.
	pm.Set(4, 2, color.NRGBA{R: 255, A: 255})
	if got := pm.GetPixel(4, 2); got.R != 1.0 || got.A != 1.0 {
		t.Errorf("Set/GetPixel = %+v, want Red", got)
	}

	r, g, b, a := pm.At(2, 1).RGBA()
	if r == 0 || g == 0 || b != 0 || a == 0 {
		t.Errorf("At(2, 1).RGBA() = %d,%d,%d,%d, want yellow", r, g, b, a)
	}
}

func TestPixmapFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 255})

	pm := PixmapFromImage(img)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(1, 1); got.G != 1.0 {
		t.Errorf("GetPixel(1, 1) = %+v, want Green", got)
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.Clear(Magenta)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 5 || got.Dy() != 3 {
		t.Errorf("decoded size = %dx%d, want 5x3", got.Dx(), got.Dy())
	}
}

func TestSparklineIntoPixmap(t *testing.T) {
	// End to end: the pixmap is a Canvas the renderer can draw into.
	sp, err := New(RectXYWH(0, 0, 9, 9), 8, WithColor(Green))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	for _, v := range []float64{0, 10, 0, 10} {
		sp.Add(v)
	}

	pm := NewPixmap(10, 10)
	if err := sp.Draw(pm); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	lit := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if pm.GetPixel(x, y).G == 1.0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no pixels written by Draw")
	}
}
