package sparkline

import "testing"

func TestMeasureString(t *testing.T) {
	w1, h := MeasureString("a")
	if w1 <= 0 || h <= 0 {
		t.Fatalf("MeasureString(\"a\") = %d, %d, want positive", w1, h)
	}

	w5, _ := MeasureString("aaaaa")
	if w5 != 5*w1 {
		t.Errorf("monospace width = %d, want %d", w5, 5*w1)
	}
}

func TestDrawStringMarksPixels(t *testing.T) {
	pm := NewPixmap(64, 20)
	pm.DrawString("hi", 2, 14, White)

	lit := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawString wrote no pixels")
	}
}

func TestDrawStringAnchoredRight(t *testing.T) {
	const edge = 60
	pm := NewPixmap(64, 20)
	pm.DrawStringAnchored("xx", edge, 16, 1, 1, White)

	// Right-anchored text must not extend past the anchor column.
	for y := 0; y < pm.Height(); y++ {
		for x := edge + 1; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A > 0 {
				t.Fatalf("pixel (%d, %d) lit past the right anchor", x, y)
			}
		}
	}

	lit := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x <= edge; x++ {
			if pm.GetPixel(x, y).A > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawStringAnchored wrote no pixels")
	}
}
