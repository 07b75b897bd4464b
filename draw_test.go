package uvpaint

import "testing"

// paintedPixels counts pixels with any alpha.
func paintedPixels(pm *Pixmap) int {
	n := 0
	data := pm.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] > 0 {
			n++
		}
	}
	return n
}

func TestStrokeLine(t *testing.T) {
	pm := NewPixmap(64, 64)
	pm.StrokeLine(Pt(10, 32), Pt(54, 32), 4, RGBA{R: 1, A: 1})

	if got := pm.GetPixel(32, 32); got.A < 0.9 {
		t.Errorf("line center pixel alpha = %v, want ~1", got.A)
	}
	if got := pm.GetPixel(32, 10); got.A != 0 {
		t.Errorf("pixel far from line painted: %+v", got)
	}
	if paintedPixels(pm) == 0 {
		t.Fatal("StrokeLine painted nothing")
	}
}

func TestStrokeLine_ZeroLengthDrawsDot(t *testing.T) {
	pm := NewPixmap(32, 32)
	pm.StrokeLine(Pt(16, 16), Pt(16, 16), 6, RGBA{R: 1, A: 1})
	if got := pm.GetPixel(16, 16); got.A < 0.9 {
		t.Errorf("degenerate segment should draw a dot, center alpha = %v", got.A)
	}
}

func TestFillPolygon(t *testing.T) {
	pm := NewPixmap(64, 64)
	square := []Point{Pt(16, 16), Pt(48, 16), Pt(48, 48), Pt(16, 48)}
	pm.FillPolygon(square, RGBA{G: 1, A: 1})

	if got := pm.GetPixel(32, 32); got.A < 0.9 {
		t.Errorf("interior pixel alpha = %v, want ~1", got.A)
	}
	if got := pm.GetPixel(8, 8); got.A != 0 {
		t.Errorf("exterior pixel painted: %+v", got)
	}
}

func TestFillPolygon_TooFewPoints(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.FillPolygon([]Point{Pt(4, 4), Pt(8, 8)}, White)
	if paintedPixels(pm) != 0 {
		t.Error("two-point polygon painted pixels")
	}
}

func TestFillCircle(t *testing.T) {
	pm := NewPixmap(64, 64)
	pm.FillCircle(Pt(32, 32), 10, RGBA{B: 1, A: 1})

	if got := pm.GetPixel(32, 32); got.A < 0.9 {
		t.Errorf("circle center alpha = %v", got.A)
	}
	if got := pm.GetPixel(32, 20); got.A != 0 {
		// 12 raster units above the center, outside radius 10.
		t.Errorf("pixel outside circle painted: %+v", got)
	}
}

func TestStrokePolyline_NoGaps(t *testing.T) {
	pm := NewPixmap(128, 128)
	pts := []Point{Pt(10, 10), Pt(60, 20), Pt(110, 10), Pt(110, 110)}
	pm.StrokePolyline(pts, 5, RGBA{R: 1, A: 1})

	// Every consecutive pair must be connected: sample each segment
	// midpoint.
	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Midpoint(pts[i])
		if got := pm.GetPixel(int(mid.X), int(mid.Y)); got.A < 0.5 {
			t.Errorf("gap at segment %d midpoint (%v): alpha = %v", i, mid, got.A)
		}
	}
}

func TestFillPath_ClipsToBounds(t *testing.T) {
	pm := NewPixmap(32, 32)
	// Mostly off-canvas geometry must neither panic nor leak.
	pm.FillCircle(Pt(-10, -10), 15, White)
	pm.StrokeLine(Pt(-50, 16), Pt(100, 16), 3, White)
	if got := pm.GetPixel(16, 16); got.A < 0.9 {
		t.Errorf("on-canvas part of clipped line missing: %+v", got)
	}
}
