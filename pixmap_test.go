package uvpaint

import "testing"

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(16, 16)

	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 1}
	pm.SetPixel(3, 4, c)

	got := pm.GetPixel(3, 4)
	if got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
	// 8-bit storage quantizes; allow 1/255 per channel.
	for name, pair := range map[string][2]float64{
		"R": {c.R, got.R}, "G": {c.G, got.G}, "B": {c.B, got.B},
	} {
		if d := pair[0] - pair[1]; d > 1.0/255 || d < -1.0/255 {
			t.Errorf("channel %s = %v, want %v", name, pair[1], pair[0])
		}
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(8, 8)
	// Must not panic, must not wrap.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(8, 0, White)
	pm.SetPixel(0, 8, White)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want transparent", got)
	}
	for i, b := range pm.Data() {
		if b != 0 {
			t.Fatalf("out-of-bounds write leaked into data[%d]", i)
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGBA{R: 1, G: 0, B: 0, A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); got.R != 1 || got.A != 1 {
				t.Fatalf("pixel (%d,%d) = %+v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmap_CloneEqual(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(2, 2, White)

	clone := pm.Clone()
	if !pm.Equal(clone) {
		t.Fatal("clone not equal to source")
	}

	clone.SetPixel(3, 3, White)
	if pm.Equal(clone) {
		t.Fatal("mutating clone affected equality check against source")
	}
	if pm.GetPixel(3, 3) != Transparent {
		t.Fatal("mutating clone wrote through to source")
	}
}

func TestPixmap_SameSize(t *testing.T) {
	a := NewPixmap(4, 4)
	b := NewPixmap(4, 4)
	c := NewPixmap(8, 4)
	if !a.SameSize(b) {
		t.Error("SameSize(equal dims) = false")
	}
	if a.SameSize(c) {
		t.Error("SameSize(different dims) = true")
	}
	if a.SameSize(nil) {
		t.Error("SameSize(nil) = true")
	}
}

func TestPixmap_BlendPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, RGBA{R: 0, G: 0, B: 1, A: 1})

	pm.BlendPixel(1, 1, RGBA{R: 1, G: 0, B: 0, A: 1}, 0.5)
	got := pm.GetPixel(1, 1)
	if got.R < 0.45 || got.R > 0.55 || got.B < 0.45 || got.B > 0.55 {
		t.Errorf("half-coverage blend = %+v, want ~half red half blue", got)
	}

	// Zero coverage is a no-op.
	before := pm.GetPixel(2, 2)
	pm.BlendPixel(2, 2, White, 0)
	if pm.GetPixel(2, 2) != before {
		t.Error("zero-coverage blend mutated pixel")
	}
}

func TestPixmap_ToImageRoundTrip(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(0, 0, RGBA{R: 1, G: 0, B: 0, A: 1})

	back := FromImage(pm.ToImage())
	if !back.SameSize(pm) {
		t.Fatal("round trip changed dimensions")
	}
	got := back.GetPixel(0, 0)
	if got.R < 0.99 || got.A < 0.99 {
		t.Errorf("round trip pixel = %+v", got)
	}
}
