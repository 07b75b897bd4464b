package layer

import (
	"errors"
	"testing"

	"github.com/gostitch/uvpaint"
)

func fillLayer(l *Layer, col uvpaint.RGBA) {
	w, h := l.Raster.Width(), l.Raster.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.Raster.SetPixel(x, y, col)
		}
	}
}

func TestCompose_OrderAndVisibility(t *testing.T) {
	s := NewStack(4)
	red := s.CreateLayer("red", "brush")
	blue := s.CreateLayer("blue", "satin")
	fillLayer(red, uvpaint.RGBA{R: 1, A: 1})
	fillLayer(blue, uvpaint.RGBA{B: 1, A: 1})

	// Blue was created last, so it is on top.
	out := s.Compose()
	if got := out.GetPixel(1, 1); got.B < 0.9 || got.R > 0.1 {
		t.Errorf("top layer not blue: %+v", got)
	}

	// Hiding blue exposes red.
	if err := s.SetVisible(blue.ID, false); err != nil {
		t.Fatal(err)
	}
	out = s.Compose()
	if got := out.GetPixel(1, 1); got.R < 0.9 {
		t.Errorf("hidden layer still composited: %+v", got)
	}

	// Reordering changes the winner.
	if err := s.SetVisible(blue.ID, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SendToBack(blue.ID); err != nil {
		t.Fatal(err)
	}
	out = s.Compose()
	if got := out.GetPixel(1, 1); got.R < 0.9 {
		t.Errorf("reorder not reflected: %+v", got)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	s := NewStack(8)
	l := s.CreateLayer("ink", "brush")
	fillLayer(l, uvpaint.RGBA{R: 0.4, G: 0.3, B: 0.9, A: 0.8})
	if err := s.SetOpacity(l.ID, 0.6); err != nil {
		t.Fatal(err)
	}

	first := s.Compose().Clone()
	if s.Dirty() {
		t.Error("still dirty after Compose")
	}

	// A second call with no mutations must return the identical raster
	// without recomputing.
	second := s.Compose()
	if !first.Equal(second) {
		t.Error("repeated Compose changed the output")
	}
	if second != s.Composed() {
		t.Error("clean Compose returned a different raster instance")
	}

	// Mutating through the stack dirties it again.
	if err := s.SetOpacity(l.ID, 0.3); err != nil {
		t.Fatal(err)
	}
	if !s.Dirty() {
		t.Error("mutation did not invalidate the composition")
	}
	third := s.Compose()
	if first.Equal(third) {
		t.Error("recompose after mutation produced the stale result")
	}
}

func TestCompose_OpacityApplied(t *testing.T) {
	s := NewStack(4)
	l := s.CreateLayer("half", "brush")
	fillLayer(l, uvpaint.RGBA{R: 1, A: 1})
	if err := s.SetOpacity(l.ID, 0.5); err != nil {
		t.Fatal(err)
	}

	out := s.Compose()
	got := out.GetPixel(0, 0)
	if got.A < 0.45 || got.A > 0.55 {
		t.Errorf("alpha = %v, want about 0.5", got.A)
	}
}

func TestCompose_BlendMode(t *testing.T) {
	s := NewStack(4)
	base := s.CreateLayer("base", "brush")
	mul := s.CreateLayer("shade", "satin")
	fillLayer(base, uvpaint.RGBA{R: 0.8, G: 0.8, B: 0.8, A: 1})
	fillLayer(mul, uvpaint.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})
	if err := s.SetBlendMode(mul.ID, uvpaint.BlendMultiply); err != nil {
		t.Fatal(err)
	}

	out := s.Compose()
	got := out.GetPixel(1, 1)
	if got.R < 0.35 || got.R > 0.45 {
		t.Errorf("multiply result R = %v, want about 0.4", got.R)
	}
}

func TestValidate_DetectsSizeMismatch(t *testing.T) {
	s := NewStack(16)
	ok := s.CreateLayer("fine", "brush")
	bad := s.CreateLayer("drifted", "satin")
	bad.Raster = uvpaint.NewPixmap(8, 8)

	err := s.Validate()
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Validate = %v, want ErrSizeMismatch", err)
	}
	_ = ok

	// Composing a mismatched layer reallocates it at the canonical size
	// instead of drawing into the wrong geometry.
	s.Invalidate()
	s.Compose()
	if bad.Raster.Width() != 16 || bad.Raster.Height() != 16 {
		t.Error("mismatched raster not reallocated at canonical resolution")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate after reallocation = %v", err)
	}
}

func TestCompose_ComposedStableInstance(t *testing.T) {
	s := NewStack(8)
	l := s.CreateLayer("a", "brush")
	before := s.Composed()
	fillLayer(l, uvpaint.RGBA{G: 1, A: 1})
	s.Invalidate()
	after := s.Compose()
	if before != after {
		t.Error("composed raster was reallocated across recomposition")
	}
}
