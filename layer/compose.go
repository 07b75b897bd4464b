package layer

import "github.com/gostitch/uvpaint"

// Invalidate marks the composition dirty. Every mutation to any layer's
// raster, visibility, opacity, blend mode, or order must be followed by a
// call here; Stack's own operations do it themselves, renderers drawing
// into a layer raster call it through the owning session.
func (s *Stack) Invalidate() {
	s.dirty = true
}

// Dirty reports whether the next Compose call will recompute.
func (s *Stack) Dirty() bool {
	return s.dirty
}

// Validate checks that every layer raster matches the canonical resolution.
// It is the startup/consistency check run before any composition; a
// mismatch is reported, never silently drawn into.
func (s *Stack) Validate() error {
	for _, l := range s.layers {
		if l.Raster.Width() != s.resolution || l.Raster.Height() != s.resolution {
			return sizeError(l, s.resolution)
		}
	}
	return nil
}

// ensureCanonical reallocates a layer raster that has drifted from the
// canonical resolution. The old contents cannot be trusted at the wrong
// size, so the layer restarts blank rather than scaled.
func (s *Stack) ensureCanonical(l *Layer) {
	if l.Raster.Width() == s.resolution && l.Raster.Height() == s.resolution {
		return
	}
	uvpaint.Logger().Warn("layer: reallocating mismatched raster",
		"layer", l.ID,
		"got_width", l.Raster.Width(), "got_height", l.Raster.Height(),
		"want", s.resolution)
	l.Raster = uvpaint.NewPixmap(s.resolution, s.resolution)
	s.Invalidate()
}

// Compose merges all visible layers, in ascending order, into the composed
// raster and returns it. When nothing is dirty the cached raster is
// returned unchanged with no redraw work — callers may invoke Compose as
// often as they like.
func (s *Stack) Compose() *uvpaint.Pixmap {
	if !s.dirty {
		return s.composed
	}

	s.composed.Clear(uvpaint.Transparent)

	for _, l := range s.Layers() {
		if !l.Visible || l.Opacity <= 0 {
			continue
		}
		s.ensureCanonical(l)
		s.drawLayer(l)
	}

	s.dirty = false
	return s.composed
}

// Composed returns the composed raster without recomputing. The contents
// are only current when Dirty reports false.
func (s *Stack) Composed() *uvpaint.Pixmap {
	return s.composed
}

// drawLayer composites one layer over the composed raster, applying the
// layer's opacity and blend mode per pixel.
func (s *Stack) drawLayer(l *Layer) {
	src := l.Raster.Data()
	dst := s.composed.Data()

	for i := 0; i < len(src); i += 4 {
		sa := float64(src[i+3]) / 255 * l.Opacity
		if sa <= 0 {
			continue
		}
		srcCol := uvpaint.RGBA{
			R: float64(src[i+0]) / 255,
			G: float64(src[i+1]) / 255,
			B: float64(src[i+2]) / 255,
			A: sa,
		}
		dstCol := uvpaint.RGBA{
			R: float64(dst[i+0]) / 255,
			G: float64(dst[i+1]) / 255,
			B: float64(dst[i+2]) / 255,
			A: float64(dst[i+3]) / 255,
		}
		out := uvpaint.BlendColors(srcCol, dstCol, l.Blend)
		dst[i+0] = clampByte(out.R * 255)
		dst[i+1] = clampByte(out.G * 255)
		dst[i+2] = clampByte(out.B * 255)
		dst[i+3] = clampByte(out.A * 255)
	}
}

func clampByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}
