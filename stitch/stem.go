package stitch

import "github.com/gostitch/uvpaint"

// Stem renders the twisted-rope look of a stem stitch: each segment is
// offset perpendicular to its direction, alternating sides, with round
// joins keeping the run continuous.
type Stem struct {
	strategy
}

// NewStem creates the stem-stitch renderer.
func NewStem() *Stem {
	return &Stem{strategy{names: []string{"stem", "stem-stitch", "rope"}}}
}

// DefaultConfig implements Renderer.
func (s *Stem) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "stem", Color: "#117864", Thickness: 5}
}

// Render implements Renderer.
func (s *Stem) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	pts := pathPoints(points)
	col := cfg.BaseColor()
	width := cfg.Thickness * 0.9
	offset := cfg.Thickness * 0.25

	if len(pts) == 1 {
		dst.FillCircle(pts[0], width/2, col)
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := segmentDirection(a, b).Perp().Mul(offset)
		if i%2 == 0 {
			n = n.Mul(-1)
		}
		dst.StrokeLine(a.Add(n), b.Add(n), width, col)
		// Join over the shared endpoint covers the side switch.
		dst.FillCircle(b, width/2, col)
	}
}
