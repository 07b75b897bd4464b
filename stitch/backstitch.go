package stitch

import "github.com/gostitch/uvpaint"

// BackStitch draws each segment slightly extended past both endpoints so
// adjacent stitches overlap, the way hand back-stitching doubles back on
// itself. Alternating segments darken a touch to read as separate threads.
type BackStitch struct {
	strategy
}

// NewBackStitch creates the back-stitch renderer.
func NewBackStitch() *BackStitch {
	return &BackStitch{strategy{names: []string{"back-stitch", "backstitch", "back"}}}
}

// DefaultConfig implements Renderer.
func (b *BackStitch) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "back-stitch", Color: "#6c3483", Thickness: 4}
}

// Render implements Renderer.
func (b *BackStitch) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	pts := pathPoints(points)
	opacity := cfg.EffectiveOpacity()
	overlap := cfg.Thickness * 0.3

	if len(pts) == 1 {
		dst.FillCircle(pts[0], cfg.Thickness/2, cfg.BaseColor())
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b2 := pts[i-1], pts[i]
		dir := segmentDirection(a, b2)
		start := a.Sub(dir.Mul(overlap))
		end := b2.Add(dir.Mul(overlap))

		shift := 0.0
		if i%2 == 0 {
			shift = -22
		}
		col := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, shift)).WithAlpha(opacity)
		dst.StrokeLine(start, end, cfg.Thickness, col)
	}
}
