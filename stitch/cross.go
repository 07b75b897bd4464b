package stitch

import "github.com/gostitch/uvpaint"

// CrossStitch places discrete "X" marks along the path at a spacing
// proportional to the stroke width. Each mark is two crossed line segments
// drawn in three passes (shadow, thread, highlight) for depth, with a
// deterministic brightness jitter per mark index so repeated renders are
// identical.
type CrossStitch struct {
	strategy
}

// NewCrossStitch creates the cross-stitch renderer.
func NewCrossStitch() *CrossStitch {
	return &CrossStitch{strategy{names: []string{"cross-stitch", "cross", "x-stitch", "counted-cross"}}}
}

// DefaultConfig implements Renderer.
func (c *CrossStitch) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "cross-stitch", Color: "#a93226", Thickness: 6}
}

// Render implements Renderer.
func (c *CrossStitch) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, opts Options) {
	pts := pathPoints(points)
	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = cfg.Thickness * 1.6
	}

	if opts.ConnectAllPoints {
		// A thin base run keeps consecutive points connected even where
		// mark spacing would leave a gap.
		dst.StrokePolyline(pts, cfg.Thickness/4, cfg.BaseColor().WithAlpha(cfg.EffectiveOpacity()*0.35))
	}

	marks := resample(pts, spacing)
	arm := cfg.Thickness
	threadWidth := cfg.Thickness / 2.5
	if threadWidth < 1 {
		threadWidth = 1
	}
	opacity := cfg.EffectiveOpacity()

	for i, m := range marks {
		jitter := markJitter(i) * 18
		thread := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, jitter)).WithAlpha(opacity)
		shadow := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, jitter-60)).WithAlpha(opacity)
		highlight := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, jitter+55)).WithAlpha(opacity * 0.6)

		c.drawMark(dst, m.Add(uvpaint.Pt(1, 1)), arm, threadWidth, shadow)
		c.drawMark(dst, m, arm, threadWidth, thread)
		c.drawMark(dst, m.Sub(uvpaint.Pt(0.5, 0.5)), arm, threadWidth/2, highlight)
	}
}

// drawMark draws one X: two crossed diagonal segments centered on pos.
func (c *CrossStitch) drawMark(dst *uvpaint.Pixmap, pos uvpaint.Point, arm, width float64, col uvpaint.RGBA) {
	h := arm / 2
	dst.StrokeLine(pos.Add(uvpaint.Pt(-h, -h)), pos.Add(uvpaint.Pt(h, h)), width, col)
	dst.StrokeLine(pos.Add(uvpaint.Pt(-h, h)), pos.Add(uvpaint.Pt(h, -h)), width, col)
}
