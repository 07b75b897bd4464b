package stitch

import "github.com/gostitch/uvpaint"

// Fill closes the point sequence into a polygon and flood-fills it.
type Fill struct {
	strategy
}

// NewFill creates the region-fill renderer.
func NewFill() *Fill {
	return &Fill{strategy{names: []string{"fill", "flood-fill", "filled", "region"}}}
}

// DefaultConfig implements Renderer.
func (f *Fill) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "fill", Color: "#7d3c98", Thickness: 1}
}

// Render implements Renderer.
func (f *Fill) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	pts := pathPoints(points)
	col := cfg.BaseColor()

	if len(pts) < 3 {
		// Too few points to enclose an area; degrade to a dot/line so the
		// gesture still leaves visible paint.
		dst.StrokePolyline(pts, cfg.Thickness, col)
		return
	}
	dst.FillPolygon(pts, col)
}
