package stitch

import "github.com/gostitch/uvpaint"

// Running renders a polyline with a dash pattern proportional to the stroke
// width — the classic running/basting stitch.
type Running struct {
	strategy
}

// NewRunning creates the running/dashed renderer.
func NewRunning() *Running {
	return &Running{strategy{names: []string{"running", "running-stitch", "dashed", "dash", "basting"}}}
}

// DefaultConfig implements Renderer.
func (r *Running) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "running", Color: "#21618c", Thickness: 4}
}

// Render implements Renderer.
func (r *Running) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, opts Options) {
	pts := pathPoints(points)
	col := cfg.BaseColor()

	if opts.ConnectAllPoints {
		// Thin continuous underline bridges the dash gaps.
		dst.StrokePolyline(pts, cfg.Thickness/4, col.WithAlpha(col.A*0.4))
	}

	dash := uvpaint.NewDash(cfg.Thickness*2.2, cfg.Thickness*1.4)
	total := pathLength(pts)
	for _, span := range dash.Spans(total) {
		if !span.On {
			continue
		}
		seg := subPath(pts, span.Start, span.End)
		dst.StrokePolyline(seg, cfg.Thickness, col)
	}
}
