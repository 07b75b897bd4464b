package stitch

import "github.com/gostitch/uvpaint"

// Brush is the raster brush tool: round pressure-scaled stamps placed along
// the stroke at a spacing tight enough to read as a continuous mark.
type Brush struct {
	strategy
}

// NewBrush creates the raster brush renderer.
func NewBrush() *Brush {
	return &Brush{strategy{names: []string{"brush", "marker", "paint"}}}
}

// DefaultConfig implements Renderer.
func (b *Brush) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "brush", Color: "#2c3e50", Thickness: 8}
}

// Render implements Renderer.
func (b *Brush) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	col := cfg.BaseColor()

	prev := points[0]
	b.stamp(dst, prev, cfg, col)

	for _, pt := range points[1:] {
		// Interpolate stamps between samples so fast strokes stay solid.
		dist := pt.Point().Distance(prev.Point())
		step := b.radius(cfg, pt) * 0.5
		if step < 1 {
			step = 1
		}
		for d := step; d < dist; d += step {
			t := d / dist
			mid := pt
			mid.X = prev.X + (pt.X-prev.X)*t
			mid.Y = prev.Y + (pt.Y-prev.Y)*t
			mid.Pressure = prev.Pressure + (pt.Pressure-prev.Pressure)*t
			b.stamp(dst, mid, cfg, col)
		}
		b.stamp(dst, pt, cfg, col)
		prev = pt
	}
}

// radius derives the stamp radius from thickness and pressure.
func (b *Brush) radius(cfg uvpaint.RenderConfig, pt uvpaint.StrokePoint) float64 {
	pressure := pt.Pressure
	if pressure <= 0 {
		pressure = 0.5
	}
	return cfg.Thickness / 2 * (0.5 + pressure)
}

// stamp draws one round brush mark.
func (b *Brush) stamp(dst *uvpaint.Pixmap, pt uvpaint.StrokePoint, cfg uvpaint.RenderConfig, col uvpaint.RGBA) {
	dst.FillCircle(pt.Point(), b.radius(cfg, pt), col)
}
