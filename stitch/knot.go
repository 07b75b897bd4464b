package stitch

import "github.com/gostitch/uvpaint"

// FrenchKnot draws a small filled dot at every point. The seed stitch is
// the same geometry under a different name.
type FrenchKnot struct {
	strategy
}

// NewFrenchKnot creates the french-knot/seed renderer.
func NewFrenchKnot() *FrenchKnot {
	return &FrenchKnot{strategy{names: []string{"french-knot", "knot", "seed", "seed-stitch", "dot"}}}
}

// DefaultConfig implements Renderer.
func (k *FrenchKnot) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "french-knot", Color: "#b7950b", Thickness: 5}
}

// Render implements Renderer.
func (k *FrenchKnot) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	opacity := cfg.EffectiveOpacity()
	rim := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, -50)).WithAlpha(opacity)
	core := uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, 25)).WithAlpha(opacity)
	base := cfg.BaseColor()

	radius := cfg.Thickness * 0.8
	for _, p := range points {
		pos := p.Point()
		dst.FillCircle(pos, radius, rim)
		dst.FillCircle(pos, radius*0.75, base)
		dst.FillCircle(pos.Sub(uvpaint.Pt(radius*0.2, radius*0.2)), radius*0.35, core)
	}
}
