package stitch

import "github.com/gostitch/uvpaint"

// Variegated draws the stroke with a per-segment color: either a linear
// gradient toward the config's secondary color, or a brightness shift of
// the base color as a function of segment index when no secondary color is
// set.
type Variegated struct {
	strategy
}

// NewVariegated creates the gradient/variegated renderer.
func NewVariegated() *Variegated {
	return &Variegated{strategy{names: []string{"variegated", "gradient", "ombre", "multicolor"}}}
}

// DefaultConfig implements Renderer.
func (v *Variegated) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "variegated", Color: "#c0392b", SecondaryColor: "#2980b9", Thickness: 5}
}

// Render implements Renderer.
func (v *Variegated) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	pts := pathPoints(points)
	opacity := cfg.EffectiveOpacity()

	if len(pts) == 1 {
		dst.FillCircle(pts[0], cfg.Thickness/2, cfg.BaseColor())
		return
	}

	segments := len(pts) - 1
	base := uvpaint.HexOrFallback(cfg.Color)
	var far uvpaint.RGBA
	useGradient := cfg.SecondaryColor != ""
	if useGradient {
		far = uvpaint.HexOrFallback(cfg.SecondaryColor)
	}

	for i := 1; i < len(pts); i++ {
		t := float64(i-1) / float64(segments)
		var col uvpaint.RGBA
		if useGradient {
			col = base.Lerp(far, t)
		} else {
			// Brightness sweep across the stroke, +/-45 around the base.
			shift := (t*2 - 1) * 45
			col = uvpaint.HexOrFallback(uvpaint.AdjustBrightness(cfg.Color, shift))
		}
		col = col.WithAlpha(col.A * opacity)

		dst.StrokeLine(pts[i-1], pts[i], cfg.Thickness, col)
		// Round join bridges segments so consecutive pairs stay connected.
		if i < len(pts)-1 {
			dst.FillCircle(pts[i], cfg.Thickness/2, col)
		}
	}
}
