package stitch

import "github.com/gostitch/uvpaint"

// Chain draws a small loop centered at the midpoint of each consecutive
// point pair, plus a connecting line when the pair is farther apart than
// the stroke width.
type Chain struct {
	strategy
}

// NewChain creates the chain-stitch renderer.
func NewChain() *Chain {
	return &Chain{strategy{names: []string{"chain", "chain-stitch", "loop"}}}
}

// DefaultConfig implements Renderer.
func (c *Chain) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "chain", Color: "#1e8449", Thickness: 5}
}

// Render implements Renderer.
func (c *Chain) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, opts Options) {
	pts := pathPoints(points)
	col := cfg.BaseColor()
	loopWidth := cfg.Thickness / 2.5
	if loopWidth < 1 {
		loopWidth = 1
	}

	if len(pts) == 1 {
		dst.StrokeCircle(pts[0], cfg.Thickness*0.8, loopWidth, col)
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dist := a.Distance(b)

		if dist > cfg.Thickness || opts.ConnectAllPoints {
			dst.StrokeLine(a, b, loopWidth, col)
		}

		radius := dist / 2
		if radius > cfg.Thickness {
			radius = cfg.Thickness
		}
		if radius < cfg.Thickness*0.4 {
			radius = cfg.Thickness * 0.4
		}
		dst.StrokeCircle(a.Midpoint(b), radius, loopWidth, col)
	}
}
