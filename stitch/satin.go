package stitch

import "github.com/gostitch/uvpaint"

// strategy provides the name matching and validation shared by every
// built-in renderer.
type strategy struct {
	names []string
}

// CanHandle matches the tool identifier against the strategy's names.
func (s strategy) CanHandle(tool string, _ uvpaint.RenderConfig) bool {
	for _, n := range s.names {
		if n == tool {
			return true
		}
	}
	return false
}

// ValidateConfig applies the baseline config rules: non-empty type and
// color, finite positive thickness.
func (s strategy) ValidateConfig(cfg uvpaint.RenderConfig) bool {
	return cfg.Valid()
}

// Satin renders a single continuous polyline stroke with fixed color and
// width — the plainest stitch, and the registry's designated fallback.
type Satin struct {
	strategy
}

// NewSatin creates the satin/plain line renderer.
func NewSatin() *Satin {
	return &Satin{strategy{names: []string{"satin", "plain", "outline", "straight", "line"}}}
}

// DefaultConfig implements Renderer.
func (s *Satin) DefaultConfig() uvpaint.RenderConfig {
	return uvpaint.RenderConfig{Type: "satin", Color: "#1f3d7a", Thickness: 4}
}

// Render implements Renderer.
func (s *Satin) Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, _ Options) {
	dst.StrokePolyline(pathPoints(points), cfg.Thickness, cfg.BaseColor())
}
