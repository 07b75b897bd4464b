package uvpaint

import (
	"math"
	"time"
)

// StrokePoint is one captured pointer sample in raster space.
type StrokePoint struct {
	X, Y float64

	// Pressure is the stylus pressure in [0, 1]; mouse input reports 0.5.
	Pressure float64

	// TiltX and TiltY are the stylus tilt angles in degrees.
	TiltX, TiltY float64

	// Velocity is the pointer speed in raster units per second.
	Velocity float64

	// Timestamp is the capture time of the sample.
	Timestamp time.Time

	// DistanceFromPrevious is the raster-space distance to the preceding
	// point in the stroke; zero for the first point.
	DistanceFromPrevious float64
}

// Point returns the raster-space position of the sample.
func (sp StrokePoint) Point() Point {
	return Point{X: sp.X, Y: sp.Y}
}

// Stroke is an ordered sequence of captured points forming one continuous
// paint gesture. A Stroke is owned exclusively by the tool session that
// created it until committed.
type Stroke struct {
	Points []StrokePoint

	// Started is the time of the pointer-down that began the stroke.
	Started time.Time
}

// Length returns the total arc length of the stroke in raster units.
func (s *Stroke) Length() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.DistanceFromPrevious
	}
	return total
}

// Shape is an immutable committed record of a stroke plus the tool/style
// tag used to render it. The tag is fixed at commit time and must be read
// back at render time; re-deriving it from the currently active tool
// re-renders shapes as the wrong style.
type Shape struct {
	// Tool is the tool identifier active when the shape was committed.
	Tool string

	// Config is the render configuration captured at commit time.
	Config RenderConfig

	// Points is the committed point sequence. Treated as read-only.
	Points []StrokePoint
}

// NewShape copies the stroke's points into an immutable Shape tagged with
// the committing tool.
func NewShape(tool string, cfg RenderConfig, points []StrokePoint) Shape {
	pts := make([]StrokePoint, len(points))
	copy(pts, points)
	return Shape{Tool: tool, Config: cfg, Points: pts}
}

// RenderConfig carries the style parameters a rendering strategy consumes.
type RenderConfig struct {
	// Type is the stroke-style identifier (e.g. "satin", "cross-stitch").
	Type string

	// Color is the base stroke color as a 6-digit hex string.
	Color string

	// Thickness is the stroke width in raster units.
	Thickness float64

	// Opacity in [0, 1] scales the stroke alpha.
	Opacity float64

	// Spacing overrides the mark spacing for discrete-mark styles
	// (cross-stitch, french knots). Zero means derive from Thickness.
	Spacing float64

	// SecondaryColor is the far-end color for gradient/variegated styles.
	// Empty means derive by brightness-shifting Color.
	SecondaryColor string
}

// Valid reports whether the config is renderable: non-empty type and color,
// and a finite positive thickness. Invalid configs are rejected before any
// drawing happens; a partial draw is never produced.
func (c RenderConfig) Valid() bool {
	if c.Type == "" || c.Color == "" {
		return false
	}
	if math.IsNaN(c.Thickness) || math.IsInf(c.Thickness, 0) || c.Thickness <= 0 {
		return false
	}
	return true
}

// EffectiveOpacity returns the opacity clamped to [0, 1], treating an unset
// (zero) opacity as fully opaque.
func (c RenderConfig) EffectiveOpacity() float64 {
	if c.Opacity <= 0 {
		return 1
	}
	if c.Opacity > 1 {
		return 1
	}
	return c.Opacity
}

// BaseColor parses the config color, substituting the fallback color for
// malformed input, and applies the effective opacity.
func (c RenderConfig) BaseColor() RGBA {
	col := HexOrFallback(c.Color)
	return col.WithAlpha(col.A * c.EffectiveOpacity())
}
