// Package stitch renders captured strokes into layer rasters.
//
// Every stroke style (brush stamps, satin lines, cross-stitch marks, ...)
// is a Renderer registered with a Registry. Dispatch tries the tool
// identifier, then the config type, then falls back to the plain satin line
// renderer, so an unknown tool still paints something sensible instead of
// failing silently. New styles are added by registering a new Renderer,
// never by branching inside an existing one.
package stitch

import (
	"errors"

	"github.com/gostitch/uvpaint"
)

// ErrInvalidConfig is returned when a render config fails the chosen
// strategy's validation. The render call is skipped entirely; no partial
// draw is ever produced.
var ErrInvalidConfig = errors.New("stitch: invalid render config")

// Options carries per-call rendering flags.
type Options struct {
	// ConnectAllPoints guarantees every consecutive pair of input points
	// is geometrically connected, even across multi-segment point arrays.
	ConnectAllPoints bool
}

// Renderer is one stroke-rendering strategy.
type Renderer interface {
	// CanHandle reports whether this strategy renders the given tool
	// identifier with the given config.
	CanHandle(tool string, cfg uvpaint.RenderConfig) bool

	// Render draws the point sequence into dst. Implementations may assume
	// the config passed ValidateConfig.
	Render(dst *uvpaint.Pixmap, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, opts Options)

	// DefaultConfig returns the strategy's baseline configuration.
	DefaultConfig() uvpaint.RenderConfig

	// ValidateConfig reports whether the config is renderable by this
	// strategy.
	ValidateConfig(cfg uvpaint.RenderConfig) bool
}

// Registry is the dispatch table over registered strategies.
type Registry struct {
	renderers []Renderer
	fallback  Renderer
}

// NewRegistry creates an empty registry with the satin line renderer as the
// designated fallback.
func NewRegistry() *Registry {
	return &Registry{fallback: NewSatin()}
}

// DefaultRegistry returns a registry with every built-in strategy
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewSatin())
	r.Register(NewCrossStitch())
	r.Register(NewChain())
	r.Register(NewFill())
	r.Register(NewFrenchKnot())
	r.Register(NewRunning())
	r.Register(NewVariegated())
	r.Register(NewBackStitch())
	r.Register(NewStem())
	r.Register(NewBrush())
	return r
}

// Register appends a strategy to the dispatch table. Earlier registrations
// win ties.
func (r *Registry) Register(rend Renderer) {
	r.renderers = append(r.renderers, rend)
}

// Find resolves a strategy for the tool identifier. Dispatch order: every
// strategy's CanHandle against the tool id, then against cfg.Type, then the
// fallback.
func (r *Registry) Find(tool string, cfg uvpaint.RenderConfig) Renderer {
	for _, rend := range r.renderers {
		if rend.CanHandle(tool, cfg) {
			return rend
		}
	}
	if cfg.Type != "" && cfg.Type != tool {
		for _, rend := range r.renderers {
			if rend.CanHandle(cfg.Type, cfg) {
				return rend
			}
		}
	}
	uvpaint.Logger().Debug("stitch: no strategy for tool, using fallback",
		"tool", tool, "type", cfg.Type)
	return r.fallback
}

// Render dispatches to the matching strategy after validating the config
// with it. An invalid config performs zero draw calls and reports
// ErrInvalidConfig.
func (r *Registry) Render(dst *uvpaint.Pixmap, tool string, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig, opts Options) error {
	if len(points) == 0 {
		return nil
	}
	rend := r.Find(tool, cfg)
	if !rend.ValidateConfig(cfg) {
		uvpaint.Logger().Warn("stitch: rejected render config",
			"tool", tool, "type", cfg.Type, "color", cfg.Color, "thickness", cfg.Thickness)
		return ErrInvalidConfig
	}
	rend.Render(dst, points, cfg, opts)
	return nil
}

// RenderShape draws a committed shape using the tool tag stored on the
// shape at commit time, never the currently active tool.
func (r *Registry) RenderShape(dst *uvpaint.Pixmap, shape uvpaint.Shape, opts Options) error {
	return r.Render(dst, shape.Tool, shape.Points, shape.Config, opts)
}
