// Package uvpaint provides the raster painting core for UV-surface garment
// decoration.
//
// # Overview
//
// uvpaint lets a host application paint strokes, stitches, and decorations
// onto the UV-mapped surface of a 3D model. Pointer input is resolved to UV
// texture coordinates, captured and smoothed into strokes, rendered by a
// pluggable set of stitch/brush strategies into per-layer rasters, and
// composited into a single texture-sized raster for GPU upload.
//
// # Quick Start
//
//	import (
//	    "github.com/gostitch/uvpaint"
//	    "github.com/gostitch/uvpaint/painter"
//	)
//
//	s := painter.NewSession(painter.DefaultConfig())
//	s.SetTool(uvpaint.RenderConfig{Type: "cross-stitch", Color: "#c0392b", Thickness: 6})
//	s.PointerDown(sample)
//	s.PointerMove(sample2)
//	s.PointerUp()
//	img := s.Compose().ToImage() // texture source
//
// # Architecture
//
// The library is organized into:
//   - Root package: rasters (Pixmap), colors, blend modes, stroke records
//   - mesh: UV <-> world-space conversion over triangle meshes
//   - capture: pointer stream -> smoothed stroke points
//   - stitch: renderer registry and stroke-style strategies
//   - layer: ordered layer stack and composition
//   - texture: bridge to the GPU texture consumer
//   - painter: session orchestration and configuration
//
// # Coordinate Systems
//
// UV coordinates are normalized to [0,1]x[0,1] and clamped before use.
// Raster coordinates use standard computer-graphics conventions: origin at
// top-left, X increasing right, Y increasing down. Every layer raster and
// the composed raster share one canonical resolution for the lifetime of a
// painting session; mismatched raster sizes are a structural error, never
// silently drawn into.
//
// # Performance
//
// The raster pipeline is optimized for correctness over speed. Redraw
// cadence during a stroke is bounded by a configurable throttle interval
// rather than per-event rendering.
package uvpaint

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
