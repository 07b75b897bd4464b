// Package layer owns the ordered stack of drawing layers and composes them
// into the single raster consumed as the 3D material texture.
//
// Every layer raster and the composed raster share one canonical
// resolution, fixed for the lifetime of the painting session. That equality
// is load-bearing: a 1024 layer under a 4096 composition silently truncates
// or blanks paint, so mismatches are reallocated before any draw rather
// than drawn into.
package layer

import (
	"errors"
	"fmt"

	"github.com/gostitch/uvpaint"
)

// ErrSizeMismatch reports a layer raster whose dimensions differ from the
// canonical resolution.
var ErrSizeMismatch = errors.New("layer: raster size differs from canonical resolution")

// ErrUnknownLayer reports an operation against a layer id not present in
// the stack.
var ErrUnknownLayer = errors.New("layer: unknown layer id")

// Layer is one drawing surface in the stack. Renderers draw into Raster;
// everything else is metadata consumed by composition.
type Layer struct {
	ID   string
	Name string

	// Raster is the layer's pixel buffer, always at the canonical
	// resolution.
	Raster *uvpaint.Pixmap

	// Visible excludes the layer from composition when false.
	Visible bool

	// Opacity in [0, 1] scales the whole layer during composition.
	Opacity float64

	// Blend selects how the layer composites over the layers below it.
	Blend uvpaint.BlendMode

	// Order is the position in the visual stack; composition draws
	// ascending order, so higher order sits on top.
	Order int

	// ToolType records which tool family owns this layer, used by
	// GetOrCreateToolLayer to find a tool's default destination.
	ToolType string
}

// sizeError builds the ErrSizeMismatch detail for a layer.
func sizeError(l *Layer, want int) error {
	return fmt.Errorf("%w: layer %q is %dx%d, want %dx%d",
		ErrSizeMismatch, l.ID, l.Raster.Width(), l.Raster.Height(), want, want)
}
