package layer

import (
	"fmt"
	"sort"

	"github.com/gostitch/uvpaint"
)

// Stack is the single owner of the layer list, the active-layer pointer,
// and the composed raster. All mutation goes through Stack methods; nothing
// outside this package reorders layers or swaps rasters.
type Stack struct {
	resolution int
	layers     []*Layer
	activeID   string

	composed *uvpaint.Pixmap
	dirty    bool

	nextID int
}

// NewStack creates a stack with its composed raster allocated once at the
// canonical resolution. The composed raster is recomputed but never resized
// for the stack's lifetime.
func NewStack(resolution int) *Stack {
	return &Stack{
		resolution: resolution,
		composed:   uvpaint.NewPixmap(resolution, resolution),
		dirty:      true,
	}
}

// Resolution returns the canonical raster resolution.
func (s *Stack) Resolution() int {
	return s.resolution
}

// CreateLayer allocates a new layer at the canonical resolution and appends
// it at the top of the visual stack.
func (s *Stack) CreateLayer(name, toolType string) *Layer {
	s.nextID++
	if name == "" {
		name = fmt.Sprintf("Layer %d", s.nextID)
	}
	l := &Layer{
		ID:      fmt.Sprintf("layer-%d", s.nextID),
		Name:    name,
		Raster:  uvpaint.NewPixmap(s.resolution, s.resolution),
		Visible: true,
		Opacity: 1,
		Blend:   uvpaint.BlendNormal,
		Order:   s.topOrder() + 1,
		ToolType: toolType,
	}
	s.layers = append(s.layers, l)
	s.Invalidate()
	return l
}

// GetOrCreateToolLayer returns the existing default layer owned by a tool
// type, creating it on first use. At most one default layer exists per tool
// type; additional layers for the same tool come only from explicit
// CreateLayer calls.
func (s *Stack) GetOrCreateToolLayer(toolType string) *Layer {
	for _, l := range s.layers {
		if l.ToolType == toolType {
			return l
		}
	}
	return s.CreateLayer(toolType, toolType)
}

// Get returns the layer with the given id.
func (s *Stack) Get(id string) (*Layer, bool) {
	for _, l := range s.layers {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// Layers returns the layers sorted by ascending order (bottom first).
func (s *Stack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// SetActive marks a layer as the current draw target. The id must reference
// a layer present in the stack.
func (s *Stack) SetActive(id string) error {
	if _, ok := s.Get(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	s.activeID = id
	return nil
}

// Active returns the current draw target, or nil when none is set.
func (s *Stack) Active() *Layer {
	if s.activeID == "" {
		return nil
	}
	l, _ := s.Get(s.activeID)
	return l
}

// Delete removes a layer from the stack.
func (s *Stack) Delete(id string) error {
	for i, l := range s.layers {
		if l.ID == id {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			if s.activeID == id {
				s.activeID = ""
			}
			s.Invalidate()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
}

// Duplicate clones a layer, raster included, and places the copy directly
// above the original.
func (s *Stack) Duplicate(id string) (*Layer, error) {
	src, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	s.nextID++
	dup := &Layer{
		ID:       fmt.Sprintf("layer-%d", s.nextID),
		Name:     src.Name + " copy",
		Raster:   src.Raster.Clone(),
		Visible:  src.Visible,
		Opacity:  src.Opacity,
		Blend:    src.Blend,
		Order:    src.Order + 1,
		ToolType: src.ToolType,
	}
	for _, l := range s.layers {
		if l.Order > src.Order {
			l.Order++
		}
	}
	s.layers = append(s.layers, dup)
	s.Invalidate()
	return dup, nil
}

// SetVisible toggles a layer's visibility.
func (s *Stack) SetVisible(id string, visible bool) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	l.Visible = visible
	s.Invalidate()
	return nil
}

// SetOpacity sets a layer's opacity, clamped to [0, 1].
func (s *Stack) SetOpacity(id string, opacity float64) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	l.Opacity = opacity
	s.Invalidate()
	return nil
}

// SetBlendMode sets a layer's blend mode.
func (s *Stack) SetBlendMode(id string, mode uvpaint.BlendMode) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	l.Blend = mode
	s.Invalidate()
	return nil
}

// Rename changes a layer's display name.
func (s *Stack) Rename(id, name string) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	l.Name = name
	return nil
}

// MoveUp moves a layer one step closer to the top of the visual stack
// (drawn later, over more layers).
func (s *Stack) MoveUp(id string) error {
	return s.swapNeighbor(id, +1)
}

// MoveDown moves a layer one step toward the bottom of the visual stack.
func (s *Stack) MoveDown(id string) error {
	return s.swapNeighbor(id, -1)
}

// BringToFront moves a layer to the top of the visual stack.
func (s *Stack) BringToFront(id string) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	l.Order = s.topOrder() + 1
	s.Invalidate()
	return nil
}

// SendToBack moves a layer to the bottom of the visual stack.
func (s *Stack) SendToBack(id string) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	min := l.Order
	for _, other := range s.layers {
		if other.Order < min {
			min = other.Order
		}
	}
	l.Order = min - 1
	s.Invalidate()
	return nil
}

// swapNeighbor exchanges order with the nearest layer in the given
// direction (+1 toward the top, -1 toward the bottom).
func (s *Stack) swapNeighbor(id string, dir int) error {
	l, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	var neighbor *Layer
	for _, other := range s.layers {
		if other == l {
			continue
		}
		delta := other.Order - l.Order
		if dir > 0 && delta > 0 && (neighbor == nil || other.Order < neighbor.Order) {
			neighbor = other
		}
		if dir < 0 && delta < 0 && (neighbor == nil || other.Order > neighbor.Order) {
			neighbor = other
		}
	}
	if neighbor == nil {
		return nil // already at the boundary
	}
	l.Order, neighbor.Order = neighbor.Order, l.Order
	s.Invalidate()
	return nil
}

// topOrder returns the highest order in the stack, or 0 when empty.
func (s *Stack) topOrder() int {
	top := 0
	for _, l := range s.layers {
		if l.Order > top {
			top = l.Order
		}
	}
	return top
}
