// Package painter wires the painting pipeline together: pointer samples
// flow through stroke capture into the renderer registry, land on layer
// rasters, and surface as one composed raster signalled across the texture
// bridge.
//
// A Session is the single writer for all painting state: the layer stack,
// the committed shape collection, and the active tool. Hosts needing shared
// access go through the Session's operations rather than holding their own
// copies of this state.
package painter

import (
	"github.com/gostitch/uvpaint"
	"github.com/gostitch/uvpaint/capture"
	"github.com/gostitch/uvpaint/layer"
	"github.com/gostitch/uvpaint/mesh"
	"github.com/gostitch/uvpaint/stitch"
	"github.com/gostitch/uvpaint/texture"
)

// Session owns one painting session over one model.
type Session struct {
	cfg Config

	recorder *capture.Recorder
	registry *stitch.Registry
	stack    *layer.Stack
	bridge   *texture.Bridge
	mapper   *mesh.Mapper

	// shapes is the committed shape collection for vector/stitch tools.
	shapes []uvpaint.Shape

	// tool is the active tool identifier; toolCfg its render config. Both
	// are copied onto shapes at commit time, never read back at render
	// time for already committed work.
	tool    string
	toolCfg uvpaint.RenderConfig

	// drawn is how many captured points of the in-progress stroke a raster
	// tool has already painted. Throttling delays painting, it never skips
	// points: each redraw paints everything past this watermark.
	drawn int
}

// Option configures a Session during creation.
type Option func(*Session)

// WithUploader connects the external texture consumer.
func WithUploader(up texture.Uploader) Option {
	return func(s *Session) {
		s.bridge = texture.NewBridge(up)
	}
}

// WithRegistry substitutes a custom renderer registry.
func WithRegistry(r *stitch.Registry) Option {
	return func(s *Session) {
		s.registry = r
	}
}

// WithMapper attaches a UV surface mapper for hosts that resolve pointer
// events through this session.
func WithMapper(m *mesh.Mapper) Option {
	return func(s *Session) {
		s.mapper = m
	}
}

// WithClock injects a clock for the capture throttle (virtual in tests).
func WithClock(c capture.Clock) Option {
	return func(s *Session) {
		recOpts := []capture.Option{capture.WithThrottle(s.cfg.throttleInterval(), c)}
		if s.cfg.Stabilizer.Enabled {
			recOpts = append(recOpts, capture.WithStabilizer(s.cfg.Stabilizer.Delay, s.cfg.Stabilizer.Quality))
		}
		s.recorder = capture.NewRecorder(s.cfg.Resolution, recOpts...)
	}
}

// NewSession creates a session with the configured canonical resolution.
func NewSession(cfg Config, opts ...Option) *Session {
	if cfg.Resolution <= 0 {
		cfg.Resolution = DefaultResolution
	}
	s := &Session{
		cfg:     cfg,
		stack:   layer.NewStack(cfg.Resolution),
		tool:    cfg.DefaultTool,
		toolCfg: uvpaint.RenderConfig{Type: cfg.DefaultTool, Color: cfg.DefaultColor, Thickness: 4},
	}
	WithClock(capture.SystemClock())(s)
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = stitch.DefaultRegistry()
	}
	if s.bridge == nil {
		s.bridge = texture.NewBridge(nil)
	}
	return s
}

// Stack exposes the layer stack for layer-management commands from the
// tool/UI layer.
func (s *Session) Stack() *layer.Stack {
	return s.stack
}

// Registry exposes the renderer registry.
func (s *Session) Registry() *stitch.Registry {
	return s.registry
}

// Mapper returns the attached surface mapper, or nil.
func (s *Session) Mapper() *mesh.Mapper {
	return s.mapper
}

// Shapes returns a copy of the committed shape collection.
func (s *Session) Shapes() []uvpaint.Shape {
	out := make([]uvpaint.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// SetTool selects the active tool from a render config issued by the UI
// layer. The config's Type doubles as the tool identifier.
func (s *Session) SetTool(cfg uvpaint.RenderConfig) {
	s.tool = cfg.Type
	s.toolCfg = cfg
}

// ActiveTool returns the active tool identifier.
func (s *Session) ActiveTool() string {
	return s.tool
}

// PointerDown begins a new stroke.
func (s *Session) PointerDown(sample capture.Sample) {
	s.recorder.Begin(sample)
	s.drawn = 0
}

// PointerMove feeds a pointer sample into the active stroke. Raster brush
// tools paint the new segment into their layer immediately (at the
// throttled redraw cadence); stitch tools accumulate points until commit.
// Any processing error aborts the stroke and leaves committed work intact.
func (s *Session) PointerMove(sample capture.Sample) error {
	_, redraw, err := s.recorder.Move(sample)
	if err != nil {
		return err
	}
	if !redraw || !s.isRasterTool() {
		return nil
	}

	if err := s.paintUndrawn(s.recorder.Points()); err != nil {
		s.recorder.Cancel()
		return err
	}
	return nil
}

// paintUndrawn renders every captured point past the drawn watermark into
// the raster tool's layer, overlapping one point back so segments connect.
func (s *Session) paintUndrawn(pts []uvpaint.StrokePoint) error {
	if len(pts) <= s.drawn {
		return nil
	}
	start := s.drawn - 1
	if start < 0 {
		start = 0
	}
	if err := s.renderToToolLayer(s.tool, pts[start:], s.toolCfg); err != nil {
		return err
	}
	s.drawn = len(pts)
	return nil
}

// PointerUp commits the stroke: raster brush strokes finish on their layer,
// stitch strokes become an immutable Shape tagged with the committing tool.
func (s *Session) PointerUp() error {
	stroke, err := s.recorder.End()
	if err != nil {
		return err
	}

	if s.isRasterTool() {
		// Paint whatever the throttle held back, single taps included.
		return s.paintUndrawn(stroke.Points)
	}

	shape := uvpaint.NewShape(s.tool, s.toolCfg, stroke.Points)
	if err := s.renderToToolLayer(shape.Tool, shape.Points, shape.Config); err != nil {
		return err
	}
	s.shapes = append(s.shapes, shape)
	return nil
}

// Cancel abandons the stroke in progress without committing a shape.
// Raster writes already applied by a brush stroke stand as-is.
func (s *Session) Cancel() {
	s.recorder.Cancel()
}

// RenderShapes clears the layers owned by stitch tools and re-renders every
// committed shape from its stored tool tag. Switching the active tool
// between commits never changes how earlier shapes render.
func (s *Session) RenderShapes() error {
	cleared := map[string]bool{}
	for _, shape := range s.shapes {
		l := s.stack.GetOrCreateToolLayer(shape.Tool)
		if !cleared[l.ID] {
			l.Raster.Clear(uvpaint.Transparent)
			cleared[l.ID] = true
		}
	}
	for _, shape := range s.shapes {
		l := s.stack.GetOrCreateToolLayer(shape.Tool)
		if err := s.registry.RenderShape(l.Raster, shape, stitch.Options{ConnectAllPoints: true}); err != nil {
			return err
		}
	}
	if len(s.shapes) > 0 {
		s.stack.Invalidate()
		s.bridge.Signal()
	}
	return nil
}

// Compose recombines the layer stack if dirty and flushes the texture
// bridge. The returned raster is the texture source.
func (s *Session) Compose() *uvpaint.Pixmap {
	composed := s.stack.Compose()
	_ = s.bridge.Flush(composed)
	return composed
}

// Bridge exposes the texture bridge, mainly for hosts polling NeedsUpdate.
func (s *Session) Bridge() *texture.Bridge {
	return s.bridge
}

// renderToToolLayer draws points into the tool's layer and marks everything
// downstream dirty.
func (s *Session) renderToToolLayer(tool string, points []uvpaint.StrokePoint, cfg uvpaint.RenderConfig) error {
	l := s.stack.GetOrCreateToolLayer(tool)
	if err := s.registry.Render(l.Raster, tool, points, cfg, stitch.Options{ConnectAllPoints: true}); err != nil {
		return err
	}
	s.stack.Invalidate()
	s.bridge.Signal()
	return nil
}

// isRasterTool reports whether the active tool paints directly into its
// layer raster instead of committing shapes.
func (s *Session) isRasterTool() bool {
	_, ok := s.registry.Find(s.tool, s.toolCfg).(*stitch.Brush)
	return ok
}
