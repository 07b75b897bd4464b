// Package capture turns a raw pointer-event stream into a cleaned sequence
// of stroke points: UV clamping, optional stabilization, velocity/distance
// bookkeeping, and a redraw throttle bounding per-frame render cost.
//
// State machine per pointer: Idle -> Painting -> Idle. Any processing
// failure aborts the current stroke and returns to Idle; previously
// committed strokes are never touched.
package capture

import (
	"errors"
	"time"

	"github.com/gostitch/uvpaint"
)

// ErrNoActiveStroke is returned when an operation expecting an in-progress
// stroke (commit, move) runs while the recorder is idle.
var ErrNoActiveStroke = errors.New("capture: no active stroke")

// DefaultThrottleInterval bounds redraw cadence to roughly one update per
// frame at 60 Hz.
const DefaultThrottleInterval = 16 * time.Millisecond

// Sample is one raw pointer event at the input boundary. UV resolution
// against the 3D scene happens upstream (the rendering framework's own
// raycasting); the recorder consumes the resolved UV as-is.
type Sample struct {
	// U, V is the surface coordinate in [0,1]; clamped on entry.
	U, V float64

	// Pressure in [0, 1].
	Pressure float64

	// TiltX, TiltY are stylus tilt angles in degrees.
	TiltX, TiltY float64

	// Time is the event timestamp.
	Time time.Time
}

// State is the recorder's pointer state.
type State int

const (
	// Idle means no stroke is being captured.
	Idle State = iota
	// Painting means a stroke is in progress.
	Painting
)

// Recorder captures one stroke at a time. It converts clamped UV input to
// raster coordinates at the canonical resolution, applies stabilization,
// and tracks velocity and inter-point distance.
type Recorder struct {
	state      State
	resolution int

	stabilizer *Stabilizer
	throttle   *Throttle

	stroke *uvpaint.Stroke
}

// Option configures a Recorder during creation.
type Option func(*Recorder)

// WithStabilizer enables stroke stabilization with the given history depth
// and smoothing quality in [0, 1].
func WithStabilizer(delay int, quality float64) Option {
	return func(r *Recorder) {
		r.stabilizer = NewStabilizer(delay, quality)
	}
}

// WithThrottle overrides the redraw throttle interval.
func WithThrottle(interval time.Duration, clock Clock) Option {
	return func(r *Recorder) {
		r.throttle = NewThrottle(interval, clock)
	}
}

// NewRecorder creates a recorder emitting raster coordinates scaled to the
// given canonical resolution.
func NewRecorder(resolution int, opts ...Option) *Recorder {
	r := &Recorder{resolution: resolution}
	for _, opt := range opts {
		opt(r)
	}
	if r.throttle == nil {
		r.throttle = NewThrottle(DefaultThrottleInterval, nil)
	}
	return r
}

// State returns the recorder's current pointer state.
func (r *Recorder) State() State {
	return r.state
}

// Points returns the points captured so far in the active stroke.
// The slice is owned by the recorder; callers must not retain it past the
// next recorder call.
func (r *Recorder) Points() []uvpaint.StrokePoint {
	if r.stroke == nil {
		return nil
	}
	return r.stroke.Points
}

// Begin starts a new stroke on pointer-down. A stroke already in progress
// is aborted first; its points are discarded, matching the behavior of a
// pointer-up that was never delivered.
func (r *Recorder) Begin(s Sample) {
	if r.state == Painting {
		uvpaint.Logger().Warn("capture: pointer down during active stroke, aborting previous")
		r.Cancel()
	}
	r.state = Painting
	r.stroke = &uvpaint.Stroke{Started: s.Time}
	if r.stabilizer != nil {
		r.stabilizer.Reset()
	}
	r.throttle.Reset()
	r.append(s)
}

// Move appends a point to the active stroke on pointer-move. The returned
// redraw flag reports whether the caller should re-render now; it is
// throttled, while the captured point itself never is. Calling Move while
// idle returns ErrNoActiveStroke.
func (r *Recorder) Move(s Sample) (pt uvpaint.StrokePoint, redraw bool, err error) {
	if r.state != Painting {
		return uvpaint.StrokePoint{}, false, ErrNoActiveStroke
	}
	pt = r.append(s)
	return pt, r.throttle.Allow(), nil
}

// End commits the stroke on pointer-up, returning the captured point
// sequence. The stroke reference is taken before any state is cleared so a
// concurrent-looking clear can never produce an empty commit.
func (r *Recorder) End() (uvpaint.Stroke, error) {
	if r.state != Painting || r.stroke == nil {
		return uvpaint.Stroke{}, ErrNoActiveStroke
	}

	// Capture the stroke before clearing state, not after.
	committed := *r.stroke

	r.stroke = nil
	r.state = Idle
	return committed, nil
}

// Cancel abandons the stroke without committing (e.g. pointer left the
// canvas). Raster writes already applied by the caller stand as-is; vector
// tools simply never see a committed shape.
func (r *Recorder) Cancel() {
	r.stroke = nil
	r.state = Idle
}

// append converts the sample to a raster-space stroke point and records it.
func (r *Recorder) append(s Sample) uvpaint.StrokePoint {
	u := clamp01f(s.U)
	v := clamp01f(s.V)

	pos := uvpaint.Pt(u*float64(r.resolution), v*float64(r.resolution))
	if r.stabilizer != nil {
		pos = r.stabilizer.Smooth(pos)
	}

	pt := uvpaint.StrokePoint{
		X:         pos.X,
		Y:         pos.Y,
		Pressure:  clamp01f(s.Pressure),
		TiltX:     s.TiltX,
		TiltY:     s.TiltY,
		Timestamp: s.Time,
	}

	if n := len(r.stroke.Points); n > 0 {
		prev := r.stroke.Points[n-1]
		pt.DistanceFromPrevious = pos.Distance(prev.Point())
		if dt := pt.Timestamp.Sub(prev.Timestamp).Seconds(); dt > 0 {
			pt.Velocity = pt.DistanceFromPrevious / dt
		}
	}

	r.stroke.Points = append(r.stroke.Points, pt)
	return pt
}

func clamp01f(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
