package capture

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock for throttle tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func sampleAt(u, v float64, at time.Time) Sample {
	return Sample{U: u, V: v, Pressure: 0.5, Time: at}
}

func TestRecorder_StateMachine(t *testing.T) {
	r := NewRecorder(1024)
	if r.State() != Idle {
		t.Fatal("new recorder not idle")
	}

	base := time.Now()
	r.Begin(sampleAt(0.1, 0.1, base))
	if r.State() != Painting {
		t.Fatal("Begin did not transition to Painting")
	}

	if _, _, err := r.Move(sampleAt(0.2, 0.2, base.Add(10*time.Millisecond))); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	stroke, err := r.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if r.State() != Idle {
		t.Fatal("End did not transition to Idle")
	}
	if len(stroke.Points) != 2 {
		t.Fatalf("committed %d points, want 2", len(stroke.Points))
	}
}

func TestRecorder_IdleOperationsFail(t *testing.T) {
	r := NewRecorder(1024)

	if _, _, err := r.Move(sampleAt(0.1, 0.1, time.Now())); !errors.Is(err, ErrNoActiveStroke) {
		t.Errorf("Move while idle = %v, want ErrNoActiveStroke", err)
	}
	if _, err := r.End(); !errors.Is(err, ErrNoActiveStroke) {
		t.Errorf("End while idle = %v, want ErrNoActiveStroke", err)
	}
}

func TestRecorder_ScalesToResolution(t *testing.T) {
	r := NewRecorder(2048)
	base := time.Now()
	r.Begin(sampleAt(0.5, 0.25, base))

	stroke, err := r.End()
	if err != nil {
		t.Fatal(err)
	}
	pt := stroke.Points[0]
	if pt.X != 1024 || pt.Y != 512 {
		t.Errorf("raster position = (%v, %v), want (1024, 512)", pt.X, pt.Y)
	}
}

func TestRecorder_ClampsUV(t *testing.T) {
	r := NewRecorder(1000)
	base := time.Now()
	r.Begin(sampleAt(1.5, -0.25, base))

	stroke, _ := r.End()
	pt := stroke.Points[0]
	if pt.X != 1000 || pt.Y != 0 {
		t.Errorf("out-of-range uv not clamped: (%v, %v)", pt.X, pt.Y)
	}
}

func TestRecorder_DistanceAndVelocity(t *testing.T) {
	r := NewRecorder(1000)
	base := time.Now()
	r.Begin(sampleAt(0, 0, base))
	r.Move(sampleAt(0.3, 0.4, base.Add(time.Second)))

	stroke, _ := r.End()
	pt := stroke.Points[1]
	if d := pt.DistanceFromPrevious; d < 499.9 || d > 500.1 {
		t.Errorf("DistanceFromPrevious = %v, want 500", d)
	}
	if v := pt.Velocity; v < 499.9 || v > 500.1 {
		t.Errorf("Velocity = %v, want 500/s", v)
	}
}

func TestRecorder_CancelDiscards(t *testing.T) {
	r := NewRecorder(1024)
	r.Begin(sampleAt(0.1, 0.1, time.Now()))
	r.Cancel()

	if r.State() != Idle {
		t.Fatal("Cancel did not return to Idle")
	}
	if _, err := r.End(); !errors.Is(err, ErrNoActiveStroke) {
		t.Error("End after Cancel should report no active stroke")
	}
}

func TestRecorder_BeginDuringStrokeAborts(t *testing.T) {
	r := NewRecorder(1024)
	base := time.Now()
	r.Begin(sampleAt(0.1, 0.1, base))
	r.Move(sampleAt(0.2, 0.2, base.Add(5*time.Millisecond)))

	// Second pointer-down replaces the stroke.
	r.Begin(sampleAt(0.8, 0.8, base.Add(time.Second)))
	stroke, err := r.End()
	if err != nil {
		t.Fatal(err)
	}
	if len(stroke.Points) != 1 {
		t.Fatalf("new stroke has %d points, want 1", len(stroke.Points))
	}
	if stroke.Points[0].X != 0.8*1024 {
		t.Error("stroke retained points from the aborted gesture")
	}
}

func TestRecorder_ThrottleBoundsRedraw(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := NewRecorder(1024, WithThrottle(16*time.Millisecond, clock))

	r.Begin(sampleAt(0, 0, clock.now))

	// First move fires a redraw.
	_, redraw, _ := r.Move(sampleAt(0.1, 0.1, clock.now))
	if !redraw {
		t.Fatal("first move should redraw")
	}

	// Moves within the interval are captured but do not redraw.
	clock.advance(5 * time.Millisecond)
	_, redraw, _ = r.Move(sampleAt(0.2, 0.2, clock.now))
	if redraw {
		t.Error("move inside throttle interval redrew")
	}

	clock.advance(20 * time.Millisecond)
	_, redraw, _ = r.Move(sampleAt(0.3, 0.3, clock.now))
	if !redraw {
		t.Error("move after interval should redraw")
	}

	// Throttled moves still counted toward the stroke record.
	stroke, _ := r.End()
	if len(stroke.Points) != 4 {
		t.Errorf("captured %d points, want 4 (throttle must not drop points)", len(stroke.Points))
	}
}

func TestThrottle_ZeroIntervalAlwaysFires(t *testing.T) {
	th := NewThrottle(0, &fakeClock{})
	for i := 0; i < 3; i++ {
		if !th.Allow() {
			t.Fatal("zero-interval throttle denied an event")
		}
	}
}
