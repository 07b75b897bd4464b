package capture

import (
	"testing"

	"github.com/gostitch/uvpaint"
)

func TestStabilizer_QualityZeroPassesThrough(t *testing.T) {
	s := NewStabilizer(4, 0)
	s.Smooth(uvpaint.Pt(0, 0))

	raw := uvpaint.Pt(100, 50)
	if got := s.Smooth(raw); got != raw {
		t.Errorf("quality 0 Smooth = %+v, want raw %+v", got, raw)
	}
}

func TestStabilizer_QualityOneFullySmooths(t *testing.T) {
	s := NewStabilizer(4, 1)
	s.Smooth(uvpaint.Pt(10, 10))

	// With quality 1 the output is exactly the historical mean.
	got := s.Smooth(uvpaint.Pt(1000, 1000))
	if got != uvpaint.Pt(10, 10) {
		t.Errorf("quality 1 Smooth = %+v, want mean (10, 10)", got)
	}
}

func TestStabilizer_PartialQualityPullsTowardMean(t *testing.T) {
	s := NewStabilizer(4, 0.5)
	s.Smooth(uvpaint.Pt(0, 0))

	got := s.Smooth(uvpaint.Pt(100, 0))
	if got.X != 50 {
		t.Errorf("quality 0.5 Smooth X = %v, want 50", got.X)
	}
}

func TestStabilizer_HistoryBounded(t *testing.T) {
	s := NewStabilizer(2, 1)
	s.Smooth(uvpaint.Pt(0, 0))
	s.Smooth(uvpaint.Pt(0, 0))
	s.Smooth(uvpaint.Pt(0, 0))
	if len(s.history) != 2 {
		t.Errorf("history length = %d, want capped at 2", len(s.history))
	}
}

func TestStabilizer_ResetClearsHistory(t *testing.T) {
	s := NewStabilizer(4, 1)
	s.Smooth(uvpaint.Pt(10, 10))
	s.Reset()

	// First point after reset has no history to smooth toward.
	raw := uvpaint.Pt(500, 500)
	if got := s.Smooth(raw); got != raw {
		t.Errorf("post-reset Smooth = %+v, want raw", got)
	}
}

func TestStabilizer_ClampsQuality(t *testing.T) {
	s := NewStabilizer(4, 1.7)
	if s.quality != 1 {
		t.Errorf("quality = %v, want clamped to 1", s.quality)
	}
	s = NewStabilizer(0, -3)
	if s.delay != 1 || s.quality != 0 {
		t.Errorf("delay,quality = %v,%v, want 1,0", s.delay, s.quality)
	}
}
