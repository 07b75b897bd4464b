package capture

import "github.com/gostitch/uvpaint"

// Stabilizer smooths incoming points by averaging each raw point toward the
// mean of the last few emitted points. Quality controls the averaging
// weight: 1 fully smooths toward the historical mean, 0 passes the raw
// point through.
type Stabilizer struct {
	delay   int
	quality float64
	history []uvpaint.Point
}

// NewStabilizer creates a stabilizer buffering the last delay points.
// Quality is clamped to [0, 1].
func NewStabilizer(delay int, quality float64) *Stabilizer {
	if delay < 1 {
		delay = 1
	}
	if quality < 0 {
		quality = 0
	}
	if quality > 1 {
		quality = 1
	}
	return &Stabilizer{
		delay:   delay,
		quality: quality,
		history: make([]uvpaint.Point, 0, delay),
	}
}

// Smooth returns the stabilized position for a raw input position and
// records the result in the history buffer.
func (s *Stabilizer) Smooth(raw uvpaint.Point) uvpaint.Point {
	out := raw
	if len(s.history) > 0 && s.quality > 0 {
		var mean uvpaint.Point
		for _, p := range s.history {
			mean = mean.Add(p)
		}
		mean = mean.Mul(1 / float64(len(s.history)))
		out = raw.Lerp(mean, s.quality)
	}

	s.history = append(s.history, out)
	if len(s.history) > s.delay {
		s.history = s.history[1:]
	}
	return out
}

// Reset clears the history buffer between strokes.
func (s *Stabilizer) Reset() {
	s.history = s.history[:0]
}
