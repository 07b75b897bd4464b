package stitch

import (
	"math"

	"github.com/gostitch/uvpaint"
)

// Shared path helpers for the stroke-style strategies.

// pathPoints extracts the raster positions of a point sequence.
func pathPoints(points []uvpaint.StrokePoint) []uvpaint.Point {
	pts := make([]uvpaint.Point, len(points))
	for i, p := range points {
		pts[i] = p.Point()
	}
	return pts
}

// pathLength returns the total arc length of the position sequence.
func pathLength(pts []uvpaint.Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	return total
}

// pointAt returns the position at the given arc-length distance along the
// polyline, clamping beyond either end.
func pointAt(pts []uvpaint.Point, dist float64) uvpaint.Point {
	if len(pts) == 0 {
		return uvpaint.Point{}
	}
	if dist <= 0 {
		return pts[0]
	}
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Distance(pts[i-1])
		if dist <= seg && seg > 0 {
			return pts[i-1].Lerp(pts[i], dist/seg)
		}
		dist -= seg
	}
	return pts[len(pts)-1]
}

// resample returns positions spaced roughly `spacing` apart along the
// polyline, always including the start.
func resample(pts []uvpaint.Point, spacing float64) []uvpaint.Point {
	if len(pts) == 0 || spacing <= 0 {
		return nil
	}
	total := pathLength(pts)
	out := []uvpaint.Point{pts[0]}
	for d := spacing; d <= total; d += spacing {
		out = append(out, pointAt(pts, d))
	}
	return out
}

// subPath returns the portion of the polyline between two arc-length
// positions as a point sequence.
func subPath(pts []uvpaint.Point, from, to float64) []uvpaint.Point {
	if to <= from || len(pts) < 2 {
		return nil
	}
	out := []uvpaint.Point{pointAt(pts, from)}
	pos := 0.0
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Distance(pts[i-1])
		if pos+seg > from && pos < to {
			if pos > from && pos < to {
				out = append(out, pts[i-1])
			}
		}
		pos += seg
		if pos >= to {
			break
		}
	}
	out = append(out, pointAt(pts, to))
	return out
}

// markJitter is a deterministic pseudo-random value in [-1, 1] derived from
// a mark index, so the same stroke always renders the same brightness
// variation.
func markJitter(index int) float64 {
	x := math.Sin(float64(index+1)*12.9898) * 43758.5453
	return (x - math.Floor(x)) * 2 - 1
}

// segmentDirection returns the unit direction of a segment, defaulting to
// +X for degenerate segments.
func segmentDirection(a, b uvpaint.Point) uvpaint.Point {
	d := b.Sub(a)
	if d.Length() == 0 {
		return uvpaint.Pt(1, 0)
	}
	return d.Normalize()
}
