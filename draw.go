package uvpaint

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Drawing primitives shared by every rendering strategy. Geometry is
// rasterized with golang.org/x/image/vector into a coverage mask bounded by
// the shape's bounding box, then composited onto the pixmap with
// source-over blending.

// FillPolygon fills the closed polygon described by pts.
// Polygons with fewer than three points draw nothing.
func (p *Pixmap) FillPolygon(pts []Point, c RGBA) {
	if len(pts) < 3 {
		return
	}
	p.fillPath(pts, true, c)
}

// FillCircle fills a disc centered at center.
func (p *Pixmap) FillCircle(center Point, radius float64, c RGBA) {
	if radius <= 0 {
		return
	}
	p.FillPolygon(circlePoints(center, radius), c)
}

// StrokeLine draws a single thick line segment with butt caps.
func (p *Pixmap) StrokeLine(a, b Point, width float64, c RGBA) {
	if width <= 0 {
		return
	}
	if a == b {
		p.FillCircle(a, width/2, c)
		return
	}
	p.FillPolygon(segmentQuad(a, b, width), c)
}

// StrokePolyline draws a connected sequence of thick segments with round
// joins, guaranteeing no visible gap between consecutive segments.
func (p *Pixmap) StrokePolyline(pts []Point, width float64, c RGBA) {
	if len(pts) == 0 || width <= 0 {
		return
	}
	if len(pts) == 1 {
		p.FillCircle(pts[0], width/2, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		p.StrokeLine(pts[i-1], pts[i], width, c)
		// Round join at interior vertices keeps adjacent segments connected.
		if i < len(pts)-1 {
			p.FillCircle(pts[i], width/2, c)
		}
	}
}

// StrokeCircle draws the outline of a circle.
func (p *Pixmap) StrokeCircle(center Point, radius, width float64, c RGBA) {
	if radius <= 0 || width <= 0 {
		return
	}
	ring := circlePoints(center, radius)
	ring = append(ring, ring[0])
	p.StrokePolyline(ring, width, c)
}

// fillPath rasterizes a polygonal path into a coverage mask and blends it
// onto the pixmap.
func (p *Pixmap) fillPath(pts []Point, closed bool, c RGBA) {
	minX, minY, maxX, maxY := pathBounds(pts)

	// Clip the working region to the pixmap.
	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX)) + 1
	y1 := int(math.Ceil(maxY)) + 1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > p.width {
		x1 = p.width
	}
	if y1 > p.height {
		y1 = p.height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	w := x1 - x0
	h := y1 - y0
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src

	z.MoveTo(float32(pts[0].X-float64(x0)), float32(pts[0].Y-float64(y0)))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X-float64(x0)), float32(pt.Y-float64(y0)))
	}
	if closed {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, cov := range row {
			if cov == 0 {
				continue
			}
			p.BlendPixel(x0+x, y0+y, c, float64(cov)/255)
		}
	}
}

// pathBounds returns the axis-aligned bounding box of the points.
func pathBounds(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = minX, minY
	for _, pt := range pts[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}

// segmentQuad returns the four corners of a thick line segment.
func segmentQuad(a, b Point, width float64) []Point {
	n := b.Sub(a).Normalize().Perp().Mul(width / 2)
	return []Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// circleSegments picks the flattening step count for a circle of the given
// radius; small stitch loops need far fewer segments than big fills.
func circleSegments(radius float64) int {
	n := int(math.Ceil(radius * 2))
	if n < 12 {
		return 12
	}
	if n > 64 {
		return 64
	}
	return n
}

// circlePoints approximates a circle as a closed polygon.
func circlePoints(center Point, radius float64) []Point {
	n := circleSegments(radius)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}
