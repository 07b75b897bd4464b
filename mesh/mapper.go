package mesh

import (
	"github.com/chewxy/math32"

	"github.com/gostitch/uvpaint"
)

const (
	// baryEpsilon tolerates floating-point error for points on triangle
	// edges: a triangle matches when all barycentric weights are >= -baryEpsilon.
	baryEpsilon = 1e-4

	// degenerateDet is the barycentric denominator cutoff below which a
	// triangle is treated as zero-area and skipped.
	degenerateDet = 1e-8

	// jitterStep is the base jitter-search radius in UV units.
	jitterStep = 1.0 / 1024

	// jitterRounds is the number of expanding radii tried by the jitter
	// search before reporting a miss.
	jitterRounds = 4
)

// compassDirs are the eight directions probed per jitter radius.
var compassDirs = [8][2]float32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Mapper performs UV <-> world conversions against one mesh. It holds no
// mutable state of its own; all queries are pure reads of the mesh.
type Mapper struct {
	mesh *Mesh

	// viewAxis is the local-space ray direction used by WorldToUV.
	viewAxis Vec3

	// worldInverse caches the inverse of the mesh world matrix.
	worldInverse Mat4
}

// MapperOption configures a Mapper during creation.
type MapperOption func(*Mapper)

// WithViewAxis overrides the local-space ray direction used by WorldToUV.
// The default is -Z, matching a front-facing viewer.
func WithViewAxis(axis Vec3) MapperOption {
	return func(mp *Mapper) {
		mp.viewAxis = axis.Normalize()
	}
}

// NewMapper creates a mapper over the given mesh.
func NewMapper(m *Mesh, opts ...MapperOption) *Mapper {
	mp := &Mapper{
		mesh:         m,
		viewAxis:     Vec3{Z: -1},
		worldInverse: m.World.InverseAffine(),
	}
	for _, opt := range opts {
		opt(mp)
	}
	return mp
}

// UVToWorld resolves a UV coordinate to a world-space surface point.
//
// The coordinate is clamped to [0,1] first. Each mesh triangle is tested by
// computing 2D barycentric coordinates of the UV against the triangle's UV
// attributes; a triangle matches when all three weights are >= -1e-4. On a
// match, the world position is the barycentric blend of the vertex
// positions transformed by the world matrix, and the normal is the blended,
// renormalized vertex normal transformed by the normal matrix.
//
// If no triangle contains the UV exactly (common at seams), a jitter search
// probes up to 4 expanding radii around the coordinate in 8 compass
// directions. Exhausting the search returns ok=false: a reportable miss,
// not a fatal error — the caller skips the paint action for that event.
func (mp *Mapper) UVToWorld(uv UVCoordinate) (SurfacePoint, bool) {
	uv = uv.Clamp()

	if sp, ok := mp.resolve(uv); ok {
		return sp, true
	}

	for round := 1; round <= jitterRounds; round++ {
		radius := float32(round) * jitterStep
		for _, dir := range compassDirs {
			candidate := UVCoordinate{
				U: clamp01(uv.U + dir[0]*radius),
				V: clamp01(uv.V + dir[1]*radius),
			}
			if sp, ok := mp.resolve(candidate); ok {
				return sp, true
			}
		}
	}

	uvpaint.Logger().Debug("mesh: uv lookup miss after jitter search",
		"u", uv.U, "v", uv.V)
	return SurfacePoint{}, false
}

// resolve finds the triangle containing uv and interpolates its attributes.
func (mp *Mapper) resolve(uv UVCoordinate) (SurfacePoint, bool) {
	m := mp.mesh
	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.triangle(t)
		w0, w1, w2, ok := barycentricUV(uv, m.vertexUV(i0), m.vertexUV(i1), m.vertexUV(i2))
		if !ok {
			continue
		}

		localPos := m.vertexPosition(i0).MulScalar(w0).
			Add(m.vertexPosition(i1).MulScalar(w1)).
			Add(m.vertexPosition(i2).MulScalar(w2))

		localNormal := m.vertexNormal(i0).MulScalar(w0).
			Add(m.vertexNormal(i1).MulScalar(w1)).
			Add(m.vertexNormal(i2).MulScalar(w2)).
			Normalize()

		return SurfacePoint{
			Position: m.World.MulPoint(localPos),
			UV:       uv,
			Normal:   m.NormalMatrix.MulDir(localNormal).Normalize(),
		}, true
	}
	return SurfacePoint{}, false
}

// barycentricUV computes the barycentric weights of p against the triangle
// (a, b, c) in UV space via the standard 2D cross-product ratios. Reports
// ok=false for degenerate triangles and for points outside the triangle
// beyond the edge tolerance.
func barycentricUV(p, a, b, c UVCoordinate) (w0, w1, w2 float32, ok bool) {
	det := cross2(b.U-a.U, b.V-a.V, c.U-a.U, c.V-a.V)
	if math32.Abs(det) < degenerateDet {
		return 0, 0, 0, false
	}

	w1 = cross2(p.U-a.U, p.V-a.V, c.U-a.U, c.V-a.V) / det
	w2 = cross2(b.U-a.U, b.V-a.V, p.U-a.U, p.V-a.V) / det
	w0 = 1 - w1 - w2

	if w0 < -baryEpsilon || w1 < -baryEpsilon || w2 < -baryEpsilon {
		return 0, 0, 0, false
	}
	return w0, w1, w2, true
}

// cross2 is the scalar 2D cross product.
func cross2(ax, ay, bx, by float32) float32 {
	return ax*by - ay*bx
}

// WorldToUV resolves a world-space position back to a UV coordinate by
// casting a ray from the local-space transform of the position along the
// local view axis and reading the intersected triangle's interpolated UV.
// Returns ok=false if the ray hits no triangle.
func (mp *Mapper) WorldToUV(worldPos Vec3) (UVCoordinate, bool) {
	m := mp.mesh
	origin := mp.worldInverse.MulPoint(worldPos)
	dir := mp.viewAxis

	bestT := float32(math32.MaxFloat32)
	var bestUV UVCoordinate
	found := false

	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.triangle(t)
		hitT, u, v, ok := intersectTriangle(origin, dir,
			m.vertexPosition(i0), m.vertexPosition(i1), m.vertexPosition(i2))
		if !ok {
			continue
		}
		// The origin sits on or near the surface, so the nearest hit in
		// either ray direction is the one we want.
		if math32.Abs(hitT) < math32.Abs(bestT) {
			bestT = hitT
			uv0, uv1, uv2 := m.vertexUV(i0), m.vertexUV(i1), m.vertexUV(i2)
			w0 := 1 - u - v
			bestUV = UVCoordinate{
				U: w0*uv0.U + u*uv1.U + v*uv2.U,
				V: w0*uv0.V + u*uv1.V + v*uv2.V,
			}
			found = true
		}
	}

	if !found {
		uvpaint.Logger().Debug("mesh: world position ray hit no triangle")
		return UVCoordinate{}, false
	}
	return bestUV.Clamp(), true
}

// intersectTriangle runs Moller-Trumbore against one triangle. The returned
// (u, v) are the barycentric coordinates of the hit relative to (v1, v2).
// The ray is treated as an infinite line so hits behind the origin count.
func intersectTriangle(origin, dir, v0, v1, v2 Vec3) (t, u, v float32, ok bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if math32.Abs(det) < degenerateDet {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := origin.Sub(v0)
	u = tvec.Dot(pvec) * invDet
	if u < -baryEpsilon || u > 1+baryEpsilon {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = dir.Dot(qvec) * invDet
	if v < -baryEpsilon || u+v > 1+baryEpsilon {
		return 0, 0, 0, false
	}

	t = edge2.Dot(qvec) * invDet
	return t, u, v, true
}
