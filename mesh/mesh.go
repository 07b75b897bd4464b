// Package mesh converts between UV texture coordinates and 3D world-space
// surface points by geometric search over a triangle mesh.
//
// The mesh data (vertex positions, normals, UVs, triangle indices, and
// world/normal transforms) is supplied by an external scene provider; this
// package is strictly read-only against it.
package mesh

// UVCoordinate is a normalized 2D texture coordinate. Both components live
// in [0, 1]; out-of-range values are clamped before use, never propagated.
type UVCoordinate struct {
	U, V float32
}

// Clamp returns the coordinate with both components clamped to [0, 1].
func (uv UVCoordinate) Clamp() UVCoordinate {
	return UVCoordinate{U: clamp01(uv.U), V: clamp01(uv.V)}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SurfacePoint is the result of resolving a UV coordinate against the mesh:
// the world-space position, the (clamped) UV, and the renormalized surface
// normal. Read-only once produced.
type SurfacePoint struct {
	Position Vec3
	UV       UVCoordinate
	Normal   Vec3
}

// Mesh holds the triangle data the mapper searches. The flat buffers use
// the usual GPU layouts: positions and normals as xyz triples, UVs as uv
// pairs, indices as triangle triples.
type Mesh struct {
	// Positions holds local-space vertex positions, 3 floats per vertex.
	Positions []float32

	// Normals holds local-space vertex normals, 3 floats per vertex.
	Normals []float32

	// UVs holds texture coordinates, 2 floats per vertex.
	UVs []float32

	// Indices holds triangle vertex indices, 3 per triangle.
	Indices []uint32

	// World transforms local positions into world space.
	World Mat4

	// NormalMatrix transforms local normals into world space. For
	// rigid/uniform-scale transforms this equals World's upper 3x3.
	NormalMatrix Mat4
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// vertexUV returns the UV attribute of a vertex.
func (m *Mesh) vertexUV(i uint32) UVCoordinate {
	return UVCoordinate{U: m.UVs[i*2], V: m.UVs[i*2+1]}
}

// vertexPosition returns the local-space position of a vertex.
func (m *Mesh) vertexPosition(i uint32) Vec3 {
	return Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// vertexNormal returns the local-space normal of a vertex.
func (m *Mesh) vertexNormal(i uint32) Vec3 {
	if len(m.Normals) < int(i*3+3) {
		return Vec3{Z: 1}
	}
	return Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// triangle returns the three vertex indices of triangle t.
func (m *Mesh) triangle(t int) (uint32, uint32, uint32) {
	return m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
}
