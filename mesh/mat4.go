package mesh

// Mat4 is a 4x4 transform matrix in column-major order, matching GPU and
// glTF conventions.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a uniform scale matrix.
func Scale(s float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s, s, s
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulPoint transforms a position (w = 1) by the matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// MulDir transforms a direction (w = 0) by the matrix.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// InverseAffine inverts the matrix assuming it is an affine transform
// (rotation/scale/shear in the upper 3x3 plus translation). Mesh world
// matrices always satisfy this. Returns the identity if the upper 3x3 is
// singular.
func (m Mat4) InverseAffine() Mat4 {
	// Cofactor inverse of the upper 3x3.
	a00, a01, a02 := m[0], m[4], m[8]
	a10, a11, a12 := m[1], m[5], m[9]
	a20, a21, a22 := m[2], m[6], m[10]

	c00 := a11*a22 - a12*a21
	c01 := a02*a21 - a01*a22
	c02 := a01*a12 - a02*a11
	c10 := a12*a20 - a10*a22
	c11 := a00*a22 - a02*a20
	c12 := a02*a10 - a00*a12
	c20 := a10*a21 - a11*a20
	c21 := a01*a20 - a00*a21
	c22 := a00*a11 - a01*a10

	det := a00*c00 + a01*c10 + a02*c20
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	tx, ty, tz := m[12], m[13], m[14]

	var out Mat4
	out[0], out[4], out[8] = c00*inv, c01*inv, c02*inv
	out[1], out[5], out[9] = c10*inv, c11*inv, c12*inv
	out[2], out[6], out[10] = c20*inv, c21*inv, c22*inv
	out[12] = -(out[0]*tx + out[4]*ty + out[8]*tz)
	out[13] = -(out[1]*tx + out[5]*ty + out[9]*tz)
	out[14] = -(out[2]*tx + out[6]*ty + out[10]*tz)
	out[15] = 1
	return out
}
