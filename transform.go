package motion

import "math"

// Transform is a 4x4 homogeneous matrix using row vectors: a point p maps to
// p * T, so a.Concat(b) applies a first and then b.
//
//	| M11 M12 M13 M14 |
//	| M21 M22 M23 M24 |
//	| M31 M32 M33 M34 |
//	| M41 M42 M43 M44 |
type Transform struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity is the identity transform.
var Identity = Transform{M11: 1, M22: 1, M33: 1, M44: 1}

// Translation returns a transform translating by (tx, ty, tz).
func Translation(tx, ty, tz float64) Transform {
	t := Identity
	t.M41, t.M42, t.M43 = tx, ty, tz
	return t
}

// Scaling returns a transform scaling by (sx, sy, sz).
func Scaling(sx, sy, sz float64) Transform {
	t := Identity
	t.M11, t.M22, t.M33 = sx, sy, sz
	return t
}

// Rotation returns a transform rotating by angle radians about the z axis.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	t := Identity
	t.M11, t.M12 = cos, sin
	t.M21, t.M22 = -sin, cos
	return t
}

// AffineTransform converts a 2D affine matrix [a, b, c, d, tx, ty], where
// x' = a*x + c*y + tx and y' = b*x + d*y + ty, into a Transform.
func AffineTransform(m [6]float64) Transform {
	t := Identity
	t.M11, t.M12 = m[0], m[1]
	t.M21, t.M22 = m[2], m[3]
	t.M41, t.M42 = m[4], m[5]
	return t
}

// Affine returns the 2D affine part of t as [a, b, c, d, tx, ty].
func (t Transform) Affine() [6]float64 {
	return [6]float64{t.M11, t.M12, t.M21, t.M22, t.M41, t.M42}
}

// IsAffine reports whether t only carries a 2D affine transformation.
func (t Transform) IsAffine() bool {
	return t.M13 == 0 && t.M14 == 0 && t.M23 == 0 && t.M24 == 0 &&
		t.M31 == 0 && t.M32 == 0 && t.M33 == 1 && t.M34 == 0 &&
		t.M43 == 0 && t.M44 == 1
}

// Apply maps the point p (z = 0) through t.
func (t Transform) Apply(p Vec2) Vec2 {
	x := p.X*t.M11 + p.Y*t.M21 + t.M41
	y := p.X*t.M12 + p.Y*t.M22 + t.M42
	w := p.X*t.M14 + p.Y*t.M24 + t.M44
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vec2{x, y}
}

func (t Transform) elements() [16]float64 {
	return [16]float64{
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44,
	}
}

func transformFromElements(e [16]float64) Transform {
	return Transform{
		e[0], e[1], e[2], e[3],
		e[4], e[5], e[6], e[7],
		e[8], e[9], e[10], e[11],
		e[12], e[13], e[14], e[15],
	}
}

// Concat returns t * u: t is applied first, then u.
func (t Transform) Concat(u Transform) Transform {
	a, b := t.elements(), u.elements()
	var r [16]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return transformFromElements(r)
}

// Invert returns the inverse of t. A singular matrix is returned unchanged.
func (t Transform) Invert() Transform {
	m := t.elements()
	var inv [16]float64

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det > -1e-12 && det < 1e-12 {
		return t
	}
	invDet := 1.0 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return transformFromElements(inv)
}

// --- 2D decomposition ---

// affineParts is a shear-free decomposition of the 2D affine part of a
// transform: scale, then rotate, then translate.
type affineParts struct {
	tx, ty   float64
	rotation float64
	sx, sy   float64
}

func (t Transform) decompose() affineParts {
	sx := math.Hypot(t.M11, t.M12)
	rot := math.Atan2(t.M12, t.M11)
	var sy float64
	if sx != 0 {
		sy = (t.M11*t.M22 - t.M12*t.M21) / sx
	}
	return affineParts{tx: t.M41, ty: t.M42, rotation: rot, sx: sx, sy: sy}
}

// recompose writes p back into the 2D affine slots of t, keeping the rest.
func (p affineParts) recompose(t Transform) Transform {
	sin, cos := math.Sincos(p.rotation)
	t.M11, t.M12 = p.sx*cos, p.sx*sin
	t.M21, t.M22 = -p.sy*sin, p.sy*cos
	t.M41, t.M42 = p.tx, p.ty
	return t
}

// interpolateTransform blends affine transforms through their decomposition
// so rotations do not collapse mid-flight; anything else blends per element.
func interpolateTransform(a, b Transform, t float64) Transform {
	if a.IsAffine() && b.IsAffine() {
		pa, pb := a.decompose(), b.decompose()
		return affineParts{
			tx:       lerp(pa.tx, pb.tx, t),
			ty:       lerp(pa.ty, pb.ty, t),
			rotation: lerp(pa.rotation, pb.rotation, t),
			sx:       lerp(pa.sx, pb.sx, t),
			sy:       lerp(pa.sy, pb.sy, t),
		}.recompose(Identity)
	}
	ea, eb := a.elements(), b.elements()
	var r [16]float64
	for i := range r {
		r[i] = lerp(ea[i], eb[i], t)
	}
	return transformFromElements(r)
}

// get resolves the synthetic transform sub-paths: translation[.x|.y|.z],
// rotation[.z] and scale[.x|.y|.z].
func (t Transform) get(path string) (Value, bool) {
	p := t.decompose()
	switch path {
	case "":
		return TransformValue(t), true
	case "translation":
		return SizeValue(Size{t.M41, t.M42}), true
	case "translation.x":
		return Scalar(t.M41), true
	case "translation.y":
		return Scalar(t.M42), true
	case "translation.z":
		return Scalar(t.M43), true
	case "rotation", "rotation.z":
		return Scalar(p.rotation), true
	case "scale":
		return Scalar((p.sx + p.sy) / 2), true
	case "scale.x":
		return Scalar(p.sx), true
	case "scale.y":
		return Scalar(p.sy), true
	case "scale.z":
		return Scalar(t.M33), true
	}
	return Value{}, false
}

func (t Transform) with(path string, c Value) (Transform, bool) {
	if path == "" {
		if c.kind != KindTransform {
			return t, false
		}
		return c.t, true
	}
	if path == "translation" {
		if c.kind != KindSize {
			return t, false
		}
		t.M41, t.M42 = c.s.Width, c.s.Height
		return t, true
	}
	if c.kind != KindScalar {
		return t, false
	}
	p := t.decompose()
	switch path {
	case "translation.x":
		t.M41 = c.f
		return t, true
	case "translation.y":
		t.M42 = c.f
		return t, true
	case "translation.z":
		t.M43 = c.f
		return t, true
	case "scale.z":
		t.M33 = c.f
		return t, true
	case "rotation", "rotation.z":
		p.rotation = c.f
	case "scale":
		p.sx, p.sy = c.f, c.f
	case "scale.x":
		p.sx = c.f
	case "scale.y":
		p.sy = c.f
	default:
		return t, false
	}
	return p.recompose(t), true
}
