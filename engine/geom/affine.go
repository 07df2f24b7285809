package geom

import "github.com/chewxy/math32"

// Affine2 is a 2D affine transform: a column-major 2x2 matrix followed by a
// translation. ColsArray is the layout instances carry to the GPU.
type Affine2 struct {
	Matrix      [4]float32 // x axis (m00, m01), y axis (m10, m11)
	Translation Vec2
}

// Identity is the transform that leaves points unchanged.
var Identity = Affine2{Matrix: [4]float32{1, 0, 0, 1}}

// FromScaleAngleTranslation builds scale, then rotate by angle (radians), then translate.
func FromScaleAngleTranslation(scale Vec2, angle float32, translation Vec2) Affine2 {
	s, c := math32.Sincos(angle)
	return Affine2{
		Matrix:      [4]float32{c * scale.X, s * scale.X, -s * scale.Y, c * scale.Y},
		Translation: translation,
	}
}

// Translate returns a pure translation.
func Translate(t Vec2) Affine2 {
	a := Identity
	a.Translation = t
	return a
}

// TransformVector applies only the linear part.
func (a Affine2) TransformVector(v Vec2) Vec2 {
	m := a.Matrix
	return Vec2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// TransformPoint applies the full transform.
func (a Affine2) TransformPoint(p Vec2) Vec2 {
	return a.TransformVector(p).Add(a.Translation)
}

// Mul returns a∘b: b is applied first.
func (a Affine2) Mul(b Affine2) Affine2 {
	x := a.TransformVector(Vec2{b.Matrix[0], b.Matrix[1]})
	y := a.TransformVector(Vec2{b.Matrix[2], b.Matrix[3]})
	return Affine2{
		Matrix:      [4]float32{x.X, x.Y, y.X, y.Y},
		Translation: a.TransformPoint(b.Translation),
	}
}

// ColsArray flattens the transform into (m00, m01, m10, m11, tx, ty).
func (a Affine2) ColsArray() [6]float32 {
	m := a.Matrix
	return [6]float32{m[0], m[1], m[2], m[3], a.Translation.X, a.Translation.Y}
}

// FromColsArray is the inverse of ColsArray.
func FromColsArray(c [6]float32) Affine2 {
	return Affine2{
		Matrix:      [4]float32{c[0], c[1], c[2], c[3]},
		Translation: Vec2{c[4], c[5]},
	}
}
