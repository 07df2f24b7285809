package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D point or displacement in float32, the vertex format of the arena.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(w Vec2) Vec2    { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2    { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2          { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(w Vec2) float32 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 { return v.X*w.Y - v.Y*w.X }

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) LengthSq() float32 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float32   { return math32.Sqrt(v.LengthSq()) }

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Recip returns the component-wise reciprocal. Zero components stay zero.
func (v Vec2) Recip() Vec2 {
	var out Vec2
	if v.X != 0 {
		out.X = 1 / v.X
	}
	if v.Y != 0 {
		out.Y = 1 / v.Y
	}
	return out
}

// Lerp interpolates between v and w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Approx reports whether v and w are within eps on both axes.
func (v Vec2) Approx(w Vec2, eps float32) bool {
	return math32.Abs(v.X-w.X) <= eps && math32.Abs(v.Y-w.Y) <= eps
}
