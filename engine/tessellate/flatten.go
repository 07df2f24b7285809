package tessellate

import "github.com/hubastard/flatland/engine/geom"

// maxDepth bounds curve subdivision to 1024 segments per curve.
const maxDepth = 10

// contour is one flattened subpath.
type contour struct {
	points []geom.Vec2
	closed bool
}

// flattener turns a Path into polylines, reusing its storage between calls.
type flattener struct {
	tol      float32
	contours []contour
	cur      *contour
	pos      geom.Vec2
}

func (f *flattener) reset(tol float32) {
	f.tol = tol
	for i := range f.contours {
		f.contours[i].points = f.contours[i].points[:0]
		f.contours[i].closed = false
	}
	f.contours = f.contours[:0]
	f.cur = nil
	f.pos = geom.Vec2{}
}

func (f *flattener) flatten(p *Path, tol float32) []contour {
	f.reset(tol)
	for verb, pts := range p.Segments() {
		switch verb {
		case MoveTo:
			f.begin(pts[0])
		case LineTo:
			f.lineTo(pts[0])
		case QuadTo:
			f.ensure()
			f.quad(f.pos, pts[0], pts[1], 0)
			f.pos = pts[1]
		case CubicTo:
			f.ensure()
			f.cubic(f.pos, pts[0], pts[1], pts[2], 0)
			f.pos = pts[2]
		case Close:
			if f.cur != nil {
				f.cur.closed = true
				f.pos = f.cur.points[0]
				f.cur = nil
			}
		}
	}
	return f.contours
}

func (f *flattener) begin(at geom.Vec2) {
	if cap(f.contours) > len(f.contours) {
		f.contours = f.contours[:len(f.contours)+1]
	} else {
		f.contours = append(f.contours, contour{})
	}
	f.cur = &f.contours[len(f.contours)-1]
	f.cur.points = append(f.cur.points[:0], at)
	f.cur.closed = false
	f.pos = at
}

// ensure opens a contour at the pen position when drawing without a MoveTo.
func (f *flattener) ensure() {
	if f.cur == nil {
		f.begin(f.pos)
	}
}

func (f *flattener) lineTo(to geom.Vec2) {
	f.ensure()
	if last := f.cur.points[len(f.cur.points)-1]; last != to {
		f.cur.points = append(f.cur.points, to)
	}
	f.pos = to
}

// quad subdivides at t=0.5 until the curve midpoint is within tolerance of
// the chord midpoint.
func (f *flattener) quad(p0, c, p1 geom.Vec2, depth int) {
	mid := p0.Mul(0.25).Add(c.Mul(0.5)).Add(p1.Mul(0.25))
	chord := p0.Add(p1).Mul(0.5)
	if depth >= maxDepth || mid.Sub(chord).LengthSq() <= f.tol*f.tol {
		f.lineTo(p1)
		return
	}
	a := p0.Lerp(c, 0.5)
	b := c.Lerp(p1, 0.5)
	m := a.Lerp(b, 0.5)
	f.quad(p0, a, m, depth+1)
	f.quad(m, b, p1, depth+1)
}

// cubic subdivides with de Casteljau at t=0.5 until both control points are
// close enough to the chord.
func (f *flattener) cubic(p0, c0, c1, p1 geom.Vec2, depth int) {
	u := c0.Mul(3).Sub(p0.Mul(2)).Sub(p1)
	v := c1.Mul(3).Sub(p0).Sub(p1.Mul(2))
	d := max(u.LengthSq(), v.LengthSq())
	if depth >= maxDepth || d <= 16*f.tol*f.tol {
		f.lineTo(p1)
		return
	}
	q0 := p0.Lerp(c0, 0.5)
	q1 := c0.Lerp(c1, 0.5)
	q2 := c1.Lerp(p1, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	f.cubic(p0, q0, r0, s, depth+1)
	f.cubic(s, r1, q2, p1, depth+1)
}

// ring returns the contour points without a closing duplicate of the first.
func ring(pts []geom.Vec2) []geom.Vec2 {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}
