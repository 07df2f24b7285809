package tessellate

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/flatland/engine/geom"
)

const defaultMiterLimit = 4

// Stroke outlines every subpath with a bevel join and butt cap.
func (t *Tessellator) Stroke(p *Path, width float32) error {
	return t.StrokeWith(p, StrokeOptions{Width: width})
}

// StrokeWith outlines every subpath. Each segment becomes a quad of four
// vertices; each join adds a centre vertex and a bevel triangle, or a miter
// vertex and two triangles when the miter fits under MiterLimit.
func (t *Tessellator) StrokeWith(p *Path, opt StrokeOptions) error {
	t.clear()
	if opt.Width <= 0 {
		return nil
	}
	tol := opt.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	s := stroker{t: t, half: opt.Width / 2, join: opt.Join, cap: opt.Cap, limit: opt.MiterLimit}
	if s.limit <= 0 {
		s.limit = defaultMiterLimit
	}

	for _, c := range t.flat.flatten(p, tol) {
		pts := c.points
		if c.closed {
			pts = ring(pts)
		}
		switch {
		case c.closed && len(pts) >= 3:
			s.closed(pts)
		case len(pts) >= 2:
			s.open(pts)
		}
	}
	return t.check()
}

type stroker struct {
	t     *Tessellator
	half  float32
	join  LineJoin
	cap   LineCap
	limit float32
}

func (s *stroker) open(pts []geom.Vec2) {
	last := len(pts) - 2
	prev := -1
	var dPrev geom.Vec2
	for i := range last + 1 {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a).Normalize()
		if s.cap == CapSquare {
			if i == 0 {
				a = a.Sub(d.Mul(s.half))
			}
			if i == last {
				b = b.Add(d.Mul(s.half))
			}
		}
		base := s.segment(a, b, d)
		if prev >= 0 {
			s.joint(pts[i], prev, base, dPrev, d)
		}
		prev, dPrev = base, d
	}
}

func (s *stroker) closed(pts []geom.Vec2) {
	first, prev := -1, -1
	var dFirst, dPrev geom.Vec2
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		d := b.Sub(a).Normalize()
		base := s.segment(a, b, d)
		if prev >= 0 {
			s.joint(a, prev, base, dPrev, d)
		} else {
			first, dFirst = base, d
		}
		prev, dPrev = base, d
	}
	s.joint(pts[0], prev, first, dPrev, dFirst)
}

// segment appends start-left, start-right, end-left, end-right and returns
// the first of them.
func (s *stroker) segment(a, b, d geom.Vec2) int {
	n := d.Perp().Mul(s.half)
	base := len(s.t.vertices)
	s.t.vertices = append(s.t.vertices, a.Add(n), a.Sub(n), b.Add(n), b.Sub(n))
	s.tri(base, base+1, base+2)
	s.tri(base+1, base+3, base+2)
	return base
}

// joint fills the gap on the outer side of the corner at centre.
func (s *stroker) joint(centre geom.Vec2, prev, next int, dPrev, dNext geom.Vec2) {
	turn := dPrev.Cross(dNext)
	if math32.Abs(turn) < 1e-6 {
		return
	}
	// Left turns open on the right side.
	outPrev, outNext, side := prev+2, next, float32(1)
	if turn > 0 {
		outPrev, outNext, side = prev+3, next+1, -1
	}

	c := len(s.t.vertices)
	s.t.vertices = append(s.t.vertices, centre)
	if s.join == JoinMiter {
		if m, ok := s.miter(centre, dPrev.Perp().Mul(side), dNext.Perp().Mul(side)); ok {
			mi := len(s.t.vertices)
			s.t.vertices = append(s.t.vertices, m)
			s.tri(c, outPrev, mi)
			s.tri(c, mi, outNext)
			return
		}
	}
	s.tri(c, outPrev, outNext)
}

// miter returns the outer tip of the corner given both outer unit normals.
func (s *stroker) miter(centre, nPrev, nNext geom.Vec2) (geom.Vec2, bool) {
	bisector := nPrev.Add(nNext).Normalize()
	cosHalf := bisector.Dot(nPrev)
	if cosHalf <= 0 || 1/cosHalf > s.limit {
		return geom.Vec2{}, false
	}
	return centre.Add(bisector.Mul(s.half / cosHalf)), true
}

func (s *stroker) tri(a, b, c int) {
	s.t.indices = append(s.t.indices, uint16(a), uint16(b), uint16(c))
}
