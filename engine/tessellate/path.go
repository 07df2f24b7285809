package tessellate

import (
	"iter"

	"github.com/hubastard/flatland/engine/geom"
)

// Verb is a path command.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	}
	return "Verb(?)"
}

// points consumed by each verb
func (v Verb) arity() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

// Path is a sequence of verbs over a flat point list. The zero value is an
// empty path ready to use.
type Path struct {
	verbs  []Verb
	points []geom.Vec2
}

// NewPath reserves room for capacity verbs.
func NewPath(capacity int) *Path {
	return &Path{
		verbs:  make([]Verb, 0, capacity),
		points: make([]geom.Vec2, 0, capacity),
	}
}

func (p *Path) MoveTo(to geom.Vec2) { p.push(MoveTo, to) }
func (p *Path) LineTo(to geom.Vec2) { p.push(LineTo, to) }

func (p *Path) QuadTo(ctrl, to geom.Vec2) { p.push(QuadTo, ctrl, to) }

func (p *Path) CubicTo(ctrl1, ctrl2, to geom.Vec2) { p.push(CubicTo, ctrl1, ctrl2, to) }

func (p *Path) Close() { p.verbs = append(p.verbs, Close) }

func (p *Path) push(v Verb, pts ...geom.Vec2) {
	p.verbs = append(p.verbs, v)
	p.points = append(p.points, pts...)
}

// Len is the number of verbs.
func (p *Path) Len() int { return len(p.verbs) }

// Reset empties the path and keeps its storage.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// Segments yields every verb with the points it consumes.
func (p *Path) Segments() iter.Seq2[Verb, []geom.Vec2] {
	return func(yield func(Verb, []geom.Vec2) bool) {
		at := 0
		for _, v := range p.verbs {
			n := v.arity()
			if !yield(v, p.points[at:at+n:at+n]) {
				return
			}
			at += n
		}
	}
}

// Chain builds polygonal paths from point lists.
type Chain struct {
	path *Path
}

// NewChain returns a builder with room for capacity points.
func NewChain(capacity int) *Chain {
	return &Chain{path: NewPath(capacity)}
}

// Points starts a subpath at the first point and draws lines through the
// rest. An empty list does nothing.
func (c *Chain) Points(pts ...geom.Vec2) *Chain {
	if len(pts) == 0 {
		return c
	}
	c.path.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		c.path.LineTo(pt)
	}
	return c
}

// Close closes the current subpath.
func (c *Chain) Close() *Chain {
	c.path.Close()
	return c
}

// Finish returns the built path and leaves the chain empty.
func (c *Chain) Finish() *Path {
	p := c.path
	c.path = NewPath(0)
	return p
}
