// Package tessellate converts vector paths into indexed triangle lists that
// can be copied into a layer.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/layers"
)

// DefaultTolerance is the maximum distance between a curve and its
// flattened polyline.
const DefaultTolerance = 1e-4

// ErrTooManyVertices is returned when the output cannot be addressed with
// 16-bit indices.
var ErrTooManyVertices = errors.New("tessellate: output exceeds 16-bit index range")

type LineJoin uint8

const (
	JoinBevel LineJoin = iota
	JoinMiter
)

type LineCap uint8

const (
	CapButt LineCap = iota
	CapSquare
)

// FillOptions configure Fill. A zero Tolerance uses DefaultTolerance.
type FillOptions struct {
	Tolerance float32
}

// StrokeOptions configure Stroke. A zero Tolerance uses DefaultTolerance and
// a zero MiterLimit uses 4.
type StrokeOptions struct {
	Tolerance  float32
	Width      float32
	Join       LineJoin
	Cap        LineCap
	MiterLimit float32
}

// Tessellator owns reusable output lists. Every call replaces their contents.
type Tessellator struct {
	vertices []geom.Vec2
	indices  []uint16

	flat flattener
	work []int
}

// New returns a Tessellator with room for the given output sizes.
func New(vertices, indices int) *Tessellator {
	return &Tessellator{
		vertices: make([]geom.Vec2, 0, vertices),
		indices:  make([]uint16, 0, indices),
	}
}

// NewToFit sizes the output lists after the largest layer of l.
func NewToFit(l *layers.Layers) *Tessellator {
	var vertices, indices int
	for i := range l.Len() {
		v, _ := l.Get(i)
		vertices = max(vertices, v.MaxVerticesLen())
		indices = max(indices, v.MaxIndicesLen())
	}
	return New(vertices, indices)
}

// Vertices of the last tessellation.
func (t *Tessellator) Vertices() []geom.Vec2 { return t.vertices }

// Indices of the last tessellation, relative to Vertices.
func (t *Tessellator) Indices() []uint16 { return t.indices }

func (t *Tessellator) clear() {
	t.vertices = t.vertices[:0]
	t.indices = t.indices[:0]
}

// check drops the output if it cannot be indexed.
func (t *Tessellator) check() error {
	if n := len(t.vertices); n > layers.MaxVertices {
		t.clear()
		return fmt.Errorf("%w: %d vertices", ErrTooManyVertices, n)
	}
	return nil
}

// Fill triangulates the interior of every subpath with default options.
func (t *Tessellator) Fill(p *Path) error {
	return t.FillWith(p, FillOptions{})
}

// FillWith triangulates each subpath independently by ear clipping. Open
// subpaths are closed implicitly and subpaths with fewer than three distinct
// points are skipped. Holes are not cut: nested subpaths overlap.
func (t *Tessellator) FillWith(p *Path, opt FillOptions) error {
	t.clear()
	tol := opt.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for _, c := range t.flat.flatten(p, tol) {
		pts := ring(c.points)
		if len(pts) < 3 {
			continue
		}
		base := len(t.vertices)
		t.vertices = append(t.vertices, pts...)
		t.earClip(pts, base)
	}
	return t.check()
}

// earClip appends n-2 triangles for the polygon pts stored at base.
func (t *Tessellator) earClip(pts []geom.Vec2, base int) {
	ccw := signedArea(pts) >= 0
	t.work = t.work[:0]
	for i := range pts {
		t.work = append(t.work, i)
	}
	tri := func(a, b, c int) {
		t.indices = append(t.indices, uint16(base+a), uint16(base+b), uint16(base+c))
	}

	for len(t.work) > 3 {
		n := len(t.work)
		clipped := false
		for i := range n {
			a, b, c := t.work[(i+n-1)%n], t.work[i], t.work[(i+1)%n]
			if !t.isEar(pts, a, b, c, ccw) {
				continue
			}
			tri(a, b, c)
			t.work = append(t.work[:i], t.work[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Self-intersecting or degenerate remainder: fan it.
			for i := 1; i < len(t.work)-1; i++ {
				tri(t.work[0], t.work[i], t.work[i+1])
			}
			return
		}
	}
	tri(t.work[0], t.work[1], t.work[2])
}

func (t *Tessellator) isEar(pts []geom.Vec2, a, b, c int, ccw bool) bool {
	pa, pb, pc := pts[a], pts[b], pts[c]
	turn := pb.Sub(pa).Cross(pc.Sub(pb))
	if !ccw {
		turn = -turn
	}
	if turn <= 0 {
		return false
	}
	for _, j := range t.work {
		if j == a || j == b || j == c {
			continue
		}
		q := pts[j]
		if q == pa || q == pb || q == pc {
			continue
		}
		if inTriangle(q, pa, pb, pc) {
			return false
		}
	}
	return true
}

func signedArea(pts []geom.Vec2) float32 {
	var area float32
	for i, p := range pts {
		area += p.Cross(pts[(i+1)%len(pts)])
	}
	return area / 2
}

// inTriangle includes the edges.
func inTriangle(p, a, b, c geom.Vec2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}
