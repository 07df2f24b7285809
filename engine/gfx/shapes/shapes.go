// Package shapes builds simple geometry and writes it into layers.
package shapes

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/layers"
)

// Quad is a w x h rectangle centred on the origin, corners TL, TR, BL, BR.
func Quad(w, h float32) ([]geom.Vec2, []uint16) {
	hw, hh := w*0.5, h*0.5
	verts := []geom.Vec2{
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
	}
	return verts, []uint16{0, 2, 1, 1, 2, 3}
}

// Polygon is a regular polygon centred on the origin with its first vertex
// on +X, triangulated as a fan. Fewer than three sides yields nothing.
func Polygon(sides int, radius float32) ([]geom.Vec2, []uint16) {
	if sides < 3 {
		return nil, nil
	}
	verts := make([]geom.Vec2, sides)
	step := 2 * math32.Pi / float32(sides)
	for i := range verts {
		s, c := math32.Sincos(step * float32(i))
		verts[i] = geom.V2(c*radius, s*radius)
	}
	inds := make([]uint16, 0, 3*(sides-2))
	for i := 1; i < sides-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return verts, inds
}

// Put appends geometry after the layer's current contents. Indices are
// relative to verts. Nothing is written unless all of it fits.
func Put(l layers.LayerMut, verts []geom.Vec2, inds []uint16) bool {
	base := l.VerticesLen()
	if base+len(verts) > l.MaxVerticesLen() || l.IndicesLen()+len(inds) > l.MaxIndicesLen() {
		return false
	}
	l.ExtendVertices(verts...)
	at := l.Range().IndexSpan().End
	l.ExtendIndices(inds...)
	if base == 0 {
		return true
	}
	for i, idx := range inds {
		l.SetIndex(int(at)+i, idx+uint16(base))
	}
	return true
}
