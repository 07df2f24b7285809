package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/layers"
)

func arena(t *testing.T, bounds ...layers.LayerBounds) *layers.Layers {
	t.Helper()
	l, err := layers.New(bounds)
	require.NoError(t, err)
	return l
}

func TestQuad(t *testing.T) {
	verts, inds := Quad(4, 2)
	assert.Equal(t, []geom.Vec2{{X: -2, Y: 1}, {X: 2, Y: 1}, {X: -2, Y: -1}, {X: 2, Y: -1}}, verts)
	assert.Equal(t, []uint16{0, 2, 1, 1, 2, 3}, inds)
}

func TestPolygon(t *testing.T) {
	for _, n := range []int{3, 6, 12} {
		verts, inds := Polygon(n, 5)
		assert.Len(t, verts, n)
		assert.Len(t, inds, 3*(n-2))
		for _, v := range verts {
			assert.InDelta(t, 5, v.Length(), 1e-5)
		}
	}
	verts, inds := Polygon(2, 1)
	assert.Nil(t, verts)
	assert.Nil(t, inds)
}

func TestPutOffsetsIndices(t *testing.T) {
	a := arena(t, layers.Bounds(2, 3, 0), layers.Bounds(8, 12, 0))
	l, ok := a.GetMut(1)
	require.True(t, ok)

	verts, inds := Quad(1, 1)
	require.True(t, Put(l, verts, inds))
	require.True(t, Put(l, verts, inds))
	assert.Equal(t, 8, l.VerticesLen())
	require.Equal(t, 12, l.IndicesLen())

	var local []uint16
	for i := range l.IndicesLen() {
		idx, ok := l.Index(i)
		require.True(t, ok)
		local = append(local, idx)
	}
	assert.Equal(t, []uint16{0, 2, 1, 1, 2, 3, 4, 6, 5, 5, 6, 7}, local)

	// Full: nothing is written.
	assert.False(t, Put(l, verts, inds))
	assert.Equal(t, 8, l.VerticesLen())
	assert.Equal(t, 12, l.IndicesLen())
}

func TestPutIntoShiftedLayer(t *testing.T) {
	a := arena(t, layers.Bounds(3, 3, 0), layers.Bounds(5, 3, 0))
	l, ok := a.GetMut(0)
	require.True(t, ok)

	tri := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	require.True(t, Put(l, tri, []uint16{0, 1, 2}))

	// Layer 0 sits after layer 1 in the store.
	assert.Equal(t, []uint16{5, 6, 7}, a.Indices()[3:6])
	assert.Equal(t, tri, l.Vertices())
}

func TestBatch(t *testing.T) {
	a := arena(t, layers.Bounds(4, 6, 2))
	b, ok := NewBatch(a, 0)
	require.True(t, ok)

	b.Begin(geom.Translate(geom.V2(-10, 0)))
	b.DrawQuad(geom.V2(10, 5), geom.V2(2, 3), colors.Red, 0)
	b.Draw(geom.Identity, colors.Blue)
	b.DrawQuad(geom.Vec2{}, geom.V2(1, 1), colors.Green, 0)
	assert.Equal(t, Statistics{QuadCount: 2, Dropped: 1}, b.Stats())

	l, _ := a.Get(0)
	ins := l.Instances()
	require.Len(t, ins, 2)
	assert.Equal(t, colors.Red, ins[0].Color)
	assert.True(t, ins[0].Affine().TransformPoint(geom.V2(0.5, 0.5)).Approx(geom.V2(1, 6.5), 1e-5))
	assert.Equal(t, 4, l.VerticesLen())
	assert.Equal(t, 6, l.IndicesLen())

	b.Begin(geom.Identity)
	assert.Zero(t, l.InstancesLen())
	assert.Zero(t, b.Stats().QuadCount)
}

func TestBatchNeedsRoom(t *testing.T) {
	a := arena(t, layers.Bounds(3, 6, 1))
	_, ok := NewBatch(a, 0)
	assert.False(t, ok)
	_, ok = NewBatch(a, 1)
	assert.False(t, ok)
}
