package layers

import "github.com/hubastard/flatland/engine/geom"

// Layer is a read-only view of one arena partition. Views are cheap values
// meant to live for a single access; they must not be kept across frames.
type Layer struct {
	arena *Layers
	r     *Range

	// capacity ceilings: the next physical layer's starts, or the store ends
	vertexMax, indexMax, instanceMax int
}

func (v Layer) VerticesLen() int  { return v.r.vertexEnd - v.r.vertexStart }
func (v Layer) IndicesLen() int   { return v.r.indexEnd - v.r.indexStart }
func (v Layer) InstancesLen() int { return v.r.instanceEnd - v.r.instanceStart }

func (v Layer) MaxVerticesLen() int  { return v.vertexMax - v.r.vertexStart }
func (v Layer) MaxIndicesLen() int   { return v.indexMax - v.r.indexStart }
func (v Layer) MaxInstancesLen() int { return v.instanceMax - v.r.instanceStart }

// Range returns a copy of the layer's bookkeeping.
func (v Layer) Range() Range { return *v.r }

// Vertices returns the live vertices.
func (v Layer) Vertices() []geom.Vec2 {
	return v.arena.vertices[v.r.vertexStart:v.r.vertexEnd:v.r.vertexEnd]
}

// Instances returns the live instances.
func (v Layer) Instances() []Instance {
	return v.arena.instances[v.r.instanceStart:v.r.instanceEnd:v.r.instanceEnd]
}

// Index returns the layer-local index at position at of the live index range.
func (v Layer) Index(at int) (uint16, bool) {
	if at < 0 || at >= v.IndicesLen() {
		return 0, false
	}
	return v.arena.indices[v.r.indexStart+at] - uint16(v.r.vertexStart), true
}

// LayerMut is a mutable view of one arena partition. Writes past the layer's
// capacity are dropped silently: the arena never grows.
type LayerMut struct {
	Layer
}

// VerticesMut returns the live vertices for in-place edits.
func (v LayerMut) VerticesMut() []geom.Vec2 {
	return v.arena.vertices[v.r.vertexStart:v.r.vertexEnd:v.r.vertexEnd]
}

// InstancesMut returns the live instances for in-place edits.
func (v LayerMut) InstancesMut() []Instance {
	return v.arena.instances[v.r.instanceStart:v.r.instanceEnd:v.r.instanceEnd]
}

// SetIndex writes a layer-local index at absolute position at of the arena's
// index store. Callers should only address positions already reserved with
// ExtendIndices or SetIndices.
func (v LayerMut) SetIndex(at int, value uint16) bool {
	if at < 0 || at >= len(v.arena.indices) {
		return false
	}
	v.arena.indices[at] = value + uint16(v.r.vertexStart)
	return true
}

func (v LayerMut) ClearVertices()  { v.r.vertexEnd = v.r.vertexStart }
func (v LayerMut) ClearIndices()   { v.r.indexEnd = v.r.indexStart }
func (v LayerMut) ClearInstances() { v.r.instanceEnd = v.r.instanceStart }

// TruncateVertices only moves the floating end when start+n reaches the
// capacity ceiling; shorter lengths leave the layer untouched. See
// truncateEnd.
func (v LayerMut) TruncateVertices(n int) {
	v.r.vertexEnd = truncateEnd(v.r.vertexStart, v.r.vertexEnd, v.vertexMax, n)
}

func (v LayerMut) TruncateIndices(n int) {
	v.r.indexEnd = truncateEnd(v.r.indexStart, v.r.indexEnd, v.indexMax, n)
}

func (v LayerMut) TruncateInstances(n int) {
	v.r.instanceEnd = truncateEnd(v.r.instanceStart, v.r.instanceEnd, v.instanceMax, n)
}

// truncateEnd keeps end when start+n is below ceil and otherwise pins it to
// ceil. Lengths past the ceiling are clamped so the range never leaves its
// window.
func truncateEnd(start, end, ceil, n int) int {
	if n < 0 || start+n < ceil {
		return end
	}
	return ceil
}

// ExtendVertices appends vs until the layer is full and drops the rest.
func (v LayerMut) ExtendVertices(vs ...geom.Vec2) {
	n := copy(v.arena.vertices[v.r.vertexEnd:v.vertexMax], vs)
	v.r.vertexEnd += n
}

// ExtendIndices appends layer-local indices, rebasing them to global vertex
// positions, until the layer is full and drops the rest.
func (v LayerMut) ExtendIndices(is ...uint16) {
	dst := v.arena.indices[v.r.indexEnd:v.indexMax]
	base := uint16(v.r.vertexStart)
	n := min(len(dst), len(is))
	for i := range n {
		dst[i] = is[i] + base
	}
	v.r.indexEnd += n
}

// ExtendInstances appends ins until the layer is full and drops the rest.
func (v LayerMut) ExtendInstances(ins ...Instance) {
	n := copy(v.arena.instances[v.r.instanceEnd:v.instanceMax], ins)
	v.r.instanceEnd += n
}

func (v LayerMut) SetVertices(vs ...geom.Vec2) {
	v.ClearVertices()
	v.ExtendVertices(vs...)
}

func (v LayerMut) SetIndices(is ...uint16) {
	v.ClearIndices()
	v.ExtendIndices(is...)
}

func (v LayerMut) SetInstances(ins ...Instance) {
	v.ClearInstances()
	v.ExtendInstances(ins...)
}
