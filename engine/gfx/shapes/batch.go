package shapes

import (
	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/layers"
)

// Statistics captures the counts generated during a batch frame.
type Statistics struct {
	QuadCount int
	Dropped   int // quads past the layer's instance capacity
}

// Batch draws unit quads as instances of one layer. The layer holds a single
// quad mesh; every DrawQuad adds one instance carrying its transform and
// color.
type Batch struct {
	arena *layers.Layers
	layer int
	view  geom.Affine2
	stats Statistics
}

// NewBatch writes the quad mesh into layer index of arena. It returns false
// when the layer does not exist or cannot hold the mesh.
func NewBatch(arena *layers.Layers, index int) (*Batch, bool) {
	l, ok := arena.GetMut(index)
	if !ok {
		return nil, false
	}
	l.ClearVertices()
	l.ClearIndices()
	l.ClearInstances()
	verts, inds := Quad(1, 1)
	if !Put(l, verts, inds) {
		return nil, false
	}
	return &Batch{arena: arena, layer: index, view: geom.Identity}, true
}

// Begin drops last frame's quads and sets the view applied to new ones.
func (b *Batch) Begin(view geom.Affine2) {
	b.view = view
	b.stats = Statistics{}
	if l, ok := b.arena.GetMut(b.layer); ok {
		l.ClearInstances()
	}
}

// Stats returns the current frame statistics snapshot.
func (b *Batch) Stats() Statistics { return b.stats }

// DrawQuad draws a w x h solid quad centred on pos.
func (b *Batch) DrawQuad(pos, size geom.Vec2, color colors.Color, rotationRad float32) {
	b.Draw(geom.FromScaleAngleTranslation(size, rotationRad, pos), color)
}

// Draw adds one instance with an arbitrary model transform.
func (b *Batch) Draw(model geom.Affine2, color colors.Color) {
	l, ok := b.arena.GetMut(b.layer)
	if !ok {
		return
	}
	if l.InstancesLen() >= l.MaxInstancesLen() {
		b.stats.Dropped++
		return
	}
	l.ExtendInstances(layers.NewInstance(b.view.Mul(model), color))
	b.stats.QuadCount++
}
