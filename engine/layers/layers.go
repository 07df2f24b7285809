// Package layers implements the fixed-capacity geometry arena the renderer
// uploads every frame.
//
// An arena is built once from an ordered list of LayerBounds. Every layer gets a
// private window inside three flat backing stores (vertices, 16-bit indices,
// instances); the stores are never resized. Layers are packed in reverse
// physical order: the layer declared first sits at the highest offset and is
// therefore drawn last, on top of everything declared after it.
package layers

import (
	"errors"
	"fmt"
	"iter"

	"github.com/hubastard/flatland/engine/geom"
)

// MaxVertices is the number of vertices addressable by a 16-bit global index.
const MaxVertices = 1 << 16

// ErrVertexCapacity is returned when the summed vertex capacity of all layers
// cannot be addressed with 16-bit indices.
var ErrVertexCapacity = errors.New("layers: total vertex capacity exceeds 16-bit index range")

// LayerBounds fixes the capacity of one layer for the lifetime of the arena.
type LayerBounds struct {
	MaxVertices  uint16 `yaml:"max_vertices"`
	MaxIndices   uint32 `yaml:"max_indices"`
	MaxInstances uint32 `yaml:"max_instances"`
}

// Bounds is shorthand for a LayerBounds literal.
func Bounds(maxVertices uint16, maxIndices, maxInstances uint32) LayerBounds {
	return LayerBounds{MaxVertices: maxVertices, MaxIndices: maxIndices, MaxInstances: maxInstances}
}

// Span is a half-open [Start, End) interval of elements in a backing store.
type Span struct {
	Start, End uint32
}

func (s Span) Len() uint32 { return s.End - s.Start }

// Range is the per-layer bookkeeping: a fixed start and a floating end for each
// of the three stores. start <= end <= start+capacity always holds.
type Range struct {
	vertexStart, vertexEnd     int
	indexStart, indexEnd       int
	instanceStart, instanceEnd int
}

func (r Range) VertexSpan() Span   { return span(r.vertexStart, r.vertexEnd) }
func (r Range) IndexSpan() Span    { return span(r.indexStart, r.indexEnd) }
func (r Range) InstanceSpan() Span { return span(r.instanceStart, r.instanceEnd) }

func span(start, end int) Span { return Span{Start: uint32(start), End: uint32(end)} }

// Layers owns the backing stores and the ranges, in physical storage order.
type Layers struct {
	vertices  []geom.Vec2
	indices   []uint16
	instances []Instance
	ranges    []Range
}

// New allocates an arena for bounds. Physical slot p holds bounds[len-1-p].
func New(bounds []LayerBounds) (*Layers, error) {
	n := len(bounds)
	ranges := make([]Range, n)
	var vertexStart, indexStart, instanceStart int
	for p := range ranges {
		ranges[p] = Range{
			vertexStart: vertexStart, vertexEnd: vertexStart,
			indexStart: indexStart, indexEnd: indexStart,
			instanceStart: instanceStart, instanceEnd: instanceStart,
		}
		b := bounds[physical(n, p)]
		vertexStart += int(b.MaxVertices)
		indexStart += int(b.MaxIndices)
		instanceStart += int(b.MaxInstances)
	}
	if vertexStart > MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices", ErrVertexCapacity, vertexStart)
	}
	return &Layers{
		vertices:  make([]geom.Vec2, vertexStart),
		indices:   make([]uint16, indexStart),
		instances: make([]Instance, instanceStart),
		ranges:    ranges,
	}, nil
}

// physical translates between declared and physical layer positions; the
// mapping is its own inverse.
func physical(n, i int) int { return n - 1 - i }

// Len returns the number of layers.
func (l *Layers) Len() int { return len(l.ranges) }

// Get returns a read-only view of the layer declared at index i.
func (l *Layers) Get(i int) (Layer, bool) {
	p, ok := l.slot(i)
	if !ok {
		return Layer{}, false
	}
	return l.view(p), true
}

// GetMut returns a mutable view of the layer declared at index i.
func (l *Layers) GetMut(i int) (LayerMut, bool) {
	p, ok := l.slot(i)
	if !ok {
		return LayerMut{}, false
	}
	return LayerMut{l.view(p)}, true
}

func (l *Layers) slot(i int) (int, bool) {
	if i < 0 || i >= len(l.ranges) {
		return 0, false
	}
	return physical(len(l.ranges), i), true
}

func (l *Layers) view(p int) Layer {
	v := Layer{arena: l, r: &l.ranges[p]}
	if next := p + 1; next < len(l.ranges) {
		nr := &l.ranges[next]
		v.vertexMax, v.indexMax, v.instanceMax = nr.vertexStart, nr.indexStart, nr.instanceStart
	} else {
		v.vertexMax, v.indexMax, v.instanceMax = len(l.vertices), len(l.indices), len(l.instances)
	}
	return v
}

// Ranges yields every layer's range in physical storage order, which is the
// draw order: the last declared layer first.
func (l *Layers) Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for _, r := range l.ranges {
			if !yield(r) {
				return
			}
		}
	}
}

// Vertices returns the whole vertex store, live or not.
func (l *Layers) Vertices() []geom.Vec2 { return l.vertices }

// Indices returns the whole index store; values are global vertex positions.
func (l *Layers) Indices() []uint16 { return l.indices }

// Instances returns the whole instance store.
func (l *Layers) Instances() []Instance { return l.instances }
