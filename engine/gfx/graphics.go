package gfx

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
)

// Params is the per-frame uniform block (std140: one vec4).
type Params struct {
	HalfRecip geom.Vec2 // 1 / (screen size / 2)
	Zoom      float32
	_         float32
}

// NewParams computes the uniform block for a surface of width x height.
func NewParams(width, height int, zoom float32) Params {
	half := geom.V2(float32(width), float32(height)).Mul(0.5)
	return Params{HalfRecip: half.Recip(), Zoom: zoom}
}

// Statistics captures the counts submitted during the last rendered frame.
type Statistics struct {
	DrawCalls int
	Vertices  int
	Indices   int
	Instances int
	Skipped   int // frames skipped since start: minimized or surface errors
}

// Graphics uploads an arena to a Device and draws it.
type Graphics struct {
	layers *layers.Layers
	dev    Device

	vertexBuf, indexBuf, instanceBuf, paramsBuf Buffer

	width, height int
	stats         Statistics
}

// New creates the four buffers sized from l and configures the surface.
func New(dev Device, l *layers.Layers, width, height int) (*Graphics, error) {
	g := &Graphics{layers: l, dev: dev, width: width, height: height}

	sizes := []struct {
		usage BufferUsage
		size  int
		dst   *Buffer
	}{
		{UsageVertex, len(l.Vertices()) * int(unsafe.Sizeof(geom.Vec2{})), &g.vertexBuf},
		{UsageIndex, len(l.Indices()) * 2, &g.indexBuf},
		{UsageInstance, len(l.Instances()) * layers.InstanceSize, &g.instanceBuf},
		{UsageUniform, int(unsafe.Sizeof(Params{})), &g.paramsBuf},
	}
	for _, s := range sizes {
		b, err := dev.CreateBuffer(s.usage, s.size)
		if err != nil {
			return nil, fmt.Errorf("create %s buffer (%d bytes): %w", s.usage, s.size, err)
		}
		*s.dst = b
		logging.Logger().Debug("gfx buffer created", "usage", s.usage.String(), "bytes", s.size)
	}

	if width > 0 && height > 0 {
		dev.Configure(width, height)
	}
	return g, nil
}

// Layers returns the arena being synchronized.
func (g *Graphics) Layers() *layers.Layers { return g.layers }

// Stats returns the statistics of the last rendered frame.
func (g *Graphics) Stats() Statistics { return g.stats }

// Render draws one frame for a width x height surface.
//
// A zero-sized (minimized) surface skips the frame without acquiring. A lost
// surface is reconfigured and the frame skipped; other transient surface
// errors are logged and the frame skipped. Only ErrSurfaceOutOfMemory
// is returned.
func (g *Graphics) Render(width, height int, zoom float32, clear colors.Color) error {
	if width <= 0 || height <= 0 {
		// Minimized: nothing to present into, the surface keeps its last size.
		g.stats.Skipped++
		return nil
	}
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.dev.Configure(width, height)
		logging.Logger().Debug("gfx surface configured", "width", width, "height", height)
	}

	if err := g.dev.Acquire(clear); err != nil {
		switch {
		case errors.Is(err, ErrSurfaceLost):
			g.dev.Configure(g.width, g.height)
		case errors.Is(err, ErrSurfaceOutOfMemory):
			logging.Logger().Error("gfx surface out of memory", "err", err)
			return err
		default:
			logging.Logger().Warn("gfx frame skipped", "err", err)
		}
		g.stats.Skipped++
		return nil
	}

	g.dev.WriteBuffer(g.vertexBuf, bytesOf(g.layers.Vertices()))
	g.dev.WriteBuffer(g.indexBuf, bytesOf(g.layers.Indices()))
	g.dev.WriteBuffer(g.instanceBuf, bytesOf(g.layers.Instances()))
	params := NewParams(g.width, g.height, zoom)
	g.dev.WriteBuffer(g.paramsBuf, bytesOf([]Params{params}))

	stats := Statistics{Skipped: g.stats.Skipped}
	for r := range g.layers.Ranges() {
		indices, instances := r.IndexSpan(), r.InstanceSpan()
		g.dev.DrawIndexed(indices, instances)
		stats.DrawCalls++
		stats.Vertices += int(r.VertexSpan().Len())
		stats.Indices += int(indices.Len())
		stats.Instances += int(instances.Len())
	}
	g.stats = stats

	g.dev.Present()
	return nil
}

// bytesOf views s as raw bytes without copying.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
