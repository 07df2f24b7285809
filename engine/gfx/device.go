// Package gfx keeps the GPU in sync with a layers.Layers arena.
//
// The GPU itself is reached through Device, a narrow interface over a graphics
// API: buffers are written whole once per frame and every layer becomes one
// instanced indexed draw.
package gfx

import (
	"errors"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/layers"
)

// BufferUsage tells the device how a buffer is bound.
type BufferUsage int

const (
	UsageVertex BufferUsage = iota
	UsageIndex
	UsageInstance
	UsageUniform
)

func (u BufferUsage) String() string {
	switch u {
	case UsageVertex:
		return "vertex"
	case UsageIndex:
		return "index"
	case UsageInstance:
		return "instance"
	case UsageUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// Buffer is an opaque device buffer handle.
type Buffer any

// Surface errors returned by Device.Acquire.
var (
	// ErrSurfaceLost means the surface must be reconfigured before use.
	ErrSurfaceLost = errors.New("gfx: surface lost")
	// ErrSurfaceOutOfMemory is fatal: the render loop must stop.
	ErrSurfaceOutOfMemory = errors.New("gfx: surface out of memory")
	// ErrSurfaceOutdated means the surface no longer matches the window.
	ErrSurfaceOutdated = errors.New("gfx: surface outdated")
	// ErrSurfaceTimeout means no surface image was available this frame.
	ErrSurfaceTimeout = errors.New("gfx: surface acquire timed out")
)

// Device is the GPU collaborator.
type Device interface {
	// CreateBuffer allocates size bytes for the given usage.
	CreateBuffer(usage BufferUsage, size int) (Buffer, error)
	// WriteBuffer overwrites b from offset 0 with data.
	WriteBuffer(b Buffer, data []byte)
	// Configure resizes the presentable surface.
	Configure(width, height int)
	// Acquire obtains the next surface image and clears it.
	Acquire(clear colors.Color) error
	// DrawIndexed draws indices of the bound index buffer, once per instance.
	DrawIndexed(indices, instances layers.Span)
	// Present submits the frame.
	Present()
	// Release frees every device resource.
	Release()
}
