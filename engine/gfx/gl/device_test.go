package glbackend

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/flatland/engine/gfx"
	"github.com/hubastard/flatland/engine/layers"
)

func TestTarget(t *testing.T) {
	assert.Equal(t, uint32(gl.ARRAY_BUFFER), target(gfx.UsageVertex))
	assert.Equal(t, uint32(gl.ARRAY_BUFFER), target(gfx.UsageInstance))
	assert.Equal(t, uint32(gl.ELEMENT_ARRAY_BUFFER), target(gfx.UsageIndex))
	assert.Equal(t, uint32(gl.UNIFORM_BUFFER), target(gfx.UsageUniform))
}

func TestInstanceLayout(t *testing.T) {
	var in layers.Instance
	assert.Equal(t, uintptr(layers.InstanceSize), unsafe.Sizeof(in))
	assert.Equal(t, uintptr(offMatrix), unsafe.Offsetof(in.Transform))
	assert.Equal(t, uintptr(offColor), unsafe.Offsetof(in.Color))
	assert.Equal(t, uintptr(offTranslation), unsafe.Sizeof([4]float32{}))
}

func TestGLError(t *testing.T) {
	assert.ErrorIs(t, glError(gl.OUT_OF_MEMORY), gfx.ErrSurfaceOutOfMemory)
	assert.NotErrorIs(t, glError(gl.INVALID_OPERATION), gfx.ErrSurfaceOutOfMemory)
}
