package glbackend

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/flatland/engine/assets"
	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/gfx"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
)

// paramsBinding is the uniform buffer binding point of the Params block.
const paramsBinding = 0

// Instance attribute locations and byte offsets inside a layers.Instance.
const (
	locPosition    = 0
	locMatrix      = 1
	locTranslation = 2
	locColor       = 3

	offMatrix      = 0
	offTranslation = 16
	offColor       = 24
)

type buffer struct {
	id     uint32
	target uint32
	usage  gfx.BufferUsage
	size   int
}

// Device implements gfx.Device on an OpenGL 3.3 core context. The context must
// be current on the calling thread for the device's whole life.
type Device struct {
	win     core.Window
	program uint32
	vao     uint32
	buffers []*buffer

	instances *buffer

	width, height int
}

// NewDevice compiles the layer program on the window's current context.
func NewDevice(win core.Window, _ core.Config) (*Device, error) {
	vs, err := assets.LoadShader("layer.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader("layer.frag")
	if err != nil {
		return nil, err
	}
	program, err := makeProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	d := &Device{win: win, program: program}

	block := gl.GetUniformBlockIndex(program, gl.Str("Params\x00"))
	if block == gl.INVALID_INDEX {
		d.Release()
		return nil, errors.New("program has no Params uniform block")
	}
	gl.UniformBlockBinding(program, block, paramsBinding)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	logging.Logger().Info("gl device ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return d, nil
}

func target(u gfx.BufferUsage) uint32 {
	switch u {
	case gfx.UsageIndex:
		return gl.ELEMENT_ARRAY_BUFFER
	case gfx.UsageUniform:
		return gl.UNIFORM_BUFFER
	default:
		return gl.ARRAY_BUFFER
	}
}

func (d *Device) CreateBuffer(usage gfx.BufferUsage, size int) (gfx.Buffer, error) {
	b := &buffer{target: target(usage), usage: usage, size: size}
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(b.target, b.id)
	gl.BufferData(b.target, size, nil, gl.DYNAMIC_DRAW)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &b.id)
		return nil, glError(code)
	}

	switch usage {
	case gfx.UsageVertex:
		gl.EnableVertexAttribArray(locPosition)
		gl.VertexAttribPointerWithOffset(locPosition, 2, gl.FLOAT, false, 8, 0)
	case gfx.UsageInstance:
		for _, loc := range []uint32{locMatrix, locTranslation, locColor} {
			gl.EnableVertexAttribArray(loc)
			gl.VertexAttribDivisor(loc, 1)
		}
		d.instances = b
	case gfx.UsageUniform:
		gl.BindBufferBase(gl.UNIFORM_BUFFER, paramsBinding, b.id)
	}
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *Device) WriteBuffer(b gfx.Buffer, data []byte) {
	buf := b.(*buffer)
	n := min(len(data), buf.size)
	if n == 0 {
		return
	}
	gl.BindBuffer(buf.target, buf.id)
	gl.BufferSubData(buf.target, 0, n, gl.Ptr(data))
}

func (d *Device) Configure(width, height int) {
	d.width, d.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Acquire reports a minimized window as a timeout and a context out of
// memory as fatal.
func (d *Device) Acquire(clear colors.Color) error {
	if d.width <= 0 || d.height <= 0 {
		return gfx.ErrSurfaceTimeout
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return glError(code)
	}
	c := clear.Float()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
	return nil
}

// DrawIndexed re-points the instance attributes at the layer's first instance
// and draws its index range. Empty ranges draw nothing.
func (d *Device) DrawIndexed(indices, instances layers.Span) {
	if indices.Len() == 0 || instances.Len() == 0 || d.instances == nil {
		return
	}
	base := uintptr(instances.Start) * layers.InstanceSize
	gl.BindBuffer(gl.ARRAY_BUFFER, d.instances.id)
	gl.VertexAttribPointerWithOffset(locMatrix, 4, gl.FLOAT, false, layers.InstanceSize, base+offMatrix)
	gl.VertexAttribPointerWithOffset(locTranslation, 2, gl.FLOAT, false, layers.InstanceSize, base+offTranslation)
	gl.VertexAttribPointerWithOffset(locColor, 4, gl.UNSIGNED_BYTE, true, layers.InstanceSize, base+offColor)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(indices.Len()), gl.UNSIGNED_SHORT,
		gl.PtrOffset(int(indices.Start)*2), int32(instances.Len()))
}

func (d *Device) Present() { d.win.SwapBuffers() }

func (d *Device) Release() {
	for _, b := range d.buffers {
		gl.DeleteBuffers(1, &b.id)
	}
	d.buffers = nil
	d.instances = nil
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
}

// glError maps a GL error code; running out of memory is fatal for the loop.
func glError(code uint32) error {
	if code == gl.OUT_OF_MEMORY {
		return fmt.Errorf("gl: %w", gfx.ErrSurfaceOutOfMemory)
	}
	return fmt.Errorf("gl: error 0x%04x", code)
}
