package layers

import (
	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
)

// InstanceSize is the byte size of one Instance as uploaded to the GPU.
const InstanceSize = 6*4 + 4

// Instance is one placement of a layer's geometry.
type Instance struct {
	Transform [6]float32 // geom.Affine2.ColsArray layout
	Color     colors.Color
}

// NewInstance places geometry with transform t, tinted c.
func NewInstance(t geom.Affine2, c colors.Color) Instance {
	return Instance{Transform: t.ColsArray(), Color: c}
}

func (in Instance) WithTransform(t geom.Affine2) Instance {
	in.Transform = t.ColsArray()
	return in
}

func (in Instance) WithColor(c colors.Color) Instance {
	in.Color = c
	return in
}

// Affine returns the instance transform.
func (in Instance) Affine() geom.Affine2 { return geom.FromColsArray(in.Transform) }
