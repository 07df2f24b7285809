// Package scene holds world-space helpers built on top of the layer arena.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/geom"
)

// MinZoom keeps the camera from collapsing the view.
const MinZoom = 0.05

// Camera2D is a view over the world with position, rotation and zoom. Zoom
// follows core.Screen: values above 1 show more of the world.
type Camera2D struct {
	Position geom.Vec2
	Rotation float32 // radians
	Zoom     float32

	view  geom.Affine2
	dirty bool
}

func NewCamera2D() *Camera2D {
	return &Camera2D{Zoom: 1, view: geom.Identity}
}

func (c *Camera2D) Move(d geom.Vec2)        { c.Position = c.Position.Add(d); c.dirty = true }
func (c *Camera2D) Rotate(dRad float32)     { c.Rotation += dRad; c.dirty = true }
func (c *Camera2D) SetPosition(p geom.Vec2) { c.Position = p; c.dirty = true }

func (c *Camera2D) SetZoom(z float32) {
	c.Zoom = max(z, MinZoom)
}

// View maps world space into camera space: R(-rotation) * T(-position).
func (c *Camera2D) View() geom.Affine2 {
	if c.dirty {
		c.recalculate()
	}
	return c.view
}

func (c *Camera2D) recalculate() {
	rot := geom.FromScaleAngleTranslation(geom.V2(1, 1), -c.Rotation, geom.Vec2{})
	c.view = rot.Mul(geom.Translate(c.Position.Neg()))
	c.dirty = false
}

// Place returns the instance transform for a model seen through the camera.
func (c *Camera2D) Place(model geom.Affine2) geom.Affine2 {
	return c.View().Mul(model)
}

// Unproject maps a screen-local position to world space.
func (c *Camera2D) Unproject(s *core.Screen, local geom.Vec2) geom.Vec2 {
	v := s.WorldOf(local)
	sin, cos := math32.Sincos(c.Rotation)
	return geom.V2(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos).Add(c.Position)
}

// Apply pushes the camera zoom to the screen.
func (c *Camera2D) Apply(s *core.Screen) {
	s.SetZoom(c.Zoom)
}
