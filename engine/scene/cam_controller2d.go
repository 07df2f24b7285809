package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/geom"
)

// Controller2D: WASD or arrows move, Q/E rotate, wheel zooms.
type Controller2D struct {
	MoveSpeed float32 // screen pixels per second
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per wheel step
	Camera    *Camera2D
}

func NewController2D(cam *Camera2D) *Controller2D {
	return &Controller2D{
		MoveSpeed: 400,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

// Update moves the camera for one frame and applies its zoom to the screen.
func (cc *Controller2D) Update(st core.State) {
	dt := float32(st.Delta.Seconds())
	keys := st.Keys

	var dir geom.Vec2
	if keys.IsPressed(core.KeyW) || keys.IsPressed(core.KeyUp) {
		dir.Y++
	}
	if keys.IsPressed(core.KeyS) || keys.IsPressed(core.KeyDown) {
		dir.Y--
	}
	if keys.IsPressed(core.KeyA) || keys.IsPressed(core.KeyLeft) {
		dir.X--
	}
	if keys.IsPressed(core.KeyD) || keys.IsPressed(core.KeyRight) {
		dir.X++
	}
	if dir != (geom.Vec2{}) {
		// Pan along the camera's own axes at constant on-screen speed.
		sin, cos := math32.Sincos(cc.Camera.Rotation)
		d := dir.Normalize().Mul(cc.MoveSpeed * dt * cc.Camera.Zoom)
		cc.Camera.Move(geom.V2(d.X*cos-d.Y*sin, d.X*sin+d.Y*cos))
	}

	if keys.IsPressed(core.KeyQ) {
		cc.Camera.Rotate(cc.RotSpeed * dt)
	}
	if keys.IsPressed(core.KeyE) {
		cc.Camera.Rotate(-cc.RotSpeed * dt)
	}

	if st.Mouse.HasScrolled && st.Mouse.Scroll.Y != 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * math32.Pow(cc.ZoomSpeed, -st.Mouse.Scroll.Y))
	}
	if st.Screen != nil {
		cc.Camera.Apply(st.Screen)
	}
}
