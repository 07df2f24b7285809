package core

import (
	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
)

// Screen is the window surface as seen by the App.
type Screen struct {
	size       geom.Vec2
	half       geom.Vec2
	zoom       float32
	zoomRecip  float32
	hasResized bool
	clearColor colors.Color
}

// NewScreen starts at zoom 1 and reports a resize on its first frame.
func NewScreen(width, height int) *Screen {
	s := &Screen{zoom: 1, zoomRecip: 1, clearColor: colors.Transparent}
	s.resize(width, height)
	return s
}

func (s *Screen) resize(width, height int) {
	s.size = geom.V2(float32(width), float32(height))
	s.half = s.size.Mul(0.5)
	s.hasResized = true
}

func (s *Screen) Size() geom.Vec2          { return s.size }
func (s *Screen) Half() geom.Vec2          { return s.half }
func (s *Screen) Zoom() float32            { return s.zoom }
func (s *Screen) ZoomRecip() float32       { return s.zoomRecip }
func (s *Screen) HasResized() bool         { return s.hasResized }
func (s *Screen) ClearColor() colors.Color { return s.clearColor }

// SetZoom scales the view; values above 1 zoom out. Non-positive values are
// ignored.
func (s *Screen) SetZoom(zoom float32) {
	if zoom <= 0 {
		return
	}
	s.zoom = zoom
	s.zoomRecip = 1 / zoom
}

func (s *Screen) SetClearColor(c colors.Color) { s.clearColor = c }

// WorldOf maps a screen-local position (pixels from the centre, Y up) to world
// space.
func (s *Screen) WorldOf(local geom.Vec2) geom.Vec2 { return local.Mul(s.zoom) }

// LocalOf is the inverse of WorldOf.
func (s *Screen) LocalOf(world geom.Vec2) geom.Vec2 { return world.Mul(s.zoomRecip) }

// Process consumes resize events and returns the new size.
func (s *Screen) Process(ev Event) (width, height int, ok bool) {
	e, ok := ev.(EventResize)
	if !ok {
		return 0, 0, false
	}
	s.resize(e.W, e.H)
	return e.W, e.H, true
}

func (s *Screen) Unset() { s.hasResized = false }
