package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
)

func TestScreenResize(t *testing.T) {
	s := NewScreen(800, 600)
	assert.True(t, s.HasResized())
	assert.Equal(t, geom.V2(400, 300), s.Half())
	assert.Equal(t, colors.Transparent, s.ClearColor())

	s.Unset()
	assert.False(t, s.HasResized())

	w, h, ok := s.Process(EventMouseMove{})
	assert.False(t, ok)
	assert.Zero(t, w+h)

	w, h, ok = s.Process(EventResize{W: 1024, H: 768})
	assert.True(t, ok)
	assert.Equal(t, [2]int{1024, 768}, [2]int{w, h})
	assert.True(t, s.HasResized())
	assert.Equal(t, geom.V2(1024, 768), s.Size())
}

func TestScreenZoom(t *testing.T) {
	s := NewScreen(100, 100)
	assert.Equal(t, float32(1), s.Zoom())

	s.SetZoom(2)
	assert.Equal(t, float32(0.5), s.ZoomRecip())
	assert.Equal(t, geom.V2(20, -10), s.WorldOf(geom.V2(10, -5)))
	assert.Equal(t, geom.V2(10, -5), s.LocalOf(geom.V2(20, -10)))

	s.SetZoom(0)
	s.SetZoom(-3)
	assert.Equal(t, float32(2), s.Zoom())
}
