package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/flatland/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyA, core.KeyA},
		{glfw.KeyZ, core.KeyZ},
		{glfw.KeyQ, core.KeyQ},
		{glfw.Key0, core.Key0},
		{glfw.Key7, core.Key7},
		{glfw.KeyF1, core.KeyF1},
		{glfw.KeyF12, core.KeyF12},
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyLeftShift, core.KeyLeftShift},
		{glfw.KeyGraveAccent, core.KeyGraveAccent},
		{glfw.KeyF13, core.KeyUnknown},
		{glfw.KeyUnknown, core.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translateKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestTranslateButton(t *testing.T) {
	assert.Equal(t, core.MouseLeft, translateButton(glfw.MouseButtonLeft))
	assert.Equal(t, core.MouseMiddle, translateButton(glfw.MouseButtonMiddle))
	assert.Equal(t, core.MouseRight, translateButton(glfw.MouseButtonRight))
	assert.Equal(t, core.MouseOther, translateButton(glfw.MouseButton5))
}

func TestMods(t *testing.T) {
	assert.Equal(t, core.ModShift|core.ModSuper, translateMods(glfw.ModShift|glfw.ModSuper))
	assert.Equal(t, core.ModNone, translateMods(0))

	assert.Equal(t, core.ModCtrl, modsAfter(core.KeyLeftControl, true, core.ModNone))
	assert.Equal(t, core.ModNone, modsAfter(core.KeyRightControl, false, core.ModCtrl))
	assert.Equal(t, core.ModAlt, modsAfter(core.KeyA, true, core.ModAlt))
}

func TestCursorToFramebuffer(t *testing.T) {
	x, y := toFramebuffer(400, 300, 800, 600, 1600, 1200)
	assert.Equal(t, [2]float64{800, 600}, [2]float64{x, y})

	x, y = toFramebuffer(10, 20, 0, 0, 0, 0)
	assert.Equal(t, [2]float64{10, 20}, [2]float64{x, y}, "minimized window passes through")

	// The window centre on a 2x display lands on the screen centre.
	screen := core.NewScreen(1600, 1200)
	m := core.NewMouse()
	x, y = toFramebuffer(400, 300, 800, 600, 1600, 1200)
	m.Process(core.EventMouseMove{X: x, Y: y}, screen.Half())
	assert.Zero(t, m.Position)
}
