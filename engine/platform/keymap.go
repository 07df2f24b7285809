package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/flatland/engine/core"
)

var namedKeys = map[glfw.Key]core.Key{
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftControl,
	glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
	glfw.KeyMinus:        core.KeyMinus,
	glfw.KeyEqual:        core.KeyEqual,
	glfw.KeyComma:        core.KeyComma,
	glfw.KeyPeriod:       core.KeyPeriod,
	glfw.KeySlash:        core.KeySlash,
	glfw.KeySemicolon:    core.KeySemicolon,
	glfw.KeyApostrophe:   core.KeyApostrophe,
	glfw.KeyLeftBracket:  core.KeyLeftBracket,
	glfw.KeyRightBracket: core.KeyRightBracket,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyGraveAccent:  core.KeyGraveAccent,
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.KeyF1 + core.Key(k-glfw.KeyF1)
	}
	if out, ok := namedKeys[k]; ok {
		return out
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) core.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle
	case glfw.MouseButtonRight:
		return core.MouseRight
	default:
		return core.MouseOther
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}

// modsAfter applies a modifier key's own press or release, which some
// platforms leave out of the reported mods.
func modsAfter(k core.Key, down bool, m core.Mod) core.Mod {
	var bit core.Mod
	switch k {
	case core.KeyLeftShift, core.KeyRightShift:
		bit = core.ModShift
	case core.KeyLeftControl, core.KeyRightControl:
		bit = core.ModCtrl
	case core.KeyLeftAlt, core.KeyRightAlt:
		bit = core.ModAlt
	case core.KeyLeftSuper, core.KeyRightSuper:
		bit = core.ModSuper
	default:
		return m
	}
	if down {
		return m | bit
	}
	return m &^ bit
}
