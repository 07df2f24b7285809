package core

import "github.com/hubastard/flatland/engine/geom"

// maxTracked bounds the indices a Map can hold.
const maxTracked = 256

type bitset [maxTracked / 64]uint64

func (b *bitset) set(i int)     { b[i>>6] |= 1 << (i & 63) }
func (b bitset) has(i int) bool { return b[i>>6]&(1<<(i&63)) != 0 }

// Map tracks edge state for indices [0, n). Values are plain arrays, so
// copying a Map yields an independent snapshot.
type Map struct {
	n              int
	pressed        bitset
	released       bitset
	notJustPressed bitset
}

// NewMap tracks n indices; n is clamped to 256.
func NewMap(n int) Map {
	return Map{n: min(max(n, 0), maxTracked)}
}

func (m Map) Len() int { return m.n }

func (m Map) valid(i int) bool { return i >= 0 && i < m.n }

// Press records a press event for index i.
func (m *Map) Press(i int) {
	if m.valid(i) {
		m.pressed.set(i)
	}
}

// Release records a release event for index i.
func (m *Map) Release(i int) {
	if m.valid(i) {
		m.released.set(i)
	}
}

// Unset ends a frame: remember what was pressed, drop keys released this
// frame, and forget the releases.
func (m *Map) Unset() {
	for w := range m.pressed {
		m.notJustPressed[w] = m.pressed[w]
		m.pressed[w] &^= m.released[w]
		m.released[w] = 0
	}
}

func (m Map) IsPressed(i int) bool  { return m.valid(i) && m.pressed.has(i) }
func (m Map) IsReleased(i int) bool { return m.valid(i) && m.released.has(i) }

// IsJustPressed is true only on the frame i went from up to down.
func (m Map) IsJustPressed(i int) bool {
	return m.valid(i) && m.pressed.has(i) && !m.notJustPressed.has(i)
}

// Mouse is the per-frame pointer state. Position is relative to the screen
// centre with Y pointing up.
type Mouse struct {
	Position geom.Vec2
	Velocity geom.Vec2 // movement during this frame
	Scroll   geom.Vec2 // wheel delta during this frame

	HasEntered  bool
	HasLeft     bool
	HasMoved    bool
	HasScrolled bool

	buttons Map
}

func NewMouse() Mouse { return Mouse{buttons: NewMap(int(MouseOther) + 1)} }

func (m Mouse) IsPressed(b MouseButton) bool     { return m.buttons.IsPressed(int(b)) }
func (m Mouse) IsReleased(b MouseButton) bool    { return m.buttons.IsReleased(int(b)) }
func (m Mouse) IsJustPressed(b MouseButton) bool { return m.buttons.IsJustPressed(int(b)) }

// Process consumes pointer events and reports whether ev was one.
// half is half the screen size, used to centre the position.
func (m *Mouse) Process(ev Event, half geom.Vec2) bool {
	switch e := ev.(type) {
	case EventCursorEntered:
		m.HasEntered = true
	case EventCursorLeft:
		m.HasLeft = true
	case EventMouseMove:
		pos := geom.V2(float32(e.X)-half.X, half.Y-float32(e.Y))
		m.Velocity = m.Velocity.Add(pos.Sub(m.Position))
		m.Position = pos
		m.HasMoved = true
	case EventMouseButton:
		if e.Down {
			m.buttons.Press(int(e.Button))
		} else {
			m.buttons.Release(int(e.Button))
		}
	case EventScroll:
		d := geom.V2(float32(e.X), float32(e.Y))
		if e.Pixels {
			d.Y = -d.Y
		}
		m.Scroll = m.Scroll.Add(d)
		m.HasScrolled = true
	default:
		return false
	}
	return true
}

// Unset ends a frame. Velocity and Scroll only accumulate within a frame.
func (m *Mouse) Unset() {
	m.buttons.Unset()
	m.HasEntered = false
	m.HasLeft = false
	m.Velocity = geom.Vec2{}
	m.Scroll = geom.Vec2{}
	m.HasMoved = false
	m.HasScrolled = false
}

// Keys is the per-frame keyboard state. Modifier flags mirror the latest
// modifier event and are not edge tracked.
type Keys struct {
	IsShift bool
	IsCtrl  bool
	IsAlt   bool
	IsLogo  bool

	keys Map
}

func NewKeys() Keys { return Keys{keys: NewMap(int(KeyCount))} }

func (k Keys) IsPressed(key Key) bool     { return k.keys.IsPressed(int(key)) }
func (k Keys) IsReleased(key Key) bool    { return k.keys.IsReleased(int(key)) }
func (k Keys) IsJustPressed(key Key) bool { return k.keys.IsJustPressed(int(key)) }

// Process consumes keyboard events and reports whether ev was one.
func (k *Keys) Process(ev Event) bool {
	switch e := ev.(type) {
	case EventKey:
		if e.Key == KeyUnknown {
			return false
		}
		if e.Down {
			k.keys.Press(int(e.Key))
		} else {
			k.keys.Release(int(e.Key))
		}
	case EventModifiers:
		k.IsShift = e.Mods&ModShift != 0
		k.IsCtrl = e.Mods&ModCtrl != 0
		k.IsAlt = e.Mods&ModAlt != 0
		k.IsLogo = e.Mods&ModSuper != 0
	default:
		return false
	}
	return true
}

func (k *Keys) Unset() { k.keys.Unset() }
