package core

import (
	"time"

	"github.com/hubastard/flatland/engine/gfx"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/tessellate"
)

// App receives one State per frame.
type App interface {
	OnFrame(st State)
}

// AppFunc adapts a plain callback to App.
type AppFunc func(st State)

func (f AppFunc) OnFrame(st State) { f(st) }

// Starter is implemented by apps that need setup before the first frame.
type Starter interface {
	OnStart(st State)
}

// Shutdowner is implemented by apps that need to run after the last frame.
type Shutdowner interface {
	OnShutdown()
}

// State is the frame bundle handed to the App. Mouse and Keys are snapshots;
// Layers, Tessellator and Screen may be mutated during the callback only.
type State struct {
	Layers      *layers.Layers
	Tessellator *tessellate.Tessellator
	Screen      *Screen
	Mouse       Mouse
	Keys        Keys
	Delta       time.Duration
	Stats       gfx.Statistics // previous frame
}

// Window abstraction.
type Window interface {
	PollEvents()
	SetEventCallback(cb func(Event))
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	Show()
	Destroy()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventCursorEntered struct{}

func (EventCursorEntered) isEvent() {}

type EventCursorLeft struct{}

func (EventCursorLeft) isEvent() {}

// EventMouseMove carries the cursor in framebuffer pixels, origin top-left.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

// EventScroll is a wheel delta in lines, or in pixels when Pixels is set.
// The glfw window always reports lines; Pixels is for backends that deliver
// touchpad pixel deltas.
type EventScroll struct {
	X, Y   float64
	Pixels bool
}

func (EventScroll) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventModifiers struct{ Mods Mod }

func (EventModifiers) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseOther
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
