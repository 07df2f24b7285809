package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/gfx"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
	"github.com/hubastard/flatland/engine/profiler"
	"github.com/hubastard/flatland/engine/tessellate"
)

// Run wires the platform window, the GPU device and the layer arena, then
// executes the frame loop until the window closes or the device fails fatally.
func Run(cfg Config, app App, newWindow func(Config) (Window, error), newDevice func(Window, Config) (gfx.Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}
	arena, err := layers.New(cfg.Layers)
	if err != nil {
		return err
	}

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	dev, err := newDevice(win, cfg)
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	defer dev.Release()

	w, h := win.FramebufferSize()
	g, err := gfx.New(dev, arena, w, h)
	if err != nil {
		return err
	}
	logging.Logger().Info("engine started",
		"width", w, "height", h, "layers", arena.Len(),
		"vertices", len(arena.Vertices()), "indices", len(arena.Indices()), "instances", len(arena.Instances()))

	lp := newLoop(g, w, h, cfg.ClearColor)
	win.SetEventCallback(lp.handle)
	win.Show()

	if s, ok := app.(Starter); ok {
		s.OnStart(lp.state(0))
	}

	for lp.running && !win.ShouldClose() {
		win.PollEvents()
		if !lp.running {
			break
		}
		if err = lp.frame(app); err != nil {
			break
		}
	}

	if s, ok := app.(Shutdowner); ok {
		s.OnShutdown()
	}
	profiler.Report()
	if err != nil {
		logging.Logger().Error("engine stopped", "err", err)
		return err
	}
	logging.Logger().Info("engine exit")
	return nil
}

// loop owns all per-frame state; nothing here is shared across goroutines.
type loop struct {
	graphics    *gfx.Graphics
	tessellator *tessellate.Tessellator
	screen      *Screen
	mouse       Mouse
	keys        Keys

	width, height int
	running       bool
	last          time.Time
	now           func() time.Time
}

func newLoop(g *gfx.Graphics, width, height int, clear colors.Color) *loop {
	screen := NewScreen(width, height)
	screen.SetClearColor(clear)
	return &loop{
		graphics:    g,
		tessellator: tessellate.NewToFit(g.Layers()),
		screen:      screen,
		mouse:       NewMouse(),
		keys:        NewKeys(),
		width:       width,
		height:      height,
		running:     true,
		last:        time.Now(),
		now:         time.Now,
	}
}

// handle dispatches one platform event.
func (lp *loop) handle(ev Event) {
	if w, h, ok := lp.screen.Process(ev); ok {
		lp.width, lp.height = w, h
		return
	}
	if _, ok := ev.(EventCloseRequested); ok {
		lp.running = false
		return
	}
	if !lp.mouse.Process(ev, lp.screen.Half()) {
		lp.keys.Process(ev)
	}
}

func (lp *loop) state(delta time.Duration) State {
	return State{
		Layers:      lp.graphics.Layers(),
		Tessellator: lp.tessellator,
		Screen:      lp.screen,
		Mouse:       lp.mouse,
		Keys:        lp.keys,
		Delta:       delta,
		Stats:       lp.graphics.Stats(),
	}
}

// frame runs the callback, synchronizes the GPU and resets edge state.
func (lp *loop) frame(app App) error {
	defer profiler.Start("frame")()

	now := lp.now()
	delta := now.Sub(lp.last)
	lp.last = now

	endApp := profiler.Start("app")
	app.OnFrame(lp.state(delta))
	endApp()

	endSync := profiler.Start("sync")
	err := lp.graphics.Render(lp.width, lp.height, lp.screen.Zoom(), lp.screen.ClearColor())
	endSync()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	lp.mouse.Unset()
	lp.keys.Unset()
	lp.screen.Unset()
	return nil
}
