package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/gfx"
	"github.com/hubastard/flatland/engine/layers"
)

// fakeWindow delivers one batch of events per poll, then asks to close.
type fakeWindow struct {
	batches   [][]Event
	cb        func(Event)
	polls     int
	w, h      int
	shown     bool
	destroyed bool
}

func (w *fakeWindow) PollEvents() {
	if w.polls < len(w.batches) {
		for _, ev := range w.batches[w.polls] {
			w.cb(ev)
		}
	} else {
		w.cb(EventCloseRequested{})
	}
	w.polls++
}

func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) SwapBuffers()                    {}
func (w *fakeWindow) ShouldClose() bool               { return false }
func (w *fakeWindow) FramebufferSize() (int, int)     { return w.w, w.h }
func (w *fakeWindow) SetTitle(string)                 {}
func (w *fakeWindow) Show()                           { w.shown = true }
func (w *fakeWindow) Destroy()                        { w.destroyed = true }

type fakeDevice struct {
	configured [][2]int
	acquireErr error
	draws      int
	presents   int
	released   bool
}

func (d *fakeDevice) CreateBuffer(gfx.BufferUsage, int) (gfx.Buffer, error) { return new(int), nil }
func (d *fakeDevice) WriteBuffer(gfx.Buffer, []byte)                        {}
func (d *fakeDevice) Configure(w, h int)                                    { d.configured = append(d.configured, [2]int{w, h}) }
func (d *fakeDevice) Acquire(colors.Color) error                            { return d.acquireErr }
func (d *fakeDevice) DrawIndexed(layers.Span, layers.Span)                  { d.draws++ }
func (d *fakeDevice) Present()                                              { d.presents++ }
func (d *fakeDevice) Release()                                              { d.released = true }

type recorder struct {
	calls   []string
	frames  []State
	onFrame func(State)
}

func (r *recorder) OnStart(State) { r.calls = append(r.calls, "start") }
func (r *recorder) OnShutdown()   { r.calls = append(r.calls, "shutdown") }
func (r *recorder) OnFrame(st State) {
	r.calls = append(r.calls, "frame")
	r.frames = append(r.frames, st)
	if r.onFrame != nil {
		r.onFrame(st)
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Layers = []layers.LayerBounds{layers.Bounds(3, 3, 1), layers.Bounds(4, 6, 2)}
	return cfg
}

func run(t *testing.T, cfg Config, app App, win *fakeWindow, dev *fakeDevice) error {
	t.Helper()
	return Run(cfg, app,
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (gfx.Device, error) { return dev, nil },
	)
}

func TestRunLifecycle(t *testing.T) {
	win := &fakeWindow{batches: make([][]Event, 2), w: 800, h: 600}
	dev := &fakeDevice{}
	app := &recorder{}

	require.NoError(t, run(t, testConfig(), app, win, dev))
	assert.Equal(t, []string{"start", "frame", "frame", "shutdown"}, app.calls)
	assert.True(t, win.shown)
	assert.True(t, win.destroyed)
	assert.True(t, dev.released)
	assert.Equal(t, 2, dev.presents)
	assert.Equal(t, 4, dev.draws)
	assert.Equal(t, [][2]int{{800, 600}}, dev.configured)
}

func TestRunJustPressed(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: [][]Event{
		{EventKey{Key: KeyA, Down: true}},
		{},
		{EventKey{Key: KeyA, Down: false}},
		{},
	}}
	app := &recorder{}
	require.NoError(t, run(t, testConfig(), app, win, &fakeDevice{}))
	require.Len(t, app.frames, 4)

	type edge struct{ pressed, just, released bool }
	var got []edge
	for _, st := range app.frames {
		got = append(got, edge{st.Keys.IsPressed(KeyA), st.Keys.IsJustPressed(KeyA), st.Keys.IsReleased(KeyA)})
	}
	assert.Equal(t, []edge{
		{true, true, false},
		{true, false, false},
		{true, false, true},
		{false, false, false},
	}, got)
}

func TestRunMouse(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: [][]Event{
		{EventCursorEntered{}, EventMouseMove{X: 500, Y: 200}, EventMouseButton{Button: MouseLeft, Down: true}},
		{EventKey{Key: KeySpace, Down: true}},
	}}
	app := &recorder{}
	require.NoError(t, run(t, testConfig(), app, win, &fakeDevice{}))
	require.Len(t, app.frames, 2)

	first := app.frames[0].Mouse
	assert.True(t, first.HasEntered)
	assert.True(t, first.HasMoved)
	assert.Equal(t, geom.V2(100, 100), first.Position)
	assert.True(t, first.IsJustPressed(MouseLeft))

	second := app.frames[1]
	assert.False(t, second.Mouse.HasMoved)
	assert.Equal(t, geom.Vec2{}, second.Mouse.Velocity)
	assert.True(t, second.Mouse.IsPressed(MouseLeft))
	assert.True(t, second.Keys.IsJustPressed(KeySpace))
}

func TestRunResize(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: [][]Event{
		{},
		{EventResize{W: 1024, H: 768}},
		{},
	}}
	dev := &fakeDevice{}
	var resized []bool
	app := &recorder{onFrame: func(st State) {
		resized = append(resized, st.Screen.HasResized())
	}}
	require.NoError(t, run(t, testConfig(), app, win, dev))
	require.Len(t, app.frames, 3)

	assert.Equal(t, []bool{true, true, false}, resized)
	assert.Equal(t, geom.V2(1024, 768), app.frames[2].Screen.Size())
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, dev.configured)
}

func TestRunDrawsAppGeometry(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: make([][]Event, 2)}
	app := &recorder{onFrame: func(st State) {
		l, ok := st.Layers.GetMut(0)
		if !ok {
			return
		}
		l.SetVertices(geom.V2(0, 0), geom.V2(1, 0), geom.V2(0, 1))
		l.SetIndices(0, 1, 2)
		l.SetInstances(layers.NewInstance(geom.Identity, colors.White))
	}}
	require.NoError(t, run(t, testConfig(), app, win, &fakeDevice{}))
	require.Len(t, app.frames, 2)

	stats := app.frames[1].Stats
	assert.Equal(t, 2, stats.DrawCalls)
	assert.Equal(t, 3, stats.Vertices)
	assert.Equal(t, 3, stats.Indices)
	assert.Equal(t, 1, stats.Instances)
}

func TestRunFatalSurfaceError(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: make([][]Event, 5)}
	dev := &fakeDevice{acquireErr: gfx.ErrSurfaceOutOfMemory}
	app := &recorder{}

	err := run(t, testConfig(), app, win, dev)
	require.ErrorIs(t, err, gfx.ErrSurfaceOutOfMemory)
	assert.Equal(t, []string{"start", "frame", "shutdown"}, app.calls)
	assert.True(t, dev.released)
}

func TestRunTransientSurfaceError(t *testing.T) {
	win := &fakeWindow{w: 800, h: 600, batches: make([][]Event, 3)}
	dev := &fakeDevice{acquireErr: gfx.ErrSurfaceTimeout}
	app := &recorder{}

	require.NoError(t, run(t, testConfig(), app, win, dev))
	require.Len(t, app.frames, 3)
	assert.Equal(t, 2, app.frames[2].Stats.Skipped)
	assert.Zero(t, dev.presents)
}

func TestRunRejectsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers = []layers.LayerBounds{layers.Bounds(65535, 0, 0), layers.Bounds(2, 0, 0)}

	opened := false
	err := Run(cfg, AppFunc(func(State) {}),
		func(Config) (Window, error) { opened = true; return &fakeWindow{}, nil },
		func(Window, Config) (gfx.Device, error) { return &fakeDevice{}, nil },
	)
	require.ErrorIs(t, err, layers.ErrVertexCapacity)
	assert.False(t, opened)
}

func TestRunWindowError(t *testing.T) {
	boom := errors.New("no display")
	err := Run(testConfig(), AppFunc(func(State) {}),
		func(Config) (Window, error) { return nil, boom },
		func(Window, Config) (gfx.Device, error) { return &fakeDevice{}, nil },
	)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "create window")
}
