package main

import (
	"runtime"
	"time"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/gfx/shapes"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
	"github.com/hubastard/flatland/engine/profiler"
)

// LayerDebug draws the cursor marker and logs frame statistics once a second.
// Space toggles the marker, Ctrl+P dumps the profiler.
type LayerDebug struct {
	hidden  bool
	outside bool

	elapsed time.Duration
	frames  int
}

func (l *LayerDebug) OnStart(st core.State) {
	cur, ok := st.Layers.GetMut(layerCursor)
	if !ok {
		return
	}
	verts, inds := shapes.Polygon(6, 8)
	if !shapes.Put(cur, verts, inds) {
		logging.Logger().Warn("cursor layer too small", "vertices", len(verts), "indices", len(inds))
	}
}

func (l *LayerDebug) OnFrame(st core.State) {
	defer profiler.Start("LayerDebug.OnFrame")()

	if st.Keys.IsJustPressed(core.KeySpace) {
		l.hidden = !l.hidden
	}
	if st.Keys.IsCtrl && st.Keys.IsJustPressed(core.KeyP) {
		profiler.Report()
	}
	if st.Screen.HasResized() {
		size := st.Screen.Size()
		logging.Logger().Debug("resized", "width", size.X, "height", size.Y)
	}
	switch {
	case st.Mouse.HasLeft:
		l.outside = true
	case st.Mouse.HasEntered:
		l.outside = false
	}

	if cur, ok := st.Layers.GetMut(layerCursor); ok {
		if l.hidden || l.outside {
			cur.ClearInstances()
		} else {
			c := colors.White
			if st.Mouse.IsPressed(core.MouseLeft) {
				c = colors.Red
			}
			at := geom.Translate(st.Screen.WorldOf(st.Mouse.Position))
			cur.SetInstances(layers.NewInstance(at, c))
		}
	}

	l.elapsed += st.Delta
	l.frames++
	if l.elapsed < time.Second {
		return
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	s := st.Stats
	logging.Logger().Debug("frame stats",
		"fps", float64(l.frames)/l.elapsed.Seconds(),
		"draw_calls", s.DrawCalls,
		"vertices", s.Vertices,
		"indices", s.Indices,
		"instances", s.Instances,
		"skipped", s.Skipped,
		"heap_mb", mem.HeapAlloc>>20,
		"goroutines", runtime.NumGoroutine())
	l.elapsed, l.frames = 0, 0
}
