package main

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/geom"
	"github.com/hubastard/flatland/engine/gfx/shapes"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
	"github.com/hubastard/flatland/engine/profiler"
	"github.com/hubastard/flatland/engine/scene"
	"github.com/hubastard/flatland/engine/tessellate"
)

const gridSize = 16

// Layer2D is the world: a grid of spinning quads, two tessellated stars and a
// background triangle, all seen through a controllable camera.
type Layer2D struct {
	cam   *scene.Camera2D
	ctrl  *scene.Controller2D
	batch *shapes.Batch
	t     float32
}

func (l *Layer2D) OnStart(st core.State) {
	l.cam = scene.NewCamera2D()
	l.ctrl = scene.NewController2D(l.cam)

	if bg, ok := st.Layers.GetMut(layerBackground); ok {
		bg.SetVertices(geom.V2(0, 300), geom.V2(-360, -240), geom.V2(360, -240))
		bg.SetIndices(0, 1, 2)
		bg.SetInstances(layers.NewInstance(geom.Identity, colors.RGBA(40, 52, 64, 255)))
	}

	var ok bool
	if l.batch, ok = shapes.NewBatch(st.Layers, layerQuads); !ok {
		logging.Logger().Warn("quad layer cannot hold a quad", "layer", layerQuads)
	}

	if err := l.buildStar(st); err != nil {
		logging.Logger().Warn("star not built", "err", err)
	}
}

// buildStar fills a five-pointed star and strokes its outline into the same
// layer.
func (l *Layer2D) buildStar(st core.State) error {
	dst, ok := st.Layers.GetMut(layerStar)
	if !ok {
		return nil
	}
	dst.ClearVertices()
	dst.ClearIndices()

	p := starPath(5, 80, 32)
	tess := st.Tessellator
	if err := tess.Fill(p); err != nil {
		return err
	}
	if !shapes.Put(dst, tess.Vertices(), tess.Indices()) {
		logging.Logger().Warn("star fill does not fit", "vertices", len(tess.Vertices()))
	}
	if err := tess.StrokeWith(p, tessellate.StrokeOptions{Width: 6, Join: tessellate.JoinMiter}); err != nil {
		return err
	}
	if !shapes.Put(dst, tess.Vertices(), tess.Indices()) {
		logging.Logger().Warn("star outline does not fit", "vertices", len(tess.Vertices()))
	}
	return nil
}

func starPath(points int, outer, inner float32) *tessellate.Path {
	c := tessellate.NewChain(2 * points)
	for i := range 2 * points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		s, co := math32.Sincos(math32.Pi/2 + math32.Pi*float32(i)/float32(points))
		c.Points(geom.V2(co*r, s*r))
	}
	return c.Close().Finish()
}

func (l *Layer2D) OnFrame(st core.State) {
	defer profiler.Start("Layer2D.OnFrame")()

	l.ctrl.Update(st)
	l.t += float32(st.Delta.Seconds())
	view := l.cam.View()

	if bg, ok := st.Layers.GetMut(layerBackground); ok {
		if in := bg.InstancesMut(); len(in) > 0 {
			in[0] = in[0].WithTransform(view)
		}
	}

	if star, ok := st.Layers.GetMut(layerStar); ok {
		star.SetInstances(
			layers.NewInstance(l.cam.Place(geom.FromScaleAngleTranslation(geom.V2(1, 1), l.t, geom.V2(-220, 0))), colors.Yellow),
			layers.NewInstance(l.cam.Place(geom.FromScaleAngleTranslation(geom.V2(0.6, 0.6), -l.t, geom.V2(220, 0))), colors.Cyan),
		)
	}

	if l.batch == nil {
		return
	}
	l.batch.Begin(view)
	const spacing = 36
	origin := geom.V2(-spacing*(gridSize-1)/2, -spacing*(gridSize-1)/2)
	for y := range gridSize {
		for x := range gridSize {
			phase := l.t*2 + float32(x+y)*0.3
			size := 12 + 8*math32.Sin(phase)
			c := colors.RGBA(uint8(x*255/gridSize), uint8(y*255/gridSize), 200, 200)
			pos := origin.Add(geom.V2(float32(x), float32(y)).Mul(spacing))
			l.batch.DrawQuad(pos, geom.V2(size, size), c, phase)
		}
	}
}

func (l *Layer2D) OnShutdown() {
	if l.batch == nil {
		return
	}
	s := l.batch.Stats()
	logging.Logger().Debug("quad batch", "quads", s.QuadCount, "dropped", s.Dropped)
}
