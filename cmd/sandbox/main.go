package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/gfx"
	glbackend "github.com/hubastard/flatland/engine/gfx/gl"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/logging"
	"github.com/hubastard/flatland/engine/platform"
	"github.com/hubastard/flatland/engine/profiler"
)

// Layer indices, front to back.
const (
	layerCursor = iota
	layerStar
	layerQuads
	layerBackground
)

// demoLayers is used when the config file declares none.
var demoLayers = []layers.LayerBounds{
	layerCursor:     layers.Bounds(16, 48, 1),
	layerStar:       layers.Bounds(2048, 6144, 4),
	layerQuads:      layers.Bounds(4, 6, 1024),
	layerBackground: layers.Bounds(3, 3, 1),
}

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *path != "" {
		var err error
		if cfg, err = core.LoadConfig(*path); err != nil {
			slog.Error("config", "err", err)
			os.Exit(1)
		}
	}
	if len(cfg.Layers) == 0 {
		cfg.Layers = demoLayers
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	profiler.Init(1 << 16)

	app := core.NewStack(&Layer2D{}, &LayerDebug{})

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newDevice := func(win core.Window, cfg core.Config) (gfx.Device, error) {
		return glbackend.NewDevice(win, cfg)
	}

	if err := core.Run(cfg, app, newWindow, newDevice); err != nil {
		logging.Logger().Error("sandbox", "err", err)
		os.Exit(1)
	}
}
