package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/flatland/engine/core"
	"github.com/hubastard/flatland/engine/layers"
	"github.com/hubastard/flatland/engine/tessellate"
)

func TestDemoLayersFitTheStar(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Layers = demoLayers
	require.NoError(t, cfg.Validate())

	arena, err := layers.New(demoLayers)
	require.NoError(t, err)

	l := &Layer2D{}
	require.NoError(t, l.buildStar(core.State{Layers: arena, Tessellator: tessellate.NewToFit(arena)}))

	star, ok := arena.Get(layerStar)
	require.True(t, ok)
	assert.Greater(t, star.VerticesLen(), 10, "fill and outline")
	assert.Zero(t, star.IndicesLen()%3)
}

func TestSampleConfig(t *testing.T) {
	cfg, err := core.LoadConfig("flatland.yaml")
	require.NoError(t, err)
	assert.Equal(t, demoLayers, cfg.Layers)
}
