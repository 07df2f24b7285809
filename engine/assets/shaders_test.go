package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"layer.vert", "layer.frag"} {
		src, err := LoadShader(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
		assert.Equal(t, 1, strings.Count(src, "\x00"), name)
	}

	vs, err := LoadShader("layer.vert")
	require.NoError(t, err)
	assert.Contains(t, vs, "uniform Params")
}

func TestLoadShaderMissing(t *testing.T) {
	_, err := LoadShader("nope.vert")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
