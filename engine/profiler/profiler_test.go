//go:build profile

package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	Init(64)
	for range 3 {
		end := Start("outer")
		Start("inner")()
		time.Sleep(time.Millisecond)
		end()
	}

	scopes := Summary()
	require.Len(t, scopes, 2)
	assert.Equal(t, "outer", scopes[0].Name)
	assert.Equal(t, 3, scopes[0].Count)
	assert.GreaterOrEqual(t, scopes[0].Total, 3*time.Millisecond)
	assert.GreaterOrEqual(t, scopes[0].Max, scopes[0].Mean())
	assert.Equal(t, "inner", scopes[1].Name)
	assert.Equal(t, 3, scopes[1].Count)
}

func TestRingDropsOldEvents(t *testing.T) {
	Init(4)
	for range 5 {
		Start("tick")()
	}
	s := Summary()
	require.Len(t, s, 1)
	assert.Equal(t, 2, s[0].Count)
}
