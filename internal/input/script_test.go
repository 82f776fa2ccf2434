package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("r*3, rj ,.*2,ld")
	require.NoError(t, err)
	require.Len(t, s, 4)
	assert.Equal(t, 7, s.Frames())

	assert.Equal(t, Snapshot{Right: true}, s.At(0))
	assert.Equal(t, Snapshot{Right: true}, s.At(2))
	assert.Equal(t, Snapshot{Right: true, Jump: true}, s.At(3))
	assert.Equal(t, Snapshot{}, s.At(4))
	assert.Equal(t, Snapshot{}, s.At(5))
	assert.Equal(t, Snapshot{Left: true, ToggleDebug: true}, s.At(6))
	assert.Equal(t, Snapshot{}, s.At(7))
}

func TestParseScriptEmpty(t *testing.T) {
	s, err := ParseScript("  ")
	require.NoError(t, err)
	assert.Zero(t, s.Frames())
	assert.Equal(t, Snapshot{}, s.At(0))
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"x", "r*0", "r*abc", "r,,l"} {
		_, err := ParseScript(in)
		assert.Error(t, err, in)
	}
}
