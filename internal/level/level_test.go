package level_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"platformer/internal/level"
	"platformer/internal/physics"
)

func TestLoadYAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := level.Load(filepath.Join("..", "..", "levels", "playground.yaml"))
	require.NoError(t, err)
	fromTOML, err := level.Load(filepath.Join("..", "..", "levels", "playground.toml"))
	require.NoError(t, err)

	require.Equal(t, fromYAML, fromTOML)
	require.Equal(t, level.Default(), fromYAML)
}

func TestLoadTowerOverrides(t *testing.T) {
	l, err := level.Load(filepath.Join("..", "..", "levels", "tower.yaml"))
	require.NoError(t, err)

	p := l.Params()
	require.Equal(t, float32(24), p.Gravity)
	require.Equal(t, float32(900), p.JumpImpulse)
	require.Equal(t, float32(physics.DefaultSpeed), p.Speed)
	require.Equal(t, float32(physics.DefaultFriction), p.Friction)
	require.True(t, l.Physics.SweptFallback)

	require.Len(t, l.Enemies, 1)
	require.False(t, l.Enemies[0].StartsRight())
	require.Equal(t, float32(-50), l.KillY, "kill_y should default when omitted")
	require.Equal(t, &physics.Respawn{X: 96, Y: 64, Threshold: -20}, l.RespawnPoint())
}

func TestParseRejectsDegenerateObstacle(t *testing.T) {
	data := []byte(`
name: broken
player: {x: 0, y: 100, width: 32, height: 32}
respawn: {x: 0, y: 100}
obstacles:
  - {x: 0, y: 0, width: 100, height: 32}
  - {x: 0, y: 0, width: 0, height: 32}
`)
	_, err := level.Parse(data, level.FormatYAML)
	require.ErrorIs(t, err, physics.ErrConfiguration)
	require.Contains(t, err.Error(), "obstacle 1")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := level.Parse([]byte("name: x\nobstacle: []\n"), level.FormatYAML)
	require.Error(t, err)

	_, err = level.Parse([]byte("name = \"x\"\nobstacle = []\n"), level.FormatTOML)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown keys")
}

func TestParseRejectsBadPhysics(t *testing.T) {
	data := []byte(`
player: {x: 0, y: 100, width: 32, height: 32}
physics: {friction: 2}
`)
	_, err := level.Parse(data, level.FormatYAML)
	require.ErrorIs(t, err, physics.ErrConfiguration)
	require.Contains(t, err.Error(), "friction")
}

func TestFormatFor(t *testing.T) {
	f, err := level.FormatFor("a/b/level.YML")
	require.NoError(t, err)
	require.Equal(t, level.FormatYAML, f)

	_, err = level.FormatFor("level.json")
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.yaml", "out.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, level.Save(path, level.Default()))

		got, err := level.Load(path)
		require.NoError(t, err)
		require.Equal(t, level.Default(), got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	right := false
	l := level.Default()
	l.Enemies[0].MovingRight = &right
	gravity := float32(30)
	l.Physics.Gravity = &gravity

	c, err := l.Clone()
	require.NoError(t, err)
	require.Equal(t, l, c)

	l.Obstacles[0].Width = 1
	*l.Enemies[0].MovingRight = true
	*l.Physics.Gravity = 1

	require.Equal(t, float32(1280), c.Obstacles[0].Width)
	require.False(t, c.Enemies[0].StartsRight())
	require.Equal(t, float32(30), c.Params().Gravity)
}
