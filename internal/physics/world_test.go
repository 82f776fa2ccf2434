package physics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"platformer/internal/physics"
)

func TestNewWorldValidatesObstacles(t *testing.T) {
	_, err := physics.NewWorld([]Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 0, Width: 10, Height: 0},
	}, nil)
	require.ErrorIs(t, err, physics.ErrConfiguration)
	require.Contains(t, err.Error(), "obstacle 1")
}

func TestWorldCopiesObstacles(t *testing.T) {
	src := []Rect{{X: 0, Y: 0, Width: 10, Height: 10}}
	w, err := physics.NewWorld(src, nil)
	require.NoError(t, err)

	src[0].X = 99
	require.Equal(t, float32(0), w.Obstacles()[0].X)
}

func TestWorldStepLandsAndStays(t *testing.T) {
	floor := Rect{X: 0, Y: 0, Width: 1280, Height: 32}
	w, err := physics.NewWorld([]Rect{floor}, nil)
	require.NoError(t, err)

	in := newIntegrator(t, &physics.Respawn{X: 500, Y: 368})
	b := body(200, 300, 32, 32, 0, 0)

	landed := false
	for i := 0; i < 600; i++ {
		c := w.Step(in, b, 0.016, physics.IntentNone, false)
		if c.Ground {
			landed = true
		}
	}

	require.True(t, landed)
	require.Equal(t, floor.Top(), b.Bounds.Y)
	require.Equal(t, float32(200), b.Bounds.X)
}

func TestWorldStepRunsRightIntoWall(t *testing.T) {
	floor := Rect{X: 0, Y: 0, Width: 1280, Height: 32}
	wall := Rect{X: 400, Y: 32, Width: 32, Height: 200}
	w, err := physics.NewWorld([]Rect{floor, wall}, nil)
	require.NoError(t, err)

	in := newIntegrator(t, nil)
	b := body(300, 32, 32, 32, 0, 0)

	for i := 0; i < 300; i++ {
		w.Step(in, b, 0.016, physics.IntentRight, false)
		require.LessOrEqual(t, b.Bounds.Right(), wall.X, "frame %d", i)
	}
	require.Equal(t, wall.X-b.Bounds.Width, b.Bounds.X)
}
