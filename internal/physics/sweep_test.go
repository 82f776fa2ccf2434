package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"platformer/internal/physics"
)

func TestSweepEntryTimes(t *testing.T) {
	o := Rect{X: 15, Y: 15, Width: 10, Height: 10}

	entry := physics.Sweep(Rect{X: 4, Y: 4, Width: 10, Height: 10}, physics.Vec2{X: 5, Y: 8}, o)
	require.InDelta(t, 0.2, entry.X, 1e-6)
	require.InDelta(t, 0.125, entry.Y, 1e-6)

	// approaching from above-right
	entry = physics.Sweep(Rect{X: 30, Y: 30, Width: 10, Height: 10}, physics.Vec2{X: -10, Y: -20}, o)
	require.InDelta(t, 0.5, entry.X, 1e-6)
	require.InDelta(t, 0.25, entry.Y, 1e-6)

	// already overlapping on x, never reaching on y
	entry = physics.Sweep(Rect{X: 18, Y: 0, Width: 2, Height: 2}, physics.Vec2{Y: -1}, o)
	require.True(t, math.IsInf(float64(entry.X), -1))
	require.True(t, math.IsInf(float64(entry.Y), 1))
}

func TestSweptFallbackResolvesTunnel(t *testing.T) {
	o := Rect{X: 15, Y: 15, Width: 10, Height: 10}

	t.Run("disabled keeps the gap", func(t *testing.T) {
		b := body(9, 12, 10, 10, 5, 8)
		r := resolver()
		require.Equal(t, physics.OutcomeTunnel, r.ResolveObstacle(b, o))
	})

	t.Run("x closes last", func(t *testing.T) {
		b := body(9, 12, 10, 10, 5, 8)
		r := resolver()
		r.SweptFallback = true

		c := r.Resolve(b, []Rect{o}, 0.016, false)

		require.Equal(t, 1, c.Swept)
		require.Equal(t, 0, c.Tunneled)
		require.Equal(t, float32(5), b.Bounds.X)
		require.Equal(t, float32(0), b.Velocity.X)
		require.Equal(t, float32(8), b.Velocity.Y)
		require.False(t, physics.Overlaps(b.Bounds, o))
	})

	t.Run("y closes last", func(t *testing.T) {
		// falling onto the top-left corner
		b := body(12, 17, 10, 10, 8, -10)
		r := resolver()
		r.SweptFallback = true

		require.Equal(t, physics.OutcomeSweptY, r.ResolveObstacle(b, o))
		require.Equal(t, o.Top(), b.Bounds.Y)
		require.Equal(t, float32(0), b.Velocity.Y)
		require.Equal(t, float32(8), b.Velocity.X)
	})
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "resolved-y", physics.OutcomeResolvedY.String())
	require.Equal(t, "tunnel", physics.OutcomeTunnel.String())
	require.Equal(t, "unknown", physics.Outcome(42).String())
}
