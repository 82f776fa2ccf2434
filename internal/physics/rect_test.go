package physics_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"platformer/internal/physics"
)

type Rect = physics.Rect

func TestOverlaps(t *testing.T) {
	t.Run("Basic intersection", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
		b := Rect{X: 3, Y: 3, Width: 4, Height: 4}
		require.True(t, physics.Overlaps(a, b))
		require.True(t, physics.Overlaps(b, a))
	})

	t.Run("One inside the other", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
		b := Rect{X: 3, Y: 3, Width: 4, Height: 4}
		require.True(t, physics.Overlaps(a, b))
		require.True(t, physics.Overlaps(b, a))
	})

	t.Run("Touching edges - no intersection LR", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
		b := Rect{X: 5, Y: 0, Width: 5, Height: 5}
		require.False(t, physics.Overlaps(a, b))
		require.False(t, physics.Overlaps(b, a))
	})

	t.Run("Touching edges - no intersection UD", func(t *testing.T) {
		a := Rect{X: 0, Y: 5, Width: 5, Height: 5}
		b := Rect{X: 0, Y: 0, Width: 5, Height: 5}
		require.False(t, physics.Overlaps(a, b))
		require.False(t, physics.Overlaps(b, a))
	})

	t.Run("Touching corners - no intersection", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
		b := Rect{X: 5, Y: 5, Width: 5, Height: 5}
		require.False(t, physics.Overlaps(a, b))
	})

	t.Run("Single axis overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
		b := Rect{X: 2, Y: 20, Width: 5, Height: 5}
		require.True(t, physics.OverlapsX(a, b))
		require.False(t, physics.OverlapsY(a, b))
		require.False(t, physics.Overlaps(a, b))
	})
}

func TestNewRectRejectsDegenerate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	cases := []struct {
		name       string
		x, y, w, h float32
		field      string
	}{
		{"zero width", 0, 0, 0, 10, "width"},
		{"negative height", 0, 0, 10, -1, "height"},
		{"nan x", nan, 0, 10, 10, "x"},
		{"inf y", 0, inf, 10, 10, "y"},
		{"inf width", 0, 0, inf, 10, "width"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := physics.NewRect(c.x, c.y, c.w, c.h)
			require.Error(t, err)
			require.ErrorIs(t, err, physics.ErrConfiguration)

			var cfgErr *physics.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, c.field, cfgErr.Field)
		})
	}

	r, err := physics.NewRect(-4, 2, 32, 16)
	require.NoError(t, err)
	require.Equal(t, Rect{X: -4, Y: 2, Width: 32, Height: 16}, r)
	require.Equal(t, float32(28), r.Right())
	require.Equal(t, float32(18), r.Top())
	require.Equal(t, physics.Vec2{X: 12, Y: 10}, r.Center())
}

func TestValidateDelta(t *testing.T) {
	require.NoError(t, physics.ValidateDelta(0.016))
	require.ErrorIs(t, physics.ValidateDelta(0), physics.ErrConfiguration)
	require.ErrorIs(t, physics.ValidateDelta(-0.016), physics.ErrConfiguration)
	require.ErrorIs(t, physics.ValidateDelta(float32(math.NaN())), physics.ErrConfiguration)
}
