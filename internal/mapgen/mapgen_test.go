package mapgen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformer/internal/game"
	"platformer/internal/input"
)

func seeded(seed int64) Options {
	o := DefaultOptions()
	o.Seed = seed
	return o
}

func TestHeightsAreDeterministicPerSeed(t *testing.T) {
	a := Heights(seeded(42))
	b := Heights(seeded(42))
	require.Equal(t, a, b)
	require.Len(t, a, DefaultOptions().Columns)
}

func TestHeightsRespectStepAndRise(t *testing.T) {
	o := seeded(7)
	hs := Heights(o)
	for i, h := range hs {
		assert.GreaterOrEqual(t, h, o.BaseHeight, "column %d", i)
		assert.LessOrEqual(t, h, o.BaseHeight+o.HeightScale, "column %d", i)
		if i > 0 {
			d := h - hs[i-1]
			assert.LessOrEqual(t, d, o.MaxRise, "column %d", i)
			assert.GreaterOrEqual(t, d, -o.MaxRise, "column %d", i)
		}
	}
}

func TestGenerateMergesEqualPillars(t *testing.T) {
	o := seeded(99)
	lvl, err := Generate(o)
	require.NoError(t, err)
	require.NoError(t, lvl.Validate())

	pillars := lvl.Obstacles[2:]
	var covered float32
	for i, p := range pillars {
		covered += p.Width
		if i > 0 {
			assert.NotEqual(t, pillars[i-1].Height, p.Height, "pillar %d", i)
			assert.Equal(t, pillars[i-1].X+pillars[i-1].Width, p.X, "pillar %d", i)
		}
	}
	assert.Equal(t, float32(o.Columns)*o.ColumnWidth, covered)
	assert.Len(t, lvl.Enemies, (o.Columns-1)/o.EnemyEvery)
	assert.True(t, lvl.Physics.SweptFallback)
}

func TestGenerateFlatLevel(t *testing.T) {
	o := seeded(3)
	o.HeightScale = 0
	o.EnemyEvery = 0
	lvl, err := Generate(o)
	require.NoError(t, err)

	require.Len(t, lvl.Obstacles, 3)
	assert.Equal(t, o.BaseHeight, lvl.Obstacles[2].Height)
	assert.Empty(t, lvl.Enemies)
}

func TestGeneratedLevelIsPlayable(t *testing.T) {
	o := seeded(2024)
	lvl, err := Generate(o)
	require.NoError(t, err)

	g, err := game.New(lvl, 2, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	const dt = float32(1.0 / 60)
	for i := 0; i < 120; i++ {
		require.NoError(t, g.Step(input.Snapshot{}, dt))
	}
	require.Equal(t, Heights(o)[0], g.Player.Body.Bounds.Y)

	width := float32(o.Columns) * o.ColumnWidth
	for i := 0; i < 1200; i++ {
		require.NoError(t, g.Step(input.Snapshot{}, dt))
	}
	for _, e := range g.Enemies {
		assert.GreaterOrEqual(t, e.Body.Bounds.X, float32(0), e.Name)
		assert.LessOrEqual(t, e.Body.Bounds.Right(), width, e.Name)
	}
}
