package mapgen

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"platformer/internal/actor"
	"platformer/internal/level"
)

const (
	wallThickness = 32
	actorSize     = 32
)

// Options controls procedural level generation.
// The level is a row of Columns pillars, each ColumnWidth wide, standing on Y=0. Pillar heights
// come from fractal noise: BaseHeight plus up to HeightScale, snapped to multiples of Step, and
// never more than MaxRise above or below the neighbouring pillar.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Name        string
	Columns     int
	ColumnWidth float32
	BaseHeight  float32
	HeightScale float32
	Step        float32
	MaxRise     float32
	// EnemyEvery places an enemy on every Nth pillar, starting after the spawn. 0 disables enemies.
	EnemyEvery int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a configuration the default jump can always climb.
func DefaultOptions() Options {
	return Options{
		Name:        "generated",
		Columns:     24,
		ColumnWidth: 96,
		BaseHeight:  32,
		HeightScale: 320,
		Step:        16,
		MaxRise:     96,
		EnemyEvery:  6,
		Octaves:     4,
		Frequency:   0.15,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

func (o Options) sanitize() Options {
	d := DefaultOptions()
	if o.Name == "" {
		o.Name = d.Name
	}
	if o.Columns <= 0 {
		o.Columns = d.Columns
	}
	if o.ColumnWidth < actorSize {
		o.ColumnWidth = d.ColumnWidth
	}
	if o.BaseHeight <= 0 {
		o.BaseHeight = d.BaseHeight
	}
	if o.HeightScale < 0 {
		o.HeightScale = 0
	}
	if o.Step <= 0 {
		o.Step = d.Step
	}
	if o.MaxRise < o.Step {
		o.MaxRise = o.Step
	}
	if o.EnemyEvery < 0 {
		o.EnemyEvery = 0
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Heights returns the pillar heights Generate would build, left to right.
func Heights(opts Options) []float32 {
	opts = opts.sanitize()
	return heights(opts)
}

func heights(opts Options) []float32 {
	out := make([]float32, opts.Columns)
	for i := range out {
		n := fractalValueNoise1D(float32(i)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		h := opts.BaseHeight + math32.Round(n*opts.HeightScale/opts.Step)*opts.Step
		if i > 0 {
			prev := out[i-1]
			h = math32.Max(prev-opts.MaxRise, math32.Min(prev+opts.MaxRise, h))
		}
		out[i] = math32.Max(opts.BaseHeight, h)
	}
	return out
}

// Generate builds a level of noise-shaped pillars between two walls. Neighbouring pillars of
// equal height are merged into one obstacle so bodies never cross a seam. The player spawns
// above the first pillar and respawns there. Step corners are common, so the swept fallback is on.
func Generate(opts Options) (*level.Level, error) {
	opts = opts.sanitize()
	hs := heights(opts)

	top := float32(0)
	for _, h := range hs {
		top = math32.Max(top, h)
	}
	wallHeight := top + 512
	width := float32(opts.Columns) * opts.ColumnWidth

	obstacles := []level.Box{
		{X: -wallThickness, Y: 0, Width: wallThickness, Height: wallHeight},
		{X: width, Y: 0, Width: wallThickness, Height: wallHeight},
	}
	start := 0
	for i := 1; i <= len(hs); i++ {
		if i < len(hs) && hs[i] == hs[start] {
			continue
		}
		obstacles = append(obstacles, level.Box{
			X:      float32(start) * opts.ColumnWidth,
			Y:      0,
			Width:  float32(i-start) * opts.ColumnWidth,
			Height: hs[start],
		})
		start = i
	}

	var enemies []level.Enemy
	if opts.EnemyEvery > 0 {
		for i := opts.EnemyEvery; i < len(hs); i += opts.EnemyEvery {
			enemies = append(enemies, level.Enemy{
				X:      float32(i)*opts.ColumnWidth + (opts.ColumnWidth-actorSize)/2,
				Y:      hs[i],
				Width:  actorSize,
				Height: actorSize,
			})
		}
	}

	spawn := level.Box{
		X:      (opts.ColumnWidth - actorSize) / 2,
		Y:      hs[0] + 2*actorSize,
		Width:  actorSize,
		Height: actorSize,
	}
	lvl := &level.Level{
		Name:       opts.Name,
		Player:     spawn,
		Respawn:    level.Respawn{X: spawn.X, Y: spawn.Y, Threshold: 0},
		Physics:    level.Physics{SweptFallback: true},
		KillY:      actor.DefaultKillY,
		CorpseTime: actor.DefaultCorpseTime,
		Obstacles:  obstacles,
		Enemies:    enemies,
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("mapgen: seed %d: %w", opts.Seed, err)
	}
	return lvl, nil
}

// fractalValueNoise1D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise1D(x float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise1D(x*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise1D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise1D(x float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	t := x - float32(x0)
	return lerp(hash1D(x0, seed), hash1D(x0+1, seed), smoothStep(t))
}

// hash1D maps an integer lattice coordinate to a deterministic pseudo-random float in [0,1].
func hash1D(x, seed int32) float32 {
	n := x*374761393 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
