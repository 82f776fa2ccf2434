package level

import "platformer/internal/actor"

// Default is the built-in playground used when no level file is given: a 1280x720 room with
// a floor, walls, a few ledges and two enemies.
func Default() *Level {
	return &Level{
		Name:       "playground",
		Player:     Box{X: 200, Y: 300, Width: 32, Height: 32},
		Respawn:    Respawn{X: 500, Y: 400 - 32, Threshold: 0},
		KillY:      actor.DefaultKillY,
		CorpseTime: actor.DefaultCorpseTime,
		Obstacles: []Box{
			{X: 0, Y: 0, Width: 1280, Height: 32},
			{X: 0, Y: 32, Width: 32, Height: 688},
			{X: 1248, Y: 32, Width: 32, Height: 688},
			{X: 160, Y: 160, Width: 192, Height: 24},
			{X: 480, Y: 256, Width: 256, Height: 24},
			{X: 864, Y: 160, Width: 192, Height: 24},
			{X: 640, Y: 32, Width: 64, Height: 64},
		},
		Enemies: []Enemy{
			{X: 900, Y: 32, Width: 32, Height: 32},
			{X: 520, Y: 280, Width: 32, Height: 32},
		},
	}
}
