package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/input"
)

// Key bindings. D/A move, Space jumps, F1 toggles the collision debug view.
const (
	KeyRight       = rl.KeyD
	KeyLeft        = rl.KeyA
	KeyJump        = rl.KeySpace
	KeyToggleDebug = rl.KeyF1
)

// PollInput samples the keyboard into a snapshot. Call once per frame, before the game step.
func PollInput() input.Snapshot {
	return input.Snapshot{
		Left:        rl.IsKeyDown(KeyLeft),
		Right:       rl.IsKeyDown(KeyRight),
		Jump:        rl.IsKeyDown(KeyJump),
		ToggleDebug: rl.IsKeyPressed(KeyToggleDebug),
	}
}
