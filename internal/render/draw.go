package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/actor"
	"platformer/internal/game"
	"platformer/internal/physics"
)

const labelFontSize = 10

var (
	// Reused every frame to avoid per-frame color allocations.
	obstacleColor      = rl.NewColor(90, 90, 90, 255)
	obstacleDebugColor = rl.Green
	playerColor        = rl.White
	enemyColor         = rl.NewColor(220, 80, 80, 255)
	corpseColor        = rl.NewColor(220, 80, 80, 90)
)

// Scene draws a game with a 2D camera that follows the player. World space is Y-up;
// raylib's screen space is Y-down, so every rect is mirrored on the way out.
type Scene struct {
	Zoom float32
}

// NewScene returns a scene at 1:1 zoom.
func NewScene() *Scene {
	return &Scene{Zoom: 1}
}

// toScreen mirrors a Y-up world rect into raylib's Y-down space.
func toScreen(r physics.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, -(r.Y + r.Height), r.Width, r.Height)
}

func (s *Scene) camera(g *game.Game) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.NewVector2(float32(rl.GetScreenWidth())/2, float32(rl.GetScreenHeight())/2),
		Target: rl.NewVector2(g.Camera.Target.X, -g.Camera.Target.Y),
		Zoom:   s.Zoom,
	}
}

// Draw renders obstacles and actors. In debug mode obstacles are filled green and each
// actor is labelled with its animation state.
func (s *Scene) Draw(g *game.Game) {
	rl.BeginMode2D(s.camera(g))
	defer rl.EndMode2D()

	for _, o := range g.Obstacles() {
		if g.Debug {
			rl.DrawRectangleRec(toScreen(o), obstacleDebugColor)
		} else {
			rl.DrawRectangleLinesEx(toScreen(o), 1, obstacleColor)
		}
	}

	// player first in the snapshot, drawn last so it stays on top
	actors := g.Snapshot()
	for i := len(actors) - 1; i >= 0; i-- {
		s.drawActor(actors[i], g.Debug)
	}
}

func (s *Scene) drawActor(a game.ActorState, debug bool) {
	c := playerColor
	if a.Kind == actor.KindEnemy {
		c = enemyColor
		if a.Destroyed {
			c = corpseColor
		}
	}
	rec := toScreen(a.Bounds)
	rl.DrawRectangleRec(rec, c)
	if !debug {
		return
	}
	rl.DrawText(a.Animation.String(), int32(rec.X), int32(rec.Y)-labelFontSize-2, labelFontSize, rl.Yellow)
}
