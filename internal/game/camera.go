package game

import (
	"github.com/chewxy/math32"

	"platformer/internal/physics"
)

// DefaultCameraSmoothing is the follow rate in 1/s; larger catches up faster.
const DefaultCameraSmoothing = 6

// Camera tracks a world point for the renderer. Zero Smoothing snaps to the target every frame.
type Camera struct {
	Target    physics.Vec2
	Smoothing float32
}

// Follow moves the camera toward p by an exponential step, so the result does not depend on
// how dt is split across frames.
func (c *Camera) Follow(p physics.Vec2, dt float32) {
	if c.Smoothing <= 0 {
		c.Target = p
		return
	}
	k := 1 - math32.Exp(-c.Smoothing*dt)
	c.Target.X += (p.X - c.Target.X) * k
	c.Target.Y += (p.Y - c.Target.Y) * k
}
