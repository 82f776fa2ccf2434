package actor

import (
	"platformer/internal/input"
	"platformer/internal/physics"
)

const (
	// DefaultKillY is the height below which an enemy is destroyed.
	DefaultKillY = -50
	// DefaultCorpseTime is how long a destroyed enemy stays visible, in seconds.
	DefaultCorpseTime = 1
)

// PatrolConfig tunes an enemy's patrol.
type PatrolConfig struct {
	MovingRight bool
	// KillY is the height below which the enemy is destroyed.
	KillY float32
	// CorpseTime is how long a destroyed enemy stays visible, in seconds.
	CorpseTime float32
	// WalkSpeed sets the top speed to WalkSpeed*dt per frame. Zero uses the level's Speed.
	WalkSpeed float32
}

// walkAcceleration is the input acceleration whose friction-limited top speed is
// WalkSpeed*dt per frame: v = (v + a*dt) * f settles at a*dt*f/(1-f).
func (c PatrolConfig) walkAcceleration(p physics.Params) float32 {
	walk := c.WalkSpeed
	if walk == 0 {
		walk = p.Speed
	}
	if p.Friction <= 0 || p.Friction >= 1 {
		return walk
	}
	return walk * (1 - p.Friction) / p.Friction
}

// DefaultPatrolConfig starts moving right with the default kill line and corpse time, walking
// at the level's Speed.
func DefaultPatrolConfig() PatrolConfig {
	return PatrolConfig{
		MovingRight: true,
		KillY:       DefaultKillY,
		CorpseTime:  DefaultCorpseTime,
	}
}

// Patrol walks in one direction and turns around when it hits a wall. It accelerates every
// frame and friction sets the top speed; velocity must keep tracking the real motion, since
// the resolver estimates the previous bounds from it. NewEnemy scales the acceleration so the
// top speed is PatrolConfig.WalkSpeed*dt per frame.
type Patrol struct {
	cfg         PatrolConfig
	movingRight bool
	dying       bool
	destroyed   bool
	timer       float32
}

// NewPatrol returns a patrol heading in cfg.MovingRight's direction.
func NewPatrol(cfg PatrolConfig) *Patrol {
	return &Patrol{cfg: cfg, movingRight: cfg.MovingRight}
}

// MovingRight reports the current patrol direction.
func (p *Patrol) MovingRight() bool { return p.movingRight }

// ChangeDirection reverses the patrol.
func (p *Patrol) ChangeDirection() { p.movingRight = !p.movingRight }

// Destroyed reports whether the enemy has stopped simulating.
func (p *Patrol) Destroyed() bool { return p.destroyed }

// Destroy marks the enemy for destruction on its next step.
func (p *Patrol) Destroy() { p.dying = true }

// Expired reports whether the corpse has been shown long enough.
func (p *Patrol) Expired() bool {
	return p.destroyed && p.timer >= p.cfg.CorpseTime
}

func (p *Patrol) Step(a *Actor, _ input.Snapshot, dt float32, w *physics.World) physics.Contacts {
	p.timer += dt

	if p.dying && !p.destroyed {
		p.destroyed = true
		p.timer = 0
	}
	if p.destroyed {
		return physics.Contacts{}
	}

	intent := physics.IntentLeft
	if p.movingRight {
		intent = physics.IntentRight
	}

	a.Integrator.Integrate(a.Body, dt, intent)
	if a.Body.Bounds.Y < p.cfg.KillY {
		p.dying = true
	}

	c := w.Resolver.Resolve(a.Body, w.Obstacles(), dt, false)
	if (p.movingRight && c.WallRight) || (!p.movingRight && c.WallLeft) {
		p.ChangeDirection()
	}

	a.Anim.Update(a.Body.Velocity, true, dt)
	return c
}
