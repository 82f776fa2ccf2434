package actor

import (
	"fmt"

	"platformer/internal/input"
	"platformer/internal/physics"
)

// Kind tells the renderer and the game loop what an actor is. Behavior is not derived from it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindEnemy {
		return "enemy"
	}
	return "player"
}

// Behavior is the per-kind part of an actor's frame: how it turns input (or its own
// patrol state) into integration and resolution against the world.
type Behavior interface {
	Step(a *Actor, in input.Snapshot, dt float32, w *physics.World) physics.Contacts
}

// Expirer is implemented by behaviors that can finish, after which the game drops the actor.
type Expirer interface {
	Expired() bool
}

// Actor is a body plus the integrator and behavior that move it.
type Actor struct {
	Name       string
	Kind       Kind
	Body       *physics.Body
	Integrator *physics.Integrator
	Behavior   Behavior
	Anim       Animator
}

// New assembles an actor. The body starts at bounds with zero velocity.
func New(name string, kind Kind, bounds physics.Rect, integrator *physics.Integrator, behavior Behavior) (*Actor, error) {
	body, err := physics.NewBody(bounds)
	if err != nil {
		return nil, fmt.Errorf("actor %q: %w", name, err)
	}
	if integrator == nil || behavior == nil {
		return nil, fmt.Errorf("actor %q: integrator and behavior are required", name)
	}
	return &Actor{
		Name:       name,
		Kind:       kind,
		Body:       body,
		Integrator: integrator,
		Behavior:   behavior,
		Anim:       NewAnimator(),
	}, nil
}

// NewPlayer returns an input-driven actor that respawns according to respawn.
func NewPlayer(name string, bounds physics.Rect, p physics.Params, respawn *physics.Respawn) (*Actor, error) {
	in, err := physics.NewIntegrator(p, respawn)
	if err != nil {
		return nil, fmt.Errorf("actor %q: %w", name, err)
	}
	return New(name, KindPlayer, bounds, in, Player{})
}

// NewEnemy returns a patrolling actor. Enemies never respawn. The integrator's Speed is
// replaced by the patrol's walking acceleration.
func NewEnemy(name string, bounds physics.Rect, p physics.Params, patrol PatrolConfig) (*Actor, error) {
	if patrol.WalkSpeed < 0 {
		return nil, fmt.Errorf("actor %q: %w", name,
			&physics.ConfigurationError{Field: "walk_speed", Value: patrol.WalkSpeed, Reason: "must be >= 0"})
	}
	p.Speed = patrol.walkAcceleration(p)
	in, err := physics.NewIntegrator(p, nil)
	if err != nil {
		return nil, fmt.Errorf("actor %q: %w", name, err)
	}
	return New(name, KindEnemy, bounds, in, NewPatrol(patrol))
}

// Step advances the actor by one frame against w.
func (a *Actor) Step(in input.Snapshot, dt float32, w *physics.World) (physics.Contacts, error) {
	if err := physics.ValidateDelta(dt); err != nil {
		return physics.Contacts{}, err
	}
	return a.Behavior.Step(a, in, dt, w), nil
}

// Expired reports whether the game can drop this actor.
func (a *Actor) Expired() bool {
	e, ok := a.Behavior.(Expirer)
	return ok && e.Expired()
}

// Player moves from the input snapshot and jumps when grounded.
type Player struct{}

func (Player) Step(a *Actor, in input.Snapshot, dt float32, w *physics.World) physics.Contacts {
	c := w.Step(a.Integrator, a.Body, dt, in.Intent(), in.Jump)
	a.Anim.Update(a.Body.Velocity, in.Moving(), dt)
	return c
}
