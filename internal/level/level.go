package level

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"platformer/internal/physics"
)

// Box is a rectangle as written in a level file: bottom-left corner plus size.
type Box struct {
	X      float32 `yaml:"x" toml:"x"`
	Y      float32 `yaml:"y" toml:"y"`
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}

// Rect validates b into a physics rect.
func (b Box) Rect() (physics.Rect, error) {
	return physics.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Respawn is where the player reappears after dropping below Threshold.
type Respawn struct {
	X         float32 `yaml:"x" toml:"x"`
	Y         float32 `yaml:"y" toml:"y"`
	Threshold float32 `yaml:"threshold" toml:"threshold"`
}

// Physics overrides the integrator constants. Unset fields keep physics.DefaultParams.
type Physics struct {
	Gravity     *float32 `yaml:"gravity,omitempty" toml:"gravity,omitempty"`
	Speed       *float32 `yaml:"speed,omitempty" toml:"speed,omitempty"`
	Friction    *float32 `yaml:"friction,omitempty" toml:"friction,omitempty"`
	JumpImpulse *float32 `yaml:"jump_impulse,omitempty" toml:"jump_impulse,omitempty"`
	// SweptFallback enables swept resolution for bodies that tunnel into a corner.
	SweptFallback bool `yaml:"swept_fallback,omitempty" toml:"swept_fallback,omitempty"`
}

// Enemy is one patrolling enemy spawn.
type Enemy struct {
	X           float32 `yaml:"x" toml:"x"`
	Y           float32 `yaml:"y" toml:"y"`
	Width       float32 `yaml:"width" toml:"width"`
	Height      float32 `yaml:"height" toml:"height"`
	MovingRight *bool   `yaml:"moving_right,omitempty" toml:"moving_right,omitempty"`
}

// Box returns the spawn footprint.
func (e Enemy) Box() Box {
	return Box{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// StartsRight reports the initial patrol direction; enemies walk right unless told otherwise.
func (e Enemy) StartsRight() bool {
	return e.MovingRight == nil || *e.MovingRight
}

// Level is a playable map: static geometry plus where things start.
type Level struct {
	Name       string  `yaml:"name" toml:"name"`
	Player     Box     `yaml:"player" toml:"player"`
	Respawn    Respawn `yaml:"respawn" toml:"respawn"`
	Physics    Physics `yaml:"physics,omitempty" toml:"physics,omitempty"`
	KillY      float32 `yaml:"kill_y" toml:"kill_y"`
	CorpseTime float32 `yaml:"corpse_time" toml:"corpse_time"`
	Obstacles  []Box   `yaml:"obstacles" toml:"obstacles"`
	Enemies    []Enemy `yaml:"enemies,omitempty" toml:"enemies,omitempty"`
}

// Params returns the physics constants after applying overrides.
func (l *Level) Params() physics.Params {
	p := physics.DefaultParams()
	if v := l.Physics.Gravity; v != nil {
		p.Gravity = *v
	}
	if v := l.Physics.Speed; v != nil {
		p.Speed = *v
	}
	if v := l.Physics.Friction; v != nil {
		p.Friction = *v
	}
	if v := l.Physics.JumpImpulse; v != nil {
		p.JumpImpulse = *v
	}
	return p
}

// RespawnPoint returns the floor safety net for the player.
func (l *Level) RespawnPoint() *physics.Respawn {
	return &physics.Respawn{X: l.Respawn.X, Y: l.Respawn.Y, Threshold: l.Respawn.Threshold}
}

// Rects validates every obstacle, in file order.
func (l *Level) Rects() ([]physics.Rect, error) {
	rects := make([]physics.Rect, 0, len(l.Obstacles))
	for i, o := range l.Obstacles {
		r, err := o.Rect()
		if err != nil {
			return nil, fmt.Errorf("level %q: obstacle %d: %w", l.Name, i, err)
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// Validate checks everything the game will build from the level.
func (l *Level) Validate() error {
	var errs []error
	if _, err := l.Player.Rect(); err != nil {
		errs = append(errs, fmt.Errorf("level %q: player: %w", l.Name, err))
	}
	if err := l.Params().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("level %q: physics: %w", l.Name, err))
	}
	if _, err := physics.NewIntegrator(physics.DefaultParams(), l.RespawnPoint()); err != nil {
		errs = append(errs, fmt.Errorf("level %q: respawn: %w", l.Name, err))
	}
	if l.CorpseTime < 0 {
		errs = append(errs, fmt.Errorf("level %q: corpse_time = %v: must be >= 0", l.Name, l.CorpseTime))
	}
	if _, err := l.Rects(); err != nil {
		errs = append(errs, err)
	}
	for i, e := range l.Enemies {
		if _, err := e.Box().Rect(); err != nil {
			errs = append(errs, fmt.Errorf("level %q: enemy %d: %w", l.Name, i, err))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy, so a running game can restore the level as loaded.
func (l *Level) Clone() (*Level, error) {
	out := &Level{}
	if err := copier.CopyWithOption(out, l, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("level %q: clone: %w", l.Name, err)
	}
	return out, nil
}
