package physics

const (
	// DefaultGravity is the downward acceleration in units/s².
	DefaultGravity = 20.8
	// DefaultSpeed is the horizontal input acceleration in units/s².
	DefaultSpeed = 50
	// DefaultFriction is the per-frame horizontal velocity multiplier.
	DefaultFriction = 0.9
	// DefaultJumpImpulse is multiplied by the frame time to get the jump velocity.
	DefaultJumpImpulse = 800
)

// Body is a dynamic actor footprint. Velocity is applied to Bounds once per frame, unscaled by dt.
type Body struct {
	Bounds   Rect
	Velocity Vec2
}

// NewBody returns a body at bounds with zero velocity.
func NewBody(bounds Rect) (*Body, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Body{Bounds: bounds}, nil
}

// PreviousBounds approximates last frame's footprint by stepping Bounds back by Velocity.
// It is not a true position history: any velocity change since the last displacement skews it.
func (b *Body) PreviousBounds() Rect {
	return Rect{
		X:      b.Bounds.X - b.Velocity.X,
		Y:      b.Bounds.Y - b.Velocity.Y,
		Width:  b.Bounds.Width,
		Height: b.Bounds.Height,
	}
}

// Grounded reports whether vertical velocity is exactly zero, which is what allows a jump.
func (b *Body) Grounded() bool {
	return b.Velocity.Y == 0
}

// Intent is the horizontal input for one frame.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "none"
	}
}

// Params are the tunable constants of the integrator and resolver.
type Params struct {
	Gravity     float32
	Speed       float32
	Friction    float32
	JumpImpulse float32
}

// DefaultParams returns the Default* constants.
func DefaultParams() Params {
	return Params{
		Gravity:     DefaultGravity,
		Speed:       DefaultSpeed,
		Friction:    DefaultFriction,
		JumpImpulse: DefaultJumpImpulse,
	}
}

// Validate rejects non-finite values, a negative speed or impulse, and friction outside [0, 1].
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"gravity", p.Gravity},
		{"speed", p.Speed},
		{"friction", p.Friction},
		{"jump_impulse", p.JumpImpulse},
	} {
		if err := requireFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if p.Speed < 0 {
		return &ConfigurationError{Field: "speed", Value: p.Speed, Reason: "must be >= 0"}
	}
	if p.JumpImpulse < 0 {
		return &ConfigurationError{Field: "jump_impulse", Value: p.JumpImpulse, Reason: "must be >= 0"}
	}
	if p.Friction < 0 || p.Friction > 1 {
		return &ConfigurationError{Field: "friction", Value: p.Friction, Reason: "must be within [0, 1]"}
	}
	return nil
}

// Respawn is the level's floor safety net: a body whose bottom drops below Threshold
// is teleported to (X, Y) with its vertical velocity cleared.
type Respawn struct {
	X, Y      float32
	Threshold float32
}

// Integrator advances a body by one frame. A nil Respawn disables the floor safety net.
type Integrator struct {
	Params  Params
	Respawn *Respawn
}

// NewIntegrator returns an integrator with validated params.
func NewIntegrator(p Params, respawn *Respawn) (*Integrator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if respawn != nil {
		for _, f := range []struct {
			name string
			v    float32
		}{{"respawn.x", respawn.X}, {"respawn.y", respawn.Y}, {"respawn.threshold", respawn.Threshold}} {
			if err := requireFinite(f.name, f.v); err != nil {
				return nil, err
			}
		}
	}
	return &Integrator{Params: p, Respawn: respawn}, nil
}

// Integrate applies gravity, displacement, input acceleration, friction and the floor
// safety net, in that order. dt must already be validated.
func (in *Integrator) Integrate(b *Body, dt float32, intent Intent) {
	b.Velocity.Y -= in.Params.Gravity * dt

	b.Bounds.Y += b.Velocity.Y
	b.Bounds.X += b.Velocity.X

	switch intent {
	case IntentRight:
		b.Velocity.X += in.Params.Speed * dt
	case IntentLeft:
		b.Velocity.X -= in.Params.Speed * dt
	}

	b.Velocity.X *= in.Params.Friction

	if r := in.Respawn; r != nil && b.Bounds.Y < r.Threshold {
		b.Bounds.X = r.X
		b.Bounds.Y = r.Y
		b.Velocity.Y = 0
	}
}
