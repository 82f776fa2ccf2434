package physics

// Outcome is what happened to a body against one obstacle in one pass.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeResolvedY
	OutcomeResolvedX
	// OutcomeTunnel: the body overlaps but its previous bounds overlapped the obstacle on
	// neither axis, so no axis could be chosen. Left unresolved unless SweptFallback is set.
	OutcomeTunnel
	OutcomeSweptY
	OutcomeSweptX
)

var outcomeNames = [...]string{"none", "resolved-y", "resolved-x", "tunnel", "swept-y", "swept-x"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Contacts summarizes one Resolve pass.
type Contacts struct {
	ResolvedY int
	ResolvedX int
	Tunneled  int
	Swept     int

	Ground    bool // pushed onto a top face
	Ceiling   bool // pushed under a bottom face
	WallLeft  bool // pushed out to the right of an obstacle
	WallRight bool // pushed out to the left of an obstacle
	Jumped    bool
}

// Wall reports a contact on either side.
func (c Contacts) Wall() bool { return c.WallLeft || c.WallRight }

// Resolver pushes a body out of static obstacles one axis at a time. It holds no per-frame state.
type Resolver struct {
	JumpImpulse float32
	// SweptFallback resolves the tunnel case by sweeping the previous bounds along the velocity.
	SweptFallback bool
}

// NewResolver returns a resolver using p.JumpImpulse and the plain (non-swept) policy.
func NewResolver(p Params) *Resolver {
	return &Resolver{JumpImpulse: p.JumpImpulse}
}

// Resolve runs ResolveObstacle against every obstacle in order, then applies the jump
// impulse if the body ended the pass with zero vertical velocity and a jump was requested.
// The impulse is JumpImpulse*dt, so jump height depends on the frame rate.
func (r *Resolver) Resolve(b *Body, obstacles []Rect, dt float32, jump bool) Contacts {
	var c Contacts
	for i := range obstacles {
		o := obstacles[i]
		switch r.ResolveObstacle(b, o) {
		case OutcomeResolvedY:
			c.ResolvedY++
			c.markY(b, o)
		case OutcomeResolvedX:
			c.ResolvedX++
			c.markX(b, o)
		case OutcomeSweptY:
			c.Swept++
			c.markY(b, o)
		case OutcomeSweptX:
			c.Swept++
			c.markX(b, o)
		case OutcomeTunnel:
			c.Tunneled++
		}
	}

	if b.Velocity.Y == 0 && jump {
		b.Velocity.Y = r.JumpImpulse * dt
		c.Jumped = true
	}
	return c
}

func (c *Contacts) markY(b *Body, o Rect) {
	if b.Bounds.Y == o.Top() {
		c.Ground = true
	} else {
		c.Ceiling = true
	}
}

func (c *Contacts) markX(b *Body, o Rect) {
	if b.Bounds.X == o.Right() {
		c.WallLeft = true
	} else {
		c.WallRight = true
	}
}

// ResolveObstacle resolves b against a single obstacle and reports the outcome.
func (r *Resolver) ResolveObstacle(b *Body, o Rect) Outcome {
	if !Overlaps(b.Bounds, o) {
		return OutcomeNone
	}

	prev := b.PreviousBounds()
	switch {
	case OverlapsX(prev, o):
		resolveY(b, o)
		return OutcomeResolvedY
	case OverlapsY(prev, o):
		resolveX(b, o)
		return OutcomeResolvedX
	}

	if !r.SweptFallback {
		return OutcomeTunnel
	}
	entry := Sweep(prev, b.Velocity, o)
	if entry.Y >= entry.X {
		resolveY(b, o)
		return OutcomeSweptY
	}
	resolveX(b, o)
	return OutcomeSweptX
}

// resolveY lands a falling body on top of o, or caps a rising or resting one below it.
func resolveY(b *Body, o Rect) {
	if b.Velocity.Y < 0 {
		b.Bounds.Y = o.Y + o.Height
	} else {
		b.Bounds.Y = o.Y - b.Bounds.Height
	}
	b.Velocity.Y = 0
}

func resolveX(b *Body, o Rect) {
	if b.Velocity.X > 0 {
		b.Bounds.X = o.X - b.Bounds.Width
	} else {
		b.Bounds.X = o.X + o.Width
	}
	b.Velocity.X = 0
}
