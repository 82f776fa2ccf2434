package physics

import "fmt"

// World is the static geometry of a level plus the resolver that collides bodies against it.
// Obstacles are fixed at construction; any number of bodies may be stepped against one World
// concurrently as long as each body is stepped by one goroutine at a time.
type World struct {
	obstacles []Rect
	Resolver  *Resolver
}

// NewWorld validates and copies obstacles. Order is preserved; it decides which resolution wins
// when a body touches several obstacles in one frame.
func NewWorld(obstacles []Rect, resolver *Resolver) (*World, error) {
	owned := make([]Rect, len(obstacles))
	for i, o := range obstacles {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		owned[i] = o
	}
	if resolver == nil {
		resolver = NewResolver(DefaultParams())
	}
	return &World{obstacles: owned, Resolver: resolver}, nil
}

// Obstacles returns the obstacle list. Callers must not modify it.
func (w *World) Obstacles() []Rect {
	return w.obstacles
}

// Step integrates b, then resolves it against the world. dt must already be validated.
func (w *World) Step(in *Integrator, b *Body, dt float32, intent Intent, jump bool) Contacts {
	in.Integrate(b, dt, intent)
	return w.Resolver.Resolve(b, w.obstacles, dt, jump)
}
