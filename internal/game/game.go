package game

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"platformer/internal/actor"
	"platformer/internal/input"
	"platformer/internal/level"
	"platformer/internal/physics"
)

// Stats are running counters for the headless simulator and the debug overlay.
type Stats struct {
	Frames        uint64
	Jumps         int
	Tunnels       int
	EnemiesAlive  int
	EnemiesKilled int
}

// Game owns one level's simulation: the static world, the player, and the enemies.
type Game struct {
	log     *slog.Logger
	initial *level.Level
	workers int

	world   *physics.World
	Player  *actor.Actor
	Enemies []*actor.Actor
	Camera  Camera
	Debug   bool
	stats   Stats
}

// New builds a game from lvl. The level is cloned, so later edits to lvl do not leak in
// and Reset can rebuild the starting state. workers bounds how many enemies step at once.
func New(lvl *level.Level, workers int, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}
	initial, err := lvl.Clone()
	if err != nil {
		return nil, err
	}
	g := &Game{
		log:     log.With("area", "Game", "level", lvl.Name),
		initial: initial,
		workers: workers,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the world and every actor from the level as it was first loaded.
func (g *Game) Reset() error {
	lvl, err := g.initial.Clone()
	if err != nil {
		return err
	}
	if err := lvl.Validate(); err != nil {
		return err
	}

	params := lvl.Params()
	rects, err := lvl.Rects()
	if err != nil {
		return err
	}
	resolver := physics.NewResolver(params)
	resolver.SweptFallback = lvl.Physics.SweptFallback
	world, err := physics.NewWorld(rects, resolver)
	if err != nil {
		return fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	spawn, err := lvl.Player.Rect()
	if err != nil {
		return fmt.Errorf("level %q: player: %w", lvl.Name, err)
	}
	player, err := actor.NewPlayer("player", spawn, params, lvl.RespawnPoint())
	if err != nil {
		return err
	}

	enemies := make([]*actor.Actor, 0, len(lvl.Enemies))
	for i, e := range lvl.Enemies {
		bounds, err := e.Box().Rect()
		if err != nil {
			return fmt.Errorf("level %q: enemy %d: %w", lvl.Name, i, err)
		}
		cfg := actor.PatrolConfig{
			MovingRight: e.StartsRight(),
			KillY:       lvl.KillY,
			CorpseTime:  lvl.CorpseTime,
		}
		enemy, err := actor.NewEnemy(fmt.Sprintf("enemy-%d", i), bounds, params, cfg)
		if err != nil {
			return err
		}
		enemies = append(enemies, enemy)
	}

	g.world = world
	g.Player = player
	g.Enemies = enemies
	g.Camera = Camera{Target: player.Body.Bounds.Center(), Smoothing: DefaultCameraSmoothing}
	g.stats = Stats{EnemiesAlive: len(enemies)}

	g.log.Info("level ready",
		"obstacles", len(rects),
		"enemies", len(enemies),
		"swept_fallback", resolver.SweptFallback)
	return nil
}

// Obstacles returns the level geometry. Callers must not modify it.
func (g *Game) Obstacles() []physics.Rect {
	return g.world.Obstacles()
}

// Stats returns a copy of the running counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Step advances the game by one frame: the player from in, then every enemy concurrently,
// then the camera. Enemies share only the read-only world, so their order does not matter.
func (g *Game) Step(in input.Snapshot, dt float32) error {
	if err := physics.ValidateDelta(dt); err != nil {
		return err
	}
	if in.ToggleDebug {
		g.Debug = !g.Debug
	}

	c, err := g.Player.Step(in, dt, g.world)
	if err != nil {
		return err
	}
	if c.Jumped {
		g.stats.Jumps++
	}
	if c.Tunneled > 0 {
		g.stats.Tunnels += c.Tunneled
		g.log.Debug("player tunneled", "count", c.Tunneled, "bounds", g.Player.Body.Bounds)
	}

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for _, e := range g.Enemies {
		e := e
		eg.Go(func() error {
			_, err := e.Step(input.Snapshot{}, dt, g.world)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	g.reap()

	g.Camera.Follow(g.Player.Body.Bounds.Center(), dt)
	g.stats.Frames++
	return nil
}

func (g *Game) reap() {
	alive := g.Enemies[:0]
	for _, e := range g.Enemies {
		if e.Expired() {
			g.stats.EnemiesKilled++
			g.log.Info("enemy removed", "name", e.Name, "y", e.Body.Bounds.Y)
			continue
		}
		alive = append(alive, e)
	}
	for i := len(alive); i < len(g.Enemies); i++ {
		g.Enemies[i] = nil
	}
	g.Enemies = alive
	g.stats.EnemiesAlive = len(alive)
}

// ActorState is a read-only view of one actor for renderers and the headless simulator.
type ActorState struct {
	Name        string
	Kind        actor.Kind
	Bounds      physics.Rect
	Velocity    physics.Vec2
	Animation   actor.AnimationState
	FacingRight bool
	Destroyed   bool
}

// Snapshot returns the player followed by every enemy not yet removed, corpses included.
func (g *Game) Snapshot() []ActorState {
	out := make([]ActorState, 0, 1+len(g.Enemies))
	out = append(out, stateOf(g.Player))
	for _, e := range g.Enemies {
		out = append(out, stateOf(e))
	}
	return out
}

func stateOf(a *actor.Actor) ActorState {
	s := ActorState{
		Name:        a.Name,
		Kind:        a.Kind,
		Bounds:      a.Body.Bounds,
		Velocity:    a.Body.Velocity,
		Animation:   a.Anim.State,
		FacingRight: a.Anim.FacingRight,
	}
	if d, ok := a.Behavior.(interface{ Destroyed() bool }); ok {
		s.Destroyed = d.Destroyed()
	}
	return s
}
