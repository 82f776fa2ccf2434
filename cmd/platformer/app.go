package main

import (
	"fmt"
	"io"
	"log/slog"

	"platformer/internal/engineconfig"
	"platformer/internal/env"
	"platformer/internal/game"
	"platformer/internal/input"
	"platformer/internal/level"
	"platformer/internal/logger"
	"platformer/internal/mapgen"
	"platformer/internal/physics"
	"platformer/internal/render"
)

type app struct {
	log   *logger.Logger
	slog  *slog.Logger
	prefs engineconfig.EnginePrefs
}

// loadLevel resolves the level path from the flag, then the environment, then the engine
// prefs. With none set it returns the built-in level.
func (a *app) loadLevel(path string) (*level.Level, error) {
	if path == "" {
		path = env.String(env.LevelVar, a.prefs.Level)
	}
	if path == "" {
		return level.Default(), nil
	}
	lvl, err := level.Load(path)
	if err != nil {
		return nil, err
	}
	a.slog.Info("level loaded", "path", path, "name", lvl.Name)
	return lvl, nil
}

func (a *app) play(levelPath string) error {
	lvl, err := a.loadLevel(levelPath)
	if err != nil {
		return err
	}
	g, err := game.New(lvl, a.prefs.Workers, a.slog)
	if err != nil {
		return err
	}
	g.Debug = a.prefs.DebugRenderer

	scene := render.NewScene()
	overlay := render.NewOverlay(a.prefs.ShowFPS, a.log.Lines)
	update := func(dt float32) error {
		return g.Step(render.PollInput(), dt)
	}
	draw := func() {
		scene.Draw(g)
		overlay.Draw(g)
	}
	return render.Run(a.prefs, "platformer - "+lvl.Name, update, draw)
}

func (a *app) simulate(w io.Writer, levelPath string, frames int, dt float32, script string) error {
	if err := physics.ValidateDelta(dt); err != nil {
		return err
	}
	s, err := input.ParseScript(script)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if n := s.Frames(); n > frames {
		frames = n
	}
	lvl, err := a.loadLevel(levelPath)
	if err != nil {
		return err
	}
	g, err := game.New(lvl, a.prefs.Workers, a.slog)
	if err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		if err := g.Step(s.At(i), dt); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	st := g.Stats()
	fmt.Fprintf(w, "level %s: %d frames, %d jumps, %d tunnels, enemies %d alive %d removed\n",
		lvl.Name, st.Frames, st.Jumps, st.Tunnels, st.EnemiesAlive, st.EnemiesKilled)
	for _, as := range g.Snapshot() {
		fmt.Fprintf(w, "  %-10s %-6s pos %8.2f %8.2f  vel %7.3f %7.3f  %s\n",
			as.Name, as.Kind, as.Bounds.X, as.Bounds.Y, as.Velocity.X, as.Velocity.Y, as.Animation)
	}
	return nil
}

func (a *app) validate(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("validate: no level files given")
	}
	failed := 0
	for _, path := range paths {
		lvl, err := level.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s: %q, %d obstacles, %d enemies\n", path, lvl.Name, len(lvl.Obstacles), len(lvl.Enemies))
	}
	if failed > 0 {
		return fmt.Errorf("validate: %d of %d level files invalid", failed, len(paths))
	}
	return nil
}

func (a *app) generate(w io.Writer, out string, opts mapgen.Options) error {
	if out == "" {
		return fmt.Errorf("generate: -out is required")
	}
	lvl, err := mapgen.Generate(opts)
	if err != nil {
		return err
	}
	if err := level.Save(out, lvl); err != nil {
		return err
	}
	a.slog.Info("level generated", "path", out, "obstacles", len(lvl.Obstacles), "enemies", len(lvl.Enemies))
	fmt.Fprintf(w, "wrote %s: %d obstacles, %d enemies\n", out, len(lvl.Obstacles), len(lvl.Enemies))
	return nil
}
