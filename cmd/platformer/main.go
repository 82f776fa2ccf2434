package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"platformer/internal/commands"
	"platformer/internal/engineconfig"
	"platformer/internal/env"
	"platformer/internal/logger"
	"platformer/internal/mapgen"
)

func main() {
	log := logger.New("", false)
	slogger := log.Slog(slog.LevelInfo)

	if err := env.Load(".env"); err != nil {
		slogger.Error("read .env", "err", err)
	}
	prefs, err := engineconfig.Load(env.String(env.ConfigVar, engineconfig.EngineConfigPath))
	if err != nil {
		fail(slogger, err)
	}
	workers, err := env.Int(env.WorkersVar, prefs.Workers)
	if err != nil {
		fail(slogger, err)
	}
	prefs.Workers = workers
	prefs = prefs.Normalize()

	a := &app{log: log, slog: slogger, prefs: prefs}

	reg := commands.NewRegistry("run")
	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runLevel := runFlags.String("level", "", "level file (.yaml or .toml); built-in level when empty")
	reg.Register("run", "open the window and play", runFlags, func() error {
		return a.play(*runLevel)
	})

	simFlags := flag.NewFlagSet("simulate", flag.ContinueOnError)
	simLevel := simFlags.String("level", "", "level file (.yaml or .toml); built-in level when empty")
	simFrames := simFlags.Int("frames", 600, "frames to step")
	simDelta := simFlags.Float64("dt", 1.0/60, "seconds per frame")
	simScript := simFlags.String("input", "", `held keys per segment, e.g. "r*60,rj,.*120"`)
	reg.Register("simulate", "step a level headless and print the final state", simFlags, func() error {
		return a.simulate(os.Stdout, *simLevel, *simFrames, float32(*simDelta), *simScript)
	})

	genFlags := flag.NewFlagSet("generate", flag.ContinueOnError)
	genOpts := mapgen.DefaultOptions()
	genOut := genFlags.String("out", "", "level file to write (.yaml or .toml)")
	genFlags.StringVar(&genOpts.Name, "name", genOpts.Name, "level name")
	genFlags.Int64Var(&genOpts.Seed, "seed", 0, "noise seed; 0 picks one from the clock")
	genFlags.IntVar(&genOpts.Columns, "columns", genOpts.Columns, "number of pillars")
	genFlags.IntVar(&genOpts.EnemyEvery, "enemy-every", genOpts.EnemyEvery, "one enemy per N pillars; 0 for none")
	reg.Register("generate", "write a procedurally generated level", genFlags, func() error {
		return a.generate(os.Stdout, *genOut, genOpts)
	})

	valFlags := flag.NewFlagSet("validate", flag.ContinueOnError)
	reg.Register("validate", "load and check level files", valFlags, func() error {
		return a.validate(os.Stdout, valFlags.Args())
	})

	if len(os.Args) > 1 && (os.Args[1] == "help" || os.Args[1] == "-h") {
		fmt.Fprintln(os.Stderr, "usage: platformer [command] [flags]")
		reg.Usage(os.Stderr)
		return
	}
	if err := reg.Execute(os.Args[1:]); commands.ExitCode(err) != 0 {
		fail(slogger, err)
	}
}

func fail(log *slog.Logger, err error) {
	log.Error("platformer failed", "err", err)
	fmt.Fprintln(os.Stderr, "platformer:", err)
	os.Exit(1)
}
