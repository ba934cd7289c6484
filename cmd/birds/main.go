package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or YAML config file (defaults are used when empty)")
	schemaFile := flag.String("schema", "", "JSON schema for the config file (embedded schema when empty)")
	headless := flag.Bool("headless", false, "run without window")
	maxTicks := flag.Int("max-ticks", 3600, "number of frames of a headless run")
	statsEvery := flag.Int("stats-every", 60, "log flock statistics every N frames in headless mode, 0 disables them")
	resizeEvery := flag.Int("resize-every", 0, "in headless mode, toggle a shrunk viewport every N frames, 0 disables it")
	output := flag.String("output", "", "directory receiving trace.csv and config.yaml in headless mode")
	seed := flag.Uint64("seed", 0, "seed of the flock sampling, overrides the config (0 keeps it)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			stdlog.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		stdlog.Fatal(err)
	}
	logger := log.New(level, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		res, err := simulation.RunHeadless(ctx, cfg, simulation.HeadlessOptions{
			MaxTicks:    *maxTicks,
			StatsEvery:  *statsEvery,
			ResizeEvery: *resizeEvery,
			OutputDir:   *output,
			Logger:      logger,
		})
		if err != nil {
			stdlog.Fatal(err)
		}
		logger.Infof("Done after %d ticks: %s", res.Ticks, res.Final)
		return
	}

	runWindow(ctx, cfg, logger)
}

func runWindow(ctx context.Context, cfg *simulation.Config, logger log.Logger) {
	viewport := cfg.Viewport()
	params := simulation.SampleFlock(simulation.NewRand(cfg.Seed), cfg, viewport, simulation.TextBox(viewport, cfg))
	birds, err := simulation.NewFlock(params, cfg.Settings())
	if err != nil {
		stdlog.Fatal(err)
	}
	countByBehavior := map[behavior.Behavior]int{}
	for _, b := range birds {
		countByBehavior[b.Behavior()]++
	}
	logger.Infof("Sampled %d birds: %d skittish, %d friendly, %d neutral", len(birds),
		countByBehavior[behavior.Skittish], countByBehavior[behavior.Friendly], countByBehavior[behavior.Neutral])

	system, err := actor.NewActorSystem("MagicBirds",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		stdlog.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		stdlog.Fatal(err)
	}
	defer func() {
		if err := system.Stop(context.Background()); err != nil {
			logger.Errorf("Failed to stop actor system: %v", err)
		}
	}()

	game, err := simulation.GetNewGame(ctx, cfg, system, birds)
	if err != nil {
		stdlog.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.ViewportWidth), int(cfg.ViewportHeight))
	ebiten.SetWindowTitle("Magic Birds")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(cfg.FramesPerSecond))
	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("Game stopped: %v", err)
	}
}

func parseLevel(name string) (log.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarningLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", name)
}
