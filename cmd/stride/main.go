package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/logger"
	"github.com/Versifine/stride/internal/world"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "configs/stride.yaml", "path to a YAML or TOML config")
	runs := flag.Int("runs", 1, "number of worlds to simulate; run i uses seed+i")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := runWorlds(ctx, cfg, *runs, logger.L())
	for _, stats := range results {
		summarize(stats)
	}
	if errors.Is(err, context.Canceled) {
		slog.Warn("Simulation interrupted")
		return
	}
	if err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

// runWorlds simulates independent worlds concurrently, one goroutine each.
// Stats of worlds that were built are returned even when a run is cut short.
func runWorlds(ctx context.Context, cfg *config.Config, runs int, lg *slog.Logger) ([]world.Stats, error) {
	if runs < 1 {
		return nil, fmt.Errorf("runs must be >= 1, got %d", runs)
	}
	worlds := make([]*world.World, runs)
	for i := range worlds {
		runCfg := *cfg
		runCfg.Simulation.Seed = cfg.Simulation.Seed + uint64(i)
		w, err := world.New(&runCfg, lg)
		if err != nil {
			return nil, err
		}
		worlds[i] = w
	}

	ticks := cfg.Simulation.Ticks()
	results := make([]world.Stats, runs)
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range worlds {
		lg.Info("Simulation started",
			"run", w.RunID().String(),
			"seed", cfg.Simulation.Seed+uint64(i),
			"ticks", ticks,
			"tick_rate", cfg.Simulation.TickRate,
		)
		g.Go(func() error {
			stats, err := w.Run(gctx, ticks)
			results[i] = stats
			return err
		})
	}
	return results, g.Wait()
}

func summarize(stats world.Stats) {
	for _, c := range stats.Characters {
		slog.Info("Character",
			"run", stats.RunID.String(),
			"name", c.Name,
			"position", c.Position,
			"grounded", c.Grounded,
			"jumps", c.Counters.Jumps,
			"footsteps", c.Counters.Footsteps,
		)
	}
	slog.Info("Simulation finished",
		"run", stats.RunID.String(),
		"ticks", stats.Ticks,
		"seconds", stats.Time,
		"jumps", stats.Counters.Jumps,
		"landings", stats.Counters.Landings,
		"falls", stats.Counters.Falls,
		"footsteps", stats.Counters.Footsteps,
		"platforms_removed", stats.PlatformsRemoved,
	)
}
