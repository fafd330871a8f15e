package world

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/motor"
	"github.com/Versifine/stride/internal/physics"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is a headless simulation of characters, platforms and crates
// advanced one fixed step at a time. It is not safe for concurrent use.
type World struct {
	runID    uuid.UUID
	ecs      *ecs.ECS
	space    *physics.Space
	settings motor.Settings
	seed     uint64
	dt       float64
	ticks    int
	time     float64
	counters Counters
	removed  int
	lg       *slog.Logger
}

func New(cfg *config.Config, lg *slog.Logger) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("world: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if lg == nil {
		lg = slog.Default()
	}
	runID := uuid.New()
	w := &World{
		runID:    runID,
		ecs:      ecs.NewECS(donburi.NewWorld()),
		space:    physics.NewSpace(physics.DefaultSpaceConfig()),
		settings: cfg.Motor,
		seed:     cfg.Simulation.Seed,
		dt:       cfg.Simulation.Step(),
		lg:       lg.With("run", runID.String()),
	}

	sc := cfg.Scenario
	for _, b := range sc.Boxes {
		w.spawnBox(b)
	}
	for _, p := range sc.Platforms {
		w.spawnPlatform(p)
	}
	for _, c := range sc.Crates {
		w.spawnCrate(c)
	}
	for i, c := range sc.Characters {
		if _, err := w.spawnCharacter(i, c); err != nil {
			return nil, fmt.Errorf("world: character %d: %w", i, err)
		}
	}

	w.ecs.AddSystem(w.updatePlatforms)
	w.ecs.AddSystem(w.updateScripts)
	w.ecs.AddSystem(w.updateCharacters)
	w.ecs.AddSystem(w.updateCrates)

	w.lg.Debug("World created",
		"boxes", len(sc.Boxes),
		"platforms", len(sc.Platforms),
		"crates", len(sc.Crates),
		"characters", len(sc.Characters),
	)
	return w, nil
}

func (w *World) RunID() uuid.UUID {
	return w.runID
}

// Time is the simulated time in seconds.
func (w *World) Time() float64 {
	return w.time
}

// Step advances every system by one fixed tick.
func (w *World) Step() {
	w.ecs.Update()
	w.ticks++
	w.time = float64(w.ticks) * w.dt
}

// Run steps the world up to ticks times. It stops early when ctx is done and
// returns the stats gathered so far together with ctx.Err().
func (w *World) Run(ctx context.Context, ticks int) (Stats, error) {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return w.Stats(), err
		}
		w.Step()
	}
	return w.Stats(), nil
}

// RemovePlatform takes the named platform out of the world. Characters
// standing on it lose it as a surface on their next step.
func (w *World) RemovePlatform(name string) bool {
	var target *donburi.Entry
	Platform.Each(w.ecs.World, func(e *donburi.Entry) {
		if target == nil && Platform.Get(e).Name == name {
			target = e
		}
	})
	if target == nil {
		return false
	}
	w.removePlatform(target)
	return true
}

func (w *World) removePlatform(e *donburi.Entry) {
	p := Platform.Get(e)
	name := p.Name
	w.space.Remove(p.Solid)
	w.ecs.World.Remove(e.Entity())
	w.removed++
	w.lg.Debug("Platform removed", "platform", name, "time", w.time)
}

// Character returns the named character, or nil.
func (w *World) Character(name string) *CharacterData {
	var found *CharacterData
	Character.Each(w.ecs.World, func(e *donburi.Entry) {
		if c := Character.Get(e); found == nil && c.Name == name {
			found = c
		}
	})
	return found
}

// Platform returns the named platform, or nil once it has been removed.
func (w *World) Platform(name string) *PlatformData {
	var found *PlatformData
	Platform.Each(w.ecs.World, func(e *donburi.Entry) {
		if p := Platform.Get(e); found == nil && p.Name == name {
			found = p
		}
	})
	return found
}

// Crates lists the crate bodies.
func (w *World) Crates() []*physics.Body {
	var out []*physics.Body
	Crate.Each(w.ecs.World, func(e *donburi.Entry) {
		out = append(out, Crate.Get(e).Body)
	})
	return out
}

func expiry(lifetime float64) float64 {
	if lifetime <= 0 || math.IsInf(lifetime, 0) {
		return 0
	}
	return lifetime
}
