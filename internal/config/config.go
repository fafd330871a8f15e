package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Versifine/stride/internal/motor"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) by Validate and Load.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Motor      motor.Settings   `yaml:"motor" toml:"motor"`
	Scenario   Scenario         `yaml:"scenario" toml:"scenario"`
}

type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	// Format is one of "console", "text", "json" or "auto".
	Format string `yaml:"format" toml:"format"`
}

type SimulationConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
	// Duration is the simulated time in seconds.
	Duration float64 `yaml:"duration" toml:"duration"`
	// Seed drives the wander intents of characters that have no script.
	Seed uint64 `yaml:"seed" toml:"seed"`
}

// Ticks is the number of fixed steps covering Duration.
func (s SimulationConfig) Ticks() int {
	return int(math.Round(s.Duration * float64(s.TickRate)))
}

// Step is the fixed delta time in seconds.
func (s SimulationConfig) Step() float64 {
	return 1 / float64(s.TickRate)
}

type Scenario struct {
	Characters []CharacterConfig `yaml:"characters" toml:"characters"`
	Platforms  []PlatformConfig  `yaml:"platforms" toml:"platforms"`
	Crates     []CrateConfig     `yaml:"crates" toml:"crates"`
	Boxes      []BoxConfig       `yaml:"boxes" toml:"boxes"`
}

// Positions in the scenario are the bottom centre of a box or character.
type CharacterConfig struct {
	Name     string         `yaml:"name" toml:"name"`
	Position mgl64.Vec3     `yaml:"position" toml:"position"`
	Script   []IntentConfig `yaml:"script" toml:"script"`
}

// IntentConfig holds from At (seconds) until the next entry of the script.
// Target and Follow replace Move with a heading recomputed every tick.
type IntentConfig struct {
	At     float64     `yaml:"at" toml:"at"`
	Move   mgl64.Vec3  `yaml:"move" toml:"move"`
	Jump   bool        `yaml:"jump" toml:"jump"`
	Target *mgl64.Vec3 `yaml:"target" toml:"target"`
	Follow string      `yaml:"follow" toml:"follow"`
	// Near is the distance at which Target or Follow stop walking.
	Near float64 `yaml:"near" toml:"near"`
}

type PlatformConfig struct {
	Name     string     `yaml:"name" toml:"name"`
	Position mgl64.Vec3 `yaml:"position" toml:"position"`
	Size     mgl64.Vec3 `yaml:"size" toml:"size"`
	Material string     `yaml:"material" toml:"material"`
	// Path lists waypoints relative to Position. The platform visits them in
	// order, then returns to Position and loops.
	Path []mgl64.Vec3 `yaml:"path" toml:"path"`
	// SegmentDuration is the travel time between two waypoints in seconds.
	SegmentDuration float64 `yaml:"segment_duration" toml:"segment_duration"`
	// YawRate in degrees per second.
	YawRate float64 `yaml:"yaw_rate" toml:"yaw_rate"`
	// Lifetime removes the platform after this many seconds; 0 keeps it.
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"`
}

type CrateConfig struct {
	Position  mgl64.Vec3 `yaml:"position" toml:"position"`
	Size      mgl64.Vec3 `yaml:"size" toml:"size"`
	Material  string     `yaml:"material" toml:"material"`
	Kinematic bool       `yaml:"kinematic" toml:"kinematic"`
}

type BoxConfig struct {
	Position mgl64.Vec3 `yaml:"position" toml:"position"`
	Size     mgl64.Vec3 `yaml:"size" toml:"size"`
	Material string     `yaml:"material" toml:"material"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Duration: 10,
			Seed:     1,
		},
		Motor: motor.DefaultSettings(),
	}
}

// Load reads a YAML or TOML file (picked by extension) over Default and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".toml":
		if err := decodeTOML(data, cfg); err != nil {
			return nil, fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "text", "json", "auto":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	sim := c.Simulation
	if sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be > 0, got %d", sim.TickRate))
	}
	if math.IsNaN(sim.Duration) || math.IsInf(sim.Duration, 0) || sim.Duration < 0 {
		errs = append(errs, fmt.Errorf("simulation.duration must be a finite value >= 0, got %v", sim.Duration))
	}

	if err := c.Motor.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("motor: %w", err))
	}
	errs = append(errs, c.Scenario.validate()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (s Scenario) validate() []error {
	var errs []error
	positiveSize := func(field string, v mgl64.Vec3) {
		if !(v.X() > 0 && v.Y() > 0 && v.Z() > 0) || !finite(v) {
			errs = append(errs, fmt.Errorf("%s must be positive on every axis, got %v", field, v))
		}
	}
	names := make(map[string]bool, len(s.Characters))
	for i, ch := range s.Characters {
		if ch.Name != "" && names[ch.Name] {
			errs = append(errs, fmt.Errorf("scenario.characters[%d].name %q is not unique", i, ch.Name))
		}
		names[ch.Name] = ch.Name != ""
	}
	platforms := make(map[string]bool, len(s.Platforms))
	for i, p := range s.Platforms {
		if p.Name != "" && platforms[p.Name] {
			errs = append(errs, fmt.Errorf("scenario.platforms[%d].name %q is not unique", i, p.Name))
		}
		platforms[p.Name] = true
	}
	for i, ch := range s.Characters {
		prev := math.Inf(-1)
		for j, in := range ch.Script {
			if !(in.At >= prev) || math.IsInf(in.At, 0) {
				errs = append(errs, fmt.Errorf("scenario.characters[%d].script[%d].at must be non-decreasing, got %v", i, j, in.At))
			}
			prev = in.At
			if in.Target != nil && !finite(*in.Target) {
				errs = append(errs, fmt.Errorf("scenario.characters[%d].script[%d].target must be finite", i, j))
			}
			if math.IsNaN(in.Near) || in.Near < 0 {
				errs = append(errs, fmt.Errorf("scenario.characters[%d].script[%d].near must be >= 0, got %v", i, j, in.Near))
			}
			if in.Follow != "" && !names[in.Follow] {
				errs = append(errs, fmt.Errorf("scenario.characters[%d].script[%d].follow: unknown character %q", i, j, in.Follow))
			}
		}
	}
	for i, p := range s.Platforms {
		positiveSize(fmt.Sprintf("scenario.platforms[%d].size", i), p.Size)
		if len(p.Path) > 0 && !(p.SegmentDuration > 0) {
			errs = append(errs, fmt.Errorf("scenario.platforms[%d].segment_duration must be > 0 when a path is set", i))
		}
		if math.IsNaN(p.Lifetime) || p.Lifetime < 0 {
			errs = append(errs, fmt.Errorf("scenario.platforms[%d].lifetime must be >= 0, got %v", i, p.Lifetime))
		}
	}
	for i, cr := range s.Crates {
		positiveSize(fmt.Sprintf("scenario.crates[%d].size", i), cr.Size)
	}
	for i, b := range s.Boxes {
		positiveSize(fmt.Sprintf("scenario.boxes[%d].size", i), b.Size)
	}
	return errs
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
