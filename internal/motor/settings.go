package motor

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidSettings is returned (wrapped) by Settings.Validate and New.
var ErrInvalidSettings = errors.New("invalid motor settings")

// Transfer decides how much of a platform's velocity the character keeps
// after jumping off or walking off it.
type Transfer int

const (
	// TransferNone ignores the platform velocity entirely.
	TransferNone Transfer = iota
	// TransferInitial gives the jump the platform velocity, which then decays
	// under air acceleration.
	TransferInitial
	// TransferPermanent keeps the platform velocity until landing.
	TransferPermanent
	// TransferLocked keeps following the last platform while airborne.
	TransferLocked
)

var transferNames = [...]string{"none", "initial", "permanent", "locked"}

func (t Transfer) String() string {
	if t < 0 || int(t) >= len(transferNames) {
		return fmt.Sprintf("Transfer(%d)", int(t))
	}
	return transferNames[t]
}

func (t Transfer) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(transferNames) {
		return nil, fmt.Errorf("unknown transfer %d", int(t))
	}
	return []byte(transferNames[t]), nil
}

func (t *Transfer) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range transferNames {
		if s == name {
			*t = Transfer(i)
			return nil
		}
	}
	return fmt.Errorf("unknown transfer policy %q", string(text))
}

// inheritsVelocity reports whether the policy hands platform velocity to
// the character on take-off.
func (t Transfer) inheritsVelocity() bool {
	return t == TransferInitial || t == TransferPermanent
}

type MovementSettings struct {
	MaxForwardSpeed   float64 `yaml:"max_forward_speed" toml:"max_forward_speed"`
	MaxSidewaysSpeed  float64 `yaml:"max_sideways_speed" toml:"max_sideways_speed"`
	MaxBackwardsSpeed float64 `yaml:"max_backwards_speed" toml:"max_backwards_speed"`
	// SlopeSpeedMultiplier maps the slope angle in degrees (negative is
	// downhill) to a speed factor.
	SlopeSpeedMultiplier  Curve   `yaml:"slope_speed_multiplier" toml:"slope_speed_multiplier"`
	MaxGroundAcceleration float64 `yaml:"max_ground_acceleration" toml:"max_ground_acceleration"`
	MaxAirAcceleration    float64 `yaml:"max_air_acceleration" toml:"max_air_acceleration"`
	Gravity               float64 `yaml:"gravity" toml:"gravity"`
	MaxFallSpeed          float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	FootstepDistance      float64 `yaml:"footstep_distance" toml:"footstep_distance"`
	PushPower             float64 `yaml:"push_power" toml:"push_power"`
	// SlopeLimit is the steepest walkable slope in degrees.
	SlopeLimit float64 `yaml:"slope_limit" toml:"slope_limit"`
}

type JumpSettings struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// BaseHeight is reached when the button is released right away.
	BaseHeight float64 `yaml:"base_height" toml:"base_height"`
	// ExtraHeight is added on top while the button stays held.
	ExtraHeight float64 `yaml:"extra_height" toml:"extra_height"`
	// PerpAmount and SteepPerpAmount blend the jump direction from straight
	// up (0) to the surface normal (1) on walkable and too-steep ground.
	PerpAmount      float64 `yaml:"perp_amount" toml:"perp_amount"`
	SteepPerpAmount float64 `yaml:"steep_perp_amount" toml:"steep_perp_amount"`
}

type PlatformSettings struct {
	Enabled  bool     `yaml:"enabled" toml:"enabled"`
	Transfer Transfer `yaml:"transfer" toml:"transfer"`
}

type SlideSettings struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	SlidingSpeed float64 `yaml:"sliding_speed" toml:"sliding_speed"`
	// SidewaysControl scales input across the slide direction; 0.5 lets the
	// character slide sideways at half the sliding speed.
	SidewaysControl float64 `yaml:"sideways_control" toml:"sideways_control"`
	// SpeedControl scales input along the slide direction; 0.4 speeds the
	// slide up to 140% or slows it to 60%.
	SpeedControl float64 `yaml:"speed_control" toml:"speed_control"`
}

// Settings are the author-tuned parameters of one character.
type Settings struct {
	Movement MovementSettings `yaml:"movement" toml:"movement"`
	Jumping  JumpSettings     `yaml:"jumping" toml:"jumping"`
	Platform PlatformSettings `yaml:"platform" toml:"platform"`
	Sliding  SlideSettings    `yaml:"sliding" toml:"sliding"`
}

func DefaultSettings() Settings {
	return Settings{
		Movement: MovementSettings{
			MaxForwardSpeed:       3,
			MaxSidewaysSpeed:      2,
			MaxBackwardsSpeed:     2,
			SlopeSpeedMultiplier:  DefaultSlopeCurve(),
			MaxGroundAcceleration: 30,
			MaxAirAcceleration:    20,
			Gravity:               9.81,
			MaxFallSpeed:          20,
			FootstepDistance:      1,
			PushPower:             2,
			SlopeLimit:            45,
		},
		Jumping: JumpSettings{
			Enabled:         true,
			BaseHeight:      1,
			ExtraHeight:     4.1,
			PerpAmount:      0,
			SteepPerpAmount: 0.5,
		},
		Platform: PlatformSettings{
			Enabled:  true,
			Transfer: TransferPermanent,
		},
		Sliding: SlideSettings{
			Enabled:         true,
			SlidingSpeed:    15,
			SidewaysControl: 1,
			SpeedControl:    0.4,
		},
	}
}

func (s Settings) Validate() error {
	var errs []error
	nonNegative := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("%s must be a finite value >= 0, got %v", name, v))
		}
	}
	fraction := func(name string, v float64) {
		if math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, v))
		}
	}

	m := s.Movement
	nonNegative("movement.max_forward_speed", m.MaxForwardSpeed)
	nonNegative("movement.max_sideways_speed", m.MaxSidewaysSpeed)
	nonNegative("movement.max_backwards_speed", m.MaxBackwardsSpeed)
	nonNegative("movement.max_ground_acceleration", m.MaxGroundAcceleration)
	nonNegative("movement.max_air_acceleration", m.MaxAirAcceleration)
	nonNegative("movement.max_fall_speed", m.MaxFallSpeed)
	nonNegative("movement.footstep_distance", m.FootstepDistance)
	nonNegative("movement.push_power", m.PushPower)
	if math.IsNaN(m.Gravity) || math.IsInf(m.Gravity, 0) || m.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("movement.gravity must be > 0, got %v", m.Gravity))
	}
	if math.IsNaN(m.SlopeLimit) || m.SlopeLimit <= 0 || m.SlopeLimit > 90 {
		errs = append(errs, fmt.Errorf("movement.slope_limit must be within (0,90], got %v", m.SlopeLimit))
	}
	if err := m.SlopeSpeedMultiplier.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("movement.slope_speed_multiplier: %w", err))
	}

	j := s.Jumping
	nonNegative("jumping.base_height", j.BaseHeight)
	nonNegative("jumping.extra_height", j.ExtraHeight)
	fraction("jumping.perp_amount", j.PerpAmount)
	fraction("jumping.steep_perp_amount", j.SteepPerpAmount)

	if s.Platform.Transfer < TransferNone || s.Platform.Transfer > TransferLocked {
		errs = append(errs, fmt.Errorf("platform.transfer: unknown policy %d", int(s.Platform.Transfer)))
	}

	sl := s.Sliding
	nonNegative("sliding.sliding_speed", sl.SlidingSpeed)
	nonNegative("sliding.sideways_control", sl.SidewaysControl)
	nonNegative("sliding.speed_control", sl.SpeedControl)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}

// steepThreshold is the upward normal component at and below which ground
// counts as too steep.
func (s Settings) steepThreshold() float64 {
	return math.Cos(s.Movement.SlopeLimit * math.Pi / 180)
}
