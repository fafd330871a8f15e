package motor

import (
	"fmt"
	"math"
)

// Keyframe is one (time, value) point of a Curve.
type Keyframe struct {
	Time  float64 `yaml:"time" toml:"time"`
	Value float64 `yaml:"value" toml:"value"`
}

// Curve is a piecewise-linear function through its keys. Inputs outside the
// key range evaluate to the nearest end key. An empty curve evaluates to 1.
type Curve []Keyframe

// DefaultSlopeCurve keeps full speed downhill and drops to zero at a
// vertical climb.
func DefaultSlopeCurve() Curve {
	return Curve{{Time: -90, Value: 1}, {Time: 0, Value: 1}, {Time: 90, Value: 0}}
}

func (c Curve) Evaluate(t float64) float64 {
	if len(c) == 0 {
		return 1
	}
	if math.IsNaN(t) || t <= c[0].Time {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(c); i++ {
		a, b := c[i-1], c[i]
		if t > b.Time {
			continue
		}
		span := b.Time - a.Time
		if span <= 0 {
			return b.Value
		}
		f := (t - a.Time) / span
		return a.Value + (b.Value-a.Value)*f
	}
	return last.Value
}

// Validate requires keys sorted by time and finite values in [0, 1].
func (c Curve) Validate() error {
	for i, k := range c {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) || math.IsNaN(k.Value) || math.IsInf(k.Value, 0) {
			return fmt.Errorf("key %d is not finite", i)
		}
		if k.Value < 0 || k.Value > 1 {
			return fmt.Errorf("key %d value %.3f outside [0, 1]", i, k.Value)
		}
		if i > 0 && k.Time < c[i-1].Time {
			return fmt.Errorf("key %d time %.3f before key %d time %.3f", i, k.Time, i-1, c[i-1].Time)
		}
	}
	return nil
}
