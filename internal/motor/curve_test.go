package motor

import (
	"math"
	"testing"
)

func TestCurve_Evaluate(t *testing.T) {
	curve := DefaultSlopeCurve()
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below first key", -120, 1},
		{"downhill", -45, 1},
		{"flat", 0, 1},
		{"half climb", 45, 0.5},
		{"steep climb", 67.5, 0.25},
		{"vertical", 90, 0},
		{"above last key", 200, 0},
		{"nan", math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := curve.Evaluate(tt.in)
			approxEqual(t, got, tt.want, 1e-12, "Evaluate")
		})
	}
}

func TestCurve_EmptyAndCoincidentKeys(t *testing.T) {
	if got := (Curve{}).Evaluate(10); got != 1 {
		t.Fatalf("empty curve = %v, want 1", got)
	}
	step := Curve{{Time: 0, Value: 0}, {Time: 0, Value: 1}, {Time: 1, Value: 1}}
	if got := step.Evaluate(0.5); got != 1 {
		t.Fatalf("step curve = %v, want 1", got)
	}
}

func TestCurve_Validate(t *testing.T) {
	if err := DefaultSlopeCurve().Validate(); err != nil {
		t.Fatalf("default curve invalid: %v", err)
	}
	unsorted := Curve{{Time: 10, Value: 1}, {Time: 0, Value: 1}}
	if err := unsorted.Validate(); err == nil {
		t.Fatal("unsorted curve accepted")
	}
	inf := Curve{{Time: 0, Value: math.Inf(1)}}
	if err := inf.Validate(); err == nil {
		t.Fatal("infinite value accepted")
	}
	for _, v := range []float64{-0.1, 1.5} {
		if err := (Curve{{Time: 0, Value: v}}).Validate(); err == nil {
			t.Fatalf("value %g accepted", v)
		}
	}
	bounds := Curve{{Time: 0, Value: 1}, {Time: 90, Value: 0}}
	if err := bounds.Validate(); err != nil {
		t.Fatalf("curve with values 0 and 1 rejected: %v", err)
	}
}
