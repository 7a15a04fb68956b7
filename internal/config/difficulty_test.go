package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyStartValues(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 1.5},
	})

	if !approx(d.StartMultiplier(), 1.5) {
		t.Errorf("StartMultiplier() = %f, expected 1.5", d.StartMultiplier())
	}
	if !approx(d.StartInterval(4, 1), 2.5) {
		t.Errorf("StartInterval() = %f, expected 2.5", d.StartInterval(4, 1))
	}
	if !approx(d.StartInterval(2, 1), 1) {
		t.Errorf("StartInterval() should respect the floor, got %f", d.StartInterval(2, 1))
	}
}

func TestDifficultyLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if d.Level() != 1.0 {
		t.Errorf("Level() = %f, expected clamp to 1.0", d.Level())
	}
	d.SetInitialLevel(-2)
	if d.Level() != 0.0 {
		t.Errorf("Level() = %f, expected clamp to 0.0", d.Level())
	}
}

func TestDifficultyNextInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true})

	tests := []struct {
		current, step, floor, expected float64
	}{
		{4, 0.5, 1, 3.5},
		{1.2, 0.5, 1, 1},
		{1, 0.5, 1, 1},
		{4, -0.5, 1, 3.5}, // sign of the step is ignored, interval only shrinks
	}

	for _, tc := range tests {
		if got := d.NextInterval(tc.current, tc.step, tc.floor); !approx(got, tc.expected) {
			t.Errorf("NextInterval(%f, %f, %f) = %f, expected %f", tc.current, tc.step, tc.floor, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true})
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if d.NextInterval(4, 0.5, 1) != 4 {
		t.Error("disabled progression should keep the interval")
	}
	if d.NextMultiplier(1.2, 0.1) != 1.2 {
		t.Error("disabled progression should keep the multiplier")
	}
}

func TestDifficultyNextMultiplier(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true})
	if got := d.NextMultiplier(1.0, 0.1); !approx(got, 1.1) {
		t.Errorf("NextMultiplier() = %f, expected 1.1", got)
	}
}
