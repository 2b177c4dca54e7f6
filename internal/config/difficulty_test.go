package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testDifficulty(progression string) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: progression, MaxAt: 50},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.6, GapReduction: 70},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		score    int
		seconds  float64
		expected float64
	}{
		{"score start", testDifficulty("score"), 0, 0, 0},
		{"score halfway", testDifficulty("score"), 25, 0, 0.5},
		{"score capped", testDifficulty("score"), 500, 0, 1},
		{"time halfway", testDifficulty("time"), 0, 25, 0.5},
		{"time ignores score", testDifficulty("time"), 40, 0, 0},
		{"none keeps initial", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}}, 50, 50, 0.3},
		{"disabled is flat", DifficultyConfig{Enabled: false, InitialLevel: 0.7, Progression: ProgressionConfig{Type: "score", MaxAt: 10}}, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.score, tc.seconds); !approx(got, tc.expected) {
				t.Errorf("Level(%d, %v) = %v, expected %v", tc.score, tc.seconds, got, tc.expected)
			}
		})
	}
}

func TestDifficultyInterpolatesFromInitialLevel(t *testing.T) {
	cfg := testDifficulty("score")
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(25, 0); !approx(got, 0.75) {
		t.Errorf("Level(25) = %v, expected 0.75", got)
	}
}

func TestDifficultySpeedAndGap(t *testing.T) {
	d := NewDifficultyManager(testDifficulty("score"))

	if got := d.Speed(500, 0, 0); !approx(got, 500) {
		t.Errorf("Speed at level 0 = %v, expected 500", got)
	}
	if got := d.Speed(500, 50, 0); !approx(got, 800) {
		t.Errorf("Speed at level 1 = %v, expected 800", got)
	}
	if got := d.GapSize(250, 180, 0, 0); !approx(got, 250) {
		t.Errorf("GapSize at level 0 = %v, expected 250", got)
	}
	if got := d.GapSize(250, 180, 50, 0); !approx(got, 180) {
		t.Errorf("GapSize at level 1 = %v, expected 180", got)
	}
	// Reduction larger than the headroom stops at the floor
	if got := d.GapSize(200, 180, 50, 0); !approx(got, 180) {
		t.Errorf("GapSize should not go below min gap, got %v", got)
	}
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	cfg := testDifficulty("score")
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if got := d.Speed(500, 50, 0); !approx(got, 500) {
		t.Errorf("disabled Speed = %v, expected base 500", got)
	}
	if got := d.GapSize(250, 180, 50, 0); !approx(got, 250) {
		t.Errorf("disabled GapSize = %v, expected base 250", got)
	}
}

func TestDifficultyClampsInitialLevel(t *testing.T) {
	tests := []struct {
		initial  float64
		expected float64
	}{
		{2, 1},
		{-1, 0},
		{0.4, 0.4},
	}

	for _, tc := range tests {
		d := NewDifficultyManager(DifficultyConfig{
			Enabled:      true,
			InitialLevel: tc.initial,
			Progression:  ProgressionConfig{Type: "none"},
		})
		if got := d.Level(0, 0); !approx(got, tc.expected) {
			t.Errorf("Level with initial %v = %v, expected %v", tc.initial, got, tc.expected)
		}
	}
}
