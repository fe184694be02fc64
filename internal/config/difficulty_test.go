package config

import "testing"

func newDefaultManager() *DifficultyManager {
	cfg := DefaultSurvivalConfig()
	return NewDifficultyManager(cfg.Difficulty, cfg.Obstacles)
}

func TestScalar(t *testing.T) {
	d := newDefaultManager()

	tests := []struct {
		elapsed, expected float64
	}{
		{0, 1},
		{5000, 1.5},
		{10000, 2},
		{60000, 7},
	}
	for _, tc := range tests {
		if got := d.Scalar(tc.elapsed); got != tc.expected {
			t.Errorf("Scalar(%v) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestObstacleIntervalMonotonicAndFloored(t *testing.T) {
	d := newDefaultManager()

	if got := d.ObstacleInterval(0); got != 2000 {
		t.Errorf("ObstacleInterval(0) = %v, expected 2000", got)
	}
	if got := d.ObstacleInterval(100000); got != 1000 {
		t.Errorf("ObstacleInterval(100000) = %v, expected 1000", got)
	}

	prev := d.ObstacleInterval(0)
	for elapsed := 0.0; elapsed <= 400000; elapsed += 777 {
		cur := d.ObstacleInterval(elapsed)
		if cur > prev {
			t.Fatalf("interval increased at %v: %v -> %v", elapsed, prev, cur)
		}
		if cur < 500 {
			t.Fatalf("interval %v below the floor at %v", cur, elapsed)
		}
		prev = cur
	}
	if prev != 500 {
		t.Errorf("interval should settle at the floor, got %v", prev)
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := DefaultSurvivalConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty, cfg.Obstacles)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if d.Scalar(50000) != 1 {
		t.Errorf("fixed scalar should stay at 1, got %v", d.Scalar(50000))
	}
	if d.ObstacleInterval(50000) != 2000 {
		t.Errorf("fixed interval should stay at 2000, got %v", d.ObstacleInterval(50000))
	}
}

func TestEligibleKinds(t *testing.T) {
	d := newDefaultManager()

	tests := []struct {
		elapsed float64
		count   int
		all     bool
	}{
		{0, 2, false},
		{4999, 2, false},
		{5000, 4, false},
		{14999, 4, false},
		{15000, 0, true},
	}
	for _, tc := range tests {
		kinds := d.EligibleKinds(tc.elapsed)
		if tc.all {
			if kinds != nil {
				t.Errorf("EligibleKinds(%v) = %v, expected nil (all kinds)", tc.elapsed, kinds)
			}
			continue
		}
		if len(kinds) != tc.count {
			t.Errorf("EligibleKinds(%v) = %v, expected %d kinds", tc.elapsed, kinds, tc.count)
		}
	}
}
