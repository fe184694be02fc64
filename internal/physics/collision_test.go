package physics

import (
	"testing"

	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/core"
)

func TestIsOnTopOf(t *testing.T) {
	table := core.NewRect(100, 450, 80, 15)
	tolerance := config.DefaultSurvivalConfig().Physics.LandingTolerance

	tests := []struct {
		name     string
		body     Body
		expected bool
	}{
		{"standing on top", Body{X: 120, Y: 410, W: 30, H: 40}, true},
		{"sunk within tolerance", Body{X: 120, Y: 429, W: 30, H: 40}, true},
		{"sunk past tolerance", Body{X: 120, Y: 431, W: 30, H: 40}, false},
		{"above the surface", Body{X: 120, Y: 400, W: 30, H: 40}, false},
		{"moving upward", Body{X: 120, Y: 412, W: 30, H: 40, VY: -10}, false},
		{"falling onto it", Body{X: 120, Y: 412, W: 30, H: 40, VY: 250}, true},
		{"beside the left edge", Body{X: 70, Y: 410, W: 30, H: 40}, false},
		{"overhanging the right edge", Body{X: 175, Y: 410, W: 30, H: 40}, true},
		{"past the right edge", Body{X: 180, Y: 410, W: 30, H: 40}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			if got := IsOnTopOf(&b, table, tolerance); got != tc.expected {
				t.Errorf("IsOnTopOf() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectsMatchesRect(t *testing.T) {
	a := core.NewRect(0, 0, 10, 10)
	b := core.NewRect(9, 9, 5, 5)
	if !Intersects(a, b) {
		t.Error("overlapping boxes should intersect")
	}
	if Intersects(a, core.NewRect(10, 0, 5, 5)) {
		t.Error("touching boxes should not intersect")
	}
}

func TestWithinBounds(t *testing.T) {
	if !WithinBounds(core.NewRect(0, 0, 800, 600), 800, 600, 0) {
		t.Error("field-sized box should be within bounds")
	}
	if WithinBounds(core.NewRect(-1, 0, 10, 10), 800, 600, 0) {
		t.Error("box left of the field should be out of bounds")
	}
	if !WithinBounds(core.NewRect(-1, 0, 10, 10), 800, 600, 5) {
		t.Error("margin should admit the box")
	}
}

func TestPassedLeftEdge(t *testing.T) {
	if PassedLeftEdge(core.NewRect(-10, 0, 10, 10)) {
		t.Error("right edge exactly at 0 has not passed yet")
	}
	if !PassedLeftEdge(core.NewRect(-10.5, 0, 10, 10)) {
		t.Error("right edge below 0 has passed")
	}
}
