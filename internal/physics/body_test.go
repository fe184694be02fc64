package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestIntegrateSemiImplicit(t *testing.T) {
	b := Body{X: 0, Y: 0, VX: 100, VY: 0}
	b.Integrate(500, 800)

	// Velocity is updated before position.
	if !approx(b.VY, 400) {
		t.Errorf("VY = %v, expected 400", b.VY)
	}
	if !approx(b.Y, 200) {
		t.Errorf("Y = %v, expected 200 (uses the new velocity)", b.Y)
	}
	if !approx(b.X, 50) {
		t.Errorf("X = %v, expected 50", b.X)
	}
}

func TestIntegrateRestingSkipsGravity(t *testing.T) {
	b := Body{Y: 10, Resting: true}
	b.Integrate(16, 800)

	if b.VY != 0 || b.Y != 10 {
		t.Errorf("resting body moved vertically: Y=%v VY=%v", b.Y, b.VY)
	}
}

func TestIntegrateZeroDelta(t *testing.T) {
	b := Body{X: 3, Y: 4, VX: 10, VY: -20}
	b.Integrate(0, 800)

	if b.X != 3 || b.Y != 4 || b.VX != 10 || b.VY != -20 {
		t.Errorf("zero delta changed the body: %+v", b)
	}
}

func TestDriftScalesDisplacementOnly(t *testing.T) {
	b := Body{X: 100, VX: -50}
	b.Drift(1000, 2)

	if !approx(b.X, 0) {
		t.Errorf("X = %v, expected 0", b.X)
	}
	if b.VX != -50 {
		t.Errorf("Drift must not change the stored speed, VX = %v", b.VX)
	}
}

func TestSettleOnFloor(t *testing.T) {
	b := Body{Y: 95, H: 10, VY: 300}
	if !b.SettleOnFloor(100) {
		t.Fatal("body below the floor should settle")
	}
	if b.Y != 90 || b.VY != 0 || !b.Resting {
		t.Errorf("after settle: %+v", b)
	}

	b.Y = 50
	if b.SettleOnFloor(100) {
		t.Error("body above the floor should not settle")
	}
	if b.Resting {
		t.Error("body in the air should lose the resting flag")
	}
}

func TestBounce(t *testing.T) {
	b := Body{Y: 95, H: 10, VY: 100}
	if !b.Bounce(100, 0.3) {
		t.Fatal("expected a bounce")
	}
	if b.Y != 90 {
		t.Errorf("Y = %v, expected 90", b.Y)
	}
	if !approx(b.VY, -30) {
		t.Errorf("VY = %v, expected -30", b.VY)
	}

	if b.Bounce(100, 0.3) {
		t.Error("body resting exactly on the floor should not bounce again")
	}
}

func TestApplyFriction(t *testing.T) {
	b := Body{VX: 200}
	b.ApplyFriction(0.8)
	if b.VX != 200 {
		t.Error("friction must not apply in the air")
	}

	b.Resting = true
	b.ApplyFriction(0.8)
	if !approx(b.VX, 160) {
		t.Errorf("VX = %v, expected 160", b.VX)
	}
}

func TestClampX(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		wantX   float64
		clamped bool
	}{
		{"inside", 50, 50, false},
		{"left of field", -5, 0, true},
		{"right of field", 780, 770, true},
		{"touching right edge", 770, 770, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{X: tc.x, W: 30, VX: 120}
			got := b.ClampX(0, 800)
			if got != tc.clamped {
				t.Errorf("ClampX() = %v, expected %v", got, tc.clamped)
			}
			if b.X != tc.wantX {
				t.Errorf("X = %v, expected %v", b.X, tc.wantX)
			}
			if tc.clamped && b.VX != 0 {
				t.Errorf("clamp should zero VX, got %v", b.VX)
			}
		})
	}
}
