// Package physics implements the kinematic body used by every moving entity
// and the axis-aligned collision tests between them.
//
// Time is always given in milliseconds; velocities are pixels per second and
// accelerations pixels per second squared.
package physics

import "github.com/vovakirdan/school-survival/internal/core"

// msPerSecond converts millisecond deltas into seconds.
const msPerSecond = 1000.0

// Body is a position/velocity/size primitive in field pixels.
// Y grows downwards, so a negative VY moves the body up.
type Body struct {
	X, Y    float64 // Top-left corner
	W, H    float64 // Size
	VX, VY  float64 // Velocity in px/s
	Resting bool    // Supported by the floor or a platform; gravity suspended
}

// Rect returns the unrotated bounding box of the body.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the body's feet.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Right returns the x-coordinate of the body's right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Integrate advances the body by dtMs using semi-implicit Euler:
// velocity is updated first, then position uses the new velocity.
// Gravity only applies while the body is not resting.
func (b *Body) Integrate(dtMs, gravity float64) {
	dt := dtMs / msPerSecond
	if !b.Resting {
		b.VY += gravity * dt
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Drift moves the body horizontally by its velocity scaled by factor.
// The stored velocity is left untouched.
func (b *Body) Drift(dtMs, factor float64) {
	b.X += b.VX * dtMs / msPerSecond * factor
}

// Fall applies a vertical-only gravity step, independent of Resting.
func (b *Body) Fall(dtMs, gravity float64) {
	dt := dtMs / msPerSecond
	b.VY += gravity * dt
	b.Y += b.VY * dt
}

// Land snaps the body's feet onto surfaceY and marks it resting.
func (b *Body) Land(surfaceY float64) {
	b.Y = surfaceY - b.H
	b.VY = 0
	b.Resting = true
}

// SettleOnFloor lands the body when its feet reached floorY and clears the
// resting flag otherwise. Reports whether the body is on the floor.
func (b *Body) SettleOnFloor(floorY float64) bool {
	if b.Bottom() >= floorY {
		b.Land(floorY)
		return true
	}
	b.Resting = false
	return false
}

// Bounce reflects the body off floorY with the given restitution when its
// feet went below it. Reports whether a bounce happened.
func (b *Body) Bounce(floorY, restitution float64) bool {
	if b.Bottom() <= floorY {
		return false
	}
	b.Y = floorY - b.H
	b.VY *= -restitution
	return true
}

// ApplyFriction scales horizontal velocity by factor while resting.
func (b *Body) ApplyFriction(factor float64) {
	if b.Resting {
		b.VX *= factor
	}
}

// ClampX keeps the body inside [minX, maxX], zeroing VX at a clamp.
// Reports whether the body was clamped.
func (b *Body) ClampX(minX, maxX float64) bool {
	if b.X < minX {
		b.X = minX
		b.VX = 0
		return true
	}
	if b.Right() > maxX {
		b.X = maxX - b.W
		b.VX = 0
		return true
	}
	return false
}
