package survival

import (
	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/physics"
)

// Obstacle is a thrown object drifting from right to left.
type Obstacle struct {
	Kind ObstacleKind
	physics.Body

	// Rotation is cosmetic and never affects the hit box.
	Rotation      float64
	RotationSpeed float64
}

// newObstacle places an obstacle of the given kind just off the right edge.
func newObstacle(kind ObstacleKind, cfg *config.SurvivalConfig, rnd Rand) Obstacle {
	props := kind.Spec()
	maxRot := cfg.Obstacles.MaxRotationSpeed
	return Obstacle{
		Kind: kind,
		Body: physics.Body{
			X:  cfg.Field.Width,
			Y:  props.SpawnY(cfg.Field.GroundLevel(), rnd),
			W:  props.Width,
			H:  props.Height,
			VX: -props.Speed,
		},
		RotationSpeed: (rnd.Float64()*2 - 1) * maxRot,
	}
}

// Update advances the obstacle by dtMs. Horizontal drift is scaled by the
// difficulty level; heavy kinds also fall and bounce on ground level.
func (o *Obstacle) Update(dtMs, level float64, phys config.PhysicsConfig, groundLevel float64) {
	o.Drift(dtMs, level)
	if o.Kind.Spec().Heavy {
		o.Fall(dtMs, phys.ObstacleGravity)
		o.Bounce(groundLevel, phys.BounceDamping)
	}
}

// Spin advances the cosmetic rotation by one tick.
func (o *Obstacle) Spin() {
	o.Rotation += o.RotationSpeed
}
