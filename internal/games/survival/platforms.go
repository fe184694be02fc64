package survival

import (
	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/physics"
)

// Platform is a scrolling table the player can stand on.
type Platform struct {
	physics.Body
}

func newPlatform(x float64, cfg *config.SurvivalConfig) Platform {
	p := cfg.Platforms
	return Platform{Body: physics.Body{
		X:  x,
		Y:  cfg.Field.Height - p.Elevation,
		W:  p.Width,
		H:  p.Height,
		VX: -p.ScrollSpeed,
	}}
}

// initialPlatforms lays out the tables present when a session starts.
func initialPlatforms(cfg *config.SurvivalConfig) []Platform {
	n := cfg.Platforms.InitialCount
	platforms := make([]Platform, 0, n)
	for i := 0; i < n; i++ {
		x := cfg.Field.Width + float64(i)*cfg.Platforms.InitialSpacing
		platforms = append(platforms, newPlatform(x, cfg))
	}
	return platforms
}

// Update scrolls the platform left, scaled by the difficulty level.
func (p *Platform) Update(dtMs, level float64) {
	p.Drift(dtMs, level)
}
