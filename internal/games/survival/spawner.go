package survival

import (
	"github.com/vovakirdan/school-survival/internal/config"
)

// Spawner decides when obstacles and platforms enter the field and which
// obstacle kinds are eligible. Its timers live in State so that a restart
// resets them together with everything else.
type Spawner struct {
	cfg        *config.SurvivalConfig
	difficulty *config.DifficultyManager
	rnd        Rand
}

// NewSpawner creates a spawner drawing from rnd.
func NewSpawner(cfg *config.SurvivalConfig, diff *config.DifficultyManager, rnd Rand) *Spawner {
	return &Spawner{
		cfg:        cfg,
		difficulty: diff,
		rnd:        rnd,
	}
}

// Update advances both spawn timers by dtMs and appends whatever fires.
func (s *Spawner) Update(st *State, dtMs float64, res *TickResult) {
	st.ObstacleInterval = s.difficulty.ObstacleInterval(st.ElapsedMs)
	st.ObstacleTimer += dtMs
	if st.ObstacleTimer >= st.ObstacleInterval {
		kind := s.ChooseKind(st.ElapsedMs)
		st.Obstacles = append(st.Obstacles, newObstacle(kind, s.cfg, s.rnd))
		st.ObstacleTimer = 0
		res.add(Event{Kind: EventSpawn, Obstacle: kind})
	}

	st.PlatformTimer += dtMs
	if st.PlatformTimer >= st.PlatformInterval {
		st.Platforms = append(st.Platforms, newPlatform(s.cfg.Field.Width, s.cfg))
		st.PlatformTimer = 0
		st.PlatformInterval = s.NextPlatformInterval()
		res.add(Event{Kind: EventSpawn, Platform: true})
	}
}

// ChooseKind picks an obstacle kind uniformly among those eligible at
// elapsedMs.
func (s *Spawner) ChooseKind(elapsedMs float64) ObstacleKind {
	eligible := s.eligible(elapsedMs)
	return eligible[s.rnd.Intn(len(eligible))]
}

func (s *Spawner) eligible(elapsedMs float64) []ObstacleKind {
	names := s.difficulty.EligibleKinds(elapsedMs)
	if names == nil {
		return AllKinds()
	}
	kinds := make([]ObstacleKind, 0, len(names))
	for _, name := range names {
		if k, err := ParseObstacleKind(name); err == nil {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		return AllKinds()
	}
	return kinds
}

// NextPlatformInterval draws the delay before the next table from the
// configured [min, max) range.
func (s *Spawner) NextPlatformInterval() float64 {
	p := s.cfg.Platforms
	return p.MinIntervalMs + s.rnd.Float64()*(p.MaxIntervalMs-p.MinIntervalMs)
}
