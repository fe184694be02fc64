package survival

import (
	"testing"

	"github.com/vovakirdan/school-survival/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, *config.SurvivalConfig) {
	cfg := config.DefaultSurvivalConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty, cfg.Obstacles)
	return NewSpawner(&cfg, diff, NewRand(seed)), &cfg
}

func TestChooseKindGates(t *testing.T) {
	s, _ := newTestSpawner(11)

	tests := []struct {
		elapsed float64
		allowed []ObstacleKind
	}{
		{0, []ObstacleKind{KindPaperAirplane, KindApple}},
		{4999, []ObstacleKind{KindPaperAirplane, KindApple}},
		{5000, []ObstacleKind{KindPaperAirplane, KindApple, KindPencil, KindTextbook}},
		{14999, []ObstacleKind{KindPaperAirplane, KindApple, KindPencil, KindTextbook}},
		{15000, AllKinds()},
		{600000, AllKinds()},
	}
	for _, tt := range tests {
		allowed := make(map[ObstacleKind]bool)
		for _, k := range tt.allowed {
			allowed[k] = true
		}
		seen := make(map[ObstacleKind]bool)
		for i := 0; i < 600; i++ {
			k := s.ChooseKind(tt.elapsed)
			if !allowed[k] {
				t.Fatalf("elapsed %v: chose gated kind %v", tt.elapsed, k)
			}
			seen[k] = true
		}
		if len(seen) != len(allowed) {
			t.Errorf("elapsed %v: saw %d of %d eligible kinds", tt.elapsed, len(seen), len(allowed))
		}
	}
}

func TestNextPlatformInterval(t *testing.T) {
	s, _ := newTestSpawner(5)
	for i := 0; i < 1000; i++ {
		if d := s.NextPlatformInterval(); d < 6000 || d >= 12000 {
			t.Fatalf("interval %v outside [6000, 12000)", d)
		}
	}
}

func TestSpawnerUpdate(t *testing.T) {
	s, cfg := newTestSpawner(9)
	st := &State{PlatformInterval: cfg.Platforms.FirstIntervalMs}
	var res TickResult

	s.Update(st, 1000, &res)
	if len(st.Obstacles) != 0 || len(st.Platforms) != 0 || len(res.Events) != 0 {
		t.Fatal("spawned before any interval elapsed")
	}

	st.ElapsedMs = 8000
	s.Update(st, 7000, &res)
	if len(st.Obstacles) != 1 || len(st.Platforms) != 1 {
		t.Fatalf("got %d obstacles, %d platforms; want 1 each", len(st.Obstacles), len(st.Platforms))
	}
	if res.Count(EventSpawn) != 2 {
		t.Errorf("expected 2 spawn events, got %v", res.Events)
	}
	if st.ObstacleTimer != 0 || st.PlatformTimer != 0 {
		t.Errorf("timers not reset: %v, %v", st.ObstacleTimer, st.PlatformTimer)
	}
	if st.ObstacleInterval != 1920 {
		t.Errorf("obstacle interval = %v, want 1920", st.ObstacleInterval)
	}
	if st.PlatformInterval < 6000 || st.PlatformInterval >= 12000 {
		t.Errorf("platform interval %v not redrawn", st.PlatformInterval)
	}
	pl := st.Platforms[0]
	if pl.X != 800 || pl.Y != 450 || pl.VX != -50 {
		t.Errorf("platform = %+v", pl.Body)
	}
}

func TestObstacleUpdate(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	gl := cfg.Field.GroundLevel()

	t.Run("light drifts with difficulty", func(t *testing.T) {
		o := Obstacle{Kind: KindApple}
		o.Y, o.W, o.H, o.VX = 470, 18, 18, -80
		o.Update(1000, 2, cfg.Physics, gl)
		if o.X != -160 || o.Y != 470 {
			t.Errorf("apple at (%v, %v), want (-160, 470)", o.X, o.Y)
		}
	})

	t.Run("heavy falls and bounces", func(t *testing.T) {
		o := Obstacle{Kind: KindBackpack}
		o.Y, o.W, o.H = gl-45-1, 35, 45
		bounced := false
		for i := 0; i < 100; i++ {
			o.Update(16, 1, cfg.Physics, gl)
			if o.Bottom() > gl {
				t.Fatalf("step %d: bottom %v below ground level %v", i, o.Bottom(), gl)
			}
			if o.VY < 0 {
				bounced = true
			}
		}
		if !bounced {
			t.Error("heavy obstacle never bounced")
		}
	})
}
