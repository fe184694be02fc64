package survival

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// PlayerSnapshot is the renderable pose of the player.
type PlayerSnapshot struct {
	X, Y, W, H   float64
	VX, VY       float64
	Health       int
	MaxHealth    int
	OnGround     bool
	Crouching    bool
	FacingRight  bool
	Invulnerable bool
}

// ObstacleSnapshot is the renderable state of one obstacle.
type ObstacleSnapshot struct {
	Kind       ObstacleKind
	X, Y, W, H float64
	Rotation   float64
}

// PlatformSnapshot is the renderable state of one table.
type PlatformSnapshot struct {
	X, Y, W, H float64
}

// Snapshot captures the complete game state for rendering, determinism
// testing and replay.
type Snapshot struct {
	Tick       uint64
	ElapsedMs  float64
	Score      int
	Dodged     int
	Difficulty float64
	Phase      Phase

	Player    PlayerSnapshot
	Obstacles []ObstacleSnapshot
	Platforms []PlatformSnapshot

	FieldW      float64
	FieldH      float64
	FloorY      float64
	GroundLevel float64
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	st := &g.state
	p := &st.Player

	snap := Snapshot{
		Tick:       st.Tick,
		ElapsedMs:  st.ElapsedMs,
		Score:      st.Score,
		Dodged:     st.Dodged,
		Difficulty: g.Difficulty(),
		Phase:      st.Phase,
		Player: PlayerSnapshot{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VX: p.VX, VY: p.VY,
			Health:       p.Health,
			MaxHealth:    p.MaxHealth,
			OnGround:     p.OnGround(),
			Crouching:    p.Crouching,
			FacingRight:  p.FacingRight,
			Invulnerable: p.Invulnerable(),
		},
		Obstacles:   make([]ObstacleSnapshot, len(st.Obstacles)),
		Platforms:   make([]PlatformSnapshot, len(st.Platforms)),
		FieldW:      g.cfg.Field.Width,
		FieldH:      g.cfg.Field.Height,
		FloorY:      g.cfg.Field.FloorY(),
		GroundLevel: g.cfg.Field.GroundLevel(),
	}
	for i, o := range st.Obstacles {
		snap.Obstacles[i] = ObstacleSnapshot{
			Kind: o.Kind,
			X:    o.X, Y: o.Y, W: o.W, H: o.H,
			Rotation: o.Rotation,
		}
	}
	for i, pl := range st.Platforms {
		snap.Platforms[i] = PlatformSnapshot{X: pl.X, Y: pl.Y, W: pl.W, H: pl.H}
	}
	return snap
}

// Hash returns an FNV-1a digest of the simulated state. Two runs with the
// same seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	u := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}

	u(s.Tick)
	f(s.ElapsedMs)
	u(uint64(s.Score))
	u(uint64(s.Dodged))
	u(uint64(s.Phase))

	p := s.Player
	for _, v := range []float64{p.X, p.Y, p.W, p.H, p.VX, p.VY} {
		f(v)
	}
	u(uint64(p.Health))
	b(p.OnGround)
	b(p.Crouching)
	b(p.FacingRight)

	u(uint64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		u(uint64(o.Kind))
		for _, v := range []float64{o.X, o.Y, o.W, o.H, o.Rotation} {
			f(v)
		}
	}
	u(uint64(len(s.Platforms)))
	for _, pl := range s.Platforms {
		for _, v := range []float64{pl.X, pl.Y, pl.W, pl.H} {
			f(v)
		}
	}
	return h.Sum64()
}
