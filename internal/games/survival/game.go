// Package survival implements the school hallway survival game: a student
// dodges thrown objects by running, jumping and crouching, and can stand on
// scrolling tables. The package is a pure simulation driven by Tick; it has
// no terminal, clock or storage dependency.
package survival

import (
	"fmt"

	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/core"
	"github.com/vovakirdan/school-survival/internal/physics"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is everything that changes during a session.
type State struct {
	Tick      uint64
	ElapsedMs float64
	Score     int
	Dodged    int
	Phase     Phase

	Player    Player
	Obstacles []Obstacle
	Platforms []Platform

	ObstacleTimer    float64
	ObstacleInterval float64
	PlatformTimer    float64
	PlatformInterval float64

	survivalCarry float64 // Survived ms not yet converted into points
	pauseHeld     bool    // Pause input of the previous tick
}

// Game owns a session and advances it with Tick.
type Game struct {
	cfg        config.SurvivalConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	state      State

	// Entities further than this outside the field are dropped unscored.
	strayMargin float64
}

// New creates a game from a validated config. All randomness of the
// session is drawn from rnd.
func New(cfg config.SurvivalConfig, rnd Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, gate := range cfg.Difficulty.Gates {
		for _, name := range gate.Kinds {
			if _, err := ParseObstacleKind(name); err != nil {
				return nil, fmt.Errorf("difficulty gate: %w", err)
			}
		}
	}

	g := &Game{cfg: cfg}
	g.strayMargin = cfg.Field.Width + float64(cfg.Platforms.InitialCount)*cfg.Platforms.InitialSpacing + cfg.Platforms.Width
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Obstacles)
	g.spawner = NewSpawner(&g.cfg, g.difficulty, rnd)
	g.Restart()
	return g, nil
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.SurvivalConfig {
	return g.cfg
}

// State exposes the live session state. Callers must not keep it across ticks.
func (g *Game) State() *State {
	return &g.state
}

// Difficulty returns the current difficulty scalar.
func (g *Game) Difficulty() float64 {
	return g.difficulty.Scalar(g.state.ElapsedMs)
}

// Restart resets the session to its initial state. The random source keeps
// its position, so consecutive runs differ.
func (g *Game) Restart() {
	g.state = State{
		Phase:            PhaseRunning,
		Player:           newPlayer(&g.cfg),
		Platforms:        initialPlatforms(&g.cfg),
		ObstacleInterval: g.difficulty.ObstacleInterval(0),
		PlatformInterval: g.cfg.Platforms.FirstIntervalMs,
	}
}

// Tick advances the session by dtMs milliseconds of held input in.
//
// A negative or non-finite delta is rejected without touching the state.
// While paused or over the delta is dropped; restart input is honoured in
// both phases, and pause toggles on the tick its input goes down.
func (g *Game) Tick(in core.InputFrame, dtMs float64) (TickResult, error) {
	if dtMs < 0 || !core.IsFinite(dtMs) {
		return TickResult{}, fmt.Errorf("%w: %v", ErrInvalidDelta, dtMs)
	}

	var res TickResult
	pauseDown := in.Has(core.ActionPause)
	pausePressed := pauseDown && !g.state.pauseHeld

	switch g.state.Phase {
	case PhaseOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
			res.Restarted = true
		}
	case PhasePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
			res.Restarted = true
		case pausePressed:
			g.state.Phase = PhaseRunning
		}
	case PhaseRunning:
		if pausePressed {
			g.state.Phase = PhasePaused
			break
		}
		g.advance(in, dtMs, &res)
	}

	g.state.pauseHeld = pauseDown
	return g.result(res), nil
}

// advance splits dtMs into bounded sub-steps and runs each through the
// full pipeline. Friction and spin are per-tick factors, applied once after
// the last sub-step when floor and table contacts are both resolved.
func (g *Game) advance(in core.InputFrame, dtMs float64, res *TickResult) {
	st := &g.state
	for remaining := dtMs; remaining > 0 && st.Phase == PhaseRunning; {
		step := min(remaining, g.cfg.Physics.MaxStepMs)
		g.step(in, step, res)
		remaining -= step
	}
	if dtMs > 0 {
		st.Player.ApplyFriction(g.cfg.Physics.Friction)
		for i := range st.Obstacles {
			st.Obstacles[i].Spin()
		}
	}
	st.Tick++
}

func (g *Game) step(in core.InputFrame, dtMs float64, res *TickResult) {
	st := &g.state
	p := &st.Player

	st.ElapsedMs += dtMs
	level := g.difficulty.Scalar(st.ElapsedMs)

	wasGrounded := p.OnGround()
	if p.Update(in, dtMs, &g.cfg) {
		res.add(Event{Kind: EventJump})
	}

	g.spawner.Update(st, dtMs, res)

	groundLevel := g.cfg.Field.GroundLevel()
	for i := range st.Obstacles {
		st.Obstacles[i].Update(dtMs, level, g.cfg.Physics, groundLevel)
	}
	for i := range st.Platforms {
		st.Platforms[i].Update(dtMs, level)
	}

	g.resolveCollisions(res)
	if !wasGrounded && p.OnGround() {
		res.add(Event{Kind: EventLand})
	}

	if !p.Alive() {
		st.Phase = PhaseOver
		res.GameOver = true
		res.FinalScore = st.Score
		res.add(Event{Kind: EventGameOver})
		return
	}

	g.scoreSurvival(dtMs)
	g.prune(res)
}

// resolveCollisions removes every obstacle touching the player, costing one
// health point each, then lands the player on any table under their feet.
func (g *Game) resolveCollisions(res *TickResult) {
	st := &g.state
	p := &st.Player
	hitbox := p.Hitbox(g.cfg.Player.CrouchOffset)

	kept := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if p.Alive() && physics.Intersects(hitbox, o.Rect()) {
			if p.TakeHit(g.cfg.Player.InvulnerableMs) {
				res.add(Event{Kind: EventHit, Obstacle: o.Kind})
			}
			continue
		}
		kept = append(kept, o)
	}
	st.Obstacles = kept

	for i := range st.Platforms {
		surface := st.Platforms[i].Rect()
		if physics.IsOnTopOf(&p.Body, surface, g.cfg.Physics.LandingTolerance) {
			p.Land(surface.Y)
		}
	}
}

func (g *Game) scoreSurvival(dtMs float64) {
	st := &g.state
	interval := g.cfg.Scoring.SurvivalIntervalMs
	st.survivalCarry += dtMs
	points := int(st.survivalCarry / interval)
	st.survivalCarry -= float64(points) * interval
	st.Score += points
}

// prune drops entities that left the field on the left. Every obstacle that
// leaves this way counts as dodged.
func (g *Game) prune(res *TickResult) {
	st := &g.state

	obstacles := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if physics.PassedLeftEdge(o.Rect()) {
			st.Score += g.cfg.Scoring.DodgePoints
			st.Dodged++
			res.add(Event{Kind: EventDodge, Obstacle: o.Kind})
			continue
		}
		if g.inField(o.Rect()) {
			obstacles = append(obstacles, o)
		}
	}
	st.Obstacles = obstacles

	platforms := st.Platforms[:0]
	for _, p := range st.Platforms {
		if !physics.PassedLeftEdge(p.Rect()) && g.inField(p.Rect()) {
			platforms = append(platforms, p)
		}
	}
	st.Platforms = platforms
}

// inField reports whether r is still near enough to the field to matter.
// The margin covers the initial tables queued past the right edge.
func (g *Game) inField(r core.Rect) bool {
	return physics.WithinBounds(r, g.cfg.Field.Width, g.cfg.Field.Height, g.strayMargin)
}

func (g *Game) result(res TickResult) TickResult {
	res.Phase = g.state.Phase
	res.Score = g.state.Score
	res.Health = g.state.Player.Health
	return res
}

// SpawnObstacle inserts an obstacle of the given kind at the right edge,
// outside the regular spawn schedule.
func (g *Game) SpawnObstacle(kind ObstacleKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownObstacle, kind)
	}
	if g.state.Phase == PhaseOver {
		return ErrGameOver
	}
	g.state.Obstacles = append(g.state.Obstacles, newObstacle(kind, &g.cfg, g.spawner.rnd))
	return nil
}
