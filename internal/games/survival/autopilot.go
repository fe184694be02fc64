package survival

import "github.com/vovakirdan/school-survival/internal/core"

// Autopilot is a simple reactive player used by the sim command and tests.
// It crouches under high obstacles and jumps over low ones.
type Autopilot struct {
	Reach        float64 // Horizontal distance at which it reacts, in px
	CrouchOffset float64 // Must match the player's crouch_offset
}

// NewAutopilot creates an autopilot for a game's config.
func NewAutopilot(g *Game) Autopilot {
	return Autopilot{
		Reach:        90,
		CrouchOffset: g.cfg.Player.CrouchOffset,
	}
}

// Input chooses the held actions for the next tick.
func (a Autopilot) Input(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := s.Player

	// Hold position around the start line.
	switch {
	case p.X < 80:
		in.Set(core.ActionMoveRight)
	case p.X > 160:
		in.Set(core.ActionMoveLeft)
	}

	for _, o := range s.Obstacles {
		gap := o.X - (p.X + p.W)
		if o.X+o.W < p.X || gap > a.Reach {
			continue
		}
		bottom := o.Y + o.H
		if bottom <= p.Y {
			continue // passes overhead
		}
		if bottom <= p.Y+a.CrouchOffset {
			in.Set(core.ActionCrouch)
			continue
		}
		if p.OnGround {
			in.Set(core.ActionJump)
		}
	}
	if in.Has(core.ActionJump) {
		in.Release(core.ActionCrouch)
	}
	return in
}
