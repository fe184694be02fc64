package survival

import (
	"github.com/vovakirdan/school-survival/internal/config"
	"github.com/vovakirdan/school-survival/internal/core"
	"github.com/vovakirdan/school-survival/internal/physics"
)

// Player is the student controlled by the input provider.
type Player struct {
	physics.Body
	Health      int
	MaxHealth   int
	Crouching   bool
	FacingRight bool

	invulnerableMs float64 // Remaining grace period after a hit
}

func newPlayer(cfg *config.SurvivalConfig) Player {
	pc := cfg.Player
	p := Player{
		Body: physics.Body{
			X: pc.StartX,
			W: pc.Width,
			H: pc.Height,
		},
		Health:      pc.MaxHealth,
		MaxHealth:   pc.MaxHealth,
		FacingRight: true,
	}
	p.Land(cfg.Field.FloorY())
	return p
}

// OnGround reports whether the player stands on the floor or a platform.
func (p *Player) OnGround() bool {
	return p.Resting
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Invulnerable reports whether a recent hit still protects the player.
func (p *Player) Invulnerable() bool {
	return p.invulnerableMs > 0
}

// HandleInput applies one held-input frame to the player's velocity.
// Right wins when both directions are held. Reports whether a jump started.
func (p *Player) HandleInput(in core.InputFrame, pc config.PlayerConfig) bool {
	p.Crouching = in.Has(core.ActionCrouch)

	switch {
	case in.Has(core.ActionMoveRight):
		p.VX = pc.Speed
		p.FacingRight = true
	case in.Has(core.ActionMoveLeft):
		p.VX = -pc.Speed
		p.FacingRight = false
	}

	if in.Has(core.ActionJump) && p.OnGround() && !p.Crouching {
		p.VY = -pc.JumpPower
		p.Resting = false
		return true
	}
	return false
}

// Update runs input handling and physics for one sub-step. Friction is
// left to the caller, once per tick.
// Reports whether a jump started.
func (p *Player) Update(in core.InputFrame, dtMs float64, cfg *config.SurvivalConfig) bool {
	jumped := p.HandleInput(in, cfg.Player)

	p.Integrate(dtMs, cfg.Physics.Gravity)
	p.SettleOnFloor(cfg.Field.FloorY())
	p.ClampX(0, cfg.Field.Width)

	if p.invulnerableMs > 0 {
		p.invulnerableMs = max(0, p.invulnerableMs-dtMs)
	}
	return jumped
}

// Hitbox returns the rectangle obstacles are tested against.
// Crouching removes the top crouchOffset pixels.
func (p *Player) Hitbox(crouchOffset float64) core.Rect {
	r := p.Rect()
	if p.Crouching {
		r.Y += crouchOffset
		r.H -= crouchOffset
	}
	return r
}

// TakeHit removes one health point unless the player is protected or
// already dead. Reports whether health was lost.
func (p *Player) TakeHit(graceMs float64) bool {
	if !p.Alive() || p.Invulnerable() {
		return false
	}
	p.Health--
	p.invulnerableMs = graceMs
	return true
}
