package sim

import (
	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
)

// PlayerController owns the player ship: drag movement, firing and the
// opening fly-in.
type PlayerController struct {
	Ship *Entity

	world    *World
	motions  *MotionSystem
	cfg      config.PlayerConfig
	worldW   float64
	worldH   float64
	cooldown float64
	ready    bool
}

// NewPlayerController spawns the ship just below the screen.
func NewPlayerController(world *World, motions *MotionSystem, cfg config.PlayerConfig, worldW, worldH float64) *PlayerController {
	size := core.V(cfg.Width, cfg.Height)
	ship := world.Spawn(CategoryPlayer, "player", core.V(worldW/2, -cfg.Height), size)
	return &PlayerController{
		Ship:    ship,
		world:   world,
		motions: motions,
		cfg:     cfg,
		worldW:  worldW,
		worldH:  worldH,
	}
}

// Appear flies the ship up to its resting height. onArrive runs once it gets there.
func (p *PlayerController) Appear(onArrive func()) {
	from := p.Ship.Pos
	to := core.V(from.X, p.worldH*p.cfg.StartFraction)
	p.motions.Begin(p.Ship, Straight(from, to, p.cfg.AppearDuration), func() {
		p.ready = true
		if onArrive != nil {
			onArrive()
		}
	})
}

// Ready reports whether the fly-in has finished. Drag input is ignored until then.
func (p *PlayerController) Ready() bool {
	return p.ready
}

// Alive reports whether the ship is still in play.
func (p *PlayerController) Alive() bool {
	return !p.Ship.Removed()
}

// Drag applies each touch delta in order, clamping to the allowed area.
func (p *PlayerController) Drag(deltas []core.Vec) {
	if !p.ready || !p.Alive() {
		return
	}
	pos := p.Ship.Pos
	halfW := p.cfg.Width / 2
	for _, d := range deltas {
		pos.X = core.ClampF(pos.X+d.X, halfW, p.worldW-halfW)
		if p.cfg.VerticalMovement {
			pos.Y = core.ClampF(pos.Y+d.Y, p.worldH*p.cfg.MinYFraction, p.worldH*p.cfg.MaxYFraction)
		}
	}
	p.world.Move(p.Ship, pos)
}

// Fire launches a bullet from the ship's top edge straight to the top of the
// screen. Returns nil when the ship is gone or the cooldown is running.
func (p *PlayerController) Fire() *Entity {
	if !p.Alive() || p.cooldown > 0 {
		return nil
	}
	from := core.V(p.Ship.Pos.X, p.Ship.Pos.Y+p.cfg.Height/2)
	to := core.V(from.X, p.worldH)
	bullet := p.world.Spawn(CategoryBullet, "bullet", from, core.V(p.cfg.BulletWidth, p.cfg.BulletHeight))
	p.motions.Begin(bullet, Straight(from, to, DurationFor(from, to, p.cfg.BulletSpeed)), func() {
		p.world.Remove(bullet)
	})
	p.cooldown = p.cfg.FireCooldown
	return bullet
}

// Update counts the fire cooldown down.
func (p *PlayerController) Update(dt float64) {
	if p.cooldown > 0 {
		p.cooldown -= dt
	}
}
