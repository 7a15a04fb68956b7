package solo

import (
	"math"

	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/sim"
)

// Autopilot defaults
const (
	DefaultFireEvery   = 8 // Ticks between shots
	DefaultMaxPresses  = 2 // Movement presses per tick
	DefaultDodgeRadius = 1.5
)

// Autopilot flies the ship for demos and headless runs. It lines up under
// the lowest enemy on screen and fires in bursts; an enemy about to ram
// the ship takes priority and is dodged instead.
type Autopilot struct {
	FireEvery   int
	MaxPresses  int
	DodgeRadius float64 // In ship widths

	sinceShot int
}

// NewAutopilot creates an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		FireEvery:   DefaultFireEvery,
		MaxPresses:  DefaultMaxPresses,
		DodgeRadius: DefaultDodgeRadius,
	}
}

// Reset clears per-run state.
func (a *Autopilot) Reset() {
	a.sinceShot = a.FireEvery
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(s *sim.Sim) core.InputFrame {
	in := core.NewInputFrame()
	a.sinceShot++

	ship := s.Player()
	if ship.Removed() || !s.PlayerReady() {
		return in
	}

	if threat := a.threat(s, ship); threat != nil {
		a.steer(&in, ship.Pos.X, a.dodgeX(s, ship, threat))
		return in
	}

	target := a.target(s, ship)
	if target == nil {
		return in
	}
	a.steer(&in, ship.Pos.X, target.Pos.X)

	if math.Abs(target.Pos.X-ship.Pos.X) <= target.Size.X/2 && a.sinceShot >= a.FireEvery {
		in.Set(core.ActionFire)
		a.sinceShot = 0
	}
	return in
}

// target picks the lowest enemy that is on screen and above the ship.
// Bonus ships are chased only when no enemy is in reach.
func (a *Autopilot) target(s *sim.Sim, ship *sim.Entity) *sim.Entity {
	top := s.Config().World.Height
	var best *sim.Entity
	s.World().Each(sim.CategoryEnemy, func(e *sim.Entity) {
		if e.Pos.Y >= top || e.Pos.Y <= ship.Pos.Y {
			return
		}
		if best == nil || e.Pos.Y < best.Pos.Y {
			best = e
		}
	})
	if best != nil {
		return best
	}
	s.World().Each(sim.CategoryBonus, func(e *sim.Entity) {
		if best == nil {
			best = e
		}
	})
	return best
}

// threat returns an enemy close enough above the ship to ram it.
func (a *Autopilot) threat(s *sim.Sim, ship *sim.Entity) *sim.Entity {
	reach := ship.Size.X * a.DodgeRadius
	var found *sim.Entity
	s.World().Each(sim.CategoryEnemy, func(e *sim.Entity) {
		if found != nil {
			return
		}
		dy := e.Pos.Y - ship.Pos.Y
		if dy > 0 && dy < ship.Size.Y*2 && math.Abs(e.Pos.X-ship.Pos.X) < reach {
			found = e
		}
	})
	return found
}

// dodgeX picks the side of the threat with more room.
func (a *Autopilot) dodgeX(s *sim.Sim, ship, threat *sim.Entity) float64 {
	reach := ship.Size.X * a.DodgeRadius
	if threat.Pos.X > s.Config().World.Width/2 {
		return threat.Pos.X - reach*1.5
	}
	return threat.Pos.X + reach*1.5
}

// steer presses left or right toward x.
func (a *Autopilot) steer(in *core.InputFrame, from, to float64) {
	dx := to - from
	presses := int(math.Min(math.Abs(dx)/DragStep, float64(a.MaxPresses)))
	action := core.ActionRight
	if dx < 0 {
		action = core.ActionLeft
	}
	for i := 0; i < presses; i++ {
		in.Set(action)
	}
}
