package sim

import "math"

// Explosion is a running scale-and-fade effect.
type Explosion struct {
	Entity  *Entity
	Elapsed float64

	onComplete func()
}

// EffectSystem plays explosions. An explosion replaces its target at once and
// reports completion only after it has faded out.
type EffectSystem struct {
	world       *World
	targetScale float64
	scaleTime   float64
	fadeTime    float64
	active      []*Explosion
}

// NewEffectSystem creates an effect player. Explosions grow to targetScale
// over scaleTime and fade to transparent over fadeTime, both starting together.
func NewEffectSystem(world *World, targetScale, scaleTime, fadeTime float64) *EffectSystem {
	return &EffectSystem{
		world:       world,
		targetScale: targetScale,
		scaleTime:   scaleTime,
		fadeTime:    fadeTime,
	}
}

// Duration returns the seconds an explosion plays.
func (fx *EffectSystem) Duration() float64 {
	return math.Max(fx.scaleTime, fx.fadeTime)
}

// Explode removes target and starts an explosion where it was.
// Returns nil if target is already gone.
func (fx *EffectSystem) Explode(target *Entity, onComplete func()) *Entity {
	if target == nil || target.Removed() {
		return nil
	}
	boom := fx.world.Spawn(CategoryEffect, "explosion", target.Pos, target.Size)
	fx.world.SetAppearance(boom, 0, 1)
	fx.world.Remove(target)
	fx.active = append(fx.active, &Explosion{Entity: boom, onComplete: onComplete})
	return boom
}

// Active returns the number of explosions still playing.
func (fx *EffectSystem) Active() int {
	return len(fx.active)
}

// Update advances every explosion. Finished ones are removed and their
// callbacks run after the walk, each exactly once.
func (fx *EffectSystem) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	var done []func()
	kept := fx.active[:0]
	for _, ex := range fx.active {
		ex.Elapsed += dt
		fx.world.SetAppearance(ex.Entity, fx.targetScale*ratio(ex.Elapsed, fx.scaleTime), 1-ratio(ex.Elapsed, fx.fadeTime))
		if ex.Elapsed >= fx.Duration() {
			fx.world.Remove(ex.Entity)
			if ex.onComplete != nil {
				done = append(done, ex.onComplete)
			}
			continue
		}
		kept = append(kept, ex)
	}
	for i := len(kept); i < len(fx.active); i++ {
		fx.active[i] = nil
	}
	fx.active = kept

	for _, fn := range done {
		fn()
	}
}

func ratio(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return math.Min(1, elapsed/total)
}
