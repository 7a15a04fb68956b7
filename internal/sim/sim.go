// Package sim is the Solo Mission simulation core: entities, motion paths,
// scrolling backdrop, spawn timers, contact rules and game state.
// It has no rendering, input or I/O; a host drives it through the On* methods
// and mirrors entities through the Host interface.
package sim

import (
	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
)

// Stats counts what happened during a run.
type Stats struct {
	Elapsed            float64
	ShotsFired         int
	EnemiesSpawned     int
	EnemiesDestroyed   int
	EnemiesEscaped     int
	BonusesSpawned     int
	BonusesCaught      int
	StaleContacts      int
	IntervalReductions int
	DifficultySteps    int
}

// Options configures a new Sim.
type Options struct {
	Config     config.SoloConfig
	Difficulty *config.DifficultyManager // Defaults to one built from Config.Difficulty
	Seed       int64
	RNG        RNG  // Overrides Seed when set
	Host       Host // Defaults to NopHost
}

// Sim is one run of the game.
type Sim struct {
	cfg  config.SoloConfig
	diff *config.DifficultyManager
	rng  RNG

	world    *World
	motions  *MotionSystem
	effects  *EffectSystem
	sched    *Scheduler
	backdrop *Backdrop
	player   *PlayerController
	resolver *Resolver
	state    *GameState
	hud      HUD

	enemyInterval float64
	stats         Stats
	emitted       []Effect
}

// New builds a run and schedules the player's entrance. Nothing moves until
// the first OnFrameUpdate.
func New(opts Options) *Sim {
	cfg := opts.Config
	diff := opts.Difficulty
	if diff == nil {
		diff = config.NewDifficultyManager(cfg.Difficulty)
	}
	rng := opts.RNG
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}

	s := &Sim{
		cfg:  cfg,
		diff: diff,
		rng:  rng,
	}
	s.world = NewWorld(opts.Host)
	s.motions = NewMotionSystem(s.world)
	s.effects = NewEffectSystem(s.world, 1, cfg.Gameplay.ExplosionScale, cfg.Gameplay.ExplosionFade)
	s.sched = NewScheduler(func() bool { return !s.state.Terminal })
	s.state = NewGameState(cfg.Gameplay.Lives, cfg.Gameplay.GodMode, diff.StartMultiplier(),
		cfg.Gameplay.ScoreMilestone, cfg.Gameplay.DifficultyMilestone)
	s.enemyInterval = diff.StartInterval(cfg.Enemies.SpawnInterval, cfg.Enemies.MinInterval)
	s.hud = newHUD(s.state.Score, s.state.Lives)

	s.backdrop = NewBackdrop(s.world, rng, cfg.Scroll, cfg.World.Width, cfg.World.Height)
	s.player = NewPlayerController(s.world, s.motions, cfg.Player, cfg.World.Width, cfg.World.Height)
	s.resolver = &Resolver{
		world:      s.world,
		effects:    s.effects,
		topY:       cfg.World.Height,
		reward:     cfg.Enemies.Reward,
		lifeReward: cfg.Bonus.LifeReward,
		addScore:   s.addScore,
		addLives:   s.addLives,
		playerDown: s.enterTerminal,
	}

	s.sched.Schedule(TimerDelayed, cfg.Player.AppearDelay, false, func() {
		s.player.Appear(nil)
		s.startSpawning()
	})
	return s
}

// OnFrameUpdate advances the run by dt seconds. The order is fixed:
// backdrop, timers, motions, effects, contacts, then removal of dead entities.
// After the run ends nothing changes.
func (s *Sim) OnFrameUpdate(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if s.state.Terminal {
		return
	}
	s.stats.Elapsed += dt

	s.backdrop.Advance(dt)
	s.sched.Tick(dt)
	s.motions.Update(dt)
	if !s.state.Terminal {
		s.effects.Update(dt)
		s.player.Update(dt)
	}
	if s.cfg.Gameplay.CollisionMode != config.CollisionHost && !s.state.Terminal {
		s.detectContacts()
	}
	s.hud.Update(dt)
	s.world.Flush()
}

// OnTouchBegin fires a bullet. Returns the bullet, or nil if none was fired.
func (s *Sim) OnTouchBegin() *Entity {
	if s.state.Terminal {
		return nil
	}
	b := s.player.Fire()
	if b != nil {
		s.stats.ShotsFired++
	}
	return b
}

// OnTouchMoved moves the ship by each drag delta in order.
func (s *Sim) OnTouchMoved(deltas []core.Vec) {
	if s.state.Terminal {
		return
	}
	s.player.Drag(deltas)
}

// OnContact resolves a contact the host observed between two of its nodes.
// Unknown handles, destroyed entities and categories that disagree with the
// world are ignored.
func (s *Sim) OnContact(catA, catB Category, a, b Handle) ContactOutcome {
	if s.state.Terminal {
		return ContactIgnored
	}
	ea, okA := s.world.Lookup(a)
	eb, okB := s.world.Lookup(b)
	if !okA || !okB || ea.Category != catA || eb.Category != catB {
		return ContactIgnored
	}
	return s.resolve(ea, eb)
}

// ResolveContact resolves a contact between two entities by ID.
func (s *Sim) ResolveContact(a, b EntityID) ContactOutcome {
	if s.state.Terminal {
		return ContactIgnored
	}
	ea, okA := s.world.Get(a)
	eb, okB := s.world.Get(b)
	if !okA || !okB {
		return ContactIgnored
	}
	return s.resolve(ea, eb)
}

func (s *Sim) resolve(a, b *Entity) ContactOutcome {
	out := s.resolver.Resolve(a, b)
	switch out {
	case ContactBulletEnemy:
		s.stats.EnemiesDestroyed++
	case ContactBulletBonus:
		s.stats.BonusesCaught++
	case ContactBulletEnemyStale:
		s.stats.StaleContacts++
	}
	return out
}

// detectContacts checks every enemy and bonus against the ship and bullets.
func (s *Sim) detectContacts() {
	bullets := s.world.Live(CategoryBullet)
	ship := s.player.Ship
	for _, target := range s.world.Live(CategoryEnemy | CategoryBonus) {
		if target.Category == CategoryEnemy && !ship.Removed() && target.Box().Intersects(ship.Box()) {
			s.resolve(target, ship)
			continue
		}
		for _, b := range bullets {
			if target.Removed() {
				break
			}
			if b.Removed() {
				continue
			}
			if target.Box().Intersects(b.Box()) {
				s.resolve(target, b)
			}
		}
	}
}

func (s *Sim) addScore(amount int) {
	s.apply(s.state.AddScore(amount))
}

func (s *Sim) addLives(amount int) {
	s.apply(s.state.AddLives(amount))
}

// apply dispatches effects produced by a state transition.
func (s *Sim) apply(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectScoreText:
			s.hud.Score.Set(scoreText(e.Value))
		case EffectScoreBounce:
			s.hud.Score.Bounce()
		case EffectSpawnIntervalStep:
			s.ReconfigureEnemyInterval(s.diff.NextInterval(s.enemyInterval, s.cfg.Enemies.IntervalStep, s.cfg.Enemies.MinInterval))
		case EffectDifficultyStep:
			if s.state.RaiseMultiplier(s.diff.NextMultiplier(s.state.Multiplier, s.cfg.Gameplay.SpeedStep)) {
				s.stats.DifficultySteps++
			}
		case EffectLivesText:
			s.hud.Lives.Set(livesText(e.Value))
		case EffectLivesBounce:
			s.hud.Lives.Bounce()
		case EffectTerminal:
			s.state.EnterTerminal()
		}
		s.emitted = append(s.emitted, e)
	}
}

func (s *Sim) enterTerminal() {
	if s.state.EnterTerminal() {
		s.emitted = append(s.emitted, Effect{Kind: EffectTerminal, Value: s.state.Lives})
	}
}

// DrainEffects returns the effects applied since the last call.
func (s *Sim) DrainEffects() []Effect {
	out := s.emitted
	s.emitted = nil
	return out
}

// Score returns the current score.
func (s *Sim) Score() int { return s.state.Score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.state.Lives }

// Multiplier returns the enemy speed multiplier.
func (s *Sim) Multiplier() float64 { return s.state.Multiplier }

// Terminal reports whether the run is over.
func (s *Sim) Terminal() bool { return s.state.Terminal }

// EnemyInterval returns the current seconds between enemy spawns.
func (s *Sim) EnemyInterval() float64 { return s.enemyInterval }

// Stats returns the run counters.
func (s *Sim) Stats() Stats { return s.stats }

// HUD returns the score and lives labels.
func (s *Sim) HUD() HUD { return s.hud }

// World returns the entity store.
func (s *Sim) World() *World { return s.world }

// Motions returns the motion registry.
func (s *Sim) Motions() *MotionSystem { return s.motions }

// Backdrop returns the scrolling layers.
func (s *Sim) Backdrop() *Backdrop { return s.backdrop }

// Player returns the ship entity.
func (s *Sim) Player() *Entity { return s.player.Ship }

// PlayerReady reports whether the ship has finished flying in.
func (s *Sim) PlayerReady() bool { return s.player.Ready() }

// Config returns the configuration the run was built with.
func (s *Sim) Config() config.SoloConfig { return s.cfg }
