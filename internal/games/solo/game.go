// Package solo adapts the Solo Mission simulation to the arcade platform.
// Keyboard actions become drag deltas and taps, the fixed platform tick
// becomes the frame delta, and the world is drawn into a character screen.
package solo

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solo-mission/internal/config"
	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/registry"
	"github.com/vovakirdan/solo-mission/internal/sim"
)

// DragStep is how far one movement key press drags the ship, in world units.
const DragStep = 30.0

// Variant is a registered flavor of the game.
type Variant struct {
	ID       string
	Title    string
	GodMode  bool // Lives never end the run
	Vertical bool // Ship may also move up and down
}

// Registered variants.
var (
	VariantClassic = Variant{ID: "solo", Title: "Solo Mission"}
	VariantGod     = Variant{ID: "solo_god", Title: "Solo Mission (God Mode)", GodMode: true}
	VariantFree    = Variant{ID: "solo_free", Title: "Solo Mission (Free Flight)", Vertical: true}
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. Games are silent by default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	variant   Variant
	runtime   core.RuntimeConfig
	fixedCfg  *config.SoloConfig
	cfg       config.SoloConfig
	sim       *sim.Sim
	contacts  *contactHost // Set when contacts are reported by the adapter
	autopilot *Autopilot
	paused    bool
	tickCount int
}

// New creates a game that loads its config on every Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that always runs with cfg.
// Variant flags and the difficulty preset are still applied on top.
func NewWithConfig(v Variant, cfg config.SoloConfig) *Game {
	return &Game{variant: v, fixedCfg: &cfg}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the variant display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// SetAutopilot lets a computer pilot fly the ship. Nil hands control back.
func (g *Game) SetAutopilot(a *Autopilot) {
	g.autopilot = a
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.paused = false
	g.tickCount = 0

	difficulty := config.NewDifficultyManager(g.cfg.Difficulty)
	opts := sim.Options{
		Config:     g.cfg,
		Difficulty: difficulty,
		Seed:       runtime.Seed,
	}
	g.contacts = nil
	if g.cfg.Gameplay.CollisionMode == config.CollisionHost {
		g.contacts = newContactHost()
		opts.Host = g.contacts
	}
	g.sim = sim.New(opts)
	if g.autopilot != nil {
		g.autopilot.Reset()
	}

	logger.Debug("run started",
		"variant", g.variant.ID,
		"seed", runtime.Seed,
		"lives", g.cfg.Gameplay.Lives,
		"interval", g.sim.EnemyInterval(),
		"multiplier", g.sim.Multiplier(),
		"collisions", g.cfg.Gameplay.CollisionMode,
	)
}

func (g *Game) loadConfig() config.SoloConfig {
	var cfg config.SoloConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, err := config.LoadSolo(configPath)
		if err != nil {
			logger.Warn("falling back to default config", "error", err)
			loaded = config.DefaultSoloConfig()
		}
		cfg = loaded
	}

	if difficultyPreset != "" {
		config.ApplySoloPreset(&cfg, difficultyPreset)
	}
	if g.variant.GodMode {
		cfg.Gameplay.GodMode = true
	}
	if g.variant.Vertical {
		cfg.Player.VerticalMovement = true
	}
	return cfg
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.sim.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.autopilot != nil {
		in = g.autopilot.Decide(g.sim)
	}

	if d := dragDelta(in); d != (core.Vec{}) {
		g.sim.OnTouchMoved([]core.Vec{d})
	}
	if in.Has(core.ActionFire) {
		g.sim.OnTouchBegin()
	}

	g.sim.OnFrameUpdate(g.runtime.TickSeconds())
	if g.contacts != nil {
		g.contacts.report(g.sim)
	}
	g.logEffects()

	return core.StepResult{State: g.State()}
}

// dragDelta turns movement key presses into a single drag delta.
func dragDelta(in core.InputFrame) core.Vec {
	dx := float64(in.Count(core.ActionRight)-in.Count(core.ActionLeft)) * DragStep
	dy := float64(in.Count(core.ActionUp)-in.Count(core.ActionDown)) * DragStep
	return core.V(dx, dy)
}

func (g *Game) logEffects() {
	for _, e := range g.sim.DrainEffects() {
		switch e.Kind {
		case sim.EffectSpawnIntervalStep:
			logger.Debug("spawn interval reduced", "score", e.Value, "interval", g.sim.EnemyInterval())
		case sim.EffectDifficultyStep:
			logger.Debug("difficulty raised", "score", e.Value, "multiplier", g.sim.Multiplier())
		case sim.EffectTerminal:
			st := g.sim.Stats()
			logger.Info("run over",
				"variant", g.variant.ID,
				"score", g.sim.Score(),
				"elapsed", st.Elapsed,
				"destroyed", st.EnemiesDestroyed,
				"escaped", st.EnemiesEscaped,
			)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		GameOver: g.sim.Terminal(),
		Paused:   g.paused,
	}
}

// Stats returns the counters of the current run.
func (g *Game) Stats() sim.Stats {
	if g.sim == nil {
		return sim.Stats{}
	}
	return g.sim.Stats()
}

// Ticks returns how many unpaused ticks the run has taken.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.SoloConfig {
	return g.cfg
}

// Register the variants with the registry
func init() {
	for _, v := range []Variant{VariantClassic, VariantGod, VariantFree} {
		v := v // per-iteration copy (go1.21 loop semantics)
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
