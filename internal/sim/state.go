package sim

// EffectKind names a consequence of a state change.
type EffectKind int

const (
	EffectScoreText EffectKind = iota
	EffectScoreBounce
	EffectSpawnIntervalStep
	EffectDifficultyStep
	EffectLivesText
	EffectLivesBounce
	EffectTerminal
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectScoreText:
		return "score_text"
	case EffectScoreBounce:
		return "score_bounce"
	case EffectSpawnIntervalStep:
		return "spawn_interval_step"
	case EffectDifficultyStep:
		return "difficulty_step"
	case EffectLivesText:
		return "lives_text"
	case EffectLivesBounce:
		return "lives_bounce"
	case EffectTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Effect is a derived action produced by a state transition.
// Value carries the new score or lives where relevant.
type Effect struct {
	Kind  EffectKind
	Value int
}

// GameState holds score, lives and the difficulty multiplier. Its methods
// only mutate and report effects; applying them is the caller's job.
type GameState struct {
	Score      int
	Lives      int
	Multiplier float64
	Terminal   bool
	GodMode    bool

	scoreMilestone      int
	difficultyMilestone int
}

// NewGameState creates the opening state of a run.
func NewGameState(lives int, godMode bool, multiplier float64, scoreMilestone, difficultyMilestone int) *GameState {
	return &GameState{
		Lives:               lives,
		Multiplier:          multiplier,
		GodMode:             godMode,
		scoreMilestone:      scoreMilestone,
		difficultyMilestone: difficultyMilestone,
	}
}

// AddScore adds amount to the score. Score never drops below zero.
// Landing exactly on a milestone multiple yields the matching step effect.
func (g *GameState) AddScore(amount int) []Effect {
	if g.Terminal || amount == 0 {
		return nil
	}
	g.Score += amount
	if g.Score < 0 {
		g.Score = 0
	}
	effects := []Effect{
		{Kind: EffectScoreText, Value: g.Score},
		{Kind: EffectScoreBounce, Value: g.Score},
	}
	if onMilestone(g.Score, g.scoreMilestone) {
		effects = append(effects, Effect{Kind: EffectSpawnIntervalStep, Value: g.Score})
	}
	if onMilestone(g.Score, g.difficultyMilestone) {
		effects = append(effects, Effect{Kind: EffectDifficultyStep, Value: g.Score})
	}
	return effects
}

// AddLives adds amount (possibly negative) to lives. Reaching zero ends the
// run unless god mode is on, in which case lives stop at zero.
func (g *GameState) AddLives(amount int) []Effect {
	if g.Terminal || amount == 0 {
		return nil
	}
	g.Lives += amount
	if g.GodMode && g.Lives < 0 {
		g.Lives = 0
	}
	effects := []Effect{
		{Kind: EffectLivesText, Value: g.Lives},
		{Kind: EffectLivesBounce, Value: g.Lives},
	}
	if g.Lives <= 0 && !g.GodMode {
		effects = append(effects, Effect{Kind: EffectTerminal, Value: g.Lives})
	}
	return effects
}

// RaiseMultiplier sets the multiplier if next is larger.
func (g *GameState) RaiseMultiplier(next float64) bool {
	if g.Terminal || next <= g.Multiplier {
		return false
	}
	g.Multiplier = next
	return true
}

// EnterTerminal ends the run. It reports false if the run had already ended.
func (g *GameState) EnterTerminal() bool {
	if g.Terminal {
		return false
	}
	g.Terminal = true
	return true
}

func onMilestone(score, milestone int) bool {
	return milestone > 0 && score > 0 && score%milestone == 0
}
