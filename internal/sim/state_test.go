package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countKind(effects []Effect, kind EffectKind) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestAddScoreMilestones(t *testing.T) {
	tests := []struct {
		name            string
		start, amount   int
		intervalSteps   int
		difficultySteps int
	}{
		{"900 to 1000", 900, 100, 1, 0},
		{"1000 to 1100", 1000, 100, 0, 0},
		{"1900 to 2000", 1900, 100, 1, 1},
		{"950 to 1050 skips the multiple", 950, 100, 0, 0},
		{"0 to 100", 0, 100, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGameState(3, false, 1, 1000, 2000)
			g.Score = tc.start
			effects := g.AddScore(tc.amount)

			assert.Equal(t, tc.start+tc.amount, g.Score)
			assert.Equal(t, tc.intervalSteps, countKind(effects, EffectSpawnIntervalStep))
			assert.Equal(t, tc.difficultySteps, countKind(effects, EffectDifficultyStep))
			assert.Equal(t, EffectScoreText, effects[0].Kind, "text update comes first")
			assert.Equal(t, EffectScoreBounce, effects[1].Kind)
		})
	}
}

func TestAddScoreNeverNegative(t *testing.T) {
	g := NewGameState(3, false, 1, 1000, 2000)
	g.AddScore(50)
	g.AddScore(-500)
	assert.Equal(t, 0, g.Score)
}

func TestAddLivesTerminal(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		amount    int
		godMode   bool
		wantLives int
		terminal  bool
	}{
		{"last life lost", 1, -1, false, 0, true},
		{"life lost with lives left", 3, -1, false, 2, false},
		{"god mode reaches zero", 1, -1, true, 0, false},
		{"god mode never negative", 1, -5, true, 0, false},
		{"bonus life", 2, 1, false, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGameState(tc.lives, tc.godMode, 1, 1000, 2000)
			effects := g.AddLives(tc.amount)

			assert.Equal(t, tc.wantLives, g.Lives)
			assert.Equal(t, EffectLivesText, effects[0].Kind)
			assert.Equal(t, EffectLivesBounce, effects[1].Kind)
			if tc.terminal {
				assert.Equal(t, 1, countKind(effects, EffectTerminal))
			} else {
				assert.Zero(t, countKind(effects, EffectTerminal))
			}
			assert.False(t, g.Terminal, "AddLives reports the transition but does not apply it")
		})
	}
}

func TestTerminalIsAbsorbing(t *testing.T) {
	g := NewGameState(3, false, 1, 1000, 2000)
	g.Score = 300

	assert.True(t, g.EnterTerminal())
	assert.False(t, g.EnterTerminal())

	assert.Nil(t, g.AddScore(100))
	assert.Nil(t, g.AddLives(-1))
	assert.False(t, g.RaiseMultiplier(5))
	assert.Equal(t, 300, g.Score)
	assert.Equal(t, 3, g.Lives)
	assert.Equal(t, 1.0, g.Multiplier)
}

func TestRaiseMultiplierMonotonic(t *testing.T) {
	g := NewGameState(3, false, 1.2, 1000, 2000)
	assert.False(t, g.RaiseMultiplier(1.1))
	assert.False(t, g.RaiseMultiplier(1.2))
	assert.True(t, g.RaiseMultiplier(1.3))
	assert.Equal(t, 1.3, g.Multiplier)
}

func TestZeroAmountIsNoop(t *testing.T) {
	g := NewGameState(3, false, 1, 1000, 2000)
	assert.Nil(t, g.AddScore(0))
	assert.Nil(t, g.AddLives(0))
}
