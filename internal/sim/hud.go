package sim

import (
	"fmt"
	"math"
)

const (
	bounceDuration = 0.2
	bounceScale    = 1.5
)

// Label is a HUD text with a pulse animation.
type Label struct {
	Text  string
	Scale float64

	pulse float64
}

// Set replaces the label text.
func (l *Label) Set(text string) {
	l.Text = text
}

// Bounce starts a pulse, restarting one already running.
func (l *Label) Bounce() {
	l.pulse = bounceDuration
}

// Bouncing reports whether a pulse is running.
func (l *Label) Bouncing() bool {
	return l.pulse > 0
}

// Update advances the pulse. Scale rises to bounceScale and returns to 1.
func (l *Label) Update(dt float64) {
	if l.pulse <= 0 {
		l.Scale = 1
		return
	}
	l.pulse = math.Max(0, l.pulse-dt)
	p := 1 - l.pulse/bounceDuration
	l.Scale = 1 + (bounceScale-1)*math.Sin(math.Pi*p)
}

// HUD holds the score and lives labels.
type HUD struct {
	Score Label
	Lives Label
}

func newHUD(score, lives int) HUD {
	h := HUD{
		Score: Label{Scale: 1},
		Lives: Label{Scale: 1},
	}
	h.Score.Set(scoreText(score))
	h.Lives.Set(livesText(lives))
	return h
}

// Update advances both pulses.
func (h *HUD) Update(dt float64) {
	h.Score.Update(dt)
	h.Lives.Update(dt)
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func livesText(lives int) string {
	return fmt.Sprintf("Lives: %d", lives)
}
