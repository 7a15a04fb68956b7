package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/solo-mission/internal/games/solo"
	"github.com/vovakirdan/solo-mission/internal/storage"
)

func TestScoreboardToggleRuns(t *testing.T) {
	store := openStore(t)
	store.SaveScore(solo.VariantClassic.ID, 1200)
	store.SaveRun(storage.RunRecord{Variant: solo.VariantClassic.ID, Seed: 4242, Score: 1200, Destroyed: 12})

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "HIGH SCORES - Solo Mission") {
		t.Fatalf("expected high scores title, got %q", m.View())
	}
	if !strings.Contains(m.View(), "1200") {
		t.Error("high score should be listed")
	}
	if !strings.Contains(m.View(), "Runs scored: 1") {
		t.Error("summary line should be shown")
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	view := m.View()
	if !strings.Contains(view, "LATEST RUNS") {
		t.Errorf("expected runs title, got %q", view)
	}
	if !strings.Contains(view, "4242") {
		t.Error("run seed should be listed")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Errorf("expected empty message, got %q", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if cmd == nil || !m.IsGoingBack() {
		t.Error("esc should go back")
	}
}
