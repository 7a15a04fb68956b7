package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/solo-mission/internal/core"
	"github.com/vovakirdan/solo-mission/internal/games/solo"
)

func sessionConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 3}
}

func TestMenuListsVariants(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(solo.VariantGod.ID, 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, sessionConfig())
	view := m.View()

	for _, v := range []solo.Variant{solo.VariantClassic, solo.VariantGod, solo.VariantFree} {
		if !strings.Contains(view, v.Title) {
			t.Errorf("menu should list %q", v.Title)
		}
	}
	if !strings.Contains(view, "(best 900)") {
		t.Error("menu should show the best score of a variant")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, sessionConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("select should end the standalone menu")
	}
	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID {
		t.Errorf("expected second item to be selected, got %+v", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, sessionConfig())
	next, cmd := m.Update(runeKey('q'))
	m = next.(MenuModel)

	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("nothing should be selected")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() should not trim, got %q", got)
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionMenuToRunAndBack(t *testing.T) {
	m := NewSessionModel(nil, sessionConfig(), nil)
	if len(m.ID()) != 36 {
		t.Errorf("session id should be a UUID, got %q", m.ID())
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("enter should start a run")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("run view should show the HUD, got %q", m.View())
	}

	// Pause, then leave the run.
	m = sessionUpdate(t, m, runeKey('p'))
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.game != nil {
		t.Fatal("back while paused should return to the menu")
	}
	if !strings.Contains(m.View(), "Select a variant") {
		t.Error("menu should be shown again")
	}

	// Stray ticks from the finished run are ignored by the menu.
	m = sessionUpdate(t, m, TickMsg{})
	if m.game != nil || m.quitting {
		t.Error("tick should not affect the menu")
	}
}

func TestSessionQuitFromRun(t *testing.T) {
	m := NewSessionModel(nil, sessionConfig(), nil)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sessionUpdate(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
