package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stackduel/internal/config"
	"github.com/vovakirdan/stackduel/internal/core"
)

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	view := m.View()
	for _, want := range []string{"Stack Duel", "Stack Duel: Time Attack"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != "stackduel_timeattack" {
		t.Errorf("selected %+v, expected time attack", sel)
	}
}

func TestMenuScoreboardKey(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestDifficultySelector(t *testing.T) {
	m := NewDifficultyModel("Stack Duel", 80, 24)
	if m.Selected() != "" || !m.IsChoosing() {
		t.Fatal("nothing should be selected yet")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(DifficultyModel).Selected(); got != config.DifficultyHard {
		t.Errorf("selected %q, expected hard", got)
	}

	back, _ := NewDifficultyModel("Stack Duel", 80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(DifficultyModel).WantsBack() {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, core.DefaultConfig(), "tester")
	state := func() sessionState { return m.(SessionModel).state }

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if state() != stateDifficulty {
		t.Fatalf("state = %v, expected difficulty", state())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if state() != stateMenu {
		t.Fatalf("esc should return to the menu, state = %v", state())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if state() != stateGame {
		t.Fatalf("state = %v, expected game", state())
	}
	if id := m.(SessionModel).gameModel.game.ID(); id != "stackduel" {
		t.Errorf("started %q", id)
	}

	m, _ = m.Update(runeKey('p'))
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(runeKey('b'))
	if state() != stateMenu {
		t.Fatalf("back from a paused match should show the menu, state = %v", state())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if state() != stateScoreboard {
		t.Fatalf("state = %v, expected scoreboard", state())
	}
	m, _ = m.Update(runeKey('b'))
	if state() != stateMenu {
		t.Errorf("back from the scoreboard should show the menu, state = %v", state())
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q should quit the session")
	}
}
