package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stackduel/internal/core"
	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
	"github.com/vovakirdan/stackduel/internal/registry"
	"github.com/vovakirdan/stackduel/internal/storage"

	_ "github.com/vovakirdan/stackduel/internal/games/stackduel"
)

// stubGame ends after its first step.
type stubGame struct {
	resets int
	steps  int
	last   core.InputFrame
	audio  engine.Audio
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 120, GameOver: g.steps > 0}
}

func (g *stubGame) Summary() core.MatchSummary {
	return core.MatchSummary{Mode: "stub", Winner: "human", Score: 120, MaxCombo: 2}
}

func (g *stubGame) SetAudio(a engine.Audio) { g.audio = a }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &stubGame{}
	m := NewModel(game, store, core.DefaultConfig(), engine.NopAudio{})
	if game.audio == nil {
		t.Error("audio should be handed to the game")
	}
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, _ := store.TopScores("stub", 10)
	results, _ := store.RecentDuelResults("stub", 10)
	if len(scores) != 1 || len(results) != 1 {
		t.Fatalf("saved %d scores and %d results, expected one each", len(scores), len(results))
	}
	if results[0].Winner != "human" || results[0].MaxCombo != 2 {
		t.Errorf("result = %+v", results[0])
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("enter after game over should restart, resets = %d", game.resets)
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	update(t, m, TickMsg{})

	if game.last.Count(core.ActionLeft) != 2 || !game.last.Has(core.ActionSwap) {
		t.Errorf("game saw %v", game.last.Actions)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game, err := registry.Create("stackduel")
	if err != nil {
		t.Fatal(err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	m := NewModel(game, nil, cfg, nil)
	m.Init()

	m = update(t, m, runeKey('b'))
	m = update(t, m, TickMsg{})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the match runs")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.DefaultConfig(), nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 1 {
		t.Error("resize should not restart the match")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
