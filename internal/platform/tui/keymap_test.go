package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stackduel/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"wasd down", runeKey('s'), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"wasd right", runeKey('d'), core.ActionRight, false},
		{"space swaps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionSwap, false},
		{"x swaps", runeKey('x'), core.ActionSwap, false},
		{"r raises", runeKey('r'), core.ActionRaise, false},
		{"shift r raises", runeKey('R'), core.ActionRaise, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameCountsRepeats(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if got := frame.Count(core.ActionRight); got != 2 {
		t.Errorf("Count(Right) = %d, expected 2", got)
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) || frame.Has(core.ActionQuit) {
		t.Error("quit should be reported, not recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"k":     {runeKey('k'), MenuActionUp},
		"down":  {tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		"enter": {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"b":     {runeKey('b'), MenuActionBack},
		"tab":   {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"q":     {runeKey('q'), MenuActionQuit},
		"x":     {runeKey('x'), MenuActionNone},
	}
	for name, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: got %v, expected %v", name, got, tt.want)
		}
	}
}
