package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
)

func TestBellAudioDefaultSounds(t *testing.T) {
	var buf bytes.Buffer
	a := NewBellAudio(&buf)

	a.Play(engine.SoundSwap)
	a.Play(engine.SoundCombo)
	a.Play(engine.SoundClear)
	a.Play(engine.SoundGarbageAlert)
	a.Close()

	if got := strings.Count(buf.String(), "\a"); got != 2 {
		t.Errorf("rang %d bells, expected 2", got)
	}
}

func TestBellAudioSelectedSounds(t *testing.T) {
	var buf bytes.Buffer
	a := NewBellAudio(&buf, engine.SoundClear)

	a.Play(engine.SoundClear)
	a.Play(engine.SoundCombo)
	a.Close()
	a.Close()

	if buf.String() != "\a" {
		t.Errorf("output = %q, expected one bell", buf.String())
	}
}
