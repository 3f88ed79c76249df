package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/stackduel/internal/games/stackduel/engine"
)

// DefaultBellSounds are the sounds that ring the terminal bell unless a
// different set is given.
var DefaultBellSounds = []engine.Sound{engine.SoundCombo, engine.SoundGarbageAlert}

// bellQueue bounds how many bells can wait for the writer.
const bellQueue = 8

// BellAudio rings the terminal bell for selected sounds. Writes happen on a
// separate goroutine so a slow terminal never stalls the simulation; bells
// beyond the queue are dropped.
type BellAudio struct {
	w      io.Writer
	sounds map[engine.Sound]bool
	bells  chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewBellAudio starts a bell writer on w. With no sounds given it rings for
// DefaultBellSounds.
func NewBellAudio(w io.Writer, sounds ...engine.Sound) *BellAudio {
	if len(sounds) == 0 {
		sounds = DefaultBellSounds
	}
	a := &BellAudio{
		w:      w,
		sounds: make(map[engine.Sound]bool, len(sounds)),
		bells:  make(chan struct{}, bellQueue),
		done:   make(chan struct{}),
	}
	for _, s := range sounds {
		a.sounds[s] = true
	}

	a.wg.Add(1)
	go a.loop()
	return a
}

// Play queues a bell if s is selected.
func (a *BellAudio) Play(s engine.Sound) {
	if !a.sounds[s] {
		return
	}
	select {
	case a.bells <- struct{}{}:
	default:
	}
}

// Close flushes queued bells and stops the writer.
func (a *BellAudio) Close() error {
	a.once.Do(func() { close(a.done) })
	a.wg.Wait()
	return nil
}

func (a *BellAudio) loop() {
	defer a.wg.Done()
	for {
		select {
		case <-a.bells:
			a.ring()
		case <-a.done:
			for {
				select {
				case <-a.bells:
					a.ring()
				default:
					return
				}
			}
		}
	}
}

func (a *BellAudio) ring() {
	//nolint:errcheck // A missed bell is harmless
	io.WriteString(a.w, "\a")
}
