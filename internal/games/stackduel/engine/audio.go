package engine

// Sound identifies a sound effect.
type Sound string

const (
	SoundSwap         Sound = "swap"
	SoundClear        Sound = "clear"
	SoundCombo        Sound = "combo"
	SoundFall         Sound = "fall"
	SoundGarbageAlert Sound = "garbage_alert"
	SoundGarbageDrop  Sound = "garbage_drop"
)

// Audio plays sound effects. Play must not block the simulation.
type Audio interface {
	Play(s Sound)
}

// NopAudio discards every sound.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Sound) {}
