package core

import "time"

// RuntimeConfig is passed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Won      bool // Set on game over when the player's side won
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// MatchSummary describes a finished match for persistence.
type MatchSummary struct {
	Mode            string
	Difficulty      string
	Winner          string // "human", "cpu", or empty when nobody won
	Score           int
	OpponentScore   int
	MaxCombo        int
	GarbageSent     int
	GarbageReceived int
	Duration        time.Duration
}
