package engine

import "time"

// Settings holds the timing constants of one duel.
type Settings struct {
	FallRate         float64       // Rows per second for falling blocks
	ClearDuration    time.Duration // Clear animation window
	RaiseInterval    time.Duration // Time for one automatic row raise
	ManualRaiseRate  float64       // Rows per second while manual raise is held
	GarbageHold      time.Duration // Delay before a queued chunk starts dropping
	GarbageDropDelay time.Duration // Delay between two released garbage blocks
	ReactionTime     time.Duration // CPU planner latency per action
	SpeedSteps       []SpeedStep   // Raise speed-up schedule for the human side
}

// SpeedStep shortens the raise interval once a score threshold is passed.
type SpeedStep struct {
	Score    int
	Interval time.Duration
}

// DefaultSettings returns the standard duel timing.
func DefaultSettings() Settings {
	return Settings{
		FallRate:         8.75,
		ClearDuration:    400 * time.Millisecond,
		RaiseInterval:    5 * time.Second,
		ManualRaiseRate:  7.5,
		GarbageHold:      2 * time.Second,
		GarbageDropDelay: 75 * time.Millisecond,
		ReactionTime:     150 * time.Millisecond,
		SpeedSteps: []SpeedStep{
			{Score: 2000, Interval: 4 * time.Second},
			{Score: 5000, Interval: 3 * time.Second},
			{Score: 10000, Interval: 2 * time.Second},
		},
	}
}

// intervalFor returns the raise interval for the given score. The step with
// the highest threshold strictly below score wins.
func (s Settings) intervalFor(score int) time.Duration {
	interval := s.RaiseInterval
	best := -1
	for _, step := range s.SpeedSteps {
		if score > step.Score && step.Score > best {
			best = step.Score
			interval = step.Interval
		}
	}
	return interval
}
