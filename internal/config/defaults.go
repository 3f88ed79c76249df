package config

import (
	_ "embed"
)

//go:embed defaults/stackduel.yaml
var defaultStackDuelYAML []byte

// DefaultStackDuelConfig returns the built-in stack duel configuration.
func DefaultStackDuelConfig() StackDuelConfig {
	return StackDuelConfig{
		Timing: TimingConfig{
			FallRate:        8.75,
			ClearMS:         400,
			RaiseIntervalMS: 5000,
			ManualRaiseRate: 7.5,
		},
		Garbage: GarbageConfig{
			HoldMS:      2000,
			DropDelayMS: 75,
		},
		CPU: CPUConfig{
			Preset:   string(DifficultyNormal),
			EasyMS:   250,
			NormalMS: 150,
			HardMS:   50,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Steps: []SpeedStep{
				{Score: 2000, IntervalMS: 4000},
				{Score: 5000, IntervalMS: 3000},
				{Score: 10000, IntervalMS: 2000},
			},
		},
		TimeAttack: TimeAttackConfig{
			DurationSec: 120,
		},
	}
}
