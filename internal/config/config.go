// Package config provides YAML-based game configuration loading and
// difficulty presets for the stack duel.
package config

import (
	"errors"
	"fmt"
	"time"
)

// StackDuelConfig contains all configuration for the stack duel.
type StackDuelConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Garbage    GarbageConfig    `yaml:"garbage"`
	CPU        CPUConfig        `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	TimeAttack TimeAttackConfig `yaml:"time_attack"`
}

// TimingConfig defines board timing. Durations are milliseconds.
type TimingConfig struct {
	FallRate        float64 `yaml:"fall_rate"`         // Rows per second
	ClearMS         int     `yaml:"clear_ms"`          // Clear animation window
	RaiseIntervalMS int     `yaml:"raise_interval_ms"` // One automatic row raise
	ManualRaiseRate float64 `yaml:"manual_raise_rate"` // Rows per second while held
}

// GarbageConfig defines garbage delivery timing.
type GarbageConfig struct {
	HoldMS      int `yaml:"hold_ms"`       // Delay before a chunk starts dropping
	DropDelayMS int `yaml:"drop_delay_ms"` // Delay between released blocks
}

// CPUConfig defines the planner reaction time for each preset.
type CPUConfig struct {
	Preset   string `yaml:"preset"`
	EasyMS   int    `yaml:"easy_ms"`
	NormalMS int    `yaml:"normal_ms"`
	HardMS   int    `yaml:"hard_ms"`
}

// DifficultyConfig defines the raise speed-up schedule of the human side.
type DifficultyConfig struct {
	Enabled bool        `yaml:"enabled"`
	Steps   []SpeedStep `yaml:"steps"`
}

// SpeedStep shortens the raise interval once the score exceeds Score.
type SpeedStep struct {
	Score      int `yaml:"score"`
	IntervalMS int `yaml:"interval_ms"`
}

// TimeAttackConfig defines the solo timed mode.
type TimeAttackConfig struct {
	DurationSec int `yaml:"duration_sec"`
}

// Validate checks every setting and reports all invalid ones joined into a
// single error.
func (c StackDuelConfig) Validate() error {
	var errs []error
	if c.Timing.FallRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_rate must be positive, got %v", c.Timing.FallRate))
	}
	if c.Timing.ClearMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.clear_ms must be positive, got %d", c.Timing.ClearMS))
	}
	if c.Timing.RaiseIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.raise_interval_ms must be positive, got %d", c.Timing.RaiseIntervalMS))
	}
	if c.Timing.ManualRaiseRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.manual_raise_rate must be positive, got %v", c.Timing.ManualRaiseRate))
	}
	if c.Garbage.HoldMS < 0 || c.Garbage.DropDelayMS < 0 {
		errs = append(errs, errors.New("garbage delays must not be negative"))
	}
	if _, err := ParseDifficulty(c.CPU.Preset); err != nil {
		errs = append(errs, err)
	}
	for i, s := range c.Difficulty.Steps {
		if s.IntervalMS <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.steps[%d].interval_ms must be positive", i))
		}
	}
	if c.TimeAttack.DurationSec <= 0 {
		errs = append(errs, fmt.Errorf("time_attack.duration_sec must be positive, got %d", c.TimeAttack.DurationSec))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Reaction returns the CPU reaction time of the configured preset.
func (c StackDuelConfig) Reaction() time.Duration {
	preset, err := ParseDifficulty(c.CPU.Preset)
	if err != nil {
		preset = DifficultyNormal
	}
	return ms(c.CPU.reactionMS(preset))
}

// TimeLimit returns the time attack duration.
func (c StackDuelConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeAttack.DurationSec) * time.Second
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
