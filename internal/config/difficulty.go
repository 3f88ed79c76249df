package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed plays at normal CPU speed with the raise speed-up
	// schedule disabled.
	DifficultyFixed DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty parses a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// reactionMS returns the planner reaction time of a preset.
func (c CPUConfig) reactionMS(p DifficultyPreset) int {
	switch p {
	case DifficultyEasy:
		return c.EasyMS
	case DifficultyHard:
		return c.HardMS
	}
	return c.NormalMS
}

// ApplyStackDuelPreset selects the CPU preset. The fixed preset also turns
// off the raise speed-up schedule.
func ApplyStackDuelPreset(cfg *StackDuelConfig, preset DifficultyPreset) {
	cfg.CPU.Preset = string(preset)
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	}
}
