package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jumpforge/internal/pattern"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyEasy   DifficultyPreset = "easy"
)

// Presets returns every preset from hardest to easiest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyHard, DifficultyMedium, DifficultyEasy}
}

// ParsePreset looks up a preset by name, ignoring case.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want hard, medium or easy)", s)
}

// Multiplier returns the width multiplier configured for preset.
func (d DifficultyConfig) Multiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return d.Hard
	case DifficultyMedium:
		return d.Medium
	case DifficultyEasy:
		return d.Easy
	default:
		return 1.0
	}
}

// Levels converts presets into pattern difficulty levels, hardest first
// when none are given.
func (d DifficultyConfig) Levels(only ...DifficultyPreset) []pattern.Level {
	presets := only
	if len(presets) == 0 {
		presets = Presets()
	}
	levels := make([]pattern.Level, 0, len(presets))
	for _, p := range presets {
		levels = append(levels, pattern.Level{Name: string(p), Factor: d.Multiplier(p)})
	}
	return levels
}
