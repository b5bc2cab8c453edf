package config

import (
	_ "embed"

	"github.com/vovakirdan/jumpforge/internal/batch"
	"github.com/vovakirdan/jumpforge/internal/physics"
)

//go:embed defaults/jumpforge.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:     physics.DefaultGravity,
			JumpPower:   physics.DefaultJumpPower,
			PlayerSpeed: physics.DefaultPlayerSpeed,
		},
		Player: Player{
			Width:  physics.DefaultPlayerWidth,
			Height: physics.DefaultPlayerHeight,
		},
		Trajectory: Trajectory{
			MaxSteps:         physics.DefaultMaxSteps,
			Margin:           physics.DefaultMargin,
			LandingTolerance: physics.DefaultLandingTolerance,
		},
		Validation: Validation{
			Prefilter: true,
		},
		Grid: Grid{
			Unit:    30,
			GapUnit: 100,
		},
		Generation: Generation{
			OutputDir:       "patterns",
			Attempts:        batch.DefaultAttempts,
			InsertKillzones: true,
			Difficulty: DifficultyConfig{
				Hard:   1.0,
				Medium: 1.15,
				Easy:   1.25,
			},
		},
		Storage: Storage{
			Enabled: true,
			DBPath:  "~/.jumpforge/runs.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
