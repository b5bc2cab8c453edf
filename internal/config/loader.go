package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jumpforge/internal/batch"
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/physics"
)

// LocalPath is the project-local configuration file.
const LocalPath = "configs/jumpforge.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.jumpforge/config.yaml -> ./configs/jumpforge.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	cfg, _ := loadFirst(searchPaths())
	return cfg, cfg.Validate()
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, LocalPath)
}

// loadFirst decodes the first readable, well-formed file in paths and returns
// it with its path. It falls back to the embedded default YAML and finally to
// DefaultConfig, returning an empty path in both cases.
func loadFirst(paths []string) (Config, string) {
	for _, p := range paths {
		if cfg, err := loadFile(p); err == nil {
			return cfg, p
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), "" // Fallback to hardcoded if embed fails
	}
	return cfg, ""
}

func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumpforge", "config.yaml")
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.JumpPower < 0, "physics.jump_power must be negative (upward), got %g", c.Physics.JumpPower)
	check(c.Physics.PlayerSpeed > 0, "physics.player_speed must be positive, got %g", c.Physics.PlayerSpeed)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	check(c.Trajectory.MaxSteps > 0, "trajectory.max_steps must be positive, got %d", c.Trajectory.MaxSteps)
	check(c.Trajectory.Margin >= 0, "trajectory.margin must not be negative, got %g", c.Trajectory.Margin)
	check(c.Trajectory.LandingTolerance >= 0, "trajectory.landing_tolerance must not be negative, got %g", c.Trajectory.LandingTolerance)
	check(c.Grid.Unit > 0 && c.Grid.GapUnit > 0, "grid units must be positive, got %d/%d", c.Grid.Unit, c.Grid.GapUnit)
	check(c.Generation.Attempts > 0, "generation.attempts must be positive, got %d", c.Generation.Attempts)

	for _, p := range Presets() {
		m := c.Generation.Difficulty.Multiplier(p)
		check(m >= 1, "generation.difficulty.%s must be at least 1.0, got %g", p, m)
	}
	if c.Storage.Enabled {
		check(c.Storage.DBPath != "", "storage.db_path is required when storage is enabled")
	}

	return errors.Join(errs...)
}

// Model builds the physics model described by the configuration.
func (c Config) Model() physics.Model {
	return physics.New(c.Physics.Gravity, c.Physics.JumpPower, c.Physics.PlayerSpeed).
		WithPlayer(c.Player.Width, c.Player.Height).
		WithSampling(c.Trajectory.MaxSteps, c.Trajectory.Margin, c.Trajectory.LandingTolerance)
}

// PatternGrid returns the export grid.
func (c Config) PatternGrid() pattern.Grid {
	return pattern.Grid{Unit: c.Grid.Unit, GapUnit: c.Grid.GapUnit}
}

// ValidateOptions returns the validator options.
func (c Config) ValidateOptions() pattern.Options {
	return pattern.Options{
		Prefilter:     c.Validation.Prefilter,
		StrictDescent: c.Validation.StrictDescent,
		FaceCollision: c.Validation.FaceCollision,
	}
}

// BatchOptions returns the options for a generation run.
func (c Config) BatchOptions() batch.Options {
	return batch.Options{
		Seed:     c.Generation.Seed,
		Attempts: c.Generation.Attempts,
		Levels:   c.Generation.Difficulty.Levels(),
		Validate: c.ValidateOptions(),
		Build: pattern.BuildConfig{
			Grid:            c.PatternGrid(),
			InsertKillzones: c.Generation.InsertKillzones,
		},
		Recipes: c.Generation.Recipes,
	}
}
