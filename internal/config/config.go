// Package config provides YAML-based configuration loading for the pattern
// generator: physics, validation, grid, generation and storage settings.
package config

// Config is the complete jumpforge configuration.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Player     Player     `yaml:"player"`
	Trajectory Trajectory `yaml:"trajectory"`
	Validation Validation `yaml:"validation"`
	Grid       Grid       `yaml:"grid"`
	Generation Generation `yaml:"generation"`
	Storage    Storage    `yaml:"storage"`
}

// Physics defines the runner's base physics.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpPower   float64 `yaml:"jump_power"` // negative is up
	PlayerSpeed float64 `yaml:"player_speed"`
}

// Player defines the runner's collision box in pixels.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Trajectory defines how jump arcs are sampled.
type Trajectory struct {
	MaxSteps         int     `yaml:"max_steps"`
	Margin           float64 `yaml:"margin"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// Validation toggles optional validator rules.
type Validation struct {
	Prefilter     bool `yaml:"prefilter"`
	StrictDescent bool `yaml:"strict_descent"`
	FaceCollision bool `yaml:"face_collision"`
}

// Grid defines the pixel size of export units.
type Grid struct {
	Unit    int `yaml:"unit"`
	GapUnit int `yaml:"gap_unit"`
}

// Generation controls batch runs.
type Generation struct {
	Seed            int64            `yaml:"seed"` // 0 picks a time-based seed
	OutputDir       string           `yaml:"output_dir"`
	Attempts        int              `yaml:"attempts"`
	InsertKillzones bool             `yaml:"insert_killzones"`
	Recipes         []string         `yaml:"recipes"` // empty runs every recipe
	Difficulty      DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig holds the width multiplier for each preset.
type DifficultyConfig struct {
	Hard   float64 `yaml:"hard"`
	Medium float64 `yaml:"medium"`
	Easy   float64 `yaml:"easy"`
}

// Storage configures the run ledger.
type Storage struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}
