package pattern

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySequence is returned when there is nothing to assemble.
var ErrEmptySequence = errors.New("pattern: empty sequence")

// Sequences are the parallel per-obstacle inputs produced by generators.
// Heights, Widths and Floors are in grid units; Gaps are multipliers of the
// gap unit. Floors and Hazards are optional.
type Sequences struct {
	Heights []int
	Widths  []int
	Gaps    []float64
	Floors  []int        // >0 and below the height makes a floating platform
	Hazards []HazardKind // hazard in the gap after each obstacle
}

// Len returns the number of obstacles the sequences describe.
func (s Sequences) Len() int {
	return len(s.Heights)
}

// Info names an assembled pattern.
type Info struct {
	Name        string
	Description string
	Rhythm      string
}

// BuildConfig controls how sequences become obstacles.
type BuildConfig struct {
	Grid Grid

	// InsertKillzones turns every hazard gap between two obstacles into a
	// killzone marker, so the runner must clear it from the ground.
	InsertKillzones bool
}

// DefaultBuildConfig uses the default grid with killzones enabled.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{Grid: DefaultGrid(), InsertKillzones: true}
}

// Assemble combines generator sequences into a pattern.
func Assemble(seq Sequences, info Info, cfg BuildConfig) (Pattern, error) {
	n := seq.Len()
	if n == 0 {
		return Pattern{}, ErrEmptySequence
	}
	if len(seq.Widths) != n || len(seq.Gaps) != n {
		return Pattern{}, fmt.Errorf("pattern: sequence lengths differ (heights=%d widths=%d gaps=%d)",
			n, len(seq.Widths), len(seq.Gaps))
	}
	if seq.Floors != nil && len(seq.Floors) != n {
		return Pattern{}, fmt.Errorf("pattern: floors length %d, want %d", len(seq.Floors), n)
	}
	if seq.Hazards != nil && len(seq.Hazards) != n {
		return Pattern{}, fmt.Errorf("pattern: hazards length %d, want %d", len(seq.Hazards), n)
	}

	g := cfg.Grid
	obstacles := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		if seq.Heights[i] < 0 || seq.Widths[i] < 0 || seq.Gaps[i] < 0 {
			return Pattern{}, fmt.Errorf("pattern: negative value at index %d", i)
		}

		shape := g.Ground(seq.Widths[i], seq.Heights[i])
		if seq.Floors != nil && seq.Floors[i] > 0 && seq.Floors[i] < seq.Heights[i] {
			shape = g.Floating(seq.Widths[i], seq.Floors[i], seq.Heights[i])
		}

		gap := Gap{Distance: int(math.Round(seq.Gaps[i] * float64(g.GapUnit)))}
		if seq.Hazards != nil {
			gap.Hazard = seq.Hazards[i]
		}

		if cfg.InsertKillzones && gap.Hazard != HazardNone && gap.Distance > 0 && i < n-1 {
			obstacles = append(obstacles,
				Obstacle{Shape: shape},
				Killzone(gap.Distance, gap.Hazard),
			)
			continue
		}
		obstacles = append(obstacles, Obstacle{Shape: shape, Gap: gap})
	}

	return Pattern{
		Name:        info.Name,
		Description: info.Description,
		Obstacles:   obstacles,
		Meta: Meta{
			Type:   typeTag(obstacles),
			Length: len(obstacles),
			Rhythm: info.Rhythm,
		},
	}, nil
}
