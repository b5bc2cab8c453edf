package gen

import (
	"math"

	"github.com/vovakirdan/jumpforge/internal/physics"
)

// Gap rhythms as multipliers of the gap unit.
var (
	GapRhythmShort  = []float64{1.75, 2.0, 1.75, 2.0}
	GapRhythmMedium = []float64{2.0, 2.25, 2.0, 2.25}
	GapRhythmLong   = []float64{2.0, 2.25, 2.0, 2.25}
	GapRhythmVaried = []float64{1.75, 2.0, 2.25, 2.0}
)

// GapStep is the granularity of generated gap multipliers.
const GapStep = 0.25

// RhythmGaps repeats rhythm to count entries.
func RhythmGaps(rhythm []float64, count int) []float64 {
	if count <= 0 || len(rhythm) == 0 {
		return []float64{}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = rhythm[i%len(rhythm)]
	}
	return out
}

// RandomGap draws a multiplier from [min, max] rounded to GapStep.
func RandomGap(rng RNG, min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	v := min + rng.Float64()*(max-min)
	return math.Round(v/GapStep) * GapStep
}

// RandomGaps draws count multipliers with RandomGap.
func RandomGaps(rng RNG, min, max float64, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = RandomGap(rng, min, max)
	}
	return out
}

// ConstantGaps repeats one multiplier.
func ConstantGaps(value float64, count int) []float64 {
	return RhythmGaps([]float64{value}, count)
}

// FitGap adjusts a desired gap so the jump from a surface at elevation from
// onto a target of the given width at elevation to actually lands. Candidate
// gaps are multiples of step wider than the player and up to
// MaxJumpDistance; the one closest to want that passes the run-up rule and
// the arc test wins. The arc must come down onto the target from above, so
// fitted gaps pass with or without face collision. If none does, want is
// returned unchanged. All values are in pixels.
func FitGap(m physics.Model, want, from, to, width, step float64) float64 {
	if step <= 0 {
		return want
	}
	first := (math.Floor(m.PlayerWidth/step) + 1) * step
	best, bestDist := want, math.Inf(1)
	for g := first; g <= m.MaxJumpDistance; g += step {
		if !m.CanLandSafely(g, width) {
			continue
		}
		r := m.CanReach(
			physics.Point{X: 0, Y: from},
			physics.Target{Left: g, Width: width, Surface: to},
			physics.ReachOptions{Prefilter: true, FaceCollision: true},
		)
		if !r.OK {
			continue
		}
		if d := math.Abs(g - want); d < bestDist {
			best, bestDist = g, d
		}
	}
	return best
}
