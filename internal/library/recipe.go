// Package library defines the pattern recipes. A recipe is a list of
// sections, each describing how heights, widths, gaps and hazards are drawn.
// Every recipe is built by the same code path, which keeps heights under the
// physics ceiling, limits height steps and fits every gap to the jump arc.
package library

import (
	"math"

	"github.com/vovakirdan/jumpforge/internal/core"
	"github.com/vovakirdan/jumpforge/internal/gen"
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/physics"
)

// HeightCurve selects a height generator.
type HeightCurve string

const (
	HeightConstant    HeightCurve = "constant"
	HeightAscending   HeightCurve = "ascending"
	HeightDescending  HeightCurve = "descending"
	HeightWave        HeightCurve = "wave"
	HeightZigzag      HeightCurve = "zigzag"
	HeightStepped     HeightCurve = "stepped"
	HeightAlternating HeightCurve = "alternating"
	HeightRandom      HeightCurve = "random"
	HeightDrift       HeightCurve = "drift"
	HeightSawtooth    HeightCurve = "sawtooth"
	HeightSine        HeightCurve = "sine"
	HeightHill        HeightCurve = "hill"
	HeightW           HeightCurve = "w"
)

// WidthCurve selects a width generator.
type WidthCurve string

const (
	WidthUniform WidthCurve = "uniform"
	WidthVaried  WidthCurve = "varied"
	WidthRhythm  WidthCurve = "rhythm"
	WidthChoice  WidthCurve = "choice"
)

// GapCurve selects a gap generator.
type GapCurve string

const (
	GapShort  GapCurve = "short"
	GapMedium GapCurve = "medium"
	GapLong   GapCurve = "long"
	GapVaried GapCurve = "varied"
	GapRandom GapCurve = "random"
	GapFixed  GapCurve = "fixed"
	GapMixed  GapCurve = "mixed"
)

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

func (r Range) pick(rng gen.RNG) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Section is a run of obstacles sharing one set of curves.
type Section struct {
	Count Range

	Heights   HeightCurve
	Low, High int // height bounds in units, clamped to the physics ceiling
	Jitter    int // random +/- units applied after the curve

	Widths       WidthCurve
	Width        Range // width bounds in units
	WidthChoices []int // for WidthChoice

	Gaps           GapCurve
	GapMin, GapMax float64 // for GapRandom; GapMin alone for GapFixed

	Floating  float64 // chance an obstacle becomes a floating platform
	Thickness Range   // platform thickness in units

	HazardChance float64
	Hazards      []pattern.HazardKind // defaults to lava
	HazardOnDrop bool                 // only put hazards before a lower obstacle

	// Stack places rising neighbours against each other (gap 0).
	Stack bool
}

// Recipe describes a whole pattern.
type Recipe struct {
	Name     string
	Slug     string
	Summary  string
	Rhythm   string
	Loop     Range // how many times Sections repeat; zero means once
	Sections []Section
}

// ID implements registry.Generator.
func (r Recipe) ID() string { return r.Slug }

// Title implements registry.Generator.
func (r Recipe) Title() string { return r.Name }

// Description implements registry.Generator.
func (r Recipe) Description() string { return r.Summary }

// slot is one planned obstacle before gaps are fitted.
type slot struct {
	height  int
	width   int
	want    float64 // desired gap multiplier
	section *Section
}

// Generate implements registry.Generator.
func (r Recipe) Generate(rng gen.RNG, m physics.Model, cfg pattern.BuildConfig) (pattern.Pattern, error) {
	g := cfg.Grid
	ceiling := int(m.MaxObstacleHeight) / g.Unit
	maxStep := core.Max(1, int(math.Min(m.MaxForwardJumpHeight, m.MaxClimbHeight))/g.Unit)

	slots := r.plan(rng, ceiling)
	if len(slots) == 0 {
		return pattern.Assemble(pattern.Sequences{}, r.info(), cfg)
	}

	heights := make([]int, len(slots))
	for i, s := range slots {
		heights[i] = s.height
	}
	heights = gen.ClampNoLargeJump(rng, heights, maxStep, core.Min(1, ceiling), ceiling)

	n := len(slots)
	seq := pattern.Sequences{
		Heights: heights,
		Widths:  make([]int, n),
		Gaps:    make([]float64, n),
		Floors:  make([]int, n),
		Hazards: make([]pattern.HazardKind, n),
	}

	for i, s := range slots {
		seq.Widths[i] = s.width
		if s.section.Floating > 0 && rng.Float64() < s.section.Floating {
			floor := heights[i] - core.Max(1, s.section.Thickness.pick(rng))
			if floor >= 1 {
				seq.Floors[i] = floor
			}
		}
	}

	gapUnit := float64(g.GapUnit)
	for i, s := range slots {
		want := s.want * gapUnit
		if i == n-1 {
			seq.Gaps[i] = s.want
			continue
		}

		from := float64(heights[i] * g.Unit)
		to := float64(heights[i+1] * g.Unit)
		width := float64(seq.Widths[i+1] * g.Unit)

		if s.section.Stack && heights[i+1] > heights[i] {
			seq.Gaps[i] = 0
			continue
		}

		gap := gen.FitGap(m, want, from, to, width, gen.GapStep*gapUnit)
		seq.Gaps[i] = gap / gapUnit
		seq.Hazards[i] = r.hazard(rng, m, cfg, s.section, heights[i] > heights[i+1],
			physics.Target{Left: gap, Width: width, Surface: to})
	}

	return pattern.Assemble(seq, r.info(), cfg)
}

func (r Recipe) info() pattern.Info {
	return pattern.Info{Name: r.Name, Description: r.Summary, Rhythm: r.Rhythm}
}

// plan expands the sections into obstacle slots.
func (r Recipe) plan(rng gen.RNG, ceiling int) []slot {
	loops := 1
	if r.Loop.Max > 0 {
		loops = r.Loop.pick(rng)
	}

	var slots []slot
	for l := 0; l < loops; l++ {
		for i := range r.Sections {
			sec := &r.Sections[i]
			count := sec.Count.pick(rng)
			if count <= 0 {
				continue
			}
			hs := sec.heights(rng, count, ceiling)
			ws := sec.widths(rng, count)
			gs := sec.gaps(rng, count)
			for j := 0; j < count; j++ {
				slots = append(slots, slot{height: hs[j], width: ws[j], want: gs[j], section: sec})
			}
		}
	}
	return slots
}

// hazard decides whether the gap before next carries a hazard. next is
// placed relative to a takeoff at x=0. With killzones enabled the next
// obstacle must be reachable from the ground, so unreachable gaps stay clear.
func (r Recipe) hazard(rng gen.RNG, m physics.Model, cfg pattern.BuildConfig, sec *Section,
	drop bool, next physics.Target) pattern.HazardKind {
	if sec.HazardChance <= 0 || next.Left <= 0 {
		return pattern.HazardNone
	}
	roll := rng.Float64()
	kinds := sec.Hazards
	if len(kinds) == 0 {
		kinds = []pattern.HazardKind{pattern.HazardLava}
	}
	kind := kinds[rng.Intn(len(kinds))]

	if roll >= sec.HazardChance {
		return pattern.HazardNone
	}
	if sec.HazardOnDrop && !drop {
		return pattern.HazardNone
	}
	if cfg.InsertKillzones {
		// Face collision on, so the hazard holds under either landing rule.
		opts := pattern.DefaultOptions()
		opts.FaceCollision = true
		reach := pattern.CheckJump(m, opts, pattern.Jump{
			Takeoff: physics.Point{X: 0, Y: 0},
			Gap:     next.Left,
			Target:  next,
		})
		if !reach.OK {
			return pattern.HazardNone
		}
	}
	return kind
}

func (s *Section) heights(rng gen.RNG, count, ceiling int) []int {
	low := core.Clamp(s.Low, 0, ceiling)
	high := core.Clamp(s.High, low, ceiling)

	var hs []int
	switch s.Heights {
	case HeightAscending:
		hs = gen.Ascending(low, high, count)
	case HeightDescending:
		hs = gen.Descending(high, low, count)
	case HeightWave:
		hs = gen.Wave(low, high, count)
	case HeightZigzag:
		hs = gen.Zigzag(low, high, count)
	case HeightStepped:
		hs = gen.Stepped(low, high, count)
	case HeightAlternating:
		hs = gen.Alternating(low, high, count)
	case HeightRandom:
		hs = gen.RandomHeights(rng, low, high, count)
	case HeightDrift:
		hs = gen.Drift(rng, low+rng.Intn(high-low+1), low, high, 1, 1, count)
	case HeightSawtooth:
		hs = gen.Sawtooth(low, high, 4, count)
	case HeightSine:
		hs = gen.Sine(low, high, 8, count)
	case HeightHill:
		hs = gen.Hill(low, high, count)
	case HeightW:
		hs = gen.WShape(low, high, count)
	default:
		hs = gen.Constant(count, low)
	}
	if s.Jitter > 0 {
		hs = gen.Jitter(rng, hs, s.Jitter, low, high)
	}
	return hs
}

func (s *Section) widths(rng gen.RNG, count int) []int {
	lo, hi := s.Width.Min, s.Width.Max
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	switch s.Widths {
	case WidthVaried:
		return gen.VariedWidths(rng, count, gen.DefaultWidthMix(), lo, hi)
	case WidthRhythm:
		return gen.RhythmWidths(count, lo, hi)
	case WidthChoice:
		return gen.ChoiceWidths(rng, s.WidthChoices, count, lo, hi)
	default:
		return gen.UniformWidths(rng, lo, hi, count)
	}
}

func (s *Section) gaps(rng gen.RNG, count int) []float64 {
	switch s.Gaps {
	case GapShort:
		return gen.RhythmGaps(gen.GapRhythmShort, count)
	case GapLong:
		return gen.RhythmGaps(gen.GapRhythmLong, count)
	case GapVaried:
		return gen.RhythmGaps(gen.GapRhythmVaried, count)
	case GapRandom:
		return gen.RandomGaps(rng, s.GapMin, s.GapMax, count)
	case GapFixed:
		return gen.ConstantGaps(s.GapMin, count)
	case GapMixed:
		rhythms := [][]float64{gen.GapRhythmShort, gen.GapRhythmMedium, gen.GapRhythmLong, gen.GapRhythmVaried}
		out := make([]float64, count)
		for i := range out {
			r := rhythms[rng.Intn(len(rhythms))]
			out[i] = r[i%len(r)]
		}
		return out
	default:
		return gen.RhythmGaps(gen.GapRhythmMedium, count)
	}
}
