package library

import (
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/registry"
)

var allHazards = pattern.Hazards()

var presets = []Recipe{
	{
		Name:    "Steady Rhythm",
		Slug:    "steady-rhythm",
		Summary: "Consistent medium platforms with a regular beat",
		Rhythm:  "steady",
		Sections: []Section{{
			Count:   Range{25, 30},
			Heights: HeightConstant, Low: 2, High: 2,
			Widths: WidthUniform, Width: Range{3, 5},
			Gaps: GapMedium,
		}},
	},
	{
		Name:    "Wave Rider",
		Slug:    "wave-rider",
		Summary: "Smooth rise and fall across mixed bar widths",
		Rhythm:  "flowing",
		Sections: []Section{{
			Count:   Range{28, 35},
			Heights: HeightWave, Low: 1, High: 3,
			Widths: WidthVaried, Width: Range{2, 8},
			Gaps: GapRandom, GapMin: 1.75, GapMax: 2.25,
		}},
	},
	{
		Name:    "Quick Hops",
		Slug:    "quick-hops",
		Summary: "Short gaps between narrow bars at a fast tempo",
		Rhythm:  "fast",
		Sections: []Section{{
			Count:   Range{30, 40},
			Heights: HeightAlternating, Low: 1, High: 2,
			Widths: WidthUniform, Width: Range{2, 3},
			Gaps:         GapShort,
			HazardChance: 0.2,
		}},
	},
	{
		Name:    "Rest and Run",
		Slug:    "rest-and-run",
		Summary: "Bursts of quick hops broken up by wide rest platforms",
		Rhythm:  "burst",
		Loop:    Range{5, 7},
		Sections: []Section{
			{
				Count:   Range{3, 3},
				Heights: HeightRandom, Low: 1, High: 3,
				Widths: WidthUniform, Width: Range{2, 3},
				Gaps: GapRandom, GapMin: 1.75, GapMax: 2.25,
				HazardChance: 0.15,
			},
			{
				Count:   Range{1, 1},
				Heights: HeightRandom, Low: 2, High: 3,
				Widths: WidthUniform, Width: Range{6, 8},
				Gaps: GapRandom, GapMin: 2.0, GapMax: 2.25,
			},
		},
	},
	{
		Name:    "Stepped Ascent",
		Slug:    "stepped-ascent",
		Summary: "Staircase climbs that reset, with hazards on the drops",
		Rhythm:  "climbing",
		Sections: []Section{{
			Count:   Range{25, 32},
			Heights: HeightStepped, Low: 1, High: 3,
			Widths: WidthRhythm, Width: Range{2, 6},
			Gaps:         GapVaried,
			HazardChance: 0.3,
			HazardOnDrop: true,
		}},
	},
	{
		Name:    "Zigzag Chaos",
		Slug:    "zigzag-chaos",
		Summary: "Unpredictable height changes with hazards in between",
		Rhythm:  "chaotic",
		Sections: []Section{{
			Count:   Range{28, 35},
			Heights: HeightDrift, Low: 1, High: 3,
			Widths: WidthVaried, Width: Range{2, 8},
			Gaps: GapRandom, GapMin: 1.5, GapMax: 2.25,
			HazardChance: 0.25,
			Hazards:      []pattern.HazardKind{pattern.HazardLava, pattern.HazardSpikes},
		}},
	},
	{
		Name:    "Long Jumper",
		Slug:    "long-jumper",
		Summary: "Wide platforms separated by long gaps",
		Rhythm:  "spacious",
		Sections: []Section{{
			Count:   Range{20, 25},
			Heights: HeightAlternating, Low: 1, High: 2,
			Widths: WidthUniform, Width: Range{5, 8},
			Gaps:         GapLong,
			HazardChance: 0.35,
		}},
	},
	{
		Name:    "Mixed Madness",
		Slug:    "mixed-madness",
		Summary: "Every rhythm at once over a wandering height line",
		Rhythm:  "mixed",
		Sections: []Section{{
			Count:   Range{30, 40},
			Heights: HeightDrift, Low: 1, High: 3,
			Widths: WidthVaried, Width: Range{2, 8},
			Gaps:         GapMixed,
			HazardChance: 0.3,
			Hazards:      allHazards,
		}},
	},
	{
		Name:    "Kitchen Sink",
		Slug:    "kitchen-sink",
		Summary: "Bars and floating platforms with every hazard type",
		Rhythm:  "mixed",
		Sections: []Section{{
			Count:   Range{40, 50},
			Heights: HeightDrift, Low: 1, High: 3,
			Widths: WidthChoice, Width: Range{2, 8},
			WidthChoices: []int{2, 2, 3, 3, 3, 4, 4, 5, 6, 7, 8},
			Gaps:         GapMixed,
			Floating:     0.5,
			Thickness:    Range{1, 2},
			HazardChance: 0.15,
			Hazards:      allHazards,
		}},
	},
	{
		Name:    "Obstacle Course",
		Slug:    "obstacle-course",
		Summary: "Precision hops, a rest stop, a floating bridge and a final sprint",
		Rhythm:  "varied",
		Sections: []Section{
			{
				Count:   Range{5, 7},
				Heights: HeightDrift, Low: 2, High: 3,
				Widths: WidthUniform, Width: Range{2, 2},
				Gaps:         GapShort,
				Floating:     1,
				Thickness:    Range{1, 1},
				HazardChance: 0.2,
				Hazards:      allHazards,
			},
			{
				Count:   Range{1, 1},
				Heights: HeightRandom, Low: 1, High: 2,
				Widths: WidthUniform, Width: Range{6, 8},
				Gaps: GapFixed, GapMin: 2.0,
			},
			{
				Count:   Range{6, 8},
				Heights: HeightRandom, Low: 1, High: 3,
				Widths: WidthChoice, Width: Range{3, 5},
				WidthChoices: []int{3, 4, 5},
				Gaps:         GapMedium,
				HazardChance: 0.25,
			},
			{
				Count:   Range{4, 6},
				Heights: HeightConstant, Low: 3, High: 3,
				Widths: WidthUniform, Width: Range{5, 7},
				Gaps:      GapMedium,
				Floating:  1,
				Thickness: Range{1, 2},
			},
			{
				Count:   Range{6, 6},
				Heights: HeightDescending, Low: 1, High: 3,
				Widths: WidthUniform, Width: Range{3, 5},
				Gaps: GapFixed, GapMin: 2.0,
			},
			{
				Count:   Range{8, 12},
				Heights: HeightRandom, Low: 1, High: 3,
				Widths: WidthUniform, Width: Range{2, 8},
				Gaps:         GapMixed,
				Floating:     0.3,
				Thickness:    Range{1, 2},
				HazardChance: 0.2,
				Hazards:      allHazards,
			},
		},
	},
	{
		Name:    "Stair Climb",
		Slug:    "stair-climb",
		Summary: "Touching steps climbed without a run-up, then a jump to the next flight",
		Rhythm:  "climbing",
		Sections: []Section{{
			Count:   Range{12, 18},
			Heights: HeightStepped, Low: 1, High: 3,
			Widths: WidthUniform, Width: Range{3, 5},
			Gaps:  GapMedium,
			Stack: true,
		}},
	},
	{
		Name:    "W Shape",
		Slug:    "w-shape",
		Summary: "Low-high-low-high-low waves with slight irregularity",
		Rhythm:  "bouncy",
		Sections: []Section{{
			Count:   Range{15, 20},
			Heights: HeightW, Low: 1, High: 2, Jitter: 1,
			Widths: WidthChoice, Width: Range{2, 4},
			WidthChoices: []int{2, 3, 4},
			Gaps: GapRandom, GapMin: 1.5, GapMax: 2.0,
		}},
	},
	{
		Name:    "Sawtooth",
		Slug:    "sawtooth",
		Summary: "Gradual climbs followed by sudden drops",
		Rhythm:  "climbing",
		Sections: []Section{{
			Count:   Range{12, 15},
			Heights: HeightSawtooth, Low: 1, High: 3,
			Widths: WidthUniform, Width: Range{2, 4},
			Gaps:         GapRandom, GapMin: 1.3, GapMax: 2.2,
			HazardChance: 0.2,
			HazardOnDrop: true,
		}},
	},
	{
		Name:    "Sine Wave",
		Slug:    "sine-wave",
		Summary: "Smooth sinusoidal heights over narrow bars",
		Rhythm:  "flowing",
		Sections: []Section{{
			Count:   Range{16, 20},
			Heights: HeightSine, Low: 1, High: 3,
			Widths: WidthUniform, Width: Range{1, 4},
			Gaps: GapRandom, GapMin: 1.6, GapMax: 2.0,
		}},
	},
	{
		Name:    "Hill",
		Slug:    "hill",
		Summary: "A single climb to a peak and back down",
		Rhythm:  "arc",
		Sections: []Section{{
			Count:   Range{10, 12},
			Heights: HeightHill, Low: 1, High: 3,
			Widths: WidthUniform, Width: Range{2, 4},
			Gaps: GapRandom, GapMin: 1.75, GapMax: 2.25,
		}},
	},
}

func init() {
	for _, r := range presets {
		registry.Register(r.Slug, func() registry.Generator { return r })
	}
}

// Presets returns a copy of the built-in recipes.
func Presets() []Recipe {
	out := make([]Recipe, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the built-in recipe with the given slug.
func Lookup(slug string) (Recipe, bool) {
	for _, r := range presets {
		if r.Slug == slug {
			return r, true
		}
	}
	return Recipe{}, false
}
