package gen

import "github.com/vovakirdan/jumpforge/internal/core"

// WidthMix is the thin/wide split used by VariedWidths.
type WidthMix struct {
	ThinChance       float64
	ThinMin, ThinMax int
	WideMin, WideMax int
}

// DefaultWidthMix is 60% thin bars (2-3 units) and 40% wide ones (4-8).
func DefaultWidthMix() WidthMix {
	return WidthMix{
		ThinChance: 0.6,
		ThinMin:    2,
		ThinMax:    3,
		WideMin:    4,
		WideMax:    8,
	}
}

// rhythmWidths is the repeating short-short-long width pattern.
var rhythmWidths = [...]int{2, 2, 5, 2, 2, 6, 2, 2, 5}

// VariedWidths mixes thin and wide bars, clamped to [low, high].
func VariedWidths(rng RNG, count int, mix WidthMix, low, high int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		var w int
		if rng.Float64() < mix.ThinChance {
			w = between(rng, mix.ThinMin, mix.ThinMax)
		} else {
			w = between(rng, mix.WideMin, mix.WideMax)
		}
		out[i] = core.Clamp(w, low, high)
	}
	return out
}

// RhythmWidths repeats a fixed short-short-long width pattern, clamped to
// [low, high].
func RhythmWidths(count, low, high int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		out[i] = core.Clamp(rhythmWidths[i%len(rhythmWidths)], low, high)
	}
	return out
}

// UniformWidths draws every width from [low, high].
func UniformWidths(rng RNG, low, high, count int) []int {
	return RandomHeights(rng, low, high, count)
}

// ChoiceWidths picks each width from choices, clamped to [low, high].
// An empty choice list yields low.
func ChoiceWidths(rng RNG, choices []int, count, low, high int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		w := low
		if len(choices) > 0 {
			w = choices[rng.Intn(len(choices))]
		}
		out[i] = core.Clamp(w, low, high)
	}
	return out
}
