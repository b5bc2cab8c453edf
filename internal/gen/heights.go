// Package gen produces the integer sequences patterns are built from:
// height curves, width mixes and gap rhythms. Heights and widths are in grid
// units, gaps are multipliers of the gap unit.
//
// Every function returns a fresh slice of exactly count elements (empty when
// count <= 0). Randomised helpers take an explicit RNG so results are
// reproducible from a seed.
package gen

import (
	"math"

	"github.com/vovakirdan/jumpforge/internal/core"
)

// RNG is the randomness source used by generators. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// StepRun is how many obstacles Stepped climbs before resetting.
const StepRun = 6

// Ascending interpolates linearly from start to end in integer steps.
// The result never decreases.
func Ascending(start, end, count int) []int {
	if count <= 0 {
		return []int{}
	}
	lo, hi := core.Min(start, end), core.Max(start, end)
	out := make([]int, count)
	if count == 1 {
		out[0] = lo
		return out
	}
	for i := range out {
		out[i] = lo + (hi-lo)*i/(count-1)
	}
	return out
}

// Descending interpolates from start down to end. The result never increases.
func Descending(start, end, count int) []int {
	out := Ascending(start, end, count)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Wave rises from low to high and falls back, peaking once in the middle.
// Two obstacles are just the climb.
func Wave(low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	if count == 2 {
		return []int{low, high}
	}
	up := Ascending(low, high, count-count/2)
	out := make([]int, 0, count)
	out = append(out, up...)
	for i := count/2 - 1; i >= 0; i-- {
		out = append(out, up[i])
	}
	return out
}

// Zigzag walks up and down between low and high one unit at a time,
// turning at the bounds. Two neighbours are never equal unless low == high.
func Zigzag(low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	if low > high {
		low, high = high, low
	}
	out := make([]int, count)
	v, dir := low, 1
	for i := range out {
		out[i] = v
		if low == high {
			continue
		}
		next := v + dir
		if next > high || next < low {
			dir = -dir
			next = v + dir
		}
		v = next
	}
	return out
}

// Stepped climbs one unit per obstacle from low, capped at high, and drops
// back to low every StepRun obstacles.
func Stepped(low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	span := core.Max(0, high-low)
	for i := range out {
		out[i] = low + core.Min(i%StepRun, span)
	}
	return out
}

// Constant repeats value count times.
func Constant(count, value int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		out[i] = value
	}
	return out
}

// Alternating switches between low and high.
func Alternating(low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		if i%2 == 0 {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// Sawtooth climbs from low to high over climbSteps obstacles, then drops
// back to low for one obstacle and repeats.
func Sawtooth(low, high, climbSteps, count int) []int {
	if count <= 0 {
		return []int{}
	}
	climbSteps = core.Max(1, climbSteps)
	out := make([]int, count)
	for i := range out {
		pos := i % (climbSteps + 1)
		switch {
		case pos == climbSteps:
			out[i] = low
		case climbSteps == 1:
			out[i] = high
		default:
			out[i] = low + (high-low)*pos/(climbSteps-1)
		}
	}
	return out
}

// Sine follows a sine wave between low and high with the given period.
func Sine(low, high, period, count int) []int {
	if count <= 0 {
		return []int{}
	}
	period = core.Max(2, period)
	out := make([]int, count)
	for i := range out {
		phase := math.Sin(2 * math.Pi * float64(i) / float64(period))
		v := float64(low) + float64(high-low)*(phase+1)/2
		out[i] = core.Clamp(int(math.Round(v)), low, high)
	}
	return out
}

// Hill rises from low to peak at the centre and back down.
func Hill(low, peak, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	center := count / 2
	if center == 0 {
		out[0] = peak
		return out
	}
	for i := range out {
		dist := float64(core.Abs(i-center)) / float64(center)
		out[i] = low + int(math.Round(float64(peak-low)*(1-dist)))
	}
	return out
}

// WShape repeats the low-high-low-high-low profile.
func WShape(low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	profile := [...]int{low, high, low, high, low}
	out := make([]int, count)
	for i := range out {
		out[i] = profile[i%len(profile)]
	}
	return out
}

// RandomHeights draws uniformly from [low, high].
func RandomHeights(rng RNG, low, high, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	for i := range out {
		out[i] = between(rng, low, high)
	}
	return out
}

// Drift is a bounded random walk starting at start. Each step moves at most
// maxDown units down or maxUp units up and stays within [low, high].
func Drift(rng RNG, start, low, high, maxDown, maxUp, count int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, count)
	v := core.Clamp(start, low, high)
	for i := range out {
		out[i] = v
		v = between(rng, core.Max(low, v-maxDown), core.Min(high, v+maxUp))
	}
	return out
}

// Jitter nudges each value by up to amount units, staying within [low, high].
func Jitter(rng RNG, seq []int, amount, low, high int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = core.Clamp(v+between(rng, -amount, amount), low, high)
	}
	return out
}

// ClampNoLargeJump returns a copy of seq in which no value differs from its
// predecessor by more than maxDelta. Offending values are re-rolled inside
// the legal window, or pulled to its nearest edge when rng is nil. Every
// value is kept within [low, high].
func ClampNoLargeJump(rng RNG, seq []int, maxDelta, low, high int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		v = core.Clamp(v, low, high)
		if i > 0 {
			prev := out[i-1]
			lo, hi := core.Max(low, prev-maxDelta), core.Min(high, prev+maxDelta)
			if core.Abs(v-prev) > maxDelta {
				if rng != nil {
					v = between(rng, lo, hi)
				} else {
					v = core.Clamp(v, lo, hi)
				}
			}
		}
		out[i] = v
	}
	return out
}

// between draws uniformly from [lo, hi]. It returns lo when the range is
// empty.
func between(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
