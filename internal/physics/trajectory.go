package physics

import (
	"iter"
	"slices"
)

// Point is one sampled runner position: X is the left edge of the player box
// and Y the elevation of its feet.
type Point struct {
	X, Y float64
}

// Simulate returns the jump arc launched from (startX, startY), one sample
// per frame. The first sample is the takeoff itself. Sampling stops after
// the feet reach the ground (the terminal sample is clamped to elevation 0),
// once X passes startX+MaxJumpDistance+Margin, or after MaxSteps samples.
//
// The sequence is pure: ranging over it again replays the same arc.
func (m Model) Simulate(startX, startY float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		x, y, vy := startX, startY, m.JumpPower
		limit := startX + m.MaxJumpDistance + m.Margin

		for n := 0; n < m.MaxSteps; n++ {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			if n > 0 && y <= 0 {
				return
			}

			x += m.PlayerSpeed
			y -= vy
			vy += m.Gravity

			if y < 0 {
				y = 0
			}
			if x > limit {
				return
			}
		}
	}
}

// Path collects the full arc from (startX, startY).
func (m Model) Path(startX, startY float64) []Point {
	return slices.Collect(m.Simulate(startX, startY))
}

// Apex returns the highest sample of an arc launched from the ground.
func (m Model) Apex() Point {
	var best Point
	for p := range m.Simulate(0, 0) {
		if p.Y > best.Y {
			best = p
		}
	}
	return best
}
