// Package core provides small numeric helpers shared by the physics and
// generator packages. It has no dependencies so everything above it stays
// pure and testable.
package core

// Span is a closed horizontal interval [Lo, Hi] in pixels.
type Span struct {
	Lo, Hi float64
}

// NewSpan creates a span starting at x with the given width.
func NewSpan(x, width float64) Span {
	return Span{Lo: x, Hi: x + width}
}

// Overlaps returns true if the two spans share at least one point.
// Touching edges count as overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Hi >= other.Lo && s.Lo <= other.Hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
