// Package physics models the runner's jump: the derived geometry limits,
// the sampled jump arc and the landing test built on top of it.
//
// Elevations are measured upward from the ground plane (ground = 0) and
// horizontal positions grow to the right. JumpPower keeps the engine's
// screen-space sign: a negative value is an upward impulse.
package physics

import "math"

// Defaults for the runner and the trajectory sampler.
const (
	DefaultGravity     = 0.8
	DefaultJumpPower   = -15.0
	DefaultPlayerSpeed = 6.0

	DefaultPlayerWidth      = 40
	DefaultPlayerHeight     = 40
	DefaultMaxSteps         = 50
	DefaultMargin           = 100
	DefaultLandingTolerance = 5

	// NarrowWidth is the width below which a target counts as a narrow
	// platform and needs at least MinSafeGap of run-up.
	NarrowWidth = 60
)

// Model holds the base physics parameters and every limit derived from them.
// A Model is an immutable value; the With* methods return modified copies.
type Model struct {
	Gravity     float64 // downward acceleration per frame
	JumpPower   float64 // initial vertical velocity per frame, negative is up
	PlayerSpeed float64 // horizontal pixels per frame

	MaxObstacleHeight    float64 // tallest surface the runner may be asked to use
	MaxJumpDistance      float64 // horizontal distance covered by a full arc
	MinSafeGap           float64 // run-up needed before a narrow platform
	MaxClimbHeight       float64 // rise allowed when hopping onto a touching bar
	MaxForwardJumpHeight float64 // rise allowed across a gap

	PlayerWidth      float64
	PlayerHeight     float64
	MaxSteps         int
	Margin           float64
	LandingTolerance float64
}

// New derives a Model from gravity, jump power and horizontal speed.
// Derived limits are floored to whole pixels.
func New(gravity, jumpPower, playerSpeed float64) Model {
	peak := jumpPower * jumpPower / (2 * gravity)
	timeToPeak := math.Abs(jumpPower) / gravity
	maxHeight := math.Floor(0.7 * peak)

	return Model{
		Gravity:     gravity,
		JumpPower:   jumpPower,
		PlayerSpeed: playerSpeed,

		MaxObstacleHeight:    maxHeight,
		MaxJumpDistance:      math.Floor(2 * timeToPeak * playerSpeed),
		MinSafeGap:           math.Floor(10 * playerSpeed),
		MaxClimbHeight:       math.Floor(0.6 * maxHeight),
		MaxForwardJumpHeight: math.Floor(0.4 * maxHeight),

		PlayerWidth:      DefaultPlayerWidth,
		PlayerHeight:     DefaultPlayerHeight,
		MaxSteps:         DefaultMaxSteps,
		Margin:           DefaultMargin,
		LandingTolerance: DefaultLandingTolerance,
	}
}

// Default returns the model for the stock runner (0.8 / -15 / 6).
func Default() Model {
	return New(DefaultGravity, DefaultJumpPower, DefaultPlayerSpeed)
}

// WithPlayer returns a copy using a different collision box.
func (m Model) WithPlayer(width, height float64) Model {
	m.PlayerWidth = width
	m.PlayerHeight = height
	return m
}

// WithSampling returns a copy with different trajectory sampling limits.
func (m Model) WithSampling(maxSteps int, margin, tolerance float64) Model {
	m.MaxSteps = maxSteps
	m.Margin = margin
	m.LandingTolerance = tolerance
	return m
}

// PeakHeight is the theoretical apex of a jump above its takeoff.
func (m Model) PeakHeight() float64 {
	return m.JumpPower * m.JumpPower / (2 * m.Gravity)
}

// WithinJumpDistance reports whether a gap can be cleared horizontally.
func (m Model) WithinJumpDistance(gap float64) bool {
	return gap <= m.MaxJumpDistance
}

// CanClimb reports whether a bar touching the current one can be climbed.
func (m Model) CanClimb(rise float64) bool {
	return rise <= m.MaxClimbHeight
}

// CanForwardJump reports whether a rise across a gap is allowed.
// Descents are always allowed.
func (m Model) CanForwardJump(rise float64) bool {
	return rise <= m.MaxForwardJumpHeight
}

// CanLandSafely reports whether the run-up before a target is long enough.
// Only narrow targets need MinSafeGap.
func (m Model) CanLandSafely(gap, targetWidth float64) bool {
	if targetWidth >= NarrowWidth {
		return true
	}
	return gap >= m.MinSafeGap
}
