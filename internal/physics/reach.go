package physics

import (
	"fmt"

	"github.com/vovakirdan/jumpforge/internal/core"
)

// Failure codes reported by CanReach.
const (
	CodeGapTooFar = "GAP_TOO_FAR"
	CodeBlocked   = "BLOCKED"
	CodeNotInArc  = "NOT_IN_ARC"
)

// Target is the obstacle a jump tries to land on.
type Target struct {
	Left    float64 // left edge
	Width   float64
	Surface float64 // elevation of the landing surface
}

// Span returns the horizontal extent of the target.
func (t Target) Span() core.Span {
	return core.NewSpan(t.Left, t.Width)
}

// Reach is the outcome of a landing test.
type Reach struct {
	OK      bool
	Code    string
	Reason  string
	Landing Point // first sample that satisfied the landing test

	// TouchesGround is set when any sample up to the landing (or the end of
	// the arc) sits at elevation 0.
	TouchesGround bool
}

// ReachOptions select how strictly CanReach reads the arc.
type ReachOptions struct {
	// Prefilter rejects gaps wider than MaxJumpDistance before simulating.
	Prefilter bool

	// FaceCollision treats a first overlapping sample below the surface as
	// a hit on the obstacle's face and only accepts landings from above.
	FaceCollision bool
}

// CanReach simulates the arc launched from takeoff and reports whether it
// lands on target.
//
// A sample lands when the player box overlaps the target horizontally and
// its feet are no higher than LandingTolerance above the surface. With
// FaceCollision set, the feet must also be within LandingTolerance of the
// surface or have just passed through it from above, and a first
// overlapping sample already below the surface fails the jump.
func (m Model) CanReach(takeoff Point, target Target, opts ReachOptions) Reach {
	gap := target.Left - takeoff.X
	rise := target.Surface - takeoff.Y

	if opts.Prefilter && !m.WithinJumpDistance(gap) {
		return Reach{
			Code:   CodeGapTooFar,
			Reason: fmt.Sprintf("gap %gpx exceeds max jump distance %gpx", gap, m.MaxJumpDistance),
		}
	}

	span := target.Span()
	tol := m.LandingTolerance
	var (
		prev       Point
		hasPrev    bool
		overlapped bool
		touches    bool
	)

	for p := range m.Simulate(takeoff.X, takeoff.Y) {
		if p.Y <= 0 {
			touches = true
		}

		if core.NewSpan(p.X, m.PlayerWidth).Overlaps(span) {
			if opts.FaceCollision && !overlapped && p.Y < target.Surface-tol {
				return Reach{
					Code: CodeBlocked,
					Reason: fmt.Sprintf("blocked by obstacle face (feet at %.1fpx, surface %gpx)",
						p.Y, target.Surface),
					TouchesGround: touches,
				}
			}
			overlapped = true

			if m.lands(prev, hasPrev, p, target.Surface, opts.FaceCollision) {
				return Reach{OK: true, Landing: p, TouchesGround: touches}
			}
		}

		prev, hasPrev = p, true
	}

	if !m.WithinJumpDistance(gap) {
		return Reach{
			Code:          CodeGapTooFar,
			Reason:        fmt.Sprintf("gap %gpx exceeds max jump distance %gpx", gap, m.MaxJumpDistance),
			TouchesGround: touches,
		}
	}
	return Reach{
		Code:          CodeNotInArc,
		Reason:        fmt.Sprintf("target not in jump arc (gap=%gpx, rise=%gpx)", gap, rise),
		TouchesGround: touches,
	}
}

// lands applies the landing test to one sample. prev is the sample before
// cur, if any.
func (m Model) lands(prev Point, hasPrev bool, cur Point, surface float64, fromAbove bool) bool {
	tol := m.LandingTolerance
	if cur.Y > surface+tol {
		return false
	}
	if !fromAbove || cur.Y >= surface-tol {
		return true
	}
	// Passed through the surface between two frames.
	return hasPrev && prev.Y > surface
}
