package pattern

import (
	"fmt"

	"github.com/vovakirdan/jumpforge/internal/physics"
)

// Failure codes reported by Validate. Reachability failures reuse the
// physics codes.
const (
	CodeEmpty           = "EMPTY"
	CodeTooTall         = "TOO_TALL"
	CodeStackTooSteep   = "STACK_TOO_STEEP"
	CodeGapTooFar       = physics.CodeGapTooFar
	CodeUnsafeNarrowGap = "UNSAFE_NARROW_GAP"
	CodeBlocked         = physics.CodeBlocked
	CodeNotInArc        = physics.CodeNotInArc
	CodeForwardTooHigh  = "FORWARD_JUMP_TOO_HIGH"
	CodeDescentTooDeep  = "DESCENT_TOO_DEEP"
)

const afterHazardReasonFmt = "not reachable from ground after hazard: %s"

// Options tune the validator.
type Options struct {
	// Prefilter rejects gaps wider than the jump distance before simulating.
	Prefilter bool

	// StrictDescent bounds drops across a gap by MaxForwardJumpHeight too.
	StrictDescent bool

	// FaceCollision rejects arcs that meet the target's face before its top.
	FaceCollision bool
}

// DefaultOptions enables the prefilter and leaves descents unbounded.
func DefaultOptions() Options {
	return Options{Prefilter: true}
}

func (o Options) reach() physics.ReachOptions {
	return physics.ReachOptions{Prefilter: o.Prefilter, FaceCollision: o.FaceCollision}
}

// Result is the verdict for one pattern. FailureIndex is -1 when valid.
type Result struct {
	Valid         bool
	FailureIndex  int
	Code          string
	Reason        string
	TouchesGround bool
}

// Error makes a failed result usable as an error value.
func (r Result) Error() string {
	return fmt.Sprintf("[%s] obstacle %d: %s", r.Code, r.FailureIndex, r.Reason)
}

// Jump describes one airborne transition.
type Jump struct {
	Takeoff physics.Point
	Gap     float64
	Target  physics.Target
}

// Rise returns the height difference between landing and takeoff.
func (j Jump) Rise() float64 {
	return j.Target.Surface - j.Takeoff.Y
}

// CheckJump applies the gap-jump rule: jump distance, run-up before a narrow
// target, arc reachability, then the forward-jump height bound.
func CheckJump(m physics.Model, opts Options, j Jump) physics.Reach {
	if !m.WithinJumpDistance(j.Gap) {
		return physics.Reach{
			Code:   CodeGapTooFar,
			Reason: fmt.Sprintf("gap %gpx exceeds max jump distance %gpx", j.Gap, m.MaxJumpDistance),
		}
	}
	if !m.CanLandSafely(j.Gap, j.Target.Width) {
		return physics.Reach{
			Code: CodeUnsafeNarrowGap,
			Reason: fmt.Sprintf("unsafe gap for narrow platform: gap %gpx below min safe gap %gpx for %gpx wide target",
				j.Gap, m.MinSafeGap, j.Target.Width),
		}
	}

	r := m.CanReach(j.Takeoff, j.Target, opts.reach())
	if !r.OK {
		return r
	}

	rise := j.Rise()
	if !m.CanForwardJump(rise) {
		return physics.Reach{
			Code:          CodeForwardTooHigh,
			Reason:        fmt.Sprintf("upward jump %gpx exceeds max forward jump height %gpx", rise, m.MaxForwardJumpHeight),
			TouchesGround: r.TouchesGround,
		}
	}
	if opts.StrictDescent && -rise > m.MaxForwardJumpHeight {
		return physics.Reach{
			Code:          CodeDescentTooDeep,
			Reason:        fmt.Sprintf("drop %gpx exceeds max forward jump height %gpx", -rise, m.MaxForwardJumpHeight),
			TouchesGround: r.TouchesGround,
		}
	}
	return r
}

// Validate walks the pattern left to right and checks every transition
// against the physics model. It stops at the first violation.
//
// The entry onto the first obstacle is only checked for height. Transitions
// into a killzone are skipped; the obstacle after a killzone must be reachable
// by a jump from the ground at the killzone's start.
func Validate(p Pattern, m physics.Model, opts Options) Result {
	if len(p.Obstacles) == 0 {
		return Result{FailureIndex: -1, Code: CodeEmpty, Reason: "pattern has no obstacles"}
	}

	xs := p.Positions()
	touches := false

	for i, ob := range p.Obstacles {
		surface := ob.Shape.Surface()
		if float64(surface) > m.MaxObstacleHeight {
			return fail(i, CodeTooTall,
				fmt.Sprintf("height %dpx exceeds max obstacle height %gpx", surface, m.MaxObstacleHeight), touches)
		}
		if i == 0 || ob.Killzone {
			continue
		}

		prev := p.Obstacles[i-1]
		target := physics.Target{
			Left:    float64(xs[i]),
			Width:   float64(ob.Shape.Width),
			Surface: float64(surface),
		}

		switch {
		case prev.Killzone:
			j := Jump{
				Takeoff: physics.Point{X: float64(xs[i-1] + prev.Shape.Width), Y: 0},
				Gap:     float64(prev.Gap.Distance),
				Target:  target,
			}
			touches = true
			r := CheckJump(m, opts, j)
			if !r.OK {
				return fail(i, r.Code, fmt.Sprintf(afterHazardReasonFmt, r.Reason), touches)
			}

		case prev.Gap.Distance == 0:
			rise := surface - prev.Shape.Surface()
			if !m.CanClimb(float64(rise)) {
				return fail(i, CodeStackTooSteep,
					fmt.Sprintf("stack climb %dpx exceeds max climb %gpx", rise, m.MaxClimbHeight), touches)
			}

		default:
			j := Jump{
				Takeoff: physics.Point{X: float64(xs[i-1] + prev.Shape.Width), Y: float64(prev.Shape.Surface())},
				Gap:     float64(prev.Gap.Distance),
				Target:  target,
			}
			r := CheckJump(m, opts, j)
			if !r.OK {
				return fail(i, r.Code, r.Reason, touches)
			}
			if r.TouchesGround {
				touches = true
			}
		}

		if ob.Shape.Kind == KindGround {
			touches = true
		}
	}

	return Result{Valid: true, FailureIndex: -1, TouchesGround: touches}
}

func fail(index int, code, reason string, touches bool) Result {
	return Result{
		FailureIndex:  index,
		Code:          code,
		Reason:        reason,
		TouchesGround: touches,
	}
}
