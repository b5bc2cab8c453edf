package physics

import (
	"math"
	"strings"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDerivedConstants(t *testing.T) {
	m := Default()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"max obstacle height", m.MaxObstacleHeight, 98},
		{"max jump distance", m.MaxJumpDistance, 225},
		{"min safe gap", m.MinSafeGap, 60},
		{"max forward jump height", m.MaxForwardJumpHeight, 39},
		{"max climb height", m.MaxClimbHeight, 58},
		{"player width", m.PlayerWidth, 40},
		{"landing tolerance", m.LandingTolerance, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if m.MaxSteps != 50 {
		t.Errorf("MaxSteps = %d, want 50", m.MaxSteps)
	}
	if !approxEqual(m.PeakHeight(), 140.625) {
		t.Errorf("PeakHeight = %f, want 140.625", m.PeakHeight())
	}
}

func TestAnalyticChecks(t *testing.T) {
	m := Default()

	if !m.WithinJumpDistance(225) || m.WithinJumpDistance(226) {
		t.Error("WithinJumpDistance boundary wrong")
	}
	if !m.CanClimb(58) || m.CanClimb(59) {
		t.Error("CanClimb boundary wrong")
	}
	if !m.CanForwardJump(39) || m.CanForwardJump(40) {
		t.Error("CanForwardJump boundary wrong")
	}
	if !m.CanForwardJump(-90) {
		t.Error("descents should always be allowed")
	}
	if m.CanLandSafely(50, 30) {
		t.Error("narrow target with short run-up should be unsafe")
	}
	if !m.CanLandSafely(60, 30) {
		t.Error("narrow target with min safe gap should be safe")
	}
	if !m.CanLandSafely(10, 60) {
		t.Error("wide target should always be safe")
	}
}

func TestWithCopies(t *testing.T) {
	base := Default()
	wide := base.WithPlayer(60, 50)
	if base.PlayerWidth != 40 {
		t.Error("WithPlayer modified the receiver")
	}
	if wide.PlayerWidth != 60 || wide.PlayerHeight != 50 {
		t.Errorf("WithPlayer = %v x %v", wide.PlayerWidth, wide.PlayerHeight)
	}

	short := base.WithSampling(10, 0, 2)
	if short.MaxSteps != 10 || short.Margin != 0 || short.LandingTolerance != 2 {
		t.Errorf("WithSampling not applied: %+v", short)
	}
}

func TestSimulateFromGround(t *testing.T) {
	m := Default()
	path := m.Path(0, 0)

	if len(path) != 40 {
		t.Fatalf("len(path) = %d, want 40", len(path))
	}
	if path[0] != (Point{0, 0}) {
		t.Errorf("first sample = %+v, want takeoff", path[0])
	}
	if !approxEqual(path[1].X, 6) || !approxEqual(path[1].Y, 15) {
		t.Errorf("second sample = %+v, want (6, 15)", path[1])
	}
	if !approxEqual(path[2].Y, 29.2) {
		t.Errorf("third sample Y = %f, want 29.2", path[2].Y)
	}

	last := path[len(path)-1]
	if !approxEqual(last.X, 234) || last.Y != 0 {
		t.Errorf("terminal sample = %+v, want (234, 0)", last)
	}
	for i, p := range path {
		if p.Y < 0 {
			t.Errorf("sample %d below ground: %+v", i, p)
		}
	}
}

func TestSimulateBounds(t *testing.T) {
	m := Default()

	t.Run("step cap", func(t *testing.T) {
		path := m.Path(0, 300)
		if len(path) != m.MaxSteps {
			t.Fatalf("len(path) = %d, want %d", len(path), m.MaxSteps)
		}
		if path[len(path)-1].Y <= 0 {
			t.Error("high takeoff should not reach the ground within the step cap")
		}
	})

	t.Run("distance cap", func(t *testing.T) {
		fast := New(0.8, -15, 20)
		limit := fast.MaxJumpDistance + fast.Margin
		for _, p := range fast.Path(0, 500) {
			if p.X > limit {
				t.Fatalf("sample %+v beyond distance limit %f", p, limit)
			}
		}
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range m.Simulate(0, 0) {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Errorf("consumed %d samples, want 3", n)
		}
	})

	t.Run("replay", func(t *testing.T) {
		a := m.Path(100, 30)
		b := m.Path(100, 30)
		if len(a) != len(b) {
			t.Fatalf("replay length differs: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("replay differs at %d: %+v vs %+v", i, a[i], b[i])
			}
		}
	})
}

func TestApex(t *testing.T) {
	apex := Default().Apex()
	// Frame sampling overshoots the continuous peak of 140.625.
	if !approxEqual(apex.Y, 148.2) {
		t.Errorf("apex height = %f, want 148.2", apex.Y)
	}
	if !approxEqual(apex.X, 114) {
		t.Errorf("apex X = %f, want 114", apex.X)
	}
}

func TestCanReach(t *testing.T) {
	m := Default()

	tests := []struct {
		name     string
		takeoff  Point
		target   Target
		ok       bool
		code     string
		landingX float64
		touches  bool
	}{
		{
			name:     "rise of 30 over 200",
			takeoff:  Point{0, 30},
			target:   Target{Left: 200, Width: 90, Surface: 60},
			ok:       true,
			landingX: 222,
		},
		{
			name:     "same height over 175",
			takeoff:  Point{0, 30},
			target:   Target{Left: 175, Width: 90, Surface: 30},
			ok:       true,
			landingX: 234,
		},
		{
			name:     "drop of 30 over 200",
			takeoff:  Point{0, 60},
			target:   Target{Left: 200, Width: 120, Surface: 30},
			ok:       true,
			landingX: 246,
		},
		{
			name:     "from ground",
			takeoff:  Point{90, 0},
			target:   Target{Left: 290, Width: 90, Surface: 30},
			ok:       true,
			landingX: 312,
			touches:  true,
		},
		{
			name:    "too far with prefilter",
			takeoff: Point{0, 30},
			target:  Target{Left: 250, Width: 90, Surface: 30},
			code:    CodeGapTooFar,
		},
		{
			name:    "target too short to reach",
			takeoff: Point{0, 30},
			target:  Target{Left: 50, Width: 60, Surface: 30},
			code:    CodeNotInArc,
			touches: true,
		},
		{
			name:     "short hop up onto a bar",
			takeoff:  Point{0, 30},
			target:   Target{Left: 45, Width: 90, Surface: 60},
			ok:       true,
			landingX: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := m.CanReach(tc.takeoff, tc.target, ReachOptions{Prefilter: true})
			if r.OK != tc.ok {
				t.Fatalf("OK = %v, want %v (%s)", r.OK, tc.ok, r.Reason)
			}
			if !tc.ok {
				if r.Code != tc.code {
					t.Errorf("Code = %q, want %q (%s)", r.Code, tc.code, r.Reason)
				}
				if r.Reason == "" {
					t.Error("failure without reason")
				}
			} else if !approxEqual(r.Landing.X, tc.landingX) {
				t.Errorf("landing X = %f, want %f", r.Landing.X, tc.landingX)
			}
			if r.TouchesGround != tc.touches {
				t.Errorf("TouchesGround = %v, want %v", r.TouchesGround, tc.touches)
			}
		})
	}
}

func TestCanReachWithoutPrefilter(t *testing.T) {
	m := Default()
	r := m.CanReach(Point{0, 30}, Target{Left: 400, Width: 90, Surface: 30}, ReachOptions{})
	if r.OK {
		t.Fatal("unreachable target reported reachable")
	}
	if r.Code != CodeGapTooFar {
		t.Errorf("Code = %q, want %q", r.Code, CodeGapTooFar)
	}
	if !strings.Contains(r.Reason, "225") {
		t.Errorf("reason %q should name the jump distance", r.Reason)
	}
}

func TestCanReachFaceCollision(t *testing.T) {
	m := Default()
	face := ReachOptions{Prefilter: true, FaceCollision: true}

	tests := []struct {
		name     string
		takeoff  Point
		target   Target
		ok       bool
		landingX float64
	}{
		{"short hop meets the face", Point{0, 30}, Target{Left: 45, Width: 90, Surface: 60}, false, 0},
		{"tall bar next to takeoff", Point{0, 0}, Target{Left: 20, Width: 60, Surface: 90}, false, 0},
		{"descending onto the top", Point{0, 30}, Target{Left: 200, Width: 90, Surface: 60}, true, 222},
		{"drop onto a lower bar", Point{0, 60}, Target{Left: 200, Width: 120, Surface: 30}, true, 246},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loose := m.CanReach(tc.takeoff, tc.target, ReachOptions{Prefilter: true})
			if !loose.OK {
				t.Fatalf("default landing test rejected the jump: %s", loose.Reason)
			}

			r := m.CanReach(tc.takeoff, tc.target, face)
			if r.OK != tc.ok {
				t.Fatalf("OK = %v, want %v (%s)", r.OK, tc.ok, r.Reason)
			}
			if !tc.ok {
				if r.Code != CodeBlocked {
					t.Errorf("Code = %q, want %q", r.Code, CodeBlocked)
				}
				if !strings.Contains(r.Reason, "obstacle face") {
					t.Errorf("reason %q should name the face", r.Reason)
				}
				return
			}
			if !approxEqual(r.Landing.X, tc.landingX) {
				t.Errorf("landing X = %f, want %f", r.Landing.X, tc.landingX)
			}
		})
	}
}
