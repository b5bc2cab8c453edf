package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	seq := Sequences{
		Heights: []int{0, 1, 2},
		Widths:  []int{4, 3, 3},
		Gaps:    []float64{2.0, 1.75, 2.0},
	}

	p, err := Assemble(seq, Info{Name: "Steps", Description: "three bars", Rhythm: "steady"}, DefaultBuildConfig())
	require.NoError(t, err)
	require.Equal(t, "Steps", p.Name)
	require.Len(t, p.Obstacles, 3)
	require.Equal(t, GroundShape(120, 0), p.Obstacles[0].Shape)
	require.Equal(t, GroundShape(90, 60), p.Obstacles[2].Shape)
	require.Equal(t, 175, p.Obstacles[1].Gap.Distance)
	require.Equal(t, []int{0, 320, 585}, p.Positions())
	require.Equal(t, Meta{Type: "bar", Length: 3, Rhythm: "steady"}, p.Meta)
}

func TestAssembleFloating(t *testing.T) {
	seq := Sequences{
		Heights: []int{3, 3, 2},
		Widths:  []int{4, 4, 4},
		Gaps:    []float64{2.0, 2.0, 2.0},
		Floors:  []int{1, 2, 2},
	}

	p, err := Assemble(seq, Info{Name: "Bridge"}, DefaultBuildConfig())
	require.NoError(t, err)
	require.Equal(t, FloatingShape(120, 30, 90), p.Obstacles[0].Shape)
	require.Equal(t, 90, p.Obstacles[1].Shape.Surface())
	// A floor at or above the height falls back to a ground bar.
	require.Equal(t, KindGround, p.Obstacles[2].Shape.Kind)
	require.Equal(t, "platform", p.Meta.Type)
}

func TestAssembleKillzones(t *testing.T) {
	seq := Sequences{
		Heights: []int{0, 1, 1},
		Widths:  []int{4, 3, 3},
		Gaps:    []float64{2.0, 1.75, 2.0},
		Hazards: []HazardKind{HazardNone, HazardLava, HazardSaw},
	}

	t.Run("inserted", func(t *testing.T) {
		p, err := Assemble(seq, Info{Name: "Lava"}, DefaultBuildConfig())
		require.NoError(t, err)
		require.Len(t, p.Obstacles, 4)

		kz := p.Obstacles[2]
		require.True(t, kz.Killzone)
		require.Equal(t, 0, kz.Shape.Width)
		require.Equal(t, Gap{Distance: 175, Hazard: HazardLava}, kz.Gap)
		require.Equal(t, 0, p.Obstacles[1].Gap.Distance)

		// Positions of the real obstacles do not move.
		require.Equal(t, []int{0, 320, 410, 585}, p.Positions())

		// The trailing hazard stays on the last gap.
		require.Equal(t, HazardSaw, p.Obstacles[3].Gap.Hazard)
		require.Equal(t, 4, p.Meta.Length)
	})

	t.Run("cosmetic", func(t *testing.T) {
		cfg := DefaultBuildConfig()
		cfg.InsertKillzones = false
		p, err := Assemble(seq, Info{Name: "Lava"}, cfg)
		require.NoError(t, err)
		require.Len(t, p.Obstacles, 3)
		require.Equal(t, HazardLava, p.Obstacles[1].Gap.Hazard)
	})
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequences
	}{
		{"empty", Sequences{}},
		{"mismatched widths", Sequences{Heights: []int{1, 2}, Widths: []int{3}, Gaps: []float64{2, 2}}},
		{"mismatched floors", Sequences{Heights: []int{1}, Widths: []int{3}, Gaps: []float64{2}, Floors: []int{0, 1}}},
		{"negative width", Sequences{Heights: []int{1}, Widths: []int{-1}, Gaps: []float64{2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assemble(tc.seq, Info{}, DefaultBuildConfig())
			require.Error(t, err)
		})
	}

	_, err := Assemble(Sequences{}, Info{}, DefaultBuildConfig())
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestScaleWidths(t *testing.T) {
	g := DefaultGrid()
	p := course(
		bar(60, 30, 200),
		Killzone(150, HazardLava),
		bar(240, 30, 175),
		platform(30, 30, 60, 200),
	)

	scaled := ScaleWidths(p, 1.25, g)
	require.Equal(t, 60, scaled.Obstacles[0].Shape.Width)   // 2 * 1.25 = 2
	require.Equal(t, 0, scaled.Obstacles[1].Shape.Width)    // killzone untouched
	require.Equal(t, 300, scaled.Obstacles[2].Shape.Width)  // 8 * 1.25 = 10
	require.Equal(t, 60, scaled.Obstacles[3].Shape.Width)   // 1 unit floors to 2
	require.Equal(t, 30, scaled.Obstacles[3].Shape.Floor)   // heights untouched
	require.Equal(t, 175, scaled.Obstacles[2].Gap.Distance) // gaps untouched

	// The input is not modified.
	require.Equal(t, 240, p.Obstacles[2].Shape.Width)

	medium := ScaleWidths(p, 1.15, g)
	require.Equal(t, 270, medium.Obstacles[2].Shape.Width) // 8 * 1.15 = 9.2
}

func TestScaleWidthsNeverNarrows(t *testing.T) {
	g := DefaultGrid()
	p := course(bar(100, 30, 200), bar(95, 30, 200), platform(61, 30, 60, 200))

	tests := []struct {
		factor float64
		want   []int
	}{
		{1.0, []int{120, 120, 90}},
		{1.15, []int{120, 120, 90}}, // 4 * 1.15 = 4.6, 3 * 1.15 = 3.45
		{1.25, []int{150, 150, 90}}, // 4 * 1.25 = 5
		{1.5, []int{180, 180, 120}},
	}

	for _, tc := range tests {
		scaled := ScaleWidths(p, tc.factor, g)
		for i, ob := range scaled.Obstacles {
			require.Equal(t, tc.want[i], ob.Shape.Width, "factor %g obstacle %d", tc.factor, i)
			require.GreaterOrEqual(t, ob.Shape.Width, p.Obstacles[i].Shape.Width)
		}
	}
}

func TestDifficultyVariants(t *testing.T) {
	base := groundCourse()
	base.Name = "Wave Rider"

	variants := DifficultyVariants(base, DefaultLevels(), DefaultGrid())
	require.Len(t, variants, 3)

	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Pattern.Name
	}
	require.Equal(t, []string{"Wave Rider (Hard)", "Wave Rider (Medium)", "Wave Rider (Easy)"}, names)

	// Hard keeps the widths.
	require.Equal(t, base.Obstacles, variants[0].Pattern.Obstacles)
	require.Equal(t, "Wave Rider", base.Name)
}

func TestHazards(t *testing.T) {
	for _, h := range Hazards() {
		parsed, ok := ParseHazard(h.String())
		require.True(t, ok, h.String())
		require.Equal(t, h, parsed)
	}
	_, ok := ParseHazard("acid")
	require.False(t, ok)
}
