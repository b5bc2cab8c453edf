package batch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jumpforge/internal/export"
	_ "github.com/vovakirdan/jumpforge/internal/library"
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/physics"
)

type memRecorder struct {
	begun    []int64
	results  []Outcome
	finished *Summary
	failOn   string
}

func (m *memRecorder) BeginRun(seed int64) (int64, error) {
	m.begun = append(m.begun, seed)
	return int64(len(m.begun)), nil
}

func (m *memRecorder) RecordResult(_ int64, o Outcome) error {
	if o.Slug == m.failOn {
		return errors.New("disk full")
	}
	m.results = append(m.results, o)
	return nil
}

func (m *memRecorder) FinishRun(_ int64, s Summary) error {
	m.finished = &s
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions(recipes ...string) Options {
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Recipes = recipes
	return opts
}

func TestRunWritesVariants(t *testing.T) {
	dir := t.TempDir()
	rec := &memRecorder{}
	r := NewRunner(physics.Default(), export.NewWriter(dir), rec, quietLogger(), testOptions("wave-rider", "hill"))

	sum, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), sum.RunID)
	require.Equal(t, 6, sum.Accepted)
	require.Equal(t, 0, sum.Rejected)
	require.Len(t, sum.Outcomes, 6)

	for _, o := range sum.Outcomes {
		require.True(t, o.Result.Valid, o.Slug)
		require.FileExists(t, o.Path)
		require.Equal(t, filepath.Join(dir, o.Slug+".json"), o.Path)
		require.GreaterOrEqual(t, o.Attempt, 1)
	}
	require.Equal(t, "wave_rider_hard", sum.Outcomes[0].Slug)
	require.Equal(t, "wave_rider_medium", sum.Outcomes[1].Slug)
	require.Equal(t, "wave_rider_easy", sum.Outcomes[2].Slug)

	require.Equal(t, []int64{42}, rec.begun)
	require.Len(t, rec.results, 6)
	require.NotNil(t, rec.finished)
	require.Equal(t, 6, rec.finished.Accepted)

	loaded, err := export.NewLoader(dir, pattern.DefaultGrid()).LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 6)
	for _, l := range loaded {
		require.NoError(t, l.Err)
		require.True(t, pattern.Validate(l.Pattern, physics.Default(), pattern.DefaultOptions()).Valid, l.Slug)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	_, err := NewRunner(physics.Default(), export.NewWriter(a), nil, quietLogger(), testOptions("zigzag-chaos")).Run(context.Background())
	require.NoError(t, err)
	_, err = NewRunner(physics.Default(), export.NewWriter(b), nil, quietLogger(), testOptions("zigzag-chaos")).Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"zigzag_chaos_hard.json", "zigzag_chaos_medium.json", "zigzag_chaos_easy.json"} {
		first, err := os.ReadFile(filepath.Join(a, name))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(b, name))
		require.NoError(t, err)
		require.Equal(t, first, second, name)
	}
}

func TestRunSeedIgnoresSelection(t *testing.T) {
	alone := t.TempDir()
	mixed := t.TempDir()

	_, err := NewRunner(physics.Default(), export.NewWriter(alone), nil, quietLogger(), testOptions("hill")).Run(context.Background())
	require.NoError(t, err)
	_, err = NewRunner(physics.Default(), export.NewWriter(mixed), nil, quietLogger(), testOptions("wave-rider", "sawtooth", "hill")).Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"hill_hard.json", "hill_medium.json", "hill_easy.json"} {
		first, err := os.ReadFile(filepath.Join(alone, name))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(mixed, name))
		require.NoError(t, err)
		require.Equal(t, first, second, name)
	}
}

func TestRecipeSeed(t *testing.T) {
	require.Equal(t, recipeSeed(42, "hill"), recipeSeed(42, "hill"))
	require.NotEqual(t, recipeSeed(42, "hill"), recipeSeed(42, "wave-rider"))
	require.NotEqual(t, recipeSeed(42, "hill"), recipeSeed(43, "hill"))
}

func TestRunDryRun(t *testing.T) {
	r := NewRunner(physics.Default(), nil, nil, quietLogger(), testOptions("steady-rhythm"))

	sum, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, sum.Accepted)
	for _, o := range sum.Outcomes {
		require.Empty(t, o.Path)
	}
}

func TestRunUnknownRecipe(t *testing.T) {
	rec := &memRecorder{}
	r := NewRunner(physics.Default(), nil, rec, quietLogger(), testOptions("hill", "no-such-recipe"))

	_, err := r.Run(context.Background())
	require.ErrorContains(t, err, "no-such-recipe")
	require.Empty(t, rec.begun)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &memRecorder{}
	r := NewRunner(physics.Default(), nil, rec, quietLogger(), testOptions("hill"))

	_, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, rec.results)
	require.Nil(t, rec.finished)
}

func TestRunRecorderFailure(t *testing.T) {
	rec := &memRecorder{failOn: "hill_medium"}
	r := NewRunner(physics.Default(), nil, rec, quietLogger(), testOptions("hill"))

	_, err := r.Run(context.Background())
	require.ErrorContains(t, err, "disk full")
	require.Len(t, rec.results, 1)
	require.Nil(t, rec.finished)
}

func TestRunRejectsImpossiblePhysics(t *testing.T) {
	// A runner this slow cannot clear any stock gap.
	weak := physics.New(physics.DefaultGravity, physics.DefaultJumpPower, 1)

	opts := testOptions("long-jumper")
	opts.Attempts = 3
	r := NewRunner(weak, nil, nil, quietLogger(), opts)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, sum.Accepted)
	require.Equal(t, 1, sum.Rejected)
	require.False(t, sum.Outcomes[0].Result.Valid)
	require.Equal(t, 3, sum.Outcomes[0].Attempt)
}
