package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jumpforge/internal/batch"
	"github.com/vovakirdan/jumpforge/internal/pattern"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func accepted(recipe, slug, difficulty string) batch.Outcome {
	return batch.Outcome{
		RecipeID:   recipe,
		Slug:       slug,
		Difficulty: difficulty,
		Result:     pattern.Result{Valid: true, FailureIndex: -1, TouchesGround: true},
		Obstacles:  12,
		Attempt:    1,
	}
}

func rejected(recipe, code string) batch.Outcome {
	return batch.Outcome{
		RecipeID: recipe,
		Slug:     recipe,
		Result:   pattern.Result{FailureIndex: 3, Code: code, Reason: "nope"},
		Attempt:  20,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "runs", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs the migrations again
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store.Close()
}

func TestStoreRunLifecycle(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.BeginRun(42)
	if err != nil {
		t.Fatalf("BeginRun() failed: %v", err)
	}

	run, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Seed != 42 {
		t.Fatalf("RunByID() = %+v, want seed 42", run)
	}
	if !run.FinishedAt.IsZero() {
		t.Error("unfinished run has a finish time")
	}

	outcomes := []batch.Outcome{
		accepted("hill", "hill_hard", "hard"),
		accepted("hill", "hill_medium", "medium"),
		rejected("long-jumper", pattern.CodeGapTooFar),
	}
	for _, o := range outcomes {
		if err := store.RecordResult(runID, o); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	if err := store.FinishRun(runID, batch.Summary{Accepted: 2, Rejected: 1}); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}

	run, err = store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Accepted != 2 || run.Rejected != 1 {
		t.Errorf("totals = %d/%d, want 2/1", run.Accepted, run.Rejected)
	}
	if run.FinishedAt.IsZero() {
		t.Error("finished run has no finish time")
	}

	results, err := store.RunResults(runID)
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Slug != "hill_hard" || !results[0].Valid || !results[0].TouchesGround {
		t.Errorf("first result = %+v", results[0])
	}
	if results[0].Obstacles != 12 || results[0].FailureIndex != -1 {
		t.Errorf("first result = %+v", results[0])
	}
	if results[2].Valid || results[2].Code != pattern.CodeGapTooFar || results[2].FailureIndex != 3 {
		t.Errorf("rejected result = %+v", results[2])
	}
}

func TestStoreFinishUnknownRun(t *testing.T) {
	store := openTestStore(t)

	if err := store.FinishRun(999, batch.Summary{}); err == nil {
		t.Error("FinishRun() on a missing run should fail")
	}

	run, err := store.RunByID(999)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("RunByID() = %+v, want nil", run)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 5; seed++ {
		if _, err := store.BeginRun(seed); err != nil {
			t.Fatalf("BeginRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int64{5, 4, 3} {
		if runs[i].Seed != want {
			t.Errorf("runs[%d].Seed = %d, want %d", i, runs[i].Seed, want)
		}
	}
}

func TestStoreRecipeStats(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.BeginRun(1)
	second, _ := store.BeginRun(2)

	records := []struct {
		run int64
		o   batch.Outcome
	}{
		{first, accepted("hill", "hill_hard", "hard")},
		{first, rejected("sawtooth", pattern.CodeBlocked)},
		{second, accepted("hill", "hill_easy", "easy")},
		{second, rejected("sawtooth", pattern.CodeNotInArc)},
		{second, accepted("sawtooth", "sawtooth_hard", "hard")},
	}
	for _, r := range records {
		if err := store.RecordResult(r.run, r.o); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	stats, err := store.RecipeStats()
	if err != nil {
		t.Fatalf("RecipeStats() failed: %v", err)
	}

	want := []RecipeStat{
		{RecipeID: "hill", Accepted: 2},
		{RecipeID: "sawtooth", Accepted: 1, Rejected: 2, LastCode: pattern.CodeNotInArc},
	}
	if len(stats) != len(want) {
		t.Fatalf("RecipeStats() = %+v", stats)
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], want[i])
		}
	}
}
