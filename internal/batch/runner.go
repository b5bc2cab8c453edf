// Package batch drives a generation run: every selected recipe is generated
// until a valid base pattern appears, expanded into difficulty variants,
// re-validated, exported and recorded.
package batch

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumpforge/internal/export"
	"github.com/vovakirdan/jumpforge/internal/pattern"
	"github.com/vovakirdan/jumpforge/internal/physics"
	"github.com/vovakirdan/jumpforge/internal/registry"
)

// DefaultAttempts is how many times a recipe is regenerated before it is
// reported as rejected.
const DefaultAttempts = 20

// Options configure a run.
type Options struct {
	Seed     int64
	Attempts int
	Levels   []pattern.Level
	Validate pattern.Options
	Build    pattern.BuildConfig

	// Recipes limits the run to these generator IDs. Empty runs every
	// registered generator.
	Recipes []string
}

// DefaultOptions runs every recipe at the stock difficulty levels.
func DefaultOptions() Options {
	return Options{
		Attempts: DefaultAttempts,
		Levels:   pattern.DefaultLevels(),
		Validate: pattern.DefaultOptions(),
		Build:    pattern.DefaultBuildConfig(),
	}
}

// Outcome is the verdict for one exported (or rejected) variant.
type Outcome struct {
	RecipeID   string
	Slug       string
	Difficulty string
	Result     pattern.Result
	Path       string // empty when nothing was written
	Obstacles  int
	Attempt    int // 1-based attempt that produced the base pattern
}

// Summary totals a run.
type Summary struct {
	RunID    int64
	Seed     int64
	Accepted int
	Rejected int
	Outcomes []Outcome
}

// Recorder persists run results.
type Recorder interface {
	BeginRun(seed int64) (int64, error)
	RecordResult(runID int64, o Outcome) error
	FinishRun(runID int64, s Summary) error
}

// Runner executes batch runs.
type Runner struct {
	model    physics.Model
	writer   *export.Writer
	recorder Recorder
	logger   *log.Logger
	opts     Options
}

// NewRunner creates a runner. A nil writer makes the run a dry run; a nil
// recorder skips persistence; a nil logger uses the default logger.
func NewRunner(m physics.Model, w *export.Writer, rec Recorder, logger *log.Logger, opts Options) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	if len(opts.Levels) == 0 {
		opts.Levels = pattern.DefaultLevels()
	}
	if opts.Build.Grid == (pattern.Grid{}) {
		opts.Build.Grid = pattern.DefaultGrid()
	}
	return &Runner{model: m, writer: w, recorder: rec, logger: logger, opts: opts}
}

// Run generates every selected recipe. Individual recipe failures are logged
// and counted as rejections; only setup errors, persistence errors and
// cancellation abort the run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	ids, err := r.recipeIDs()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Seed: r.opts.Seed}
	if r.recorder != nil {
		id, err := r.recorder.BeginRun(r.opts.Seed)
		if err != nil {
			return sum, fmt.Errorf("batch: begin run: %w", err)
		}
		sum.RunID = id
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		outcomes := r.runRecipe(id, recipeSeed(r.opts.Seed, id))
		for _, o := range outcomes {
			if o.Result.Valid {
				sum.Accepted++
			} else {
				sum.Rejected++
			}
			if r.recorder != nil {
				if err := r.recorder.RecordResult(sum.RunID, o); err != nil {
					return sum, fmt.Errorf("batch: record %s: %w", o.Slug, err)
				}
			}
		}
		sum.Outcomes = append(sum.Outcomes, outcomes...)
	}

	if r.recorder != nil {
		if err := r.recorder.FinishRun(sum.RunID, sum); err != nil {
			return sum, fmt.Errorf("batch: finish run: %w", err)
		}
	}

	r.logger.Info("run complete", "recipes", len(ids), "accepted", sum.Accepted, "rejected", sum.Rejected)
	return sum, nil
}

// recipeSeed derives the random stream of one recipe from the run seed and
// the recipe ID. A recipe generates the same patterns whichever other
// recipes share the run.
func recipeSeed(seed int64, id string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", seed)
	h.Write([]byte{0})
	h.Write([]byte(id))
	return int64(h.Sum64())
}

func (r *Runner) recipeIDs() ([]string, error) {
	if len(r.opts.Recipes) == 0 {
		return registry.IDs(), nil
	}
	var errs []error
	for _, id := range r.opts.Recipes {
		if !registry.Exists(id) {
			errs = append(errs, fmt.Errorf("batch: unknown recipe %q", id))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r.opts.Recipes, nil
}

func (r *Runner) runRecipe(id string, seed int64) []Outcome {
	logger := r.logger.With("recipe", id)

	g, err := registry.Create(id)
	if err != nil {
		logger.Error("create generator", "err", err)
		return []Outcome{r.rejected(id, "", 0, pattern.Result{FailureIndex: -1, Code: "GENERATOR", Reason: err.Error()})}
	}

	rng := rand.New(rand.NewSource(seed))
	var (
		base    pattern.Pattern
		last    pattern.Result
		attempt int
	)
	for attempt = 1; attempt <= r.opts.Attempts; attempt++ {
		p, err := g.Generate(rng, r.model, r.opts.Build)
		if err != nil {
			last = pattern.Result{FailureIndex: -1, Code: "GENERATOR", Reason: err.Error()}
			logger.Debug("generate failed", "attempt", attempt, "err", err)
			continue
		}
		last = pattern.Validate(p, r.model, r.opts.Validate)
		if last.Valid {
			base = p
			break
		}
		logger.Debug("rejected base pattern", "attempt", attempt, "code", last.Code, "index", last.FailureIndex)
	}
	if !last.Valid {
		logger.Warn("no valid pattern", "attempts", r.opts.Attempts, "code", last.Code, "reason", last.Reason)
		return []Outcome{r.rejected(id, g.Title(), r.opts.Attempts, last)}
	}

	variants := pattern.DifficultyVariants(base, r.opts.Levels, r.opts.Build.Grid)
	outcomes := make([]Outcome, 0, len(variants))
	for _, v := range variants {
		o := Outcome{
			RecipeID:   id,
			Slug:       export.Slug(v.Pattern.Name, v.Level.Name),
			Difficulty: v.Level.Name,
			Obstacles:  len(v.Pattern.Obstacles),
			Attempt:    attempt,
		}
		o.Result = pattern.Validate(v.Pattern, r.model, r.opts.Validate)
		if !o.Result.Valid {
			logger.Warn("variant failed validation", "slug", o.Slug, "code", o.Result.Code, "reason", o.Result.Reason)
			outcomes = append(outcomes, o)
			continue
		}

		if r.writer != nil {
			path, err := r.write(o.Slug, v.Pattern, o.Result.TouchesGround)
			if err != nil {
				logger.Error("export failed", "slug", o.Slug, "err", err)
				o.Result = pattern.Result{FailureIndex: -1, Code: "EXPORT", Reason: err.Error()}
				outcomes = append(outcomes, o)
				continue
			}
			o.Path = path
		}
		logger.Info("accepted", "slug", o.Slug, "obstacles", o.Obstacles, "attempt", attempt)
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func (r *Runner) write(slug string, p pattern.Pattern, touchesGround bool) (string, error) {
	doc, err := export.Encode(p, touchesGround, r.opts.Build.Grid)
	if err != nil {
		return "", err
	}
	return r.writer.Write(slug, doc)
}

func (r *Runner) rejected(id, title string, attempts int, res pattern.Result) Outcome {
	name := title
	if name == "" {
		name = id
	}
	return Outcome{
		RecipeID: id,
		Slug:     export.Slug(name, ""),
		Result:   res,
		Attempt:  attempts,
	}
}
