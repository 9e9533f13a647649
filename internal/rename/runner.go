package rename

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"bulkrename/internal/compose"
	"bulkrename/internal/config"
	"bulkrename/internal/extract"
	"bulkrename/internal/faults"
	"bulkrename/internal/fileutil"
	"bulkrename/internal/logging"
	"bulkrename/internal/move"
)

// Recorder persists committed moves.
type Recorder interface {
	Record(ctx context.Context, runID, source, destination string) error
}

// Options configures a Runner.
type Options struct {
	Rename   config.Rename
	Commit   bool
	Logger   *slog.Logger
	Recorder Recorder
}

// Entry is one line of the report.
type Entry struct {
	Move    move.Move
	Status  move.Status
	Message string
}

// Result holds the planned moves and, index for index, their outcomes.
type Result struct {
	Moves  []move.Move
	Report []Entry
}

// Summary counts report entries per status.
type Summary struct {
	Moved     int
	Unchanged int
	Failed    int
}

// Summary tallies the report.
func (r Result) Summary() Summary {
	var s Summary
	for _, e := range r.Report {
		switch e.Status {
		case move.Moved:
			s.Moved++
		case move.Unchanged:
			s.Unchanged++
		case move.Failed:
			s.Failed++
		}
	}
	return s
}

// HasFailures reports whether any entry failed.
func (r Result) HasFailures() bool {
	return r.Summary().Failed > 0
}

// Runner executes batches. Extractor state such as the number counter lives
// for the Runner's lifetime, so one Runner serves one batch.
type Runner struct {
	composer *compose.Composer
	mover    *move.Mover
	commit   bool
	recorder Recorder
	logger   *slog.Logger
}

// New builds the extractors and composer for opts. Unknown modules and bad
// settings fail here as configuration errors.
func New(opts Options) (*Runner, error) {
	logger := logging.NewComponentLogger(opts.Logger, "rename")
	extractors, err := extract.Build(opts.Rename.Modules, extract.Settings{
		Number:    opts.Rename.Number,
		Algorithm: opts.Rename.Algorithm,
		Pattern:   opts.Rename.Regex,
	})
	if err != nil {
		return nil, err
	}
	composer, err := compose.New(opts.Rename.Format, opts.Rename.Limit, extractors, opts.Logger)
	if err != nil {
		return nil, err
	}
	return &Runner{
		composer: composer,
		mover:    move.NewMover(opts.Commit, opts.Logger),
		commit:   opts.Commit,
		recorder: opts.Recorder,
		logger:   logger,
	}, nil
}

// Run plans every file, then moves them in order. A planning error aborts
// the batch before any move and yields no report.
func (r *Runner) Run(ctx context.Context, files []string) (Result, error) {
	moves, err := r.plan(logging.WithStage(ctx, "plan"), files)
	if err != nil {
		return Result{}, err
	}

	moveCtx := logging.WithStage(ctx, "move")
	logger := logging.WithContext(moveCtx, r.logger)
	runID, _ := logging.RunIDFromContext(ctx)

	report := make([]Entry, 0, len(moves))
	for _, m := range moves {
		res := r.mover.Move(m)
		report = append(report, Entry{Move: m, Status: res.Status, Message: res.Message})
		if r.commit && res.Status == move.Moved && r.recorder != nil {
			if err := r.recorder.Record(moveCtx, runID, journalPath(m.Source), journalPath(m.Destination)); err != nil {
				logger.Warn("journal record failed",
					logging.String(logging.FieldFile, m.Source),
					logging.Error(err),
				)
			}
		}
	}

	result := Result{Moves: moves, Report: report}
	summary := result.Summary()
	logger.Info("run complete",
		logging.Bool("commit", r.commit),
		logging.Int("moved", summary.Moved),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("failed", summary.Failed),
	)
	return result, nil
}

// journalPath anchors p at its resolved parent directory so the record stays
// meaningful from any working directory. The base name is kept as is, so a
// moved symlink is recorded as the link rather than its target.
func journalPath(p string) string {
	dir, err := fileutil.ResolvePath(filepath.Dir(p))
	if err != nil {
		return p
	}
	return filepath.Join(dir, filepath.Base(p))
}

func (r *Runner) plan(ctx context.Context, files []string) ([]move.Move, error) {
	logger := logging.WithContext(ctx, r.logger)
	moves := make([]move.Move, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, faults.Wrap(faults.ErrComposition, "plan", file, "interrupted", err)
		}
		dir, name, err := r.composer.CreateName(file)
		if err != nil {
			logger.Debug("composition failed", logging.String(logging.FieldFile, file), logging.Error(err))
			return nil, err
		}
		moves = append(moves, move.Plan(file, dir, name))
	}
	logger.Debug("planned moves", logging.Int("count", len(moves)))
	return moves, nil
}

// Describe renders e as a report line without colour.
func (e Entry) Describe() string {
	if e.Status == move.Failed {
		return fmt.Sprintf("[%s]: %s <- %s | %s", e.Status, e.Move.Destination, e.Move.Source, e.Message)
	}
	return fmt.Sprintf("[%s]: %s <- %s", e.Status, e.Move.Destination, e.Move.Source)
}
