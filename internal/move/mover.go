package move

import (
	"errors"
	"log/slog"

	"bulkrename/internal/fileutil"
	"bulkrename/internal/logging"
)

// Mover executes planned moves. Without Commit it only reports.
type Mover struct {
	Commit bool
	logger *slog.Logger
}

// NewMover returns a mover. A nil logger discards output.
func NewMover(commit bool, logger *slog.Logger) *Mover {
	return &Mover{Commit: commit, logger: logging.NewComponentLogger(logger, "move")}
}

// Move classifies and, in commit mode, performs m. Failures are reported in
// the result, never returned, so one bad file does not stop the batch.
func (mv *Mover) Move(m Move) Result {
	if fileutil.SameFile(m.Source, m.Destination) {
		return Result{Status: Unchanged}
	}
	if !mv.Commit {
		return Result{Status: Moved}
	}
	if err := mv.commit(m); err != nil {
		mv.logger.Info("move failed",
			logging.String(logging.FieldFile, m.Source),
			logging.String("destination", m.Destination),
			logging.Error(err),
		)
		return Result{Status: Failed, Message: err.Error()}
	}
	mv.logger.Debug("moved",
		logging.String(logging.FieldFile, m.Source),
		logging.String("destination", m.Destination),
	)
	return Result{Status: Moved}
}

func (mv *Mover) commit(m Move) error {
	if !fileutil.IsRegularFile(m.Source) {
		return &Error{Kind: KindNotFound, Path: m.Source}
	}
	err := renameNoReplace(m.Source, m.Destination)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errDestinationExists):
		return &Error{Kind: KindExists, Path: m.Destination}
	default:
		return &Error{Kind: KindOS, Path: m.Source, Err: err}
	}
}
