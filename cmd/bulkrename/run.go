package main

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bulkrename/internal/faults"
	"bulkrename/internal/fileutil"
	"bulkrename/internal/journal"
	"bulkrename/internal/logging"
	"bulkrename/internal/rename"
)

func runRename(cmd *cobra.Command, ctx *commandContext, flags *renameFlags, output string, files []string) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *base
	cfg.Rename.Modules = append([]string(nil), base.Rename.Modules...)
	flags.apply(cmd, &cfg.Rename)
	if err := cfg.Validate(); err != nil {
		return faults.Wrap(faults.ErrConfiguration, "config", "validate", "", err)
	}

	logger, err := logging.NewFromConfig(&cfg, flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return faults.Wrap(faults.ErrConfiguration, "logging", "init", "", err)
	}

	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	logger = logging.WithContext(runCtx, logger)
	logger.Debug("run starting",
		logging.Bool("commit", flags.commit),
		logging.Int("files", len(files)),
		logging.String("format", cfg.Rename.Format),
		logging.String("modules", strings.Join(cfg.Rename.Modules, ",")),
		logging.String("config", ctx.configPath),
	)

	opts := rename.Options{Rename: cfg.Rename, Commit: flags.commit, Logger: logger}
	if flags.commit {
		lock, err := fileutil.TryLock(cfg.LockPath())
		if err != nil {
			if errors.Is(err, fileutil.ErrLocked) {
				return faults.Wrap(faults.ErrConfiguration, "cli", "commit lock", "another committing run is in progress", err)
			}
			return faults.Wrap(faults.ErrConfiguration, "cli", "commit lock", "", err)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("release commit lock failed", logging.Error(err))
			}
		}()

		if cfg.Journal.Enabled {
			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				logger.Warn("journal unavailable; renames will not be recorded",
					logging.String("path", cfg.Journal.Path),
					logging.Error(err),
				)
			} else {
				defer store.Close()
				opts.Recorder = store
			}
		}
	}

	runner, err := rename.New(opts)
	if err != nil {
		return err
	}
	result, err := runner.Run(runCtx, files)
	if err != nil {
		return err
	}

	if err := writeReport(cmd, result, reportOptions{
		Format: output,
		Quiet:  flags.quiet,
		RunID:  runID,
		Commit: flags.commit,
	}); err != nil {
		return err
	}
	if result.HasFailures() {
		return errMovesFailed
	}
	return nil
}
