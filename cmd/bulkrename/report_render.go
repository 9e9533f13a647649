package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"bulkrename/internal/move"
	"bulkrename/internal/rename"
)

const (
	outputText  = "text"
	outputJSON  = "json"
	outputTable = "table"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

type reportOptions struct {
	Format string
	Quiet  bool
	RunID  string
	Commit bool
}

type reportEntryJSON struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Message     string `json:"message,omitempty"`
}

type reportJSON struct {
	RunID   string            `json:"run_id"`
	Commit  bool              `json:"commit"`
	Entries []reportEntryJSON `json:"entries"`
	Summary map[string]int    `json:"summary"`
}

func writeReport(cmd *cobra.Command, result rename.Result, opts reportOptions) error {
	entries := visibleEntries(result.Report, opts.Quiet)
	out := cmd.OutOrStdout()

	switch opts.Format {
	case outputJSON:
		summary := result.Summary()
		payload := reportJSON{
			RunID:   opts.RunID,
			Commit:  opts.Commit,
			Entries: make([]reportEntryJSON, 0, len(entries)),
			Summary: map[string]int{
				move.Moved.String():     summary.Moved,
				move.Unchanged.String(): summary.Unchanged,
				move.Failed.String():    summary.Failed,
			},
		}
		for _, e := range entries {
			payload.Entries = append(payload.Entries, reportEntryJSON{
				Status:      e.Status.String(),
				Source:      e.Move.Source,
				Destination: e.Move.Destination,
				Message:     e.Message,
			})
		}
		return writeJSON(cmd, payload)
	case outputTable:
		if len(entries) == 0 {
			return nil
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Status.String(), e.Move.Destination, e.Move.Source, e.Message})
		}
		_, err := fmt.Fprintln(out, renderTable([]string{"Status", "Destination", "Source", "Message"}, rows, nil))
		return err
	default:
		colorize := shouldColorize(out)
		for _, e := range entries {
			if _, err := fmt.Fprintln(out, renderReportLine(e, colorize)); err != nil {
				return err
			}
		}
		return nil
	}
}

func visibleEntries(report []rename.Entry, quiet bool) []rename.Entry {
	if !quiet {
		return report
	}
	var failed []rename.Entry
	for _, e := range report {
		if e.Status == move.Failed {
			failed = append(failed, e)
		}
	}
	return failed
}

func renderReportLine(e rename.Entry, colorize bool) string {
	line := e.Describe()
	if colorize {
		if color := statusColor(e.Status); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

func statusColor(status move.Status) string {
	switch status {
	case move.Moved:
		return ansiGreen
	case move.Unchanged:
		return ansiBlue
	case move.Failed:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
