package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"bulkrename/internal/fileutil"
	"bulkrename/internal/journal"
)

type historyEntryJSON struct {
	ID          int64  `json:"id"`
	RunID       string `json:"run_id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	RenamedAt   string `json:"renamed_at"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently committed renames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !fileutil.Exists(cfg.Journal.Path) {
				fmt.Fprintf(out, "No renames recorded (journal %s does not exist)\n", cfg.Journal.Path)
				return nil
			}

			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			if output == outputJSON {
				payload := make([]historyEntryJSON, 0, len(entries))
				for _, e := range entries {
					payload = append(payload, historyEntryJSON{
						ID:          e.ID,
						RunID:       e.RunID,
						Source:      e.Source,
						Destination: e.Destination,
						RenamedAt:   e.RenamedAt.Format(time.RFC3339),
					})
				}
				return writeJSON(cmd, payload)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No renames recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(e.ID, 10),
					e.RenamedAt.Local().Format("2006-01-02 15:04:05"),
					shortRunID(e.RunID),
					e.Destination,
					e.Source,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Renamed", "Run", "Destination", "Source"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show (0 for all)")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
