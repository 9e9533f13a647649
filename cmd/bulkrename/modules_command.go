package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bulkrename/internal/extract"
)

func newModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "modules",
		Short:       "List the placeholder modules",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			modules := extract.Modules()
			output, _ := cmd.Flags().GetString("output")
			if output == outputJSON {
				return writeJSON(cmd, modules)
			}

			rows := make([][]string, 0, len(modules))
			for _, m := range modules {
				rows = append(rows, []string{m.Name, strings.Join(m.Keys, ", "), m.Summary})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Module", "Placeholders", "Description"}, rows, nil))
			fmt.Fprintln(cmd.OutOrStdout(), "Every run also provides {name} and {ext}.")
			return nil
		},
	}
}

func joinNames(names []string) string {
	return strings.Join(names, "|")
}
