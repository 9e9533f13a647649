package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bulkrename/internal/config"
	"bulkrename/internal/extract"
	"bulkrename/internal/faults"
)

// errMovesFailed signals exit status 1 after a complete report; the report
// already names every failure so main prints nothing more.
var errMovesFailed = errors.New("one or more moves failed")

type renameFlags struct {
	modules   []string
	commit    bool
	limit     int
	algorithm string
	regex     string
	number    int64
	format    string
	verbose   bool
	quiet     bool
}

// apply copies explicitly set flags over the configured defaults.
func (f *renameFlags) apply(cmd *cobra.Command, r *config.Rename) {
	flags := cmd.Flags()
	if flags.Changed("module") {
		r.Modules = append([]string(nil), f.modules...)
	}
	if flags.Changed("limit") {
		r.Limit = f.limit
	}
	if flags.Changed("algorithm") {
		r.Algorithm = f.algorithm
	}
	if flags.Changed("regex") {
		r.Regex = f.regex
	}
	if flags.Changed("number") {
		r.Number = f.number
	}
	if flags.Changed("format") {
		r.Format = f.format
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var outputFlag string
	var flags renameFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "bulkrename [flags] [FILE...]",
		Short: "Rename files from a format template and file metadata",
		Long: "Rename files by filling a format template with placeholders taken from\n" +
			"the file name and the selected modules. Without --commit nothing is renamed.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(outputFlag); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, ctx, &flags, outputFlag, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", outputText, "Output format: text, json, or table")

	f := rootCmd.Flags()
	f.StringArrayVarP(&flags.modules, "module", "m", nil, fmt.Sprintf("Module to enable, repeatable (%s)", joinNames(extract.Names())))
	f.BoolVarP(&flags.commit, "commit", "c", false, "Actually rename the files")
	f.IntVarP(&flags.limit, "limit", "l", 0, "Limit the new name to N characters (0 disables)")
	f.StringVarP(&flags.algorithm, "algorithm", "a", config.AlgorithmMD5, "Hash algorithm: md5 or sha256")
	f.StringVarP(&flags.regex, "regex", "r", "", "Pattern whose named groups become placeholders")
	f.Int64VarP(&flags.number, "number", "n", 0, "Start counting from N")
	f.StringVarP(&flags.format, "format", "f", "{name}{ext}", "Rename files according to FORMAT")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose (debug) logging on stderr")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Only report failed moves")

	rootCmd.AddCommand(newModulesCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}

func validateOutput(value string) error {
	switch value {
	case outputText, outputJSON, outputTable:
		return nil
	default:
		return faults.Wrap(faults.ErrConfiguration, "cli", "--output", fmt.Sprintf("unsupported value %q (use text, json, or table)", value), nil)
	}
}
