package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bulkrename/internal/fileutil"
)

// routeFileArgs keeps file arguments that share a name with a subcommand on
// the rename path. When the first positional argument names a subcommand and
// also exists on disk, the arguments are rewritten so every positional follows
// "--" and cobra dispatches to the root command instead.
func routeFileArgs(root *cobra.Command, args []string) []string {
	root.InitDefaultHelpCmd()
	sub, _, err := root.Find(args)
	if err != nil || sub == root {
		return args
	}

	flagArgs, positional := splitArgs(root, args)
	if len(positional) == 0 || !fileutil.Exists(positional[0]) {
		return args
	}

	routed := make([]string, 0, len(args)+1)
	routed = append(routed, flagArgs...)
	routed = append(routed, "--")
	return append(routed, positional...)
}

// splitArgs separates flag tokens, values included, from positional
// arguments using the root command's flag definitions.
func splitArgs(root *cobra.Command, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flagArgs, append(positional, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			flagArgs = append(flagArgs, arg)
			name, _, inline := strings.Cut(arg[2:], "=")
			if !inline && takesValue(root.Flag(name)) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			shorts := arg[1:]
			for j := 0; j < len(shorts) && shorts[j] != '='; j++ {
				if !takesValue(root.Flags().ShorthandLookup(shorts[j : j+1])) {
					continue
				}
				// -fVALUE carries its value; a trailing -f takes the next argument.
				if j == len(shorts)-1 && i+1 < len(args) {
					i++
					flagArgs = append(flagArgs, args[i])
				}
				break
			}
		default:
			positional = append(positional, arg)
		}
	}
	return flagArgs, positional
}

func takesValue(flag *pflag.Flag) bool {
	return flag != nil && flag.NoOptDefVal == ""
}
