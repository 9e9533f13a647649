// Package config loads, normalizes, and validates bulkrename configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts and XDG base directories), reads TOML files, and honours the
// BULKRENAME_LOG_LEVEL environment fallback. Command-line flags are layered on
// top of the loaded Config by the CLI before Validate runs, so the rename
// pipeline only ever sees one immutable, validated set of options.
package config
