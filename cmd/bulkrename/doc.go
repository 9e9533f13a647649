// Package main hosts the bulkrename CLI entrypoint and command graph.
//
// The root command renames the files given on the command line according to
// a format template fed by metadata extractors. It is a dry run unless
// --commit is passed. Subcommands list the available modules, scaffold and
// validate the TOML configuration, and show the journal of committed renames.
//
// Keep this package thin: behaviour lives in the internal packages and the
// commands here only resolve configuration, wire logging, and render output.
package main
