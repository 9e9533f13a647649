// Package logging assembles structured slog loggers for bulkrename.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line emitted during a run is
// tagged with the run ID and pipeline stage. Logs are diagnostic only: they go
// to stderr (and an optional file) so stdout stays reserved for the report.
//
// A no-op logger is provided for tests and wiring code that cannot fail.
package logging
