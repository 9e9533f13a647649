// Package faults defines the error taxonomy shared by the rename pipeline.
//
// Every failure is tagged with one sentinel marker so callers can decide, with
// errors.Is, whether it aborts the run (configuration and composition
// failures) or downgrades to a per-file FAILED status (move failures).
// Extraction failures happen inside composition and therefore carry both the
// extraction and the composition markers.
package faults
