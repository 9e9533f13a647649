// Package rename runs a batch: it composes every destination before touching
// the filesystem, then executes the moves in input order and collects the
// report. Committed moves are optionally appended to a journal.
package rename
