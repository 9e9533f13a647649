// Package move plans and executes the per-file renames of a run.
//
// Plan joins a directory and a composed name into a Move. The Mover then
// classifies each Move: identical source and destination are left alone,
// dry runs report what would happen, and committed moves are atomic renames
// that never replace an existing destination.
package move
