// Package fileutil holds the small filesystem helpers the rename pipeline
// shares: streaming digests, realpath-style resolution for same-file checks,
// existence probes, and the advisory lock that serializes committing runs.
package fileutil
