package testsupport

import (
	"path/filepath"
	"testing"

	"bulkrename/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithJournalDisabled turns the rename journal off.
func WithJournalDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Journal.Enabled = false
	}
}

// WithRename adjusts the [rename] section.
func WithRename(fn func(*config.Rename)) ConfigOption {
	return func(cfg *config.Config) {
		fn(&cfg.Rename)
	}
}

// NewConfig produces a config whose state directory and journal live in a
// unique temp directory per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Journal.Path = filepath.Join(base, "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
