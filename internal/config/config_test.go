package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bulkrename/internal/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("BULKRENAME_LOG_LEVEL", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolateHome(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(home, ".config", "bulkrename", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	if cfg.Rename.Format != "{name}{ext}" {
		t.Fatalf("unexpected default format %q", cfg.Rename.Format)
	}
	if cfg.Rename.Algorithm != config.AlgorithmMD5 {
		t.Fatalf("unexpected default algorithm %q", cfg.Rename.Algorithm)
	}
	if cfg.Rename.Limit != 0 || cfg.Rename.Number != 0 {
		t.Fatalf("unexpected numeric defaults: %+v", cfg.Rename)
	}
	if want := filepath.Join(home, ".local", "share", "bulkrename", "journal.db"); cfg.Journal.Path != want {
		t.Fatalf("unexpected journal path: got %q want %q", cfg.Journal.Path, want)
	}
	if want := filepath.Join(home, ".local", "state", "bulkrename", "commit.lock"); cfg.LockPath() != want {
		t.Fatalf("unexpected lock path: got %q want %q", cfg.LockPath(), want)
	}
	if !cfg.Journal.Enabled {
		t.Fatal("expected journal enabled by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "custom.toml")

	type payload struct {
		Rename struct {
			Modules   []string `toml:"modules"`
			Format    string   `toml:"format"`
			Algorithm string   `toml:"algorithm"`
			Number    int64    `toml:"number"`
			Limit     int      `toml:"limit"`
		} `toml:"rename"`
		Journal struct {
			Enabled bool   `toml:"enabled"`
			Path    string `toml:"path"`
		} `toml:"journal"`
	}
	custom := payload{}
	custom.Rename.Modules = []string{" number ", "hash", ""}
	custom.Rename.Format = "{n}-{hash}{ext}"
	custom.Rename.Algorithm = "SHA256"
	custom.Rename.Number = 7
	custom.Rename.Limit = 12
	custom.Journal.Path = "~/journal.db"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := strings.Join(cfg.Rename.Modules, ","); got != "number,hash" {
		t.Fatalf("unexpected modules %q", got)
	}
	if cfg.Rename.Algorithm != config.AlgorithmSHA256 {
		t.Fatalf("expected algorithm to be lowercased, got %q", cfg.Rename.Algorithm)
	}
	if cfg.Rename.Number != 7 || cfg.Rename.Limit != 12 {
		t.Fatalf("unexpected rename values: %+v", cfg.Rename)
	}
	if cfg.Journal.Enabled {
		t.Fatal("expected journal disabled by file")
	}
	if !filepath.IsAbs(cfg.Journal.Path) || strings.HasPrefix(cfg.Journal.Path, "~") {
		t.Fatalf("expected expanded journal path, got %q", cfg.Journal.Path)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[rename]\nformatt = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to fail parsing")
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolateHome(t)
	if err := os.WriteFile("bulkrename.toml", []byte("[rename]\nformat = \"{n}{ext}\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !exists || cfg.Rename.Format != "{n}{ext}" {
		t.Fatalf("expected project config to load, exists=%v format=%q", exists, cfg.Rename.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"algorithm", func(c *config.Config) { c.Rename.Algorithm = "crc32" }, "rename.algorithm"},
		{"limit", func(c *config.Config) { c.Rename.Limit = -1 }, "rename.limit"},
		{"regex", func(c *config.Config) { c.Rename.Modules = []string{"regex"} }, "rename.regex"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"journal", func(c *config.Config) { c.Journal.Path = "" }, "journal.path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err)
			}
		})
	}
}

func TestEnvLogLevelOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("BULKRENAME_LOG_LEVEL", "DEBUG")
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should parse: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
