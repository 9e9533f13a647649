package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRename()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = defaultJournalPath()
	}
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeRename() {
	c.Rename.Algorithm = strings.ToLower(strings.TrimSpace(c.Rename.Algorithm))
	if c.Rename.Algorithm == "" {
		c.Rename.Algorithm = defaultAlgorithm
	}
	if c.Rename.Format == "" {
		c.Rename.Format = defaultFormat
	}
	modules := make([]string, 0, len(c.Rename.Modules))
	for _, module := range c.Rename.Modules {
		if trimmed := strings.TrimSpace(module); trimmed != "" {
			modules = append(modules, trimmed)
		}
	}
	c.Rename.Modules = modules
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("BULKRENAME_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
