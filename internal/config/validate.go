package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path must be set when the journal is enabled")
	}
	return nil
}

func (c *Config) validateRename() error {
	switch c.Rename.Algorithm {
	case AlgorithmMD5, AlgorithmSHA256:
	default:
		return fmt.Errorf("rename.algorithm: invalid choice %q (use 'md5' or 'sha256')", c.Rename.Algorithm)
	}
	if c.Rename.Limit < 0 {
		return fmt.Errorf("rename.limit must be non-negative (got %d)", c.Rename.Limit)
	}
	if slices.Contains(c.Rename.Modules, "regex") && c.Rename.Regex == "" {
		return errors.New("rename.regex is required when the regex module is selected")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use 'console' or 'json')", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
