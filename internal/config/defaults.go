package config

const (
	defaultConfigPath = "~/.config/bulkrename/config.toml"
	projectConfigName = "bulkrename.toml"
	defaultFormat     = "{name}{ext}"
	defaultAlgorithm  = AlgorithmMD5
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Supported digest algorithms for the hash module.
const (
	AlgorithmMD5    = "md5"
	AlgorithmSHA256 = "sha256"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Rename: Rename{
			Format:    defaultFormat,
			Algorithm: defaultAlgorithm,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Journal: Journal{
			Enabled: true,
			Path:    defaultJournalPath(),
		},
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
	}
}

func defaultJournalPath() string {
	return xdgDir("XDG_DATA_HOME", ".local/share", "bulkrename", "journal.db")
}

func defaultStateDir() string {
	return xdgDir("XDG_STATE_HOME", ".local/state", "bulkrename")
}
