// Package config defines tournament configuration and loading.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Workers sets the number of concurrent match workers.
	Workers int `koanf:"workers"`

	// Seed is the master seed; match m always draws from seed+m.
	Seed uint64 `koanf:"seed"`

	// MinRounds and MaxRounds bound the per-match round count (inclusive).
	MinRounds int `koanf:"min_rounds"`
	MaxRounds int `koanf:"max_rounds"`

	// Verbose prints a line per match in addition to the leaderboard.
	Verbose bool `koanf:"verbose"`

	// ReportDir is where run directories with CSV output are created.
	// Empty disables the report.
	ReportDir string `koanf:"report_dir"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Workers:   1,
		Seed:      1,
		MinRounds: 90,
		MaxRounds: 110,
		Verbose:   false,
		ReportDir: "runs",
	}
}
