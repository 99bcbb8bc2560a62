// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig              `mapstructure:"app"`
	HTTP    HTTPConfig             `mapstructure:"http"`
	Models  map[string]ModelConfig `mapstructure:"models"`
	Logging LoggingConfig          `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// HTTPConfig holds settings for the prediction API server.
type HTTPConfig struct {
	Port           int      `mapstructure:"port"`
	Timeout        int      `mapstructure:"timeout"` // milliseconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RequestTimeout returns the per-request timeout as a duration.
func (h HTTPConfig) RequestTimeout() time.Duration {
	return time.Duration(h.Timeout) * time.Millisecond
}

// ModelConfig holds the artifact location for one predictor app.
// Each app reads exactly one pre-trained artifact at startup.
type ModelConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig enables rotating file output when Path is set.
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}
