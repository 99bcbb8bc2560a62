// internal/apps/penguins/config.go
package penguins

import "time"

// No per-app tuning needed beyond the inference timeout, but the struct is
// kept for consistency across apps.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
