package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds the process configuration, parsed from the environment.
// Every field has a workable default so the API serves quotes out of the
// box; CALENDAR_BASE_URL must point at the booking calendar that owns the
// eight hour-bucket appointment types.
type Config struct {
	Port               string   `env:"PORT" envDefault:"8080"`
	GinMode            string   `env:"GIN_MODE" envDefault:"debug"`
	CalendarBaseURL    string   `env:"CALENDAR_BASE_URL" envDefault:"https://bookings.clearviewexteriors.com"`
	CORSAllowOrigins   []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	NewRelicAppName    string   `env:"NEW_RELIC_APP_NAME" envDefault:"Instant Quote API"`
	NewRelicLicenseKey string   `env:"NEW_RELIC_LICENSE_KEY"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
