package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration. It is built once at startup and
// treated as read-only afterwards; components receive it (or the fields
// they need) at construction instead of reading the environment at call
// sites.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"dashboard"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"dashboard"`
	DBName     string `env:"DB_NAME" envDefault:"crm_dashboard"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Identity provider. When AuthJWTSecret is set access tokens are
	// verified offline; otherwise verification goes through AuthBaseURL.
	AuthBaseURL   string `env:"AUTH_BASE_URL"`
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`

	PipedriveAPIToken string `env:"PIPEDRIVE_API_TOKEN"`
	PipedriveBaseURL  string `env:"PIPEDRIVE_BASE_URL" envDefault:"https://api.pipedrive.com/v1"`

	// CronSecret guards the scheduled-job endpoint. Empty means only
	// loopback callers are accepted.
	CronSecret string `env:"CRON_SECRET"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
