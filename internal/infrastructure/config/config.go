package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DirectusURL is the base URL of the backend identity+content service.
	DirectusURL string `env:"DIRECTUS_URL, required"`
	// CookieSecret signs the auth and refresh cookies.
	CookieSecret string `env:"COOKIES_SECRET, required"`
	// PublicRoleID is the backend role id of ordinary submitters. Any other
	// role id is treated as an administrator.
	PublicRoleID string `env:"PUBLIC_ROLE_ID, required"`

	Redis RedisConfig
}

type RedisConfig struct {
	// Addr may be empty, in which case the role cache is disabled.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
