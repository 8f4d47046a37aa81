package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DataDir holds the static JSON fixture collections.
	DataDir string `env:"DATA_DIR, default=data"`

	JWTSecret     string `env:"JWT_SECRET"`
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Webhooks WebhookConfig
}

// WebhookConfig configures best-effort forwarding of intake records. Both
// URLs are optional; an empty URL disables forwarding for that target
// without affecting the write operations themselves.
type WebhookConfig struct {
	CRMURL   string        `env:"CRM_WEBHOOK_URL"`
	EmailURL string        `env:"EMAIL_WEBHOOK_URL"`
	Timeout  time.Duration `env:"WEBHOOK_TIMEOUT, default=5s"`
	Workers  int           `env:"WEBHOOK_WORKERS, default=2"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
