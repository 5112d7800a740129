package genvid

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds environment-driven settings for callers such as the CLI.
// The library itself is configured through ClientConfig; this type only
// bridges the environment into it.
type Config struct {
	Endpoint string `env:"GENVID_ENDPOINT" json:"endpoint"`

	// Either a fixed bearer token or an access/secret key pair for
	// providers that expect signed JWTs. The token wins when both are set.
	APIToken  string `env:"GENVID_API_TOKEN" json:"-"`
	AccessKey string `env:"GENVID_ACCESS_KEY" json:"-"`
	SecretKey string `env:"GENVID_SECRET_KEY" json:"-"`

	PollInterval    time.Duration `env:"GENVID_POLL_INTERVAL, default=2s" json:"poll_interval"`
	MaxPollAttempts int           `env:"GENVID_MAX_POLL_ATTEMPTS, default=30" json:"max_poll_attempts"`
	Timeout         time.Duration `env:"GENVID_TIMEOUT, default=30s" json:"timeout"`

	DemoFallback bool   `env:"GENVID_DEMO_FALLBACK" json:"demo_fallback"`
	LogLevel     string `env:"GENVID_LOG_LEVEL, default=info" json:"log_level"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration is present. It runs after
// flag overrides, which is why the env tag does not mark Endpoint required.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrEndpointRequired
	}
	return nil
}

// Credential builds the credential implied by the configuration, or nil when
// no authentication is configured.
func (c *Config) Credential() Credential {
	if c.APIToken != "" {
		return StaticToken(c.APIToken)
	}
	if c.AccessKey != "" && c.SecretKey != "" {
		return KeyPair{AccessKey: c.AccessKey, SecretKey: c.SecretKey}
	}
	return nil
}

// ClientConfig converts the environment settings into a client configuration
func (c *Config) ClientConfig() *ClientConfig {
	cfg := DefaultClientConfig()
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.PollInterval > 0 {
		cfg.PollInterval = c.PollInterval
	}
	if c.MaxPollAttempts > 0 {
		cfg.MaxPollAttempts = c.MaxPollAttempts
	}
	return cfg
}
