package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aussiebroadwan/notecards/pkg/jwtx"
)

type Config struct {
	Issuer    string   `env:"AUTH_ISSUER"`                    // Required: expected iss on access tokens
	Audience  []string `env:"AUTH_AUDIENCE" envSeparator:","` // Optional: accepted aud values, empty skips the check
	JWKSURL   string   `env:"AUTH_JWKS_URL"`                  // JWKS endpoint of the auth service
	JWKSFile  string   `env:"AUTH_JWKS_FILE"`                 // Static JWKS document, used when no URL is set
	Algorithm string   `env:"AUTH_ALGORITHM" envDefault:"EdDSA"`

	DatabaseFile string        `env:"DATABASE_FILE" envDefault:"notecards.db"`
	InviteTTL    time.Duration `env:"INVITE_TTL" envDefault:"720h"` // 0 keeps invites until claimed or revoked

	AMQPURL   string `env:"AMQP_URL"` // Optional: share events are only logged when empty
	AMQPQueue string `env:"AMQP_QUEUE" envDefault:"notecards.sharing"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	JWKSRefreshInterval  time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"5m"`
}

// LoadConfig reads the environment and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Issuer == "" {
		return errors.New("AUTH_ISSUER is required")
	}
	if c.JWKSURL == "" && c.JWKSFile == "" {
		return errors.New("one of AUTH_JWKS_URL or AUTH_JWKS_FILE is required")
	}
	switch c.Algorithm {
	case jwtx.AlgorithmEdDSA, jwtx.AlgorithmES256:
	default:
		return fmt.Errorf("unsupported AUTH_ALGORITHM %q", c.Algorithm)
	}
	if c.InviteTTL < 0 {
		return errors.New("INVITE_TTL must not be negative")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
