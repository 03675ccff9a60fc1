package auth

import (
	"errors"
	"time"
)

// DevFallbackSecret is the known development signing secret used when no
// secret is configured. It must never be used in production; the app logs a
// prominent warning at startup when it is active.
const DevFallbackSecret = "dev-secret"

// Config configures the credential service.
type Config struct {
	// Secret is the HMAC signing key for session tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TokenTTL is the session token lifetime (default: 168h = 7 days).
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`

	// BcryptCost is the bcrypt work factor (default: 10, range 4-31).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Secret == "" {
		c.Secret = DevFallbackSecret
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 7 * 24 * time.Hour
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 10
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("auth: signing secret is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("auth: token_ttl must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("auth: bcrypt_cost must be between 4 and 31")
	}
	return nil
}

// UsesDevFallbackSecret reports whether the insecure development secret is
// in effect. Callers surface this as a deployment hazard.
func (c *Config) UsesDevFallbackSecret() bool {
	return c.Secret == DevFallbackSecret
}
