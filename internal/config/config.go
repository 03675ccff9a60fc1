// Package config defines recruitd's configuration and its loader. Values
// come from an optional config.yml, a .env file, and process environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/skillsenselab/recruitd/internal/auth"
	"github.com/skillsenselab/recruitd/internal/database"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/observability"
	"github.com/skillsenselab/recruitd/internal/server"
)

// Config is the full recruitd configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging  logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server   server.Config        `yaml:"server" mapstructure:"server"`
	Auth     auth.Config          `yaml:"auth" mapstructure:"auth"`
	Database database.Config      `yaml:"database" mapstructure:"database"`
	Tracing  observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "recruitd"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("config.database: %w", err)
	}
	return nil
}
