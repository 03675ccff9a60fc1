package logger

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`

	// Format selects the output format: "json" or "console".
	Format string `yaml:"format" mapstructure:"format"`

	// Output selects the destination: "stdout" or "stderr".
	Output string `yaml:"output" mapstructure:"output"`

	// NoColor disables ANSI colors in console format.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`

	// Timestamp enables timestamps on every entry.
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}
