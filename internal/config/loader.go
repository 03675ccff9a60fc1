package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// legacyEnvKeys maps flat environment variable names kept for compatibility
// with existing deployments onto their nested config keys.
var legacyEnvKeys = map[string]string{
	"JWT_SECRET":      "auth.secret",
	"AUTH_JWT_SECRET": "auth.secret",
	"PORT":            "server.port",
	"DATABASE_URL":    "database.dsn",
}

// Load reads configuration from config.yml, a .env file, and the process
// environment, in increasing order of precedence, then applies defaults and
// validates. Empty paths fall back to a search of standard locations.
func Load(configFile, envFile string) (*Config, error) {
	if configFile == "" {
		configFile = findFile([]string{
			"./cmd/recruitd/config.yml",
			"../cmd/recruitd/config.yml",
			"./config.yml",
		})
	}
	if envFile == "" {
		envFile = findFile([]string{".env", "../.env"})
	}

	// Load .env into the process environment first so viper sees it.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load %s: %v\n", envFile, err)
		}
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvVars(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindEnvVars binds set environment variables onto viper keys. Nested keys
// use underscores (AUTH_SECRET -> auth.secret, DATABASE_MAX_OPEN_CONNS ->
// database.max_open_conns); the legacy flat names are bound explicitly.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[1] == "" {
			continue
		}
		key := pair[0]
		if target, ok := legacyEnvKeys[key]; ok {
			v.Set(target, pair[1])
			continue
		}
		for _, variant := range envKeyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants generates the nested key spellings an environment variable
// may correspond to. AUTH_TOKEN_TTL -> [auth.token.ttl, auth.token_ttl].
func envKeyVariants(key string) []string {
	parts := strings.Split(strings.ToLower(key), "_")
	if len(parts) < 2 {
		return nil
	}
	variants := []string{strings.Join(parts, ".")}
	if len(parts) > 2 {
		variants = append(variants, parts[0]+"."+strings.Join(parts[1:], "_"))
	}
	return variants
}

func findFile(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
