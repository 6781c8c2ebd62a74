package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server section of the configuration.
type Config struct {
	Host      string          `mapstructure:"host"`
	Port      int             `mapstructure:"port"`
	DevMode   bool            `mapstructure:"dev_mode"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig sizes the per-IP token bucket.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Addr returns the listen address as host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConfigFrom decodes the server section of v.
func ConfigFrom(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.UnmarshalKey("server", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode server config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("server.port %d out of range", cfg.Port)
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		return Config{}, errors.New("server.rate_limit.rps and burst must be positive")
	}
	return cfg, nil
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("server.rate_limit.rps", 100)
	v.SetDefault("server.rate_limit.burst", 200)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("database.path", ":memory:")

	// Module defaults
	v.SetDefault("plugins.console.default_time_range", "24h")
	v.SetDefault("plugins.console.random_seed", 0)
	v.SetDefault("plugins.alerts.seed_defaults", true)
	v.SetDefault("plugins.workbench.seed_defaults", true)
	v.SetDefault("plugins.state.max_sessions", 1000)
	v.SetDefault("plugins.state.notification_ttl", "5s")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("olympushub")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/olympushub")
	}

	// Environment variable support: OLYMPUS_SERVER_PORT=9090
	v.SetEnvPrefix("OLYMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}
