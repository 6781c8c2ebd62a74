package console

// Config holds the console module settings (plugins.console).
type Config struct {
	// DefaultTimeRange applies when a request carries no range parameter.
	DefaultTimeRange string `mapstructure:"default_time_range"`
	// RandomSeed fixes chart shapes across restarts. 0 seeds from the clock.
	RandomSeed uint64 `mapstructure:"random_seed"`
}

// DefaultConfig returns the console defaults.
func DefaultConfig() Config {
	return Config{DefaultTimeRange: "24h"}
}
