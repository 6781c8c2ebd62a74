package alerts

// Config holds the alerts module settings (plugins.alerts).
type Config struct {
	// SeedDefaults loads the catalog rules and bell entries into an empty store.
	SeedDefaults bool `mapstructure:"seed_defaults"`
}

// DefaultConfig returns the alerts defaults.
func DefaultConfig() Config {
	return Config{SeedDefaults: true}
}
