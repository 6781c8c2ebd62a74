package workbench

// Config holds the workbench module settings (plugins.workbench).
type Config struct {
	// SeedDefaults loads the catalog tasks into an empty store.
	SeedDefaults bool `mapstructure:"seed_defaults"`
}

// DefaultConfig returns the workbench defaults.
func DefaultConfig() Config {
	return Config{SeedDefaults: true}
}
