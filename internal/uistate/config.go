package uistate

import "time"

// Config holds the state module settings (plugins.state).
type Config struct {
	// MaxSessions caps live sessions; the least recently used is evicted.
	MaxSessions int `mapstructure:"max_sessions"`
	// NotificationTTL is how long a toast stays visible.
	NotificationTTL time.Duration `mapstructure:"notification_ttl"`
}

// DefaultConfig returns the state defaults.
func DefaultConfig() Config {
	return Config{MaxSessions: 1000, NotificationTTL: 5 * time.Second}
}
