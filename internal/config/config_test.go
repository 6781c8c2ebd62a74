package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestForModule_ScopesSection(t *testing.T) {
	v := viper.New()
	v.Set("plugins.state.max_sessions", 42)
	v.Set("plugins.state.notification_ttl", "5s")
	v.Set("server.port", 8080)

	cfg := New(v).ForModule("state")

	if got := cfg.GetInt("max_sessions"); got != 42 {
		t.Errorf("max_sessions = %d, want 42", got)
	}
	if got := cfg.GetDuration("notification_ttl"); got != 5*time.Second {
		t.Errorf("notification_ttl = %v, want 5s", got)
	}
	if cfg.IsSet("server.port") {
		t.Error("module config leaked top-level key server.port")
	}
}

func TestForModule_MissingSection(t *testing.T) {
	cfg := New(viper.New()).ForModule("absent")
	if cfg == nil {
		t.Fatal("ForModule returned nil")
	}
	if cfg.IsSet("anything") {
		t.Error("empty section reports keys set")
	}

	var target struct {
		Seed int64 `mapstructure:"random_seed"`
	}
	if err := cfg.Unmarshal(&target); err != nil {
		t.Errorf("Unmarshal on empty section: %v", err)
	}
}

func TestNew_NilViper(t *testing.T) {
	c := New(nil)
	if c.Viper() == nil {
		t.Fatal("Viper() = nil")
	}
	if c.GetString("missing") != "" {
		t.Error("expected empty string for missing key")
	}
}
