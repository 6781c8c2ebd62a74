package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"server.host", "0.0.0.0"},
		{"server.port", 8080},
		{"server.dev_mode", false},
		{"logging.level", "info"},
		{"logging.format", "json"},
		{"database.path", ":memory:"},
		{"plugins.console.default_time_range", "24h"},
		{"plugins.state.max_sessions", 1000},
	}
	for _, tt := range tests {
		if got := v.Get(tt.key); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
		}
	}
	if got := v.GetDuration("plugins.state.notification_ttl"); got != 5*time.Second {
		t.Errorf("notification_ttl = %v, want 5s", got)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "olympushub.yaml")
	data := []byte("server:\n  port: 9191\n  dev_mode: true\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OLYMPUS_LOGGING_FORMAT", "console")

	v, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got := v.GetInt("server.port"); got != 9191 {
		t.Errorf("server.port = %d, want 9191", got)
	}
	if !v.GetBool("server.dev_mode") {
		t.Error("server.dev_mode = false, want true")
	}
	if got := v.GetString("logging.level"); got != "debug" {
		t.Errorf("logging.level = %q, want debug", got)
	}
	if got := v.GetString("logging.format"); got != "console" {
		t.Errorf("logging.format = %q, want console (from env)", got)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadConfig() with a missing explicit file should fail")
	}
}

func TestConfigFrom(t *testing.T) {
	t.Chdir(t.TempDir())
	v, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ConfigFrom(v)
	if err != nil {
		t.Fatalf("ConfigFrom() error = %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if cfg.RateLimit.RPS != 100 || cfg.RateLimit.Burst != 200 {
		t.Errorf("RateLimit = %+v, want {100 200}", cfg.RateLimit)
	}

	v.Set("server.port", 70000)
	if _, err := ConfigFrom(v); err == nil {
		t.Error("ConfigFrom() accepted port 70000")
	}
}
