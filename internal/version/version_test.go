package version

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	if got := Short(); got != "v1.2.3" {
		t.Errorf("Short() = %q, want %q", got, "v1.2.3")
	}
}

func TestInfoAndMap(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v0.3.0"
	if info := Info(); !strings.HasPrefix(info, "olympushub v0.3.0") {
		t.Errorf("Info() = %q, want prefix %q", info, "olympushub v0.3.0")
	}
	m := Map()
	for _, key := range []string{"version", "git_commit", "build_date", "go_version"} {
		if m[key] == "" {
			t.Errorf("Map()[%q] is empty", key)
		}
	}
	if m["version"] != "v0.3.0" {
		t.Errorf("Map()[version] = %q, want %q", m["version"], "v0.3.0")
	}
}
