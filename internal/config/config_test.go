package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.History.MaxRetained != 500 {
		t.Errorf("MaxRetained = %d, want 500", cfg.History.MaxRetained)
	}
	if cfg.History.MinCommitChars != 5 {
		t.Errorf("MinCommitChars = %d, want 5", cfg.History.MinCommitChars)
	}
	if cfg.Analysis.RelationBoost {
		t.Error("RelationBoost should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want defaults for a missing file", err)
	}
	if cfg.History.MaxRetained != 500 {
		t.Errorf("MaxRetained = %d, want default 500", cfg.History.MaxRetained)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
path = "/tmp/kokoro-test.db"

[analysis]
relation_boost = true
cache_ttl_seconds = 60

[history]
max_retained = 20
min_commit_chars = 3
debounce_ms = 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Analysis.RelationBoost {
		t.Error("relation_boost not parsed")
	}
	if cfg.History.MaxRetained != 20 {
		t.Errorf("MaxRetained = %d, want 20", cfg.History.MaxRetained)
	}
	// Unset sections keep defaults.
	if cfg.Growth.PointsPerLevel != 100 {
		t.Errorf("PointsPerLevel = %d, want default 100", cfg.Growth.PointsPerLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[history]
max_retained = -1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded with a negative retention cap")
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded with malformed TOML")
	}
}
