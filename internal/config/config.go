package config

import (
	"fmt"
	"time"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Analysis AnalysisConfig `toml:"analysis"`
	History  HistoryConfig  `toml:"history"`
	Growth   GrowthConfig   `toml:"growth"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// AnalysisConfig contains scoring engine settings
type AnalysisConfig struct {
	RelationBoost   bool `toml:"relation_boost"`
	CacheTTLSeconds int  `toml:"cache_ttl_seconds"`
}

// CacheTTL returns the analysis cache TTL as a duration
func (a AnalysisConfig) CacheTTL() time.Duration {
	return time.Duration(a.CacheTTLSeconds) * time.Second
}

// HistoryConfig contains history retention settings
type HistoryConfig struct {
	MaxRetained    int `toml:"max_retained"`
	MinCommitChars int `toml:"min_commit_chars"`
	DebounceMillis int `toml:"debounce_ms"`
}

// Debounce returns the commit debounce as a duration
func (h HistoryConfig) Debounce() time.Duration {
	return time.Duration(h.DebounceMillis) * time.Millisecond
}

// GrowthConfig contains pet leveling settings
type GrowthConfig struct {
	PointsPerLevel int `toml:"points_per_level"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/kokoro/kokoro.db",
		},
		Analysis: AnalysisConfig{
			RelationBoost:   false,
			CacheTTLSeconds: 300,
		},
		History: HistoryConfig{
			MaxRetained:    500,
			MinCommitChars: 5,
			DebounceMillis: 600,
		},
		Growth: GrowthConfig{
			PointsPerLevel: 100,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.History.MaxRetained <= 0 {
		return fmt.Errorf("history.max_retained must be positive")
	}
	if c.History.MinCommitChars <= 0 {
		return fmt.Errorf("history.min_commit_chars must be positive")
	}
	if c.History.DebounceMillis <= 0 {
		return fmt.Errorf("history.debounce_ms must be positive")
	}
	if c.Growth.PointsPerLevel <= 0 {
		return fmt.Errorf("growth.points_per_level must be positive")
	}
	if c.Analysis.CacheTTLSeconds <= 0 {
		return fmt.Errorf("analysis.cache_ttl_seconds must be positive")
	}
	return nil
}
