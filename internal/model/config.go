package model

import (
	"runtime"
	"time"
)

// Config holds all runtime configuration.
// Hierarchy (highest to lowest priority): CLI flags, LEGALDOC_* environment
// variables, config file (~/.legaldoc/config.yaml), defaults.
type Config struct {
	Analyzer    AnalyzerConfig    `yaml:"analyzer" json:"analyzer"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Server      ServerConfig      `yaml:"server" json:"server"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnalyzerConfig bounds the rendered analysis output.
// The extraction passes themselves are unbounded; caps apply when the
// result is assembled.
type AnalyzerConfig struct {
	MaxSummarySentences  int `yaml:"max_summary_sentences" json:"max_summary_sentences"`
	MaxKeyPoints         int `yaml:"max_key_points" json:"max_key_points"`
	KeyPointMaxChars     int `yaml:"key_point_max_chars" json:"key_point_max_chars"`
	MaxDefinitions       int `yaml:"max_definitions" json:"max_definitions"`
	MaxObligations       int `yaml:"max_obligations" json:"max_obligations"`
	MaxMatchesPerKeyword int `yaml:"max_matches_per_keyword" json:"max_matches_per_keyword"`
	ContextWindow        int `yaml:"context_window" json:"context_window"` // Bytes before/after a search hit
}

// CacheConfig controls the analysis result cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Empty = ~/.legaldoc/cache
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr              string  `yaml:"addr" json:"addr"`
	MaxUploadBytes    int64   `yaml:"max_upload_bytes" json:"max_upload_bytes"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			MaxSummarySentences:  10,
			MaxKeyPoints:         5,
			KeyPointMaxChars:     150,
			MaxDefinitions:       20,
			MaxObligations:       15,
			MaxMatchesPerKeyword: 10,
			ContextWindow:        100,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Server: ServerConfig{
			Addr:              ":5000",
			MaxUploadBytes:    16 << 20, // 16 MiB, matches the upload cap users already know
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
