package model

import "time"

// Config holds the full application configuration
type Config struct {
	Server     ServerConfig      `yaml:"server" mapstructure:"server"`
	Store      StoreConfig       `yaml:"store" mapstructure:"store"`
	Cache      CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Engine     EngineConfig      `yaml:"engine" mapstructure:"engine"`
	Log        LogConfig         `yaml:"log" mapstructure:"log"`
	References []ReferenceConfig `yaml:"references" mapstructure:"references"`
}

// ServerConfig configures the HTTP transport layer
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	RatePerSecond   float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"` // Per-client token refill rate
	RateBurst       int           `yaml:"rate_burst" mapstructure:"rate_burst"`
	AllowedOrigins  []string      `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// StoreConfig configures the audit record store
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`             // "sqlite", "postgres", or "" to disable persistence
	DSN         string `yaml:"dsn" mapstructure:"dsn"`                   // Path for sqlite, connection URL for postgres
	QueueSize   int    `yaml:"queue_size" mapstructure:"queue_size"`     // Sink buffer; enqueue drops when full
	SinkWorkers int    `yaml:"sink_workers" mapstructure:"sink_workers"` // Concurrent writers draining the sink
}

// CacheConfig configures the fingerprint-keyed report cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// EngineConfig configures the verification core
type EngineConfig struct {
	Version string `yaml:"version" mapstructure:"version"` // Embedded in every fingerprint
	Scorer  string `yaml:"scorer" mapstructure:"scorer"`   // "constant" (default) or "heuristic"
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "json" or "console"
}

// ReferenceConfig is one topic entry of the known-fact index
type ReferenceConfig struct {
	Keyword string                  `yaml:"keyword" mapstructure:"keyword"`
	Sources []ReferenceSourceConfig `yaml:"sources" mapstructure:"sources"`
}

// ReferenceSourceConfig is a single source attached to a topic keyword
type ReferenceSourceConfig struct {
	Source string `yaml:"source" mapstructure:"source"`
	URL    string `yaml:"url" mapstructure:"url"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			RatePerSecond:   10,
			RateBurst:       20,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:      "sqlite",
			DSN:         "trucite.db",
			QueueSize:   256,
			SinkWorkers: 2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Engine: EngineConfig{
			Version: "claim-engine/v2",
			Scorer:  "constant",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
