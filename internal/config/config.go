// Package config loads the YAML configuration of the patterns command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	KMeans  KMeansConfig  `yaml:"kmeans"`
	Export  ExportConfig  `yaml:"export"`
	Feed    FeedConfig    `yaml:"feed"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// KMeansConfig configures the clustering demo.
type KMeansConfig struct {
	K               int         `yaml:"k"`
	Metrics         []string    `yaml:"metrics"`           // ["euclidean", "manhattan"]
	Seed            uint64      `yaml:"seed"`              // 0 draws a random seed per fit
	MaxIterations   int         `yaml:"max_iterations"`    // 0 runs until convergence
	Parallelism     int         `yaml:"parallelism"`       // assignment workers
	InitMin         float64     `yaml:"init_min"`          // lower bound for initial centroids
	InitMax         float64     `yaml:"init_max"`          // upper bound for initial centroids
	Centers         [][]float64 `yaml:"centers"`           // sample blob centers
	PointsPerCenter int         `yaml:"points_per_center"` // e.g., 33
	SampleSeed      uint64      `yaml:"sample_seed"`
}

// ExportConfig configures where cluster reports are written.
type ExportConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Backend     string `yaml:"backend"` // "memory", "local", "s3", "minio"
	Path        string `yaml:"path"`    // local backend root
	Bucket      string `yaml:"bucket"`
	Prefix      string `yaml:"prefix"`
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"` // minio backend, e.g. "localhost:9000"
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	Secure      bool   `yaml:"secure"`
	Codec       string `yaml:"codec"`       // "json", "go-json"
	Compression string `yaml:"compression"` // "none", "lz4", "zstd"
	CacheBytes  int64  `yaml:"cache_bytes"` // read cache in front of remote backends; 0 disables
}

// FeedConfig configures the observer demo.
type FeedConfig struct {
	NotifyRate  float64 `yaml:"notify_rate"` // notifications per second; 0 is unlimited
	NotifyBurst int     `yaml:"notify_burst"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // e.g. ":9090"; empty disables the endpoint
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load loads configuration from a YAML file.
// Unset fields take their defaults and the result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// SlogLevel maps Log.Level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
