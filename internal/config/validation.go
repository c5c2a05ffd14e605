package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/gopatterns/codec"
	"github.com/hupe1980/gopatterns/distance"
	"github.com/hupe1980/gopatterns/internal/compress"
)

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be one of: text, json)", c.Log.Format)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Log.Level)
	}

	if err := c.KMeans.validate(); err != nil {
		return err
	}
	if err := c.Export.validate(); err != nil {
		return err
	}

	if c.Feed.NotifyRate < 0 {
		return errors.New("feed notify rate cannot be negative")
	}
	if c.Feed.NotifyBurst < 0 {
		return errors.New("feed notify burst cannot be negative")
	}

	return nil
}

func (k *KMeansConfig) validate() error {
	if k.K <= 0 {
		return errors.New("kmeans k must be positive")
	}
	for _, name := range k.Metrics {
		if _, err := distance.ParseMetric(name); err != nil {
			return fmt.Errorf("kmeans metrics: %w", err)
		}
	}
	if k.MaxIterations < 0 {
		return errors.New("kmeans max iterations cannot be negative")
	}
	if k.InitMin >= k.InitMax {
		return fmt.Errorf("kmeans init bounds are empty: [%g, %g)", k.InitMin, k.InitMax)
	}
	if k.PointsPerCenter <= 0 {
		return errors.New("kmeans points per center must be positive")
	}
	if len(k.Centers) == 0 || len(k.Centers[0]) == 0 {
		return errors.New("kmeans centers must not be empty")
	}
	dim := len(k.Centers[0])
	for i, c := range k.Centers {
		if len(c) != dim {
			return fmt.Errorf("kmeans center %d has dimension %d, expected %d", i, len(c), dim)
		}
	}
	return nil
}

func (e *ExportConfig) validate() error {
	switch e.Backend {
	case "memory":
	case "local":
		if e.Path == "" {
			return errors.New("export path is required for the local backend")
		}
	case "s3":
		if e.Bucket == "" {
			return errors.New("export bucket is required for the s3 backend")
		}
	case "minio":
		if e.Bucket == "" || e.Endpoint == "" {
			return errors.New("export bucket and endpoint are required for the minio backend")
		}
	default:
		return fmt.Errorf("invalid export backend: %s (must be one of: memory, local, s3, minio)", e.Backend)
	}

	if _, ok := codec.ByName(e.Codec); !ok {
		return fmt.Errorf("invalid export codec: %s (must be one of: %s)", e.Codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := compress.Parse(e.Compression); err != nil {
		return fmt.Errorf("invalid export compression: %w", err)
	}
	if e.CacheBytes < 0 {
		return errors.New("export cache bytes cannot be negative")
	}
	return nil
}
