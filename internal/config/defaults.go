package config

const (
	defaultK               = 3
	defaultPointsPerCenter = 33
	defaultInitMin         = -5.0
	defaultInitMax         = 5.0
)

// applyDefaults applies default values to configuration fields that are not set.
func applyDefaults(cfg *Config) {
	// Log defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	// KMeans defaults
	if cfg.KMeans.K == 0 {
		cfg.KMeans.K = defaultK
	}
	if len(cfg.KMeans.Metrics) == 0 {
		cfg.KMeans.Metrics = []string{"euclidean", "manhattan"}
	}
	if cfg.KMeans.Parallelism == 0 {
		cfg.KMeans.Parallelism = 1
	}
	if cfg.KMeans.InitMin == 0 && cfg.KMeans.InitMax == 0 {
		cfg.KMeans.InitMin = defaultInitMin
		cfg.KMeans.InitMax = defaultInitMax
	}
	if len(cfg.KMeans.Centers) == 0 {
		cfg.KMeans.Centers = [][]float64{{0, 0}, {1, 1}, {-1, -1}}
	}
	if cfg.KMeans.PointsPerCenter == 0 {
		cfg.KMeans.PointsPerCenter = defaultPointsPerCenter
	}

	// Export defaults
	if cfg.Export.Backend == "" {
		cfg.Export.Backend = "memory"
	}
	if cfg.Export.Path == "" {
		cfg.Export.Path = "./reports"
	}
	if cfg.Export.Codec == "" {
		cfg.Export.Codec = "go-json"
	}
	if cfg.Export.Compression == "" {
		cfg.Export.Compression = "zstd"
	}

	// Feed defaults
	if cfg.Feed.NotifyRate > 0 && cfg.Feed.NotifyBurst == 0 {
		cfg.Feed.NotifyBurst = 1
	}
}
