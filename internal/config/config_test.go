package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.KMeans.K)
	assert.Equal(t, []string{"euclidean", "manhattan"}, cfg.KMeans.Metrics)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}, {-1, -1}}, cfg.KMeans.Centers)
	assert.Equal(t, 33, cfg.KMeans.PointsPerCenter)
	assert.Equal(t, -5.0, cfg.KMeans.InitMin)
	assert.Equal(t, 5.0, cfg.KMeans.InitMax)
	assert.Equal(t, "memory", cfg.Export.Backend)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	err := os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
kmeans:
  k: 4
  metrics: [l1, chebyshev]
  seed: 7
  centers:
    - [0, 0, 0]
    - [2, 2, 2]
export:
  enabled: true
  backend: local
  path: /tmp/reports
  compression: lz4
feed:
  notify_rate: 10
metrics:
  addr: ":9090"
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.KMeans.K)
	assert.Equal(t, []string{"l1", "chebyshev"}, cfg.KMeans.Metrics)
	assert.Equal(t, uint64(7), cfg.KMeans.Seed)
	assert.Len(t, cfg.KMeans.Centers, 2)
	assert.Equal(t, 33, cfg.KMeans.PointsPerCenter)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, "local", cfg.Export.Backend)
	assert.Equal(t, "lz4", cfg.Export.Compression)
	assert.Equal(t, "go-json", cfg.Export.Codec)
	assert.Equal(t, 1, cfg.Feed.NotifyBurst)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"UnknownField", "kmeans:\n  clusters: 3\n"},
		{"NegativeK", "kmeans:\n  k: -1\n"},
		{"UnknownMetric", "kmeans:\n  metrics: [cosine]\n"},
		{"EmptyBounds", "kmeans:\n  init_min: 1\n  init_max: 1\n"},
		{"RaggedCenters", "kmeans:\n  centers: [[0, 0], [1]]\n"},
		{"LogFormat", "log:\n  format: xml\n"},
		{"LogLevel", "log:\n  level: loud\n"},
		{"Backend", "export:\n  backend: ftp\n"},
		{"S3NeedsBucket", "export:\n  backend: s3\n"},
		{"MinioNeedsEndpoint", "export:\n  backend: minio\n  bucket: b\n"},
		{"Codec", "export:\n  codec: xml\n"},
		{"Compression", "export:\n  compression: brotli\n"},
		{"NotifyRate", "feed:\n  notify_rate: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
