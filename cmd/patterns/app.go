package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hupe1980/gopatterns"
	"github.com/hupe1980/gopatterns/codec"
	"github.com/hupe1980/gopatterns/distance"
	"github.com/hupe1980/gopatterns/internal/compress"
	"github.com/hupe1980/gopatterns/internal/config"
	"github.com/hupe1980/gopatterns/internal/demo"
	"github.com/hupe1980/gopatterns/internal/telemetry"
	"github.com/hupe1980/gopatterns/report"
)

// app holds what every subcommand shares.
type app struct {
	cfg     *config.Config
	out     io.Writer
	logger  *gopatterns.Logger
	metrics gopatterns.MetricsCollector
	basic   *gopatterns.BasicMetricsCollector
	server  *http.Server
}

func newApp(cfg *config.Config, out io.Writer) *app {
	var logger *gopatterns.Logger
	if cfg.Log.Format == "json" {
		logger = gopatterns.NewJSONLogger(cfg.SlogLevel())
	} else {
		logger = gopatterns.NewTextLogger(cfg.SlogLevel())
	}

	basic := &gopatterns.BasicMetricsCollector{}
	return &app{
		cfg:     cfg,
		out:     out,
		logger:  logger,
		metrics: basic,
		basic:   basic,
	}
}

// startMetrics serves Prometheus metrics on addr. An empty addr keeps the
// in-process counters only.
func (a *app) startMetrics(addr string) error {
	if addr == "" {
		return nil
	}

	prom := telemetry.NewPrometheusCollector()
	a.metrics = gopatterns.MultiMetricsCollector{a.basic, prom}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", prom.Handler())
	a.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())
	return nil
}

func (a *app) close(ctx context.Context) error {
	stats := a.basic.GetStats()
	a.logger.Debug("run stats",
		"fits", stats.FitCount,
		"notifications", stats.NotifyDeliveries,
		"exports", stats.ExportCount,
	)

	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

func (a *app) env() demo.Env {
	return demo.Env{
		Out:     a.out,
		Logger:  a.logger,
		Metrics: a.metrics,
	}
}

func (a *app) reportWriter(ctx context.Context) (*report.Writer, error) {
	store, err := openStore(ctx, a.cfg.Export)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(a.cfg.Export.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", a.cfg.Export.Codec)
	}
	ct, err := compress.Parse(a.cfg.Export.Compression)
	if err != nil {
		return nil, err
	}
	return report.NewWriter(store,
		report.WithCodec(c),
		report.WithCompression(ct),
		report.WithLogger(a.logger.WithComponent("report")),
		report.WithMetricsCollector(a.metrics),
	), nil
}

func (a *app) clusterSettings(ctx context.Context) (demo.ClusterSettings, error) {
	k := a.cfg.KMeans
	metrics := make([]distance.Metric, 0, len(k.Metrics))
	for _, name := range k.Metrics {
		m, err := distance.ParseMetric(name)
		if err != nil {
			return demo.ClusterSettings{}, err
		}
		metrics = append(metrics, m)
	}

	s := demo.ClusterSettings{
		K:             k.K,
		Metrics:       metrics,
		Seed:          k.Seed,
		MaxIterations: k.MaxIterations,
		Parallelism:   k.Parallelism,
		InitMin:       k.InitMin,
		InitMax:       k.InitMax,
		Centers:       k.Centers,
		PerCenter:     k.PointsPerCenter,
		SampleSeed:    k.SampleSeed,
	}

	if a.cfg.Export.Enabled {
		w, err := a.reportWriter(ctx)
		if err != nil {
			return demo.ClusterSettings{}, err
		}
		s.Reports = w
	}
	return s, nil
}
