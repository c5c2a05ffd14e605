// Package telemetry exports gopatterns metrics to Prometheus.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/gopatterns"
)

const namespace = "gopatterns"

// PrometheusCollector implements gopatterns.MetricsCollector on a private registry.
type PrometheusCollector struct {
	registry *prometheus.Registry

	fits          *prometheus.CounterVec
	fitLatency    *prometheus.HistogramVec
	fitIterations *prometheus.HistogramVec
	fitClusters   *prometheus.GaugeVec

	notifications *prometheus.CounterVec
	notifyLatency prometheus.Histogram

	exports       *prometheus.CounterVec
	exportBytes   prometheus.Counter
	exportLatency prometheus.Histogram
}

// NewPrometheusCollector creates a collector with its own registry.
// Go runtime and process collectors are registered alongside.
func NewPrometheusCollector() *PrometheusCollector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusCollector{
		registry: reg,
		fits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kmeans_fits_total",
			Help:      "Total K-Means fits, labeled by strategy and status",
		}, []string{"strategy", "status"}),
		fitLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kmeans_fit_duration_seconds",
			Help:      "Duration of K-Means fits",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		fitIterations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kmeans_fit_iterations",
			Help:      "Iterations until a K-Means fit stopped",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}, []string{"strategy"}),
		fitClusters: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kmeans_clusters",
			Help:      "Non-empty clusters of the latest fit",
		}, []string{"strategy"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_notifications_total",
			Help:      "Feed notifications, labeled by outcome",
		}, []string{"status"}),
		notifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_notify_duration_seconds",
			Help:      "Duration of a Notify fan-out",
			Buckets:   prometheus.DefBuckets,
		}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_exports_total",
			Help:      "Report exports, labeled by status",
		}, []string{"status"}),
		exportBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_export_bytes_total",
			Help:      "Bytes written by report exports",
		}),
		exportLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_export_duration_seconds",
			Help:      "Duration of report exports",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *PrometheusCollector) RecordFit(strategy string, iterations, clusters int, duration time.Duration, err error) {
	c.fits.WithLabelValues(strategy, status(err)).Inc()
	if err != nil {
		return
	}
	c.fitLatency.WithLabelValues(strategy).Observe(duration.Seconds())
	c.fitIterations.WithLabelValues(strategy).Observe(float64(iterations))
	c.fitClusters.WithLabelValues(strategy).Set(float64(clusters))
}

func (c *PrometheusCollector) RecordNotify(subscribers, delivered int, duration time.Duration) {
	c.notifications.WithLabelValues("delivered").Add(float64(delivered))
	if failed := subscribers - delivered; failed > 0 {
		c.notifications.WithLabelValues("failed").Add(float64(failed))
	}
	c.notifyLatency.Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordExport(bytes int, duration time.Duration, err error) {
	c.exports.WithLabelValues(status(err)).Inc()
	if err != nil {
		return
	}
	c.exportBytes.Add(float64(bytes))
	c.exportLatency.Observe(duration.Seconds())
}

// Registry returns the registry the collector's metrics live in.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

var _ gopatterns.MetricsCollector = (*PrometheusCollector)(nil)
