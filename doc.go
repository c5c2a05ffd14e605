// Package gopatterns is a collection of small, self-contained design pattern
// implementations.
//
// Each pattern lives in its own package and none of them depend on each other:
//
//   - factory: Abstract Factory (families of movie-night products)
//   - drink: Decorator (energy drinks with stacked supplements)
//   - feed: Observer (a fitness-tracking activity feed)
//   - distance + kmeans: Strategy (K-Means with a pluggable distance metric)
//
// The root package only carries the ambient pieces shared by the patterns:
// structured logging (Logger) and operational metrics (MetricsCollector).
//
// # Logging
//
//	logger := gopatterns.NewTextLogger(slog.LevelDebug)
//	model, _ := kmeans.New(3, kmeans.WithLogger(logger))
//
// # Metrics
//
//	metrics := &gopatterns.BasicMetricsCollector{}
//	model, _ := kmeans.New(3, kmeans.WithMetricsCollector(metrics))
//	// ... fit ...
//	stats := metrics.GetStats()
package gopatterns
