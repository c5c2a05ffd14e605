package kmeans

import (
	"runtime"

	"github.com/hupe1980/gopatterns"
	"github.com/hupe1980/gopatterns/distance"
)

const (
	// DefaultInitMin is the lower bound for random initial centroids.
	DefaultInitMin = -5.0
	// DefaultInitMax is the upper bound for random initial centroids.
	DefaultInitMax = 5.0
)

type options struct {
	strategy      distance.Strategy
	seed          uint64
	seeded        bool
	initMin       float64
	initMax       float64
	maxIterations int
	parallelism   int
	logger        *gopatterns.Logger
	metrics       gopatterns.MetricsCollector
}

func defaultOptions() options {
	return options{
		strategy:    distance.Euclidean{},
		initMin:     DefaultInitMin,
		initMax:     DefaultInitMax,
		parallelism: 1,
		logger:      gopatterns.NoopLogger(),
		metrics:     gopatterns.NoopMetricsCollector{},
	}
}

// Option configures a Model.
type Option func(*options)

// WithStrategy sets the distance strategy used in the assignment step.
// If nil is passed, distance.Euclidean is used.
func WithStrategy(s distance.Strategy) Option {
	return func(o *options) {
		if s == nil {
			s = distance.Euclidean{}
		}
		o.strategy = s
	}
}

// WithSeed makes centroid initialization deterministic.
// Without it every Fit draws a fresh seed (reported in Result.Seed).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithInitBounds sets the range [lo, hi) from which every coordinate of the
// initial centroids is drawn uniformly.
func WithInitBounds(lo, hi float64) Option {
	return func(o *options) {
		o.initMin = lo
		o.initMax = hi
	}
}

// WithMaxIterations caps the number of assignment/update rounds.
// Zero (the default) iterates until the centroids stop changing.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxIterations = n
	}
}

// WithParallelism sets how many goroutines share the assignment step.
// n <= 0 uses GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *gopatterns.Logger) Option {
	return func(o *options) {
		o.logger = l.OrNoop()
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable it.
func WithMetricsCollector(mc gopatterns.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = gopatterns.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
