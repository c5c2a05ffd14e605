package distance

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Strategy computes the distance between two points.
// Implementations assume both points have the same dimension (caller's responsibility).
type Strategy interface {
	Calculate(a, b []float64) float64
}

// StrategyFunc adapts an ordinary function to the Strategy interface.
type StrategyFunc func(a, b []float64) float64

// Calculate calls f(a, b).
func (f StrategyFunc) Calculate(a, b []float64) float64 {
	return f(a, b)
}

// Euclidean is the straight-line (L2) distance.
type Euclidean struct{}

// Calculate implements Strategy.
func (Euclidean) Calculate(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan is the sum of absolute coordinate differences (L1).
type Manhattan struct{}

// Calculate implements Strategy.
func (Manhattan) Calculate(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// SquaredEuclidean is the squared L2 distance.
type SquaredEuclidean struct{}

// Calculate implements Strategy.
func (SquaredEuclidean) Calculate(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Chebyshev is the largest absolute coordinate difference (L-infinity).
type Chebyshev struct{}

// Calculate implements Strategy.
func (Chebyshev) Calculate(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Metric identifies a built-in distance strategy.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricManhattan
	MetricSquaredEuclidean
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricManhattan:
		return "manhattan"
	case MetricSquaredEuclidean:
		return "squared_euclidean"
	case MetricChebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseMetric resolves a metric name. Matching is case-insensitive and
// accepts the common L1/L2/Linf aliases.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "manhattan", "l1", "taxicab":
		return MetricManhattan, nil
	case "squared_euclidean", "sqeuclidean", "squared_l2":
		return MetricSquaredEuclidean, nil
	case "chebyshev", "linf":
		return MetricChebyshev, nil
	default:
		return 0, fmt.Errorf("unsupported metric %q", name)
	}
}

// Provider returns the strategy for the given metric.
func Provider(m Metric) (Strategy, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean{}, nil
	case MetricManhattan:
		return Manhattan{}, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean{}, nil
	case MetricChebyshev:
		return Chebyshev{}, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Name returns a printable name for s. Built-in strategies report their
// metric name; anything else reports its Go type.
func Name(s Strategy) string {
	switch s.(type) {
	case Euclidean, *Euclidean:
		return MetricEuclidean.String()
	case Manhattan, *Manhattan:
		return MetricManhattan.String()
	case SquaredEuclidean, *SquaredEuclidean:
		return MetricSquaredEuclidean.String()
	case Chebyshev, *Chebyshev:
		return MetricChebyshev.String()
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", s)
	}
}
