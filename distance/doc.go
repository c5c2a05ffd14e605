// Package distance provides interchangeable distance strategies for points in
// n-dimensional space.
//
// # Supported Metrics
//
//   - MetricEuclidean: straight-line (L2) distance (default)
//   - MetricManhattan: taxicab (L1) distance
//   - MetricSquaredEuclidean: squared L2 distance, same ordering as L2 without the sqrt
//   - MetricChebyshev: maximum coordinate difference (L-infinity)
//
// # Usage
//
//	s, err := distance.Provider(distance.MetricManhattan)
//	d := s.Calculate([]float64{0, 0}, []float64{3, 4}) // 7
//
// Any function with the right signature can be used as a strategy:
//
//	s := distance.StrategyFunc(func(a, b []float64) float64 { ... })
package distance
