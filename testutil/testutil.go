package testutil

import (
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/gopatterns/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewPCG(r.seed, r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// UniformPoints generates num points with every coordinate in [lo, hi).
func (r *RNG) UniformPoints(num, dim int, lo, hi float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)
	for i := range num {
		p := data[i*dim : (i+1)*dim]
		for j := range dim {
			p[j] = lo + r.rand.Float64()*(hi-lo)
		}
		points[i] = p
	}
	return points
}

// ClusteredPoints generates points around clusters uniform centers in
// [-10, 10), assigned round-robin, with gaussian noise of the given spread.
// It also returns the true center index of every point.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) ([][]float64, []int) {
	centers := r.UniformPoints(clusters, dim, -10, 10)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)
	labels := make([]int, num)
	for i := range num {
		c := i % clusters
		p := data[i*dim : (i+1)*dim]
		for j := range dim {
			// Add Gaussian noise to the center
			p[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		labels[i] = c
	}
	return points, labels
}

// BruteForceNearest returns the index of the centroid closest to p under s.
// Ties resolve to the lowest index.
func BruteForceNearest(s distance.Strategy, p []float64, centroids [][]float64) int {
	best := -1
	var bestDist float64
	for i, c := range centroids {
		d := s.Calculate(p, c)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
