package kmeans

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gopatterns/distance"
)

// minPointsPerWorker keeps tiny inputs on the serial path.
const minPointsPerWorker = 64

// Model clusters points into at most k groups.
// A Model is immutable after New and safe for concurrent Fit calls.
type Model struct {
	k    int
	opts options
}

// New creates a model for k clusters.
func New(k int, optFns ...Option) (*Model, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if !(o.initMin < o.initMax) {
		return nil, ErrInvalidBounds
	}

	return &Model{k: k, opts: o}, nil
}

// K returns the configured number of clusters.
func (m *Model) K() int { return m.k }

// Strategy returns the distance strategy used for assignment.
func (m *Model) Strategy() distance.Strategy { return m.opts.strategy }

// Fit runs Lloyd's algorithm over points until the centroid list stops
// changing, the iteration cap is hit or ctx is cancelled.
//
// Every point must have the same, non-zero dimension.
func (m *Model) Fit(ctx context.Context, points [][]float64) (*Result, error) {
	start := time.Now()
	name := distance.Name(m.opts.strategy)

	res, err := m.fit(ctx, points)

	var iterations, clusters int
	converged := false
	if res != nil {
		iterations = res.Iterations
		clusters = len(res.Centroids)
		converged = res.Converged
	}

	m.opts.logger.LogFit(ctx, name, m.k, iterations, clusters, converged, err)
	m.opts.metrics.RecordFit(name, iterations, clusters, time.Since(start), err)

	return res, err
}

func (m *Model) fit(ctx context.Context, points [][]float64) (*Result, error) {
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	seed := m.opts.seed
	if !m.opts.seeded {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	centroids := m.initCentroids(rng, dim)
	assignments := make([]int, len(points))

	var (
		iterations int
		converged  bool
		counts     []int
		// owners[j] is the cluster ID whose mean produced centroids[j].
		owners []int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		// Assignment step: cluster IDs are positions in the current centroid list.
		if err := m.assign(ctx, points, centroids, assignments); err != nil {
			return nil, err
		}

		// Update step
		var next [][]float64
		next, owners, counts = m.update(points, assignments, dim)

		converged = equalCentroids(next, centroids)
		centroids = next

		m.opts.logger.DebugContext(ctx, "kmeans iteration",
			"iteration", iterations,
			"centroids", len(centroids),
			"converged", converged,
		)

		if converged {
			break
		}
		if m.opts.maxIterations > 0 && iterations >= m.opts.maxIterations {
			break
		}
	}

	return newResult(m, points, dim, centroids, owners, assignments, counts, iterations, converged, seed), nil
}

func (m *Model) initCentroids(rng *rand.Rand, dim int) [][]float64 {
	span := m.opts.initMax - m.opts.initMin
	centroids := make([][]float64, m.k)
	for i := range centroids {
		c := make([]float64, dim)
		for d := range c {
			c[d] = m.opts.initMin + span*rng.Float64()
		}
		centroids[i] = c
	}
	return centroids
}

// assign writes, for every point, the index of its nearest centroid.
func (m *Model) assign(ctx context.Context, points, centroids [][]float64, assignments []int) error {
	workers := m.opts.parallelism
	if workers <= 1 || len(points) < workers*minPointsPerWorker {
		for i, p := range points {
			assignments[i] = nearest(m.opts.strategy, p, centroids)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(points) + workers - 1) / workers
	for lo := 0; lo < len(points); lo += chunk {
		hi := min(lo+chunk, len(points))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%minPointsPerWorker == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				assignments[i] = nearest(m.opts.strategy, points[i], centroids)
			}
			return nil
		})
	}
	return g.Wait()
}

// update recomputes the centroid of every non-empty cluster, in cluster order.
// Empty clusters produce no centroid.
func (m *Model) update(points [][]float64, assignments []int, dim int) ([][]float64, []int, []int) {
	sums := make([][]float64, m.k)
	counts := make([]int, m.k)

	for i, p := range points {
		c := assignments[i]
		if sums[c] == nil {
			sums[c] = make([]float64, dim)
		}
		for d, v := range p {
			sums[c][d] += v
		}
		counts[c]++
	}

	next := make([][]float64, 0, m.k)
	owners := make([]int, 0, m.k)
	for c := 0; c < m.k; c++ {
		if counts[c] == 0 {
			continue
		}
		mean := sums[c]
		n := float64(counts[c])
		for d := range mean {
			mean[d] /= n
		}
		next = append(next, mean)
		owners = append(owners, c)
	}

	return next, owners, counts
}

// nearest returns the index of the closest centroid; ties go to the lowest index.
func nearest(s distance.Strategy, p []float64, centroids [][]float64) int {
	best := 0
	minDist := s.Calculate(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := s.Calculate(p, centroids[j]); d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}

func equalCentroids(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for d := range a[i] {
			if a[i][d] != b[i][d] {
				return false
			}
		}
	}
	return true
}

func validatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, &ErrDimensionMismatch{Index: 0, Expected: 1, Actual: 0}
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
	}
	return dim, nil
}
