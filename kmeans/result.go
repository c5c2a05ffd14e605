package kmeans

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gopatterns/distance"
)

// Cluster is one of the k groups produced by Fit.
type Cluster struct {
	// ID is the cluster's position in the final assignment round (0..k-1).
	ID int
	// Centroid is the mean of Points; nil when the cluster is empty.
	Centroid []float64
	// Indices are positions of the member points in the fitted input.
	Indices []int
	// Points are the member points themselves, in input order.
	Points [][]float64
}

// Size returns the number of member points.
func (c Cluster) Size() int { return len(c.Indices) }

// Empty reports whether no point was assigned to the cluster.
func (c Cluster) Empty() bool { return len(c.Indices) == 0 }

// Result is the outcome of a Fit call.
type Result struct {
	// Clusters always has k entries; empty clusters are kept and marked.
	Clusters []Cluster
	// Centroids are the final centroids of the non-empty clusters, in cluster order.
	// len(Centroids) <= k.
	Centroids [][]float64
	// Assignments maps each input point to its cluster ID.
	Assignments []int
	Dimension   int
	Iterations  int
	Converged   bool
	Seed        uint64
	// Strategy is the name of the distance strategy used.
	Strategy string

	strategy distance.Strategy
	owners   []int
	members  []*roaring.Bitmap
}

func newResult(m *Model, points [][]float64, dim int, centroids [][]float64, owners, assignments, counts []int, iterations int, converged bool, seed uint64) *Result {
	clusters := make([]Cluster, m.k)
	members := make([]*roaring.Bitmap, m.k)
	for c := range clusters {
		clusters[c] = Cluster{
			ID:      c,
			Indices: make([]int, 0, counts[c]),
			Points:  make([][]float64, 0, counts[c]),
		}
		members[c] = roaring.New()
	}

	for i, c := range assignments {
		clusters[c].Indices = append(clusters[c].Indices, i)
		clusters[c].Points = append(clusters[c].Points, points[i])
		members[c].Add(uint32(i))
	}

	for j, c := range owners {
		clusters[c].Centroid = centroids[j]
	}

	return &Result{
		Clusters:    clusters,
		Centroids:   centroids,
		Assignments: slices.Clone(assignments),
		Dimension:   dim,
		Iterations:  iterations,
		Converged:   converged,
		Seed:        seed,
		Strategy:    distance.Name(m.opts.strategy),
		strategy:    m.opts.strategy,
		owners:      owners,
		members:     members,
	}
}

// NonEmpty returns the clusters that received at least one point.
func (r *Result) NonEmpty() []Cluster {
	out := make([]Cluster, 0, len(r.Centroids))
	for _, c := range r.Clusters {
		if !c.Empty() {
			out = append(out, c)
		}
	}
	return out
}

// Members returns the indices of the points in cluster id as a bitmap.
// The returned bitmap is a copy. Unknown IDs yield an empty bitmap.
func (r *Result) Members(id int) *roaring.Bitmap {
	if id < 0 || id >= len(r.members) {
		return roaring.New()
	}
	return r.members[id].Clone()
}

// Predict returns the ID of the cluster whose centroid is closest to p.
func (r *Result) Predict(p []float64) (int, error) {
	if len(p) != r.Dimension {
		return -1, &ErrDimensionMismatch{Index: -1, Expected: r.Dimension, Actual: len(p)}
	}
	return r.owners[nearest(r.strategy, p, r.Centroids)], nil
}

type centroidDist struct {
	id   int
	dist float64
}

// Nearest returns the IDs of the n clusters closest to p, nearest first.
// n is clamped to the number of non-empty clusters.
func (r *Result) Nearest(p []float64, n int) ([]int, error) {
	if len(p) != r.Dimension {
		return nil, &ErrDimensionMismatch{Index: -1, Expected: r.Dimension, Actual: len(p)}
	}
	if n > len(r.Centroids) {
		n = len(r.Centroids)
	}
	if n <= 0 {
		return nil, nil
	}

	dists := make([]centroidDist, len(r.Centroids))
	for j, c := range r.Centroids {
		dists[j] = centroidDist{id: r.owners[j], dist: r.strategy.Calculate(p, c)}
	}

	slices.SortStableFunc(dists, func(a, b centroidDist) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		default:
			return 0
		}
	})

	result := make([]int, n)
	for i := range result {
		result[i] = dists[i].id
	}
	return result, nil
}

// Inertia returns the sum of distances from every point to its centroid,
// measured with the model's strategy.
func (r *Result) Inertia() float64 {
	var total float64
	for _, c := range r.Clusters {
		for _, p := range c.Points {
			total += r.strategy.Calculate(p, c.Centroid)
		}
	}
	return total
}
