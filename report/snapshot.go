package report

import (
	"time"

	"github.com/hupe1980/gopatterns/kmeans"
)

// Snapshot is the serializable form of a kmeans.Result.
type Snapshot struct {
	Name       string            `json:"name"`
	CreatedAt  time.Time         `json:"created_at"`
	Strategy   string            `json:"strategy"`
	K          int               `json:"k"`
	Seed       uint64            `json:"seed"`
	Iterations int               `json:"iterations"`
	Converged  bool              `json:"converged"`
	Dimension  int               `json:"dimension"`
	Inertia    float64           `json:"inertia"`
	Clusters   []ClusterSnapshot `json:"clusters"`
}

// ClusterSnapshot is one cluster of a Snapshot.
type ClusterSnapshot struct {
	ID       int         `json:"id"`
	Centroid []float64   `json:"centroid,omitempty"`
	Indices  []int       `json:"indices"`
	Points   [][]float64 `json:"points"`
}

// FromResult captures r under the given name.
func FromResult(name string, r *kmeans.Result, now time.Time) Snapshot {
	s := Snapshot{
		Name:       name,
		CreatedAt:  now.UTC(),
		Strategy:   r.Strategy,
		K:          len(r.Clusters),
		Seed:       r.Seed,
		Iterations: r.Iterations,
		Converged:  r.Converged,
		Dimension:  r.Dimension,
		Inertia:    r.Inertia(),
		Clusters:   make([]ClusterSnapshot, len(r.Clusters)),
	}
	for i, c := range r.Clusters {
		s.Clusters[i] = ClusterSnapshot{
			ID:       c.ID,
			Centroid: c.Centroid,
			Indices:  c.Indices,
			Points:   c.Points,
		}
	}
	return s
}

// NonEmpty returns the number of clusters that received points.
func (s *Snapshot) NonEmpty() int {
	n := 0
	for _, c := range s.Clusters {
		if len(c.Indices) > 0 {
			n++
		}
	}
	return n
}
