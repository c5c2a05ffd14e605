package kmeans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gopatterns/distance"
	"github.com/hupe1980/gopatterns/testutil"
)

func fitTwoGroups(t *testing.T, k int) *Result {
	t.Helper()

	m, err := New(k, WithSeed(17))
	require.NoError(t, err)

	res, err := m.Fit(context.Background(), twoGroups())
	require.NoError(t, err)
	return res
}

func TestResult_Members(t *testing.T) {
	res := fitTwoGroups(t, 2)

	for _, c := range res.Clusters {
		bm := res.Members(c.ID)
		assert.Equal(t, uint64(c.Size()), bm.GetCardinality())
		for _, idx := range c.Indices {
			assert.True(t, bm.Contains(uint32(idx)))
		}
	}

	assert.True(t, res.Members(-1).IsEmpty())
	assert.True(t, res.Members(99).IsEmpty())

	// Mutating the returned copy does not leak into the result.
	bm := res.Members(res.Assignments[0])
	bm.Clear()
	assert.False(t, res.Members(res.Assignments[0]).IsEmpty())
}

func TestResult_PredictDimensionMismatch(t *testing.T) {
	res := fitTwoGroups(t, 2)

	_, err := res.Predict([]float64{1})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 1, dm.Actual)

	_, err = res.Nearest([]float64{1, 2, 3}, 1)
	assert.ErrorAs(t, err, &dm)
}

func TestResult_NearestClamp(t *testing.T) {
	res := fitTwoGroups(t, 4)

	ids, err := res.Nearest([]float64{0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, ids, len(res.Centroids))

	ids, err = res.Nearest([]float64{0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestResult_Inertia(t *testing.T) {
	m, err := New(1, WithSeed(1))
	require.NoError(t, err)

	res, err := m.Fit(context.Background(), [][]float64{{0, 0}, {2, 0}})
	require.NoError(t, err)

	// Both points are 1 away from the mean (1, 0).
	assert.InDelta(t, 2.0, res.Inertia(), 1e-12)
}

func TestResult_PredictMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(42)
	points, _ := rng.ClusteredPoints(200, 3, 4, 0.8)
	queries := rng.UniformPoints(50, 3, -12, 12)

	for _, s := range []distance.Strategy{distance.Euclidean{}, distance.Manhattan{}, distance.Chebyshev{}} {
		t.Run(distance.Name(s), func(t *testing.T) {
			m, err := New(4, WithStrategy(s), WithSeed(rng.Seed()), WithInitBounds(-10, 10))
			require.NoError(t, err)

			res, err := m.Fit(context.Background(), points)
			require.NoError(t, err)

			nonEmpty := res.NonEmpty()
			for _, q := range queries {
				id, err := res.Predict(q)
				require.NoError(t, err)

				want := testutil.BruteForceNearest(s, q, res.Centroids)
				assert.Equal(t, nonEmpty[want].ID, id)
			}
		})
	}
}
