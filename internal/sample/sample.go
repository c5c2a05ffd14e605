// Package sample generates synthetic point clouds for clustering demos and tests.
package sample

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// ErrInvalidCovariance is returned when the covariance is not positive definite.
var ErrInvalidCovariance = errors.New("sample: covariance is not positive definite")

// Gaussian draws n points from a multivariate normal distribution centered
// on mean with identity covariance.
func Gaussian(mean []float64, n int, src rand.Source) ([][]float64, error) {
	return GaussianWithScale(mean, 1, n, src)
}

// GaussianWithScale is like Gaussian but uses scale*I as the covariance.
func GaussianWithScale(mean []float64, scale float64, n int, src rand.Source) ([][]float64, error) {
	dim := len(mean)
	if dim == 0 || n < 0 || scale <= 0 {
		return nil, ErrInvalidCovariance
	}

	cov := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		cov.SetSym(i, i, scale)
	}

	dist, ok := distmv.NewNormal(mean, cov, src)
	if !ok {
		return nil, ErrInvalidCovariance
	}

	points := make([][]float64, n)
	for i := range points {
		points[i] = dist.Rand(nil)
	}
	return points, nil
}

// Blobs concatenates perCenter gaussian points around each center, in center order.
func Blobs(centers [][]float64, perCenter int, seed uint64) ([][]float64, error) {
	src := rand.NewPCG(seed, ^seed)
	points := make([][]float64, 0, len(centers)*perCenter)
	for _, c := range centers {
		blob, err := Gaussian(c, perCenter, src)
		if err != nil {
			return nil, err
		}
		points = append(points, blob...)
	}
	return points, nil
}
