// Package testutil provides deterministic data generators for tests.
//
// All generators are driven by a seeded RNG so failing tests can be
// reproduced:
//
//	rng := testutil.NewRNG(42)
//	points := rng.UniformPoints(100, 2, -5, 5)
//	clustered, labels := rng.ClusteredPoints(300, 2, 3, 0.5)
package testutil
