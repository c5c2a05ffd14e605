// Package kmeans implements Lloyd's k-means clustering with a pluggable
// distance strategy.
//
// The distance metric is a distance.Strategy, so the same model can cluster
// with Euclidean, Manhattan or any user-supplied function:
//
//	model, err := kmeans.New(3,
//	    kmeans.WithStrategy(distance.Manhattan{}),
//	    kmeans.WithSeed(42),
//	)
//	res, err := model.Fit(ctx, points)
//	for _, c := range res.NonEmpty() {
//	    fmt.Println(c.ID, c.Centroid, c.Size())
//	}
//
// # Convergence
//
// Fit stops when a full assignment/update round leaves the centroid list
// unchanged. Clusters that receive no points are dropped from the centroid
// list, so the number of centroids can shrink between iterations; Result
// still reports all k clusters and marks the empty ones.
package kmeans
