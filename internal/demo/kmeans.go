package demo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gopatterns/distance"
	"github.com/hupe1980/gopatterns/internal/sample"
	"github.com/hupe1980/gopatterns/kmeans"
	"github.com/hupe1980/gopatterns/report"
)

// ClusterSettings configures the clustering scenario.
type ClusterSettings struct {
	K             int
	Metrics       []distance.Metric
	Seed          uint64 // 0 draws a random seed per fit
	MaxIterations int
	Parallelism   int
	InitMin       float64
	InitMax       float64

	Centers    [][]float64
	PerCenter  int
	SampleSeed uint64

	// Reports receives one report per metric when set.
	Reports *report.Writer
	Prefix  string
}

// ClusterRun is the outcome of one metric's fit.
type ClusterRun struct {
	Metric distance.Metric
	Result *kmeans.Result
	Report string // name of the stored report, empty when not exported
	Bytes  int
}

// Clusters samples gaussian blobs around the configured centers and fits
// them once per metric. The fits run concurrently; output is printed in
// metric order.
func Clusters(ctx context.Context, env Env, s ClusterSettings) ([]ClusterRun, error) {
	env = env.withDefaults()

	points, err := sample.Blobs(s.Centers, s.PerCenter, s.SampleSeed)
	if err != nil {
		return nil, fmt.Errorf("sample points: %w", err)
	}

	runs := make([]ClusterRun, len(s.Metrics))
	g, gctx := errgroup.WithContext(ctx)

	for i, metric := range s.Metrics {
		g.Go(func() error {
			strategy, err := distance.Provider(metric)
			if err != nil {
				return err
			}

			opts := []kmeans.Option{
				kmeans.WithStrategy(strategy),
				kmeans.WithMaxIterations(s.MaxIterations),
				kmeans.WithParallelism(s.Parallelism),
				kmeans.WithLogger(env.Logger),
				kmeans.WithMetricsCollector(env.Metrics),
			}
			if s.InitMin < s.InitMax {
				opts = append(opts, kmeans.WithInitBounds(s.InitMin, s.InitMax))
			}
			if s.Seed != 0 {
				opts = append(opts, kmeans.WithSeed(s.Seed))
			}

			model, err := kmeans.New(s.K, opts...)
			if err != nil {
				return err
			}
			res, err := model.Fit(gctx, points)
			if err != nil {
				return fmt.Errorf("%s: %w", metric, err)
			}
			runs[i] = ClusterRun{Metric: metric, Result: res}

			if s.Reports == nil {
				return nil
			}
			name := s.Prefix + "cluster_" + metric.String() + ".report"
			n, err := s.Reports.Write(gctx, name, res)
			if err != nil {
				return err
			}
			runs[i].Report = name
			runs[i].Bytes = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		if err := printRun(env, run); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func printRun(env Env, run ClusterRun) error {
	res := run.Result
	if _, err := fmt.Fprintf(env.Out, "%s: %d clusters after %d iterations (converged=%t, seed=%d, inertia=%.3f)\n",
		run.Metric, len(res.Centroids), res.Iterations, res.Converged, res.Seed, res.Inertia()); err != nil {
		return err
	}
	for _, c := range res.NonEmpty() {
		if _, err := fmt.Fprintf(env.Out, "  cluster %d: %d points, centroid %.3f\n", c.ID, c.Size(), c.Centroid); err != nil {
			return err
		}
	}
	if run.Report != "" {
		if _, err := fmt.Fprintf(env.Out, "  report %s (%d bytes)\n", run.Report, run.Bytes); err != nil {
			return err
		}
	}
	return nil
}
