package demo

import (
	"context"
	"fmt"

	"github.com/hupe1980/gopatterns/report"
)

// ListReports prints the names of stored reports.
func ListReports(ctx context.Context, env Env, w *report.Writer, prefix string) error {
	env = env.withDefaults()

	names, err := w.List(ctx, prefix)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, err := fmt.Fprintln(env.Out, "no reports")
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(env.Out, name); err != nil {
			return err
		}
	}
	return nil
}

// ShowReport prints a summary of one stored report.
func ShowReport(ctx context.Context, env Env, w *report.Writer, name string) error {
	env = env.withDefaults()

	snap, err := w.Read(ctx, name)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(env.Out, "%s: %s, k=%d, %d non-empty, %d iterations (converged=%t), inertia=%.3f, created %s\n",
		snap.Name, snap.Strategy, snap.K, snap.NonEmpty(), snap.Iterations, snap.Converged, snap.Inertia,
		snap.CreatedAt.Format("2006-01-02T15:04:05Z07:00")); err != nil {
		return err
	}
	for _, c := range snap.Clusters {
		if len(c.Indices) == 0 {
			if _, err := fmt.Fprintf(env.Out, "  cluster %d: empty\n", c.ID); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(env.Out, "  cluster %d: %d points, centroid %.3f\n", c.ID, len(c.Indices), c.Centroid); err != nil {
			return err
		}
	}
	return nil
}
