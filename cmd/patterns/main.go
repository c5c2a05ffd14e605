// Command patterns runs the design pattern demos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/hupe1980/gopatterns/feed"
	"github.com/hupe1980/gopatterns/internal/config"
	"github.com/hupe1980/gopatterns/internal/demo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	var a *app

	return &cli.Command{
		Name:  "patterns",
		Usage: "run the abstract factory, decorator, observer and strategy demos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus metrics on this address",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			if lvl := cmd.String("log-level"); lvl != "" {
				cfg.Log.Level = lvl
				if err := cfg.Validate(); err != nil {
					return ctx, err
				}
			}
			if addr := cmd.String("metrics-addr"); addr != "" {
				cfg.Metrics.Addr = addr
			}

			a = newApp(cfg, cmd.Root().Writer)
			return ctx, a.startMetrics(cfg.Metrics.Addr)
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if a == nil {
				return nil
			}
			return a.close(ctx)
		},
		Commands: []*cli.Command{
			{
				Name:  "factory",
				Usage: "host movie nights built by abstract factories",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "genres to host (default: all)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return demo.MovieNights(a.env(), nil, cmd.StringSlice("genre")...)
				},
			},
			{
				Name:  "drink",
				Usage: "decorate an energy drink with supplements",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := demo.Drinks(a.env())
					return err
				},
			},
			{
				Name:  "feed",
				Usage: "publish activities to subscribed mates",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:  "notify-rate",
						Usage: "max notifications per second (0 is unlimited)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fc := a.cfg.Feed
					if cmd.IsSet("notify-rate") {
						fc.NotifyRate = cmd.Float("notify-rate")
					}
					_, err := demo.Feed(ctx, a.env(), feed.WithNotifyLimit(rate.Limit(fc.NotifyRate), fc.NotifyBurst))
					return err
				},
			},
			{
				Name:  "kmeans",
				Usage: "cluster gaussian blobs with pluggable distance strategies",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "k",
						Usage: "number of clusters",
					},
					&cli.StringSliceFlag{
						Name:  "metric",
						Usage: "distance metrics to compare (euclidean, manhattan, squared_euclidean, chebyshev)",
					},
					&cli.IntFlag{
						Name:  "seed",
						Usage: "seed for centroid initialization (0 is random)",
					},
					&cli.IntFlag{
						Name:  "max-iterations",
						Usage: "cap on assignment rounds (0 runs until convergence)",
					},
					&cli.BoolFlag{
						Name:  "export",
						Usage: "write one report per metric to the export backend",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applyKMeansFlags(a.cfg, cmd)
					if err := a.cfg.Validate(); err != nil {
						return err
					}
					s, err := a.clusterSettings(ctx)
					if err != nil {
						return err
					}
					_, err = demo.Clusters(ctx, a.env(), s)
					return err
				},
			},
			{
				Name:  "reports",
				Usage: "list or show exported cluster reports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "only list reports starting with this prefix",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					w, err := a.reportWriter(ctx)
					if err != nil {
						return err
					}
					if name := cmd.Args().First(); name != "" {
						return demo.ShowReport(ctx, a.env(), w, name)
					}
					return demo.ListReports(ctx, a.env(), w, cmd.String("prefix"))
				},
			},
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func applyKMeansFlags(cfg *config.Config, cmd *cli.Command) {
	if cmd.IsSet("k") {
		cfg.KMeans.K = int(cmd.Int("k"))
	}
	if cmd.IsSet("metric") {
		cfg.KMeans.Metrics = cmd.StringSlice("metric")
	}
	if cmd.IsSet("seed") {
		cfg.KMeans.Seed = uint64(cmd.Int("seed"))
	}
	if cmd.IsSet("max-iterations") {
		cfg.KMeans.MaxIterations = int(cmd.Int("max-iterations"))
	}
	if cmd.IsSet("export") {
		cfg.Export.Enabled = cmd.Bool("export")
	}
}
