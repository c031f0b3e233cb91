package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/builder"
	"github.com/katalvlaran/oopsiroute/core"
	"github.com/katalvlaran/oopsiroute/internal/config"
	"github.com/katalvlaran/oopsiroute/internal/logging"
	"github.com/katalvlaran/oopsiroute/routing"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "oopsiroute",
		Short:         "Shortest-path routing over a weighted undirected graph",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")

	root.AddCommand(newServeCmd(a), newBenchCmd(a), newRouteCmd(a), newBFSCmd(a))

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// graph builds the served graph: the configured seed, or the demo network.
func (a *app) graph() (*core.Graph, map[string]builder.Coordinate, error) {
	gopts := []core.GraphOption{core.WithStrictWeights(), core.WithLogger(a.logger.Named("graph"))}
	if a.cfg.Graph.Empty() {
		return builder.NewDemo(gopts...), builder.DemoCoordinates(), nil
	}
	g, err := builder.BuildGraph(gopts, nil, builder.FromSpec(a.cfg.Graph))
	if err != nil {
		return nil, nil, fmt.Errorf("seed graph: %w", err)
	}

	return g, a.cfg.Graph.Coordinates, nil
}

// service wraps the served graph per the routing section of the config.
func (a *app) service(opts ...routing.Option) (*routing.Service, error) {
	g, coords, err := a.graph()
	if err != nil {
		return nil, err
	}
	algo, err := routing.ParseAlgorithm(a.cfg.Routing.Algorithm)
	if err != nil {
		return nil, err
	}
	h, err := routing.NewHeuristic(a.cfg.Routing.Heuristic, coords, a.cfg.Routing.Speed)
	if err != nil {
		return nil, err
	}
	opts = append([]routing.Option{
		routing.WithAlgorithm(algo),
		routing.WithHeuristic(h),
		routing.WithLogger(a.logger.Named("routing")),
	}, opts...)

	return routing.New(g, opts...)
}
