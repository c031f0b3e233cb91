package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		output string
		sizes  []int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time Dijkstra on random sparse graphs and write CSV results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Bench
			if cmd.Flags().Changed("sizes") {
				bc.Sizes = sizes
			}
			if cmd.Flags().Changed("seed") {
				bc.Seed = seed
			}
			if cmd.Flags().Changed("output") {
				bc.Output = output
			}

			samples, err := bench.Run(cmd.Context(), bench.Config{
				Sizes:     bc.Sizes,
				MaxDegree: bc.MaxDegree,
				MaxWeight: bc.MaxWeight,
				Seed:      bc.Seed,
				Logger:    a.logger.Named("bench"),
			})
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if bc.Output != "" && bc.Output != "-" {
				f, err := os.Create(bc.Output)
				if err != nil {
					return fmt.Errorf("bench: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := bench.WriteCSV(w, samples); err != nil {
				return fmt.Errorf("bench: write csv: %w", err)
			}
			a.logger.Info("benchmark complete", zap.String("output", bc.Output), zap.Int("samples", len(samples)))

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV destination, \"-\" for stdout (overrides bench.output)")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "graph sizes (overrides bench.sizes)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (overrides bench.seed)")

	return cmd
}
