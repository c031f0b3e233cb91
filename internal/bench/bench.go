// Package bench times Dijkstra over random sparse graphs of growing size and
// writes the samples as CSV.
package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/builder"
	"github.com/katalvlaran/oopsiroute/dijkstra"
)

// ErrNoSizes is returned by Run for an empty size list.
var ErrNoSizes = errors.New("bench: no sizes")

// Config drives Run.
type Config struct {
	Sizes     []int
	MaxDegree int
	MaxWeight int
	Seed      int64
	Logger    *zap.Logger
}

// Sample is one measured size.
type Sample struct {
	Nodes    int
	Edges    int
	Elapsed  time.Duration
	MemoryMB float64
	// Reached counts nodes with a finite distance from the source.
	Reached int
}

// Header is the CSV header written by WriteCSV.
var Header = []string{"nodes", "time_seconds", "memory_MB"}

// Run builds one graph per size (seeded with cfg.Seed+index so every size is
// reproducible on its own) and times a full single-source Dijkstra from node
// "0". Graph construction is excluded from both time and memory.
func Run(ctx context.Context, cfg Config) ([]Sample, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	samples := make([]Sample, 0, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return samples, err
		}

		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(cfg.Seed + int64(i))},
			builder.RandomSparse(n, cfg.MaxDegree, cfg.MaxWeight))
		if err != nil {
			return samples, fmt.Errorf("bench: size %d: %w", n, err)
		}

		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)
		start := time.Now()
		res, err := dijkstra.Dijkstra(g, builder.DefaultIDFn(0))
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)
		if err != nil {
			return samples, fmt.Errorf("bench: size %d: %w", n, err)
		}

		s := Sample{
			Nodes:    n,
			Edges:    g.EdgeCount(),
			Elapsed:  elapsed,
			MemoryMB: float64(after.TotalAlloc-before.TotalAlloc) / (1 << 20),
			Reached:  res.Settled,
		}
		samples = append(samples, s)
		log.Info("benchmark",
			zap.Int("nodes", s.Nodes),
			zap.Int("edges", s.Edges),
			zap.Duration("elapsed", s.Elapsed),
			zap.Float64("memory_mb", s.MemoryMB),
			zap.Int("reached", s.Reached),
		)
	}

	return samples, nil
}

// WriteCSV writes Header then one row per sample.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Nodes),
			strconv.FormatFloat(s.Elapsed.Seconds(), 'f', -1, 64),
			strconv.FormatFloat(s.MemoryMB, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
