// Package config loads the oopsiroute YAML configuration.
//
// Load reads a file over Default(), so a config file only has to name the
// fields it changes. The merged result is checked with validator struct tags
// plus a few cross-field rules (see Validate).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/oopsiroute/builder"
)

// Routing algorithms.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// A* heuristics.
const (
	HeuristicZero      = "zero"
	HeuristicEuclidean = "euclidean"
	HeuristicHaversine = "haversine"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	Log     Log     `yaml:"log"`
	Routing Routing `yaml:"routing"`
	Bench   Bench   `yaml:"bench"`

	// Graph seeds the served graph. When empty the demo network is used.
	Graph builder.GraphSpec `yaml:"graph"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr        string   `yaml:"addr" validate:"required,hostname_port"`
	Mode        string   `yaml:"mode" validate:"oneof=debug release test"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Routing selects the shortest-path algorithm used by the service.
type Routing struct {
	Algorithm string `yaml:"algorithm" validate:"oneof=dijkstra astar"`
	Heuristic string `yaml:"heuristic" validate:"oneof=zero euclidean haversine"`
	// Speed divides haversine meters to turn distance into the edge-weight unit.
	Speed float64 `yaml:"speed" validate:"gte=0"`
}

// Bench configures the benchmark driver.
type Bench struct {
	Sizes     []int  `yaml:"sizes" validate:"required,min=1,dive,gte=2"`
	MaxDegree int    `yaml:"max_degree" validate:"gte=1"`
	MaxWeight int    `yaml:"max_weight" validate:"gte=1"`
	Seed      int64  `yaml:"seed"`
	Output    string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:        "0.0.0.0:5000",
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
		Log: Log{Level: "info", Format: "json"},
		Routing: Routing{
			Algorithm: AlgorithmDijkstra,
			Heuristic: HeuristicZero,
			Speed:     1,
		},
		Bench: Bench{
			Sizes:     []int{10, 50, 100, 500, 1000},
			MaxDegree: 10,
			MaxWeight: 20,
			Seed:      1,
			Output:    "benchmark_results.csv",
		},
	}
}

// Load returns Default() overlaid with the YAML file at path.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Read decodes YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Read(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and the cross-field rules:
// astar with a coordinate heuristic needs coordinates for every seeded node.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Routing.Algorithm != AlgorithmAStar || c.Routing.Heuristic == HeuristicZero || c.Graph.Empty() {
		return nil
	}
	for _, id := range c.Graph.Nodes {
		if _, ok := c.Graph.Coordinates[id]; !ok {
			return fmt.Errorf("%w: routing.heuristic=%s but graph.coordinates lacks node %q",
				ErrInvalid, c.Routing.Heuristic, id)
		}
	}

	return nil
}
