// Package tournament parses tournament command flags and runs the
// round-robin engine.
package tournament

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/louisbranch/dilemma/internal/dilemma/strategy"
	"github.com/louisbranch/dilemma/internal/dilemma/tournament"
	entrypoint "github.com/louisbranch/dilemma/internal/platform/cmd"
)

// Config holds tournament command configuration.
type Config struct {
	Iterations int    `env:"DILEMMA_ITERATIONS" envDefault:"500"`
	Workers    int    `env:"DILEMMA_WORKERS"`
	Strategies string `env:"DILEMMA_STRATEGIES"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Number of rounds per match")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent matches (default: number of CPUs)")
	fs.StringVar(&cfg.Strategies, "strategies", cfg.Strategies, "Comma-separated strategy names (default: all built-ins)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the full round-robin tournament and writes one result
// line per pairing to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTournament, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	entries, err := roster(cfg.Strategies)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	results, err := tournament.Run(ctx, entries, tournament.Config{
		Rounds:  cfg.Iterations,
		Workers: workers,
	})
	if err != nil {
		return err
	}

	var failures []error
	for result := range results {
		if result.Err != nil {
			failures = append(failures, result.Err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	return errors.Join(failures...)
}

// roster resolves a comma-separated strategy list into tournament
// entries. An empty list selects every built-in strategy.
func roster(names string) ([]tournament.Entry, error) {
	selected := strategy.Names()
	if strings.TrimSpace(names) != "" {
		selected = strings.Split(names, ",")
	}

	entries := make([]tournament.Entry, 0, len(selected))
	for _, name := range selected {
		name = strings.TrimSpace(name)
		s, err := strategy.New(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, tournament.Entry{Name: name, Strategy: s})
	}
	return entries, nil
}
