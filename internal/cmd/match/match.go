// Package match parses match command flags and plays a single pairing.
package match

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/dilemma/internal/dilemma"
	"github.com/louisbranch/dilemma/internal/dilemma/strategy"
	entrypoint "github.com/louisbranch/dilemma/internal/platform/cmd"
)

// Config holds match command configuration.
type Config struct {
	A          string `env:"DILEMMA_MATCH_A" envDefault:"TitForTat"`
	B          string `env:"DILEMMA_MATCH_B" envDefault:"TitForTat"`
	Iterations int    `env:"DILEMMA_ITERATIONS" envDefault:"500"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.A, "a", cfg.A, "Strategy for player A")
	fs.StringVar(&cfg.B, "b", cfg.B, "Strategy for player B")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Number of rounds to play")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays one match and writes the result line to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMatch, func(context.Context) error {
		return run(cfg, os.Stdout)
	})
}

func run(cfg Config, out io.Writer) error {
	a, err := strategy.New(cfg.A)
	if err != nil {
		return err
	}
	b, err := strategy.New(cfg.B)
	if err != nil {
		return err
	}

	result, err := dilemma.PlayMatch(a, b, cfg.Iterations)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s vs %s: %d vs %d\n", cfg.A, cfg.B, result.ScoreA, result.ScoreB)
	return nil
}
