// Package tournament schedules the full Cartesian product of pairwise
// matches over a strategy roster across a bounded worker pool.
package tournament

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/dilemma/internal/dilemma"
)

const tracerName = "github.com/louisbranch/dilemma/internal/dilemma/tournament"

// ErrInvalidWorkers indicates a non-positive worker count.
var ErrInvalidWorkers = errors.New("workers must be positive")

// ErrEmptyRoster indicates a tournament with no entries.
var ErrEmptyRoster = errors.New("at least one entry must be provided")

// Entry pairs a display name with a strategy instance. Duplicate names
// and duplicate instances are allowed; the same strategy may run under
// several entries.
type Entry struct {
	Name     string
	Strategy dilemma.Strategy
}

// Config controls a tournament run.
type Config struct {
	// Rounds is the number of iterations played in every match.
	// Zero is valid and yields all-zero scores.
	Rounds int
	// Workers bounds the number of matches running concurrently.
	Workers int
}

// Result reports one completed pairing. Err is set when the pairing
// failed (for example a panicking strategy); the scores are then zero
// and meaningless.
type Result struct {
	NameA  string
	NameB  string
	ScoreA int
	ScoreB int
	Err    error
}

func (r Result) String() string {
	return fmt.Sprintf("%s vs %s: %d vs %d", r.NameA, r.NameB, r.ScoreA, r.ScoreB)
}

// Run validates the configuration, schedules every ordered pair of
// entries (self-pairs included) as an independent match, and returns
// the channel on which results arrive.
//
// Matches are distributed across cfg.Workers goroutines. Each match
// owns its history and scores; entry strategies are shared read-only,
// which their contract makes safe. Results arrive in completion
// order, which is unspecified; the channel is buffered for all N²
// results so no worker ever blocks on the consumer, and it closes
// once every scheduled pairing has delivered exactly one result.
//
// A configuration error is returned before any match starts. A
// pairing whose strategy panics delivers a Result carrying the error;
// other pairings are unaffected. Cancelling ctx stops pairings that
// have not started yet (they deliver nothing); a match runs to
// completion once started.
func Run(ctx context.Context, entries []Entry, cfg Config) (<-chan Result, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRoster
	}
	if cfg.Rounds < 0 {
		return nil, dilemma.ErrNegativeRounds
	}
	if cfg.Workers <= 0 {
		return nil, ErrInvalidWorkers
	}
	for _, entry := range entries {
		if entry.Strategy == nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Name, dilemma.ErrMissingStrategy)
		}
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "tournament.run")
	span.SetAttributes(
		attribute.Int("tournament.entries", len(entries)),
		attribute.Int("tournament.rounds", cfg.Rounds),
		attribute.Int("tournament.workers", cfg.Workers),
	)

	results := make(chan Result, len(entries)*len(entries))

	go func() {
		defer span.End()
		defer close(results)

		var group errgroup.Group
		group.SetLimit(cfg.Workers)

		for i := range entries {
			for j := range entries {
				a, b := entries[i], entries[j]
				group.Go(func() error {
					select {
					case <-ctx.Done():
						return nil
					default:
					}

					_, matchSpan := tracer.Start(ctx, "tournament.match")
					matchSpan.SetAttributes(
						attribute.String("match.a", a.Name),
						attribute.String("match.b", b.Name),
					)
					results <- playPairing(a, b, cfg.Rounds)
					matchSpan.End()
					return nil
				})
			}
		}

		group.Wait()
	}()

	return results, nil
}

// Collect runs a tournament and gathers all results into a slice, in
// arrival order.
func Collect(ctx context.Context, entries []Entry, cfg Config) ([]Result, error) {
	stream, err := Run(ctx, entries, cfg)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries)*len(entries))
	for result := range stream {
		results = append(results, result)
	}
	return results, nil
}

// playPairing runs one match and converts a strategy panic into an
// error on the result, so a single broken pairing cannot take down
// the tournament.
func playPairing(a, b Entry, rounds int) (result Result) {
	result.NameA = a.Name
	result.NameB = b.Name

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				NameA: a.Name,
				NameB: b.Name,
				Err:   fmt.Errorf("match %s vs %s: panic: %v", a.Name, b.Name, r),
			}
		}
	}()

	match, err := dilemma.PlayMatch(a.Strategy, b.Strategy, rounds)
	if err != nil {
		result.Err = fmt.Errorf("match %s vs %s: %w", a.Name, b.Name, err)
		return result
	}

	result.ScoreA = match.ScoreA
	result.ScoreB = match.ScoreB
	return result
}
