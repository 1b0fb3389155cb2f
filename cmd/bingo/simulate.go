package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/partybingo/cmd/bingo/shared"
	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/randutil"
	"github.com/lox/partybingo/internal/simulator"
	"github.com/lox/partybingo/internal/statistics"
)

// SimulateCmd plays full rounds without a user
type SimulateCmd struct {
	shared.LogFlags `embed:""`
	CatalogFlag     `embed:""`

	Rounds  int    `default:"1000" help:"Number of rounds to simulate"`
	Players int    `default:"10" help:"Cards in play per round"`
	Workers int    `default:"0" help:"Parallel workers (0 = GOMAXPROCS)"`
	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
}

func (c *SimulateCmd) Run() error {
	logger := c.Zerolog(os.Stderr)
	ctx, cancel := shared.SignalContext(context.Background(), logger)
	defer cancel()
	return c.run(ctx, os.Stdout, os.Stderr)
}

func (c *SimulateCmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	logger := c.Zerolog(stderr)

	_, p, err := c.load(true)
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info().
		Int("rounds", c.Rounds).
		Int("players", c.Players).
		Int64("seed", seed).
		Msg("Starting simulation")

	start := time.Now()
	sim := simulator.New(p, simulator.Config{
		Rounds:  c.Rounds,
		Players: c.Players,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  c.Charm(stderr),
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("Simulation complete")
	printSummary(stdout, stats, c.Players, p.Len())
	return nil
}

func printSummary(w io.Writer, s *statistics.Statistics, players, items int) {
	lo, hi := s.ConfidenceInterval95()
	fmt.Fprintf(w, "Rounds:            %d (%d players, %d items)\n", s.Rounds, players, items)
	fmt.Fprintf(w, "Draws to bingo:    %.2f ± %.2f (95%% CI %.2f-%.2f)\n", s.Mean(), s.StdDev(), lo, hi)
	fmt.Fprintf(w, "Median / p90:      %.1f / %.1f\n", s.Median(), s.Percentile(0.9))
	fmt.Fprintf(w, "Fastest / slowest: %d / %d\n", s.MinDraws, s.MaxDraws)
	fmt.Fprintf(w, "Shared wins:       %d (%.1f%%)\n", s.SharedWins, 100*float64(s.SharedWins)/float64(s.Rounds))
	for _, k := range []bingo.LineKind{bingo.Row, bingo.Column, bingo.Diagonal} {
		fmt.Fprintf(w, "First line %-8s %.1f%%\n", k.String()+":", 100*s.LineShare(k))
	}
}
