// Package simulator plays complete bingo rounds without a user: one host
// draws the whole pool while every player marks each called item that is on
// their card. It measures how long rounds take to produce a winner.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/game"
	"github.com/lox/partybingo/internal/pool"
	"github.com/lox/partybingo/internal/randutil"
	"github.com/lox/partybingo/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Players int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Simulator runs bingo round simulations
type Simulator struct {
	config Config
	pool   *pool.Pool
	logger *log.Logger
}

// New creates a new simulator for the given pool
func New(p *pool.Pool, config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Players <= 0 {
		config.Players = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		config: config,
		pool:   p,
		logger: logger.WithPrefix("simulator"),
	}
}

// Run plays every round and returns aggregated statistics. Rounds are spread
// over independent workers; each round derives its own RNG from the base seed
// so results do not depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	if s.pool.Len() < bingo.Cells {
		return nil, &bingo.InsufficientPoolError{Have: s.pool.Len(), Need: bingo.Cells}
	}

	results := make([]statistics.RoundResult, s.config.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for round := range s.config.Rounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.PlayRound(s.config.Seed + int64(round))
			if err != nil {
				return fmt.Errorf("round %d: %w", round+1, err)
			}
			results[round] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Debug("Simulation complete", "rounds", stats.Rounds, "mean_draws", stats.Mean())
	return stats, nil
}

// PlayRound plays a single round from seed. The host and every player run in
// their own session; they only share the pool.
func (s *Simulator) PlayRound(seed int64) (statistics.RoundResult, error) {
	result := statistics.RoundResult{Seed: seed, Players: s.config.Players}
	rng := randutil.New(seed)

	host := game.NewSession(s.pool,
		game.WithRand(rng),
		game.WithID(fmt.Sprintf("sim-%d-host", seed)))
	if err := host.StartHost(); err != nil {
		return result, err
	}

	players := make([]*game.Session, s.config.Players)
	for i := range players {
		players[i] = game.NewSession(s.pool,
			game.WithRand(randutil.New(int64(rng.Uint64()))),
			game.WithID(fmt.Sprintf("sim-%d-p%d", seed, i)))
		if err := players[i].StartPlayer(); err != nil {
			return result, err
		}
	}

	for {
		item, ok, err := host.DrawNext()
		if err != nil {
			return result, err
		}
		if !ok {
			return result, fmt.Errorf("pool exhausted after %d draws without a bingo", host.Host().Drawn())
		}

		for _, p := range players {
			card := p.Player().Card()
			if !card.Contains(item.ID) {
				continue
			}
			if err := p.ToggleMark(item.ID); err != nil {
				return result, err
			}
			if !p.Player().HasWon() {
				continue
			}
			if result.Winners == 0 {
				result.FirstLine = p.Player().WinningLines()[0].Kind
			}
			result.Winners++
		}

		if result.Winners > 0 {
			result.DrawsToBingo = host.Host().Drawn()
			return result, nil
		}
	}
}

// RunSimulation is a convenience function to run a simulation
func RunSimulation(ctx context.Context, p *pool.Pool, rounds, players int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(p, Config{Rounds: rounds, Players: players, Seed: seed, Logger: logger}).Run(ctx)
}
