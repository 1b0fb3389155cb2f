package simulator

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func testPool(n int) *pool.Pool {
	items := make([]pool.Item, n)
	for i := range items {
		items[i] = pool.Item{ID: fmt.Sprintf("item-%02d", i)}
	}
	return pool.MustNew(items)
}

func TestNew(t *testing.T) {
	sim := New(testPool(25), Config{Rounds: 10, Seed: 12345})
	require.NotNil(t, sim)
	assert.Equal(t, 1, sim.config.Players)
	assert.Positive(t, sim.config.Workers)
}

func TestPlayRoundSinglePlayerFullPool(t *testing.T) {
	// With exactly 25 items every draw lands on the only card.
	sim := New(testPool(25), Config{Rounds: 1, Players: 1, Logger: quietLogger()})
	for seed := range int64(20) {
		r, err := sim.PlayRound(seed)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Winners)
		assert.GreaterOrEqual(t, r.DrawsToBingo, bingo.Size)
		// Five cells can block all 12 lines, so the 21st mark always completes one.
		assert.LessOrEqual(t, r.DrawsToBingo, 21)
	}
}

func TestPlayRoundIsDeterministic(t *testing.T) {
	sim := New(pool.Default(), Config{Rounds: 1, Players: 4})
	a, err := sim.PlayRound(99)
	require.NoError(t, err)
	b, err := sim.PlayRound(99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunIndependentOfWorkers(t *testing.T) {
	p := pool.Default()
	one, err := New(p, Config{Rounds: 40, Players: 3, Seed: 7, Workers: 1}).Run(context.Background())
	require.NoError(t, err)
	many, err := New(p, Config{Rounds: 40, Players: 3, Seed: 7, Workers: 8}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, one.Values, many.Values)
	assert.Equal(t, one.LineWins, many.LineWins)
	assert.Equal(t, 40, one.Rounds)
	require.NoError(t, one.Validate())
}

func TestRunSimulation_Convenience(t *testing.T) {
	stats, err := RunSimulation(context.Background(), pool.Default(), 10, 2, 12345, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Rounds)
	assert.LessOrEqual(t, stats.MaxDraws, pool.Default().Len())
}

func TestRunErrors(t *testing.T) {
	t.Run("no rounds", func(t *testing.T) {
		_, err := New(pool.Default(), Config{}).Run(context.Background())
		require.Error(t, err)
	})

	t.Run("small pool", func(t *testing.T) {
		_, err := New(testPool(10), Config{Rounds: 1}).Run(context.Background())
		require.ErrorIs(t, err, bingo.ErrInsufficientPool)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(pool.Default(), Config{Rounds: 5}).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
