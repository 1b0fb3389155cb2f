package game

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/pool"
	"github.com/lox/partybingo/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(n int) *pool.Pool {
	items := make([]pool.Item, n)
	for i := range items {
		items[i] = pool.Item{ID: fmt.Sprintf("item-%02d", i), Label: fmt.Sprintf("Item %d", i), Icon: "*"}
	}
	return pool.MustNew(items)
}

func newTestSession(t *testing.T, p *pool.Pool, opts ...Option) (*Session, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	base := []Option{
		WithRand(randutil.New(42)),
		WithClock(clock),
		WithLogger(logger),
	}
	return NewSession(p, append(base, opts...)...), clock
}

// identityPlayer deals a card holding items 0..24 in order.
func identityPlayer(t *testing.T) *Session {
	t.Helper()
	s, _ := newTestSession(t, testPool(25), WithRand(&randutil.Scripted{}))
	require.NoError(t, s.StartPlayer())
	return s
}

func markCells(t *testing.T, s *Session, cells ...int) {
	t.Helper()
	card := s.Player().Card()
	for _, k := range cells {
		require.NoError(t, s.ToggleMark(card[k].ID))
	}
}

func TestNewSession(t *testing.T) {
	s, clock := newTestSession(t, testPool(25), WithID("fixed"))
	assert.Equal(t, Landing, s.Mode())
	assert.Equal(t, "fixed", s.ID())
	assert.Equal(t, clock.Now(), s.StartedAt())
	assert.Nil(t, s.Host())
	assert.Nil(t, s.Player())
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(testPool(25))
	assert.Len(t, s.ID(), 26)
	assert.Equal(t, Landing, s.Mode())
	assert.Panics(t, func() { NewSession(nil) })
}

func TestModeTransitions(t *testing.T) {
	s, _ := newTestSession(t, testPool(30))

	require.NoError(t, s.StartHost())
	assert.Equal(t, Host, s.Mode())
	require.ErrorIs(t, s.StartPlayer(), ErrWrongMode, "no direct host to player")
	require.ErrorIs(t, s.StartHost(), ErrWrongMode)

	s.ExitToLanding()
	assert.Equal(t, Landing, s.Mode())
	assert.Nil(t, s.Host())

	require.NoError(t, s.StartPlayer())
	assert.Equal(t, Player, s.Mode())
	require.ErrorIs(t, s.StartHost(), ErrWrongMode, "no direct player to host")

	s.ExitToLanding()
	assert.Nil(t, s.Player())
}

func TestActionsRequireMode(t *testing.T) {
	s, _ := newTestSession(t, testPool(25))

	_, _, err := s.DrawNext()
	require.ErrorIs(t, err, ErrWrongMode)
	require.ErrorIs(t, s.ToggleMark("item-00"), ErrWrongMode)
	require.ErrorIs(t, s.DismissWin(), ErrWrongMode)

	require.NoError(t, s.StartHost())
	require.ErrorIs(t, s.ToggleMark("item-00"), ErrWrongMode)
}

func TestHostDrawsAndHistory(t *testing.T) {
	p := testPool(26)
	s, clock := newTestSession(t, p)
	require.NoError(t, s.StartHost())

	h := s.Host()
	assert.False(t, h.Started())
	_, ok := h.LastDrawn()
	assert.False(t, ok)

	start := clock.Now()
	seen := map[string]bool{}
	for i := range p.Len() {
		clock.Advance(time.Second)
		item, ok, err := s.DrawNext()
		require.NoError(t, err)
		require.True(t, ok)
		require.False(t, seen[item.ID])
		seen[item.ID] = true

		last, ok := h.LastDrawn()
		require.True(t, ok)
		assert.Equal(t, item, last)
		assert.Equal(t, i+1, h.Drawn())
	}

	assert.True(t, h.Started())
	assert.True(t, h.Exhausted())
	assert.Equal(t, 0, h.Remaining())
	assert.Equal(t, 26, h.Total())

	history := h.History()
	require.Len(t, history, 26)
	assert.Equal(t, start.Add(time.Second), history[0].At)
	assert.Equal(t, start.Add(26*time.Second), history[25].At)
	for i, d := range history {
		assert.Equal(t, h.Order()[i], d.Item.ID)
	}

	before := h.Order()
	item, ok, err := s.DrawNext()
	require.NoError(t, err, "exhaustion is not an error")
	assert.False(t, ok)
	assert.Equal(t, pool.Item{}, item)
	assert.Equal(t, before, h.Order())
	assert.Len(t, h.History(), 26)
}

func TestReenteringHostStartsFresh(t *testing.T) {
	s, _ := newTestSession(t, testPool(25))
	require.NoError(t, s.StartHost())
	_, _, err := s.DrawNext()
	require.NoError(t, err)
	require.Equal(t, 1, s.Host().Drawn())

	s.ExitToLanding()
	require.NoError(t, s.StartHost())
	assert.Equal(t, 0, s.Host().Drawn())
}

func TestStartPlayerInsufficientPool(t *testing.T) {
	s, _ := newTestSession(t, testPool(24))

	err := s.StartPlayer()
	require.ErrorIs(t, err, bingo.ErrInsufficientPool)
	assert.Equal(t, Landing, s.Mode())
	assert.Nil(t, s.Player())

	// Hosting only needs a drawable pool.
	require.NoError(t, s.StartHost())
}

func TestStartPlayerDealsFreshRound(t *testing.T) {
	s, _ := newTestSession(t, testPool(40))
	require.NoError(t, s.StartPlayer())
	first := s.Player().Card()
	markCells(t, s, 0, 1, 2, 3, 4)
	require.True(t, s.Player().HasWon())

	s.ExitToLanding()
	require.NoError(t, s.StartPlayer())
	pl := s.Player()
	assert.Equal(t, 0, pl.Marks().Len())
	assert.False(t, pl.HasWon())
	assert.Equal(t, 0, pl.Wins())
	assert.NotEqual(t, first, pl.Card())
}

func TestToggleUnknownCell(t *testing.T) {
	s, _ := newTestSession(t, testPool(30), WithRand(&randutil.Scripted{}))
	require.NoError(t, s.StartPlayer())

	err := s.ToggleMark("item-29")
	require.ErrorIs(t, err, bingo.ErrUnknownCell)
	assert.Equal(t, 0, s.Player().Marks().Len())
}

func TestWinDetection(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		want  bool
	}{
		{"row 2", []int{10, 11, 12, 13, 14}, true},
		{"column 0", []int{0, 5, 10, 15, 20}, true},
		{"main diagonal", []int{0, 6, 12, 18, 24}, true},
		{"anti diagonal", []int{4, 8, 12, 16, 20}, true},
		{"one missing per line", []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 13, 14, 15, 17, 18, 19, 20, 21, 22, 23}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := identityPlayer(t)
			markCells(t, s, tt.cells...)
			assert.Equal(t, tt.want, s.Player().HasWon())
		})
	}
}

func TestWinPersistsAfterUnmark(t *testing.T) {
	s := identityPlayer(t)
	markCells(t, s, 10, 11, 12, 13, 14)
	require.True(t, s.Player().HasWon())

	markCells(t, s, 12) // unmark the centre
	assert.False(t, s.Player().Marked("item-12"))
	assert.True(t, s.Player().HasWon(), "unmarking does not revoke a called bingo")
	assert.Empty(t, s.Player().WinningLines())
}

func TestDismissThenRedeclare(t *testing.T) {
	s := identityPlayer(t)
	markCells(t, s, 0, 1, 2, 3, 4)
	require.True(t, s.Player().HasWon())
	require.Equal(t, 1, s.Player().Wins())

	require.NoError(t, s.DismissWin())
	pl := s.Player()
	assert.False(t, pl.HasWon())
	assert.Equal(t, 5, pl.Marks().Len(), "dismiss keeps marks")

	markCells(t, s, 5)
	assert.True(t, pl.HasWon(), "next mark re-evaluates the still winning card")
	assert.Equal(t, 2, pl.Wins())

	require.NoError(t, s.DismissWin())
	markCells(t, s, 3) // unmark breaks row 0
	assert.False(t, pl.HasWon())
	markCells(t, s, 6)
	assert.False(t, pl.HasWon(), "no complete line")
	markCells(t, s, 3)
	assert.True(t, pl.HasWon())
	assert.Equal(t, 3, pl.Wins())
}

func TestIndependentSessionsShareOnlyThePool(t *testing.T) {
	p := testPool(30)
	host, _ := newTestSession(t, p, WithRand(randutil.New(1)))
	player, _ := newTestSession(t, p, WithRand(randutil.New(2)))

	require.NoError(t, host.StartHost())
	require.NoError(t, player.StartPlayer())

	for range 10 {
		_, _, err := host.DrawNext()
		require.NoError(t, err)
	}
	card := player.Player().Card()
	require.NoError(t, player.ToggleMark(card[3].ID))

	assert.Equal(t, 10, host.Host().Drawn())
	assert.Equal(t, 1, player.Player().Marks().Len())
	assert.Equal(t, 30, p.Len())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "landing", Landing.String())
	assert.Equal(t, "host", Host.String())
	assert.Equal(t, "player", Player.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
