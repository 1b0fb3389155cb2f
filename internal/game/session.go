package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/gameid"
	"github.com/lox/partybingo/internal/pool"
	"github.com/lox/partybingo/internal/randutil"
)

// ErrWrongMode is returned when an action is not available in the current mode.
var ErrWrongMode = errors.New("action not available in current mode")

// Mode is the screen a session is on.
type Mode int

const (
	Landing Mode = iota
	Host
	Player
)

func (m Mode) String() string {
	switch m {
	case Landing:
		return "landing"
	case Host:
		return "host"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// Option configures a Session during creation.
type Option func(*Session)

// WithRand sets the randomness used for draws and cards.
func WithRand(rng randutil.Source) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the clock used to timestamp draws.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the logger. The session logs under the "game" prefix.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// Session is the composition root of one device's game: it is on the landing
// screen, hosting a draw, or playing a card. Only the state of the active mode
// exists; leaving a mode discards it.
//
// A Session is not safe for concurrent use. Independent sessions may share a
// pool freely.
type Session struct {
	id        string
	pool      *pool.Pool
	rng       randutil.Source
	clock     quartz.Clock
	logger    *log.Logger
	startedAt time.Time

	mode   Mode
	host   *HostState
	player *PlayerState
}

// NewSession returns a session on the landing screen.
func NewSession(p *pool.Pool, opts ...Option) *Session {
	if p == nil {
		panic("pool is required for session creation")
	}

	s := &Session{pool: p}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = randutil.New(randutil.Seed(nil))
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.id == "" {
		s.id = gameid.Generate()
	}
	s.logger = s.logger.WithPrefix("game").With("session_id", s.id)
	s.startedAt = s.clock.Now()

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Pool returns the shared item pool.
func (s *Session) Pool() *pool.Pool { return s.pool }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Host returns the host state, or nil outside host mode.
func (s *Session) Host() *HostState { return s.host }

// Player returns the player state, or nil outside player mode.
func (s *Session) Player() *PlayerState { return s.player }

// StartHost enters host mode with an empty draw.
func (s *Session) StartHost() error {
	if s.mode != Landing {
		return fmt.Errorf("start host from %s: %w", s.mode, ErrWrongMode)
	}
	s.host = &HostState{pool: s.pool}
	s.mode = Host
	s.logger.Debug("Entered host mode", "pool", s.pool.Len())
	return nil
}

// DrawNext draws the next item. ok is false once the pool is exhausted, in
// which case nothing changes.
func (s *Session) DrawNext() (item pool.Item, ok bool, err error) {
	if s.mode != Host {
		return pool.Item{}, false, fmt.Errorf("draw next: %w", ErrWrongMode)
	}

	next, item, ok := bingo.DrawNext(s.pool, s.host.state, s.rng)
	if !ok {
		s.logger.Debug("Draw requested on exhausted pool", "drawn", s.host.state.Len())
		return pool.Item{}, false, nil
	}
	s.host.state = next
	s.host.history = append(s.host.history, Draw{Item: item, At: s.clock.Now()})
	s.logger.Debug("Drew item", "item", item.ID, "drawn", next.Len(), "remaining", next.Remaining(s.pool))
	return item, true, nil
}

// StartPlayer deals a fresh card and enters player mode. When the pool is too
// small the session stays on the landing screen.
func (s *Session) StartPlayer() error {
	if s.mode != Landing {
		return fmt.Errorf("start player from %s: %w", s.mode, ErrWrongMode)
	}
	card, err := bingo.GenerateCard(s.pool, s.rng)
	if err != nil {
		s.logger.Error("Cannot deal card", "err", err)
		return fmt.Errorf("start player: %w", err)
	}
	s.player = &PlayerState{card: card}
	s.mode = Player
	s.logger.Debug("Entered player mode")
	return nil
}

// ToggleMark marks or unmarks a cell of the player's card. Adding a mark
// re-evaluates the card; removing one never withdraws a declared win.
func (s *Session) ToggleMark(id string) error {
	if s.mode != Player {
		return fmt.Errorf("toggle mark: %w", ErrWrongMode)
	}
	p := s.player

	marks, added, err := bingo.Toggle(p.marks, &p.card, id)
	if err != nil {
		return fmt.Errorf("toggle mark: %w", err)
	}
	p.marks = marks

	if added && !p.won && bingo.Evaluate(&p.card, p.marks) {
		p.won = true
		p.wins++
		s.logger.Info("Bingo!", "marked", p.marks.Len(), "lines", len(bingo.WinningLines(&p.card, p.marks)))
	}
	s.logger.Debug("Toggled mark", "item", id, "marked", added, "total", p.marks.Len())
	return nil
}

// DismissWin hides a declared win so play can continue. Marks are kept.
func (s *Session) DismissWin() error {
	if s.mode != Player {
		return fmt.Errorf("dismiss win: %w", ErrWrongMode)
	}
	s.player.won = false
	return nil
}

// ExitToLanding returns to the landing screen and discards the active
// mode's state.
func (s *Session) ExitToLanding() {
	if s.mode != Landing {
		s.logger.Debug("Returning to landing", "from", s.mode)
	}
	s.mode = Landing
	s.host = nil
	s.player = nil
}
