package game

import (
	"time"

	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/pool"
)

// Draw is one entry of the host's history.
type Draw struct {
	Item pool.Item
	At   time.Time
}

// HostState is the read side of host mode.
type HostState struct {
	pool    *pool.Pool
	state   bingo.DrawState
	history []Draw
}

// Order returns the drawn ids in draw order.
func (h *HostState) Order() []string { return h.state.Order() }

// LastDrawn returns the most recent draw, if any.
func (h *HostState) LastDrawn() (pool.Item, bool) { return h.state.LastDrawn() }

// History returns every draw with its timestamp.
func (h *HostState) History() []Draw {
	out := make([]Draw, len(h.history))
	copy(out, h.history)
	return out
}

// Drawn returns how many items have been drawn.
func (h *HostState) Drawn() int { return h.state.Len() }

// Total returns the pool size.
func (h *HostState) Total() int { return h.pool.Len() }

// Remaining returns how many items can still be drawn.
func (h *HostState) Remaining() int { return h.state.Remaining(h.pool) }

// Exhausted reports whether drawing is no longer possible.
func (h *HostState) Exhausted() bool { return h.state.Exhausted(h.pool) }

// Started reports whether at least one item has been drawn.
func (h *HostState) Started() bool { return h.state.Len() > 0 }

// PlayerState is the read side of player mode.
type PlayerState struct {
	card  bingo.Card
	marks bingo.MarkSet
	won   bool
	wins  int
}

// Card returns the player's card.
func (p *PlayerState) Card() bingo.Card { return p.card }

// Marks returns the current mark set.
func (p *PlayerState) Marks() bingo.MarkSet { return p.marks }

// Marked reports whether id is marked.
func (p *PlayerState) Marked(id string) bool { return p.marks.Has(id) }

// HasWon reports whether a win is declared and not yet dismissed.
func (p *PlayerState) HasWon() bool { return p.won }

// Wins counts how many times a win was declared on this card.
func (p *PlayerState) Wins() int { return p.wins }

// WinningLines returns the lines that are complete right now.
func (p *PlayerState) WinningLines() []bingo.Line {
	return bingo.WinningLines(&p.card, p.marks)
}
