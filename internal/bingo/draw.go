package bingo

import (
	"github.com/lox/partybingo/internal/pool"
	"github.com/lox/partybingo/internal/randutil"
)

// DrawState is the host's view of a round: which items have been called and
// in what order. The zero value is an empty round.
type DrawState struct {
	order []string
	drawn map[string]struct{}
	last  *pool.Item
}

// Order returns the drawn ids in draw order.
func (s DrawState) Order() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns how many items have been drawn.
func (s DrawState) Len() int {
	return len(s.order)
}

// LastDrawn returns the most recent item, if any.
func (s DrawState) LastDrawn() (pool.Item, bool) {
	if s.last == nil {
		return pool.Item{}, false
	}
	return *s.last, true
}

// Drawn reports whether id has already been called.
func (s DrawState) Drawn(id string) bool {
	_, ok := s.drawn[id]
	return ok
}

// Remaining returns how many items of p are still undrawn.
func (s DrawState) Remaining(p *pool.Pool) int {
	return p.Len() - len(s.order)
}

// Exhausted reports whether every item of p has been drawn.
func (s DrawState) Exhausted(p *pool.Pool) bool {
	return s.Remaining(p) <= 0
}

// DrawNext picks an undrawn item of p uniformly at random and returns the
// extended state. When every item has been drawn it returns s unchanged and
// ok is false.
//
// The input state is never modified; the returned state shares nothing
// mutable with it.
func DrawNext(p *pool.Pool, s DrawState, rng randutil.Source) (next DrawState, item pool.Item, ok bool) {
	available := make([]int, 0, p.Len())
	for i := range p.Len() {
		if !s.Drawn(p.At(i).ID) {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return s, pool.Item{}, false
	}

	item = p.At(available[rng.IntN(len(available))])

	next = DrawState{
		order: make([]string, len(s.order), len(s.order)+1),
		drawn: make(map[string]struct{}, len(s.order)+1),
	}
	copy(next.order, s.order)
	for id := range s.drawn {
		next.drawn[id] = struct{}{}
	}
	next.order = append(next.order, item.ID)
	next.drawn[item.ID] = struct{}{}
	last := item
	next.last = &last

	return next, item, true
}
