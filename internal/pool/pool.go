// Package pool holds the catalog of playable bingo items.
//
// A Pool is built once, before any session starts, and is never mutated
// afterwards. It is safe to share a single Pool between any number of
// sessions and goroutines.
package pool

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned when an item has a blank identifier.
	ErrEmptyID = errors.New("item id must not be empty")
	// ErrDuplicateID is returned when two items share an identifier.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Item is a single entry of the catalog.
type Item struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
}

// String returns the icon followed by the label (e.g. "🍼 Bottle")
func (i Item) String() string {
	if i.Icon == "" {
		return i.Label
	}
	return i.Icon + " " + i.Label
}

// Pool is an ordered, immutable set of unique items.
type Pool struct {
	items []Item
	index map[string]int
}

// New validates items and returns a pool preserving their order.
func New(items []Item) (*Pool, error) {
	p := &Pool{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			return nil, fmt.Errorf("item %q: %w", it.Label, ErrEmptyID)
		}
		if _, ok := p.index[it.ID]; ok {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
		}
		if it.Label == "" {
			it.Label = it.ID
		}
		p.index[it.ID] = len(p.items)
		p.items = append(p.items, it)
	}
	return p, nil
}

// MustNew is like New but panics on invalid input. Intended for static
// catalogs and tests.
func MustNew(items []Item) *Pool {
	p, err := New(items)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of items in the pool.
func (p *Pool) Len() int {
	return len(p.items)
}

// At returns the item at position i in catalog order.
func (p *Pool) At(i int) Item {
	return p.items[i]
}

// Items returns a copy of the catalog in order.
func (p *Pool) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Lookup finds an item by id.
func (p *Pool) Lookup(id string) (Item, bool) {
	i, ok := p.index[id]
	if !ok {
		return Item{}, false
	}
	return p.items[i], true
}

// Contains reports whether id is part of the pool.
func (p *Pool) Contains(id string) bool {
	_, ok := p.index[id]
	return ok
}
