package bingo

import (
	"strings"

	"github.com/lox/partybingo/internal/pool"
	"github.com/lox/partybingo/internal/randutil"
)

const (
	// Size is the width and height of a card.
	Size = 5
	// Cells is the number of cells on a card.
	Cells = Size * Size
)

// Card is a 5x5 grid of distinct items in row-major order.
type Card [Cells]pool.Item

// GenerateCard permutes the pool uniformly and keeps the first 25 items.
// Sampling without replacement guarantees that no item repeats.
func GenerateCard(p *pool.Pool, rng randutil.Source) (Card, error) {
	if p.Len() < Cells {
		return Card{}, &InsufficientPoolError{Have: p.Len(), Need: Cells}
	}

	var c Card
	perm := rng.Perm(p.Len())
	for k := range Cells {
		c[k] = p.At(perm[k])
	}
	return c, nil
}

// Index returns the cell index of (row, col).
func Index(row, col int) int {
	return row*Size + col
}

// At returns the item at (row, col).
func (c *Card) At(row, col int) pool.Item {
	return c[Index(row, col)]
}

// IDs returns the ids of the card in row-major order.
func (c *Card) IDs() []string {
	out := make([]string, Cells)
	for k, it := range c {
		out[k] = it.ID
	}
	return out
}

// IndexOf returns the cell holding id, or -1.
func (c *Card) IndexOf(id string) int {
	for k, it := range c {
		if it.ID == id {
			return k
		}
	}
	return -1
}

// Contains reports whether id is on the card.
func (c *Card) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// String renders the card as a plain text grid of icons.
func (c *Card) String() string {
	var b strings.Builder
	for row := range Size {
		for col := range Size {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.At(row, col).Icon)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
