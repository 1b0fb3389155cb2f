package bingo

import (
	"fmt"

	"github.com/lox/partybingo/internal/pool"
)

func testPool(n int) *pool.Pool {
	items := make([]pool.Item, n)
	for i := range items {
		items[i] = pool.Item{
			ID:    fmt.Sprintf("item-%02d", i),
			Label: fmt.Sprintf("Item %d", i),
			Icon:  fmt.Sprintf("%c", 'A'+i%26),
		}
	}
	return pool.MustNew(items)
}

// identityCard returns a card holding the first 25 items of p in pool order.
func identityCard(p *pool.Pool) Card {
	var c Card
	for k := range Cells {
		c[k] = p.At(k)
	}
	return c
}

func marksFor(card *Card, cells ...int) MarkSet {
	ids := make([]string, len(cells))
	for i, k := range cells {
		ids[i] = card[k].ID
	}
	return NewMarkSet(ids...)
}
