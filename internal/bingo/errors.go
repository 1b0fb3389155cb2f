package bingo

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPool matches any *InsufficientPoolError.
	ErrInsufficientPool = errors.New("insufficient pool")
	// ErrUnknownCell matches any *UnknownCellError.
	ErrUnknownCell = errors.New("unknown cell")
)

// InsufficientPoolError is returned when a pool cannot fill a card with
// distinct items.
type InsufficientPoolError struct {
	Have int
	Need int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("pool has %d items, a card needs %d distinct items", e.Have, e.Need)
}

// Is lets errors.Is(err, ErrInsufficientPool) match.
func (e *InsufficientPoolError) Is(target error) bool {
	return target == ErrInsufficientPool
}

// UnknownCellError is returned when toggling an id that is not on the card.
type UnknownCellError struct {
	ID string
}

func (e *UnknownCellError) Error() string {
	return fmt.Sprintf("item %q is not on this card", e.ID)
}

// Is lets errors.Is(err, ErrUnknownCell) match.
func (e *UnknownCellError) Is(target error) bool {
	return target == ErrUnknownCell
}
