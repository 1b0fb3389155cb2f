// Package bingo implements the game-state rules of a party bingo round.
//
// The package is a set of small, pure transformations over explicit state
// values. None of them keep hidden state and none of them perform I/O:
//
//   - DrawNext picks the next undrawn item for the host (DrawState).
//   - GenerateCard lays out a 5x5 card of distinct items for a player.
//   - Toggle marks or unmarks a cell of a card (MarkSet).
//   - Evaluate and WinningLines decide whether a card has a complete line.
//
// # Randomness
//
// Every random choice goes through a randutil.Source so callers can plug a
// seeded generator or a scripted one:
//
//	rng := randutil.New(42)
//	card, err := bingo.GenerateCard(p, rng)
//	state, item, ok := bingo.DrawNext(p, state, rng)
//
// # Grid layout
//
// Cards are stored row-major: index k is row k/5, column k%5. A line is any
// of the 5 rows, 5 columns or 2 diagonals; there is no free space.
package bingo
