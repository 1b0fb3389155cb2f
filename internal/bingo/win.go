package bingo

import "fmt"

// LineKind distinguishes rows, columns and diagonals.
type LineKind int

const (
	Row LineKind = iota
	Column
	Diagonal
)

func (k LineKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Line is one of the 12 winning index sets of a card.
type Line struct {
	Kind  LineKind
	N     int // row or column number; 0 = main diagonal, 1 = anti-diagonal
	Cells [Size]int
}

func (l Line) String() string {
	if l.Kind == Diagonal {
		if l.N == 0 {
			return "main diagonal"
		}
		return "anti-diagonal"
	}
	return fmt.Sprintf("%s %d", l.Kind, l.N+1)
}

// Lines lists the 5 rows, 5 columns and 2 diagonals, in that order.
var Lines = buildLines()

func buildLines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for row := range Size {
		l := Line{Kind: Row, N: row}
		for col := range Size {
			l.Cells[col] = Index(row, col)
		}
		lines = append(lines, l)
	}
	for col := range Size {
		l := Line{Kind: Column, N: col}
		for row := range Size {
			l.Cells[row] = Index(row, col)
		}
		lines = append(lines, l)
	}
	main := Line{Kind: Diagonal, N: 0}
	anti := Line{Kind: Diagonal, N: 1}
	for i := range Size {
		main.Cells[i] = Index(i, i)
		anti.Cells[i] = Index(i, Size-1-i)
	}
	return append(lines, main, anti)
}

// Complete reports whether every cell of l is marked.
func (l Line) Complete(card *Card, marks MarkSet) bool {
	for _, k := range l.Cells {
		if !marks.Has(card[k].ID) {
			return false
		}
	}
	return true
}

// Evaluate reports whether any line of card is fully marked.
func Evaluate(card *Card, marks MarkSet) bool {
	for _, l := range Lines {
		if l.Complete(card, marks) {
			return true
		}
	}
	return false
}

// WinningLines returns every complete line of card.
func WinningLines(card *Card, marks MarkSet) []Line {
	var won []Line
	for _, l := range Lines {
		if l.Complete(card, marks) {
			won = append(won, l)
		}
	}
	return won
}
