// Package printout renders bingo cards for paper play.
package printout

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-runewidth"

	"github.com/lox/partybingo/internal/bingo"
)

// Sheet is a batch of cards dealt from one seed.
type Sheet struct {
	Title string  `toml:"title"`
	Seed  int64   `toml:"seed"`
	Cards []Entry `toml:"card"`
}

// Entry is one printed card. Rows hold item ids, row-major.
type Entry struct {
	Number int        `toml:"number"`
	Rows   [][]string `toml:"rows"`
}

// NewSheet converts cards to their printable form.
func NewSheet(title string, seed int64, cards []bingo.Card) *Sheet {
	s := &Sheet{Title: title, Seed: seed, Cards: make([]Entry, len(cards))}
	for i, c := range cards {
		e := Entry{Number: i + 1, Rows: make([][]string, bingo.Size)}
		for row := range bingo.Size {
			e.Rows[row] = make([]string, bingo.Size)
			for col := range bingo.Size {
				e.Rows[row][col] = c.At(row, col).ID
			}
		}
		s.Cards[i] = e
	}
	return s
}

// EncodeTOML writes the sheet in TOML.
func EncodeTOML(w io.Writer, s *Sheet) error {
	if s == nil {
		return fmt.Errorf("printout: sheet is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(s)
}

// cellWidth is the printed width of a cell, wide enough for an icon and a
// short label.
const cellWidth = 14

// EncodeText writes every card as a boxed grid of icons and labels.
func EncodeText(w io.Writer, title string, cards []bingo.Card) error {
	var b strings.Builder
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", bingo.Size) + "\n"

	for i, c := range cards {
		fmt.Fprintf(&b, "%s #%d\n", title, i+1)
		b.WriteString(border)
		for row := range bingo.Size {
			icons := make([]string, bingo.Size)
			labels := make([]string, bingo.Size)
			for col := range bingo.Size {
				it := c.At(row, col)
				icons[col] = it.Icon
				labels[col] = it.Label
			}
			writeCells(&b, icons)
			writeCells(&b, labels)
			b.WriteString(border)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCells(b *strings.Builder, cells []string) {
	b.WriteByte('|')
	for _, cell := range cells {
		cell = runewidth.Truncate(cell, cellWidth-2, "…")
		pad := cellWidth - runewidth.StringWidth(cell)
		left := pad / 2
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad-left))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
}
