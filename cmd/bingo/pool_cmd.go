package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/partybingo/internal/bingo"
)

// PoolCmd validates and lists a catalog
type PoolCmd struct {
	CatalogFlag `embed:""`
}

func (c *PoolCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *PoolCmd) run(w io.Writer) error {
	cfg, p, err := c.load(false)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "ICON", "LABEL")
	for _, it := range p.Items() {
		t.Row(it.ID, it.Icon, it.Label)
	}
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "\n%s: %d items\n", cfg.Game.Title, p.Len())
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("catalog cannot deal cards: %w", err)
	}
	fmt.Fprintf(w, "OK: enough items for a %dx%d card\n", bingo.Size, bingo.Size)
	return nil
}
