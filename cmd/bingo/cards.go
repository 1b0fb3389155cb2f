package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/partybingo/cmd/bingo/shared"
	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/fileutil"
	"github.com/lox/partybingo/internal/printout"
	"github.com/lox/partybingo/internal/randutil"
)

// CardsCmd deals cards without starting a game
type CardsCmd struct {
	shared.LogFlags `embed:""`
	CatalogFlag     `embed:""`

	Count  int    `short:"n" default:"1" help:"Number of cards to deal"`
	Format string `enum:"text,toml" default:"text" help:"Output format (text, toml)"`
	Out    string `short:"o" type:"path" help:"Write to this file instead of stdout"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
}

func (c *CardsCmd) Run() error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *CardsCmd) run(stdout, stderr io.Writer) error {
	logger := c.Zerolog(stderr)

	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}

	cfg, p, err := c.load(true)
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	rng := randutil.New(seed)
	cards := make([]bingo.Card, c.Count)
	for i := range cards {
		if cards[i], err = bingo.GenerateCard(p, rng); err != nil {
			return err
		}
	}

	write := func(w io.Writer) error {
		if c.Format == "toml" {
			return printout.EncodeTOML(w, printout.NewSheet(cfg.Game.Title, seed, cards))
		}
		return printout.EncodeText(w, cfg.Game.Title, cards)
	}

	if c.Out == "" {
		return write(stdout)
	}
	if err := fileutil.WriteAtomic(c.Out, 0o644, write); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}
	logger.Info().
		Int("cards", c.Count).
		Int64("seed", seed).
		Str("format", c.Format).
		Str("path", c.Out).
		Msg("Wrote cards")
	return nil
}
