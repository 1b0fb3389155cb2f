package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/partybingo/cmd/bingo/shared"
	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/game"
	"github.com/lox/partybingo/internal/randutil"
	"github.com/lox/partybingo/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	shared.LogFlags `embed:""`
	CatalogFlag     `embed:""`

	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
	NoColor bool   `help:"Disable colors"`
	LogFile string `type:"path" help:"Write logs to this file (the screen is used by the game)"`
}

func (c *PlayCmd) Run() error {
	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := c.Zerolog(logOut)

	cfg, p, err := c.load(false)
	if err != nil {
		return err
	}
	if p.Len() < bingo.Cells {
		logger.Warn().Int("items", p.Len()).Msg("Catalog too small for player mode; only hosting will work")
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.Seed(c.Seed)
	session := game.NewSession(p,
		game.WithRand(randutil.New(seed)),
		game.WithLogger(c.Charm(logOut)))

	logger.Info().
		Str("session_id", session.ID()).
		Int64("seed", seed).
		Int("items", p.Len()).
		Str("title", cfg.Game.Title).
		Msg("Starting game")

	model := tui.NewModel(session, cfg.Game.Title, c.Charm(logOut))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
