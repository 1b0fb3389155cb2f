// Package config loads bingo catalogs from HCL or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/pool"
)

// Config represents a complete catalog file
type Config struct {
	Game  *GameSettings `hcl:"game,block" toml:"game"`
	Items []ItemConfig `hcl:"item,block" toml:"item"`
}

// GameSettings contains presentation-level settings
type GameSettings struct {
	Title string `hcl:"title,optional" toml:"title"`
}

// ItemConfig defines one catalog entry
type ItemConfig struct {
	ID    string `hcl:"id,label" toml:"id"`
	Label string `hcl:"label,optional" toml:"label"`
	Icon  string `hcl:"icon,optional" toml:"icon"`
}

// Default returns the built-in catalog
func Default() *Config {
	p := pool.Default()
	cfg := &Config{Game: &GameSettings{Title: pool.DefaultTitle}}
	for _, it := range p.Items() {
		cfg.Items = append(cfg.Items, ItemConfig{ID: it.ID, Label: it.Label, Icon: it.Icon})
	}
	return cfg
}

// Load reads a catalog. The format is picked from the file extension; an
// empty filename yields the built-in catalog.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}

	var (
		cfg Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		err = decodeHCL(filename, &cfg)
	case ".toml":
		_, err = toml.DecodeFile(filename, &cfg)
		if err != nil {
			err = fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .hcl or .toml)", ext)
	}
	if err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.Game == nil {
		cfg.Game = &GameSettings{}
	}
	if cfg.Game.Title == "" {
		cfg.Game.Title = pool.DefaultTitle
	}

	return &cfg, nil
}

func decodeHCL(filename string, cfg *Config) error {
	if _, err := os.Stat(filename); err != nil {
		return err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

// Pool builds the immutable item pool described by the catalog
func (c *Config) Pool() (*pool.Pool, error) {
	items := make([]pool.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = pool.Item{ID: it.ID, Label: it.Label, Icon: it.Icon}
	}
	return pool.New(items)
}

// Validate checks that the catalog builds a pool able to fill a card
func (c *Config) Validate() error {
	p, err := c.Pool()
	if err != nil {
		return err
	}
	if p.Len() < bingo.Cells {
		return &bingo.InsufficientPoolError{Have: p.Len(), Need: bingo.Cells}
	}
	return nil
}
