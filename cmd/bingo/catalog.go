package main

import (
	"fmt"

	"github.com/lox/partybingo/internal/config"
	"github.com/lox/partybingo/internal/pool"
)

// CatalogFlag selects the item catalog.
type CatalogFlag struct {
	Config string `short:"c" type:"path" help:"Catalog file (.hcl or .toml); defaults to the built-in catalog"`
}

// load reads the catalog and builds its pool. With strict set, catalogs too
// small to deal a card are rejected.
func (f CatalogFlag) load(strict bool) (*config.Config, *pool.Pool, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	if strict {
		if err := cfg.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid catalog: %w", err)
		}
	}
	p, err := cfg.Pool()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cfg, p, nil
}
