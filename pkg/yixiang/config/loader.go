package config

import (
	"context"
	"fmt"

	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
	"github.com/cognicore/yixiang/pkg/yixiang/store/memstore"
	"github.com/cognicore/yixiang/pkg/yixiang/store/sqlite"
)

// Loader loads configured files and constructs components
type Loader struct {
	LexiconPath string
	DBPath      string
}

// NewLoader creates a loader from a Config.
func NewLoader(cfg Config) *Loader {
	return &Loader{LexiconPath: cfg.LexiconPath, DBPath: cfg.DBPath}
}

// Components holds the loaded lexicon and report store
type Components struct {
	Lexicon *lexicon.Lexicon
	Store   store.Store
}

// Close releases the store.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Load builds the lexicon and the store. Without a lexicon path the
// built-in lexicon is used; without a database path reports live in
// memory.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	comp := &Components{}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	if l.DBPath != "" {
		st, err := sqlite.OpenSQLite(ctx, l.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	} else {
		comp.Store = memstore.New()
	}

	return comp, nil
}
