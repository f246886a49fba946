package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/pkg/yixiang"
	"github.com/cognicore/yixiang/pkg/yixiang/config"
)

// loadSettings starts from the config file viper located, if any, and
// applies environment and flag overrides on top.
func loadSettings(v *viper.Viper) (config.Config, error) {
	cfg := config.Default()
	if path := v.ConfigFileUsed(); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if v.IsSet("lexicon_path") {
		cfg.LexiconPath = v.GetString("lexicon_path")
	}
	if v.IsSet("db_path") {
		cfg.DBPath = v.GetString("db_path")
	}
	if v.IsSet("max_file_size") {
		cfg.MaxFileSize = v.GetInt64("max_file_size")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildEngine wires the configured lexicon and store into an engine.
// Closing the engine closes the store.
func buildEngine(ctx context.Context, cfg config.Config) (*yixiang.Engine, error) {
	comp, err := config.NewLoader(cfg).Load(ctx)
	if err != nil {
		return nil, err
	}
	return yixiang.New(yixiang.Options{
		Lexicon: comp.Lexicon,
		Store:   comp.Store,
	}), nil
}
