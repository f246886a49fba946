package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

const (
	// DefaultMaxFileSize is the largest document accepted for analysis.
	DefaultMaxFileSize int64 = 10 << 20

	DefaultAddr = ":8080"
)

// Config is the on-disk configuration file.
type Config struct {
	LexiconPath string       `yaml:"lexicon_path"`
	DBPath      string       `yaml:"db_path"`
	MaxFileSize int64        `yaml:"max_file_size"`
	Server      ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxFileSize: DefaultMaxFileSize,
		Server:      ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads a YAML config file. Omitted fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem found, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, errors.Join(errs...))
}
