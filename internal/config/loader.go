package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointers tell unset keys from zero values.
type fileConfig struct {
	Prompt       *string  `yaml:"prompt" toml:"prompt"`
	Instructions *string  `yaml:"instructions" toml:"instructions"`
	MinLength    *int     `yaml:"min_length" toml:"min_length"`
	MaxResults   *int     `yaml:"max_results" toml:"max_results"`
	Source       []string `yaml:"source" toml:"source"`
	SourceFile   *string  `yaml:"source_file" toml:"source_file"`
	DismissDelay *string  `yaml:"dismiss_delay" toml:"dismiss_delay"`
	LogLevel     *string  `yaml:"log_level" toml:"log_level"`
}

// Loader reads config files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads path on top of DefaultConfig. A missing file yields the
// defaults. The format is picked by extension: .yaml, .yml or .toml.
func (l *Loader) Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("config file not found, using defaults", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := l.Parse(&cfg, data, filepath.Ext(path)); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.SourceFile = resolveRelative(cfg.SourceFile, filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	l.logger.Debug("loaded config", zap.String("path", path), zap.Any("config", cfg))
	return cfg, nil
}

// Parse decodes data in the format named by ext and applies the keys it
// sets to cfg.
func (l *Loader) Parse(cfg *Config, data []byte, ext string) error {
	var fc fileConfig

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	return fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.Instructions != nil {
		cfg.Instructions = *fc.Instructions
	}
	if fc.MinLength != nil {
		cfg.MinLength = *fc.MinLength
	}
	if fc.MaxResults != nil {
		cfg.MaxResults = *fc.MaxResults
	}
	if fc.Source != nil {
		cfg.Source = fc.Source
	}
	if fc.SourceFile != nil {
		cfg.SourceFile = *fc.SourceFile
	}
	if fc.DismissDelay != nil {
		d, err := time.ParseDuration(*fc.DismissDelay)
		if err != nil {
			return fmt.Errorf("invalid dismiss_delay: %w", err)
		}
		cfg.DismissDelay = d
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	return nil
}
