// Package config loads suggest field settings from YAML or TOML files and
// reads candidate lists.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atinylittleshell/suggestfield/internal/suggest"
	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"
)

// Config holds everything needed to run a suggest field.
type Config struct {
	Prompt       string
	Instructions string
	MinLength    int
	MaxResults   int

	// Source lists candidates inline. SourceFile names a file with one
	// candidate per line; both are combined.
	Source     []string
	SourceFile string

	DismissDelay time.Duration
	LogLevel     string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Prompt:       "> ",
		Instructions: suggest.DefaultInstructions,
		MinLength:    2,
		MaxResults:   10,
		DismissDelay: 200 * time.Millisecond,
		LogLevel:     "info",
	}
}

// Validate reports settings that cannot be parsed or scheduled. MinLength
// and MaxResults are taken as given: a negative MinLength suggests on empty
// text and a negative MaxResults yields no suggestions.
func (c Config) Validate() error {
	if c.DismissDelay < 0 {
		return fmt.Errorf("dismiss_delay must not be negative, got %s", c.DismissDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Candidates returns the inline source as given, followed by the lines of
// SourceFile normalised as LoadSource does.
func (c Config) Candidates() ([]string, error) {
	candidates := append([]string(nil), c.Source...)

	if c.SourceFile != "" {
		var r io.ReadCloser
		if c.SourceFile == "-" {
			r = io.NopCloser(os.Stdin)
		} else {
			f, err := os.Open(c.SourceFile)
			if err != nil {
				return nil, fmt.Errorf("failed to open source file: %w", err)
			}
			r = f
		}
		defer r.Close()

		fromFile, err := LoadSource(r)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, fromFile...)
	}

	return candidates, nil
}

// LoadSource reads one candidate per line. Lines are trimmed, blank lines
// are dropped and duplicates keep their first position.
func LoadSource(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return normalizeSource(lines), nil
}

func normalizeSource(lines []string) []string {
	trimmed := lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Uniq(lo.Compact(trimmed))
}

// resolveRelative makes a relative path relative to dir instead of the
// working directory.
func resolveRelative(path, dir string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
