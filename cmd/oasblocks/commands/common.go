// Package commands provides CLI command handlers for oasblocks.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/internal/cliutil"
	"github.com/erraggy/oasblocks/internal/petstore"
	"github.com/erraggy/oasblocks/logging"
)

// Environment variables that supply flag defaults.
const (
	EnvFormat            = "OASBLOCKS_FORMAT"
	EnvCollisionStrategy = "OASBLOCKS_COLLISION_STRATEGY"
	EnvLogLevel          = "OASBLOCKS_LOG_LEVEL"
	EnvAddr              = "OASBLOCKS_ADDR"
)

// stdout and stderr are swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// commonFlags are shared by every command that builds documents.
type commonFlags struct {
	Dialect  string
	Strategy string
	LogLevel string
}

// envDefault returns the value of key, or fallback when it is unset.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if !cliutil.IsValidFormat(format) {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, cliutil.FormatJSON, cliutil.FormatYAML)
	}
	return nil
}

// ValidateCollisionStrategy validates a collision strategy name and returns an error if invalid.
func ValidateCollisionStrategy(value string) error {
	if value != "" && !aggregator.IsValidStrategy(value) {
		return fmt.Errorf("invalid strategy '%s'. Valid strategies: %v", value, aggregator.ValidStrategies())
	}
	return nil
}

// ParseDialect maps a -dialect flag value to a dialect.
func ParseDialect(value string) (dialect.Dialect, error) {
	d, ok := dialect.Parse(value)
	if !ok {
		return dialect.Unknown, fmt.Errorf("invalid dialect '%s'. Valid dialects: %v", value, dialect.All.Strings())
	}
	return d, nil
}

// prepare validates the common flags and returns the petstore units for the
// selected dialect together with the builder options they imply.
func (c *commonFlags) prepare() ([]any, []builder.Option, error) {
	d, err := ParseDialect(c.Dialect)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidateCollisionStrategy(c.Strategy); err != nil {
		return nil, nil, err
	}
	level, ok := logging.ParseLevel(c.LogLevel)
	if !ok {
		return nil, nil, fmt.Errorf("invalid log level '%s'. Valid levels: debug, info, warn, error", c.LogLevel)
	}

	units, err := petstore.Units(d)
	if err != nil {
		return nil, nil, err
	}
	opts := []builder.Option{builder.WithLogger(logging.NewText(stderr, level))}
	if c.Strategy != "" {
		opts = append(opts, builder.WithCollisionStrategy(aggregator.CollisionStrategy(c.Strategy)))
	}
	return units, opts, nil
}

func (c *commonFlags) level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// outputDocument writes doc to path, or to stdout when path is empty.
func outputDocument(doc *builder.Document, format, path string, quiet bool) error {
	if path != "" {
		written, err := cliutil.WriteDocument(doc, path, format)
		if err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !quiet {
			cliutil.Writef(stderr, "Output written to: %s\n", written)
		}
		return nil
	}
	data, err := cliutil.Render(doc, format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("writing document to stdout: %w", err)
	}
	cliutil.Writef(stdout, "\n")
	return nil
}

// reportCollisions prints every cross-unit collision to stderr.
func reportCollisions(collisions []aggregator.Collision) {
	if len(collisions) == 0 {
		return
	}
	cliutil.Writef(stderr, "Collisions resolved: %d\n", len(collisions))
	for _, c := range collisions {
		cliutil.Writef(stderr, "  - %s %q: declared by %s and %s, kept %s\n", c.Section, c.Key, c.First, c.Second, c.Kept)
	}
}
