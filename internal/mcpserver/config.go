package mcpserver

import (
	"log/slog"
	"os"

	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/internal/cliutil"
	"github.com/erraggy/oasblocks/logging"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Format is the output format used when a tool call names none.
	Format string
	// CollisionStrategy is passed to the aggregator; empty means its default.
	CollisionStrategy string
	// LogLevel is the minimum level of the stderr aggregation log.
	LogLevel slog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASBLOCKS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Format:            envFormat("OASBLOCKS_FORMAT", cliutil.FormatJSON),
		CollisionStrategy: envStrategy("OASBLOCKS_COLLISION_STRATEGY"),
		LogLevel:          envLevel("OASBLOCKS_LOG_LEVEL", slog.LevelWarn),
	}
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !cliutil.IsValidFormat(v) {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envStrategy(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !aggregator.IsValidStrategy(v) {
		slog.Warn("invalid strategy env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	level, ok := logging.ParseLevel(v)
	if !ok {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return level
}
