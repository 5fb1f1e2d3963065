package mcpserver

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearOASBLOCKSEnv clears all OASBLOCKS_* env vars to isolate tests from the ambient environment.
func clearOASBLOCKSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASBLOCKS_FORMAT", "OASBLOCKS_COLLISION_STRATEGY", "OASBLOCKS_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASBLOCKSEnv(t)

	c := loadConfig()

	assert.Equal(t, "json", c.Format)
	assert.Empty(t, c.CollisionStrategy)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASBLOCKSEnv(t)
	t.Setenv("OASBLOCKS_FORMAT", "yaml")
	t.Setenv("OASBLOCKS_COLLISION_STRATEGY", "accept-left")
	t.Setenv("OASBLOCKS_LOG_LEVEL", "debug")

	c := loadConfig()

	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "accept-left", c.CollisionStrategy)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASBLOCKSEnv(t)
	t.Setenv("OASBLOCKS_FORMAT", "xml")
	t.Setenv("OASBLOCKS_COLLISION_STRATEGY", "rename-left")
	t.Setenv("OASBLOCKS_LOG_LEVEL", "loud")

	c := loadConfig()

	assert.Equal(t, "json", c.Format)
	assert.Empty(t, c.CollisionStrategy)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}
