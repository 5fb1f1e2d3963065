package oasblocks

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() is "dev" or a release tag.
func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommit(t *testing.T) {
	result := Commit()
	assert.NotEmpty(t, result)
	if result != "unknown" {
		assert.GreaterOrEqual(t, len(result), 7, "short git hash expected, got: %s", result)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	result := UserAgent()
	assert.Equal(t, "oasblocks/"+Version(), result)
	assert.NotContains(t, result, " ")
}

func TestBuildInfo(t *testing.T) {
	result := BuildInfo()
	for _, label := range []string{"Version:", "Commit:", "Build Time:", "Go Version:"} {
		assert.Contains(t, result, label)
	}
	assert.Contains(t, result, GoVersion())
}
