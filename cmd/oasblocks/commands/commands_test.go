package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasblocks/oaserrors"
)

// captureOutput redirects the command writers for the duration of a test.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return out, errOut
}

// clearOASBLOCKSEnv clears all OASBLOCKS_* env vars to isolate tests from the ambient environment.
func clearOASBLOCKSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFormat, EnvCollisionStrategy, EnvLogLevel, EnvAddr} {
		t.Setenv(key, "")
	}
}

func TestSetupBuildFlags(t *testing.T) {
	clearOASBLOCKSEnv(t)
	fs, flags := SetupBuildFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Dialect != "2.0" {
			t.Errorf("expected Dialect '2.0' by default, got '%s'", flags.Dialect)
		}
		if flags.Format != "json" {
			t.Errorf("expected Format 'json' by default, got '%s'", flags.Format)
		}
		if flags.Output != "" {
			t.Errorf("expected Output to be empty by default, got '%s'", flags.Output)
		}
		if flags.LogLevel != "warn" {
			t.Errorf("expected LogLevel 'warn' by default, got '%s'", flags.LogLevel)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-dialect", "3.0", "-format", "yaml", "-o", "openapi.yaml", "-strategy", "fail", "-q"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Dialect != "3.0" {
			t.Errorf("expected Dialect '3.0', got '%s'", flags.Dialect)
		}
		if flags.Format != "yaml" {
			t.Errorf("expected Format 'yaml', got '%s'", flags.Format)
		}
		if flags.Output != "openapi.yaml" {
			t.Errorf("expected Output 'openapi.yaml', got '%s'", flags.Output)
		}
		if flags.Strategy != "fail" {
			t.Errorf("expected Strategy 'fail', got '%s'", flags.Strategy)
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
	})
}

func TestSetupBuildFlags_EnvDefaults(t *testing.T) {
	clearOASBLOCKSEnv(t)
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvCollisionStrategy, "accept-left")
	t.Setenv(EnvLogLevel, "debug")

	_, flags := SetupBuildFlags()
	assert.Equal(t, "yaml", flags.Format)
	assert.Equal(t, "accept-left", flags.Strategy)
	assert.Equal(t, "debug", flags.LogLevel)
}

func TestHandleBuild_Stdout(t *testing.T) {
	clearOASBLOCKSEnv(t)
	out, _ := captureOutput(t)

	require.NoError(t, HandleBuild([]string{"-dialect", "2.0"}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Contains(t, doc, "paths")
	assert.Contains(t, doc, "definitions")
}

func TestHandleBuild_OutputFile(t *testing.T) {
	clearOASBLOCKSEnv(t)
	out, errOut := captureOutput(t)
	target := filepath.Join(t.TempDir(), "openapi.yaml")

	require.NoError(t, HandleBuild([]string{"-dialect", "3.0", "-format", "yaml", "-o", target}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Output written to: "+target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "openapi:"), "document should start with the openapi marker")
	assert.Contains(t, string(data), "components:")
}

func TestHandleBuild_Errors(t *testing.T) {
	clearOASBLOCKSEnv(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid format", []string{"-format", "xml"}, "invalid format 'xml'"},
		{"invalid dialect", []string{"-dialect", "3.1"}, "invalid dialect '3.1'"},
		{"invalid strategy", []string{"-strategy", "rename-left"}, "invalid strategy 'rename-left'"},
		{"invalid log level", []string{"-log-level", "loud"}, "invalid log level 'loud'"},
		{"unexpected argument", []string{"spec.yaml"}, "takes no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			err := HandleBuild(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleBuild_Help(t *testing.T) {
	clearOASBLOCKSEnv(t)
	assert.NoError(t, HandleBuild([]string{"-h"}))
}

func TestHandleAPI(t *testing.T) {
	clearOASBLOCKSEnv(t)
	out, _ := captureOutput(t)

	require.NoError(t, HandleAPI([]string{"pet"}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "/pet", doc["resourcePath"])
	assert.Contains(t, doc, "models")
}

func TestHandleAPI_Errors(t *testing.T) {
	clearOASBLOCKSEnv(t)
	captureOutput(t)

	err := HandleAPI(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one resource name")

	err = HandleAPI([]string{"store"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrNotFound))

	err = HandleAPI([]string{"-dialect", "2.0", "pet"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrNotSupported))
}

func TestHandleResources(t *testing.T) {
	clearOASBLOCKSEnv(t)

	t.Run("names", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandleResources(nil))
		assert.Equal(t, "pet\nuser\n", out.String())
	})

	t.Run("titles", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandleResources([]string{"-titles"}))
		assert.Equal(t, "pet\tPet\nuser\tUser\n", out.String())
	})

	t.Run("openapi root has none", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandleResources([]string{"-dialect", "3.0"}))
		assert.Empty(t, out.String())
	})
}

func TestSetupServeFlags(t *testing.T) {
	clearOASBLOCKSEnv(t)
	_, flags := SetupServeFlags()
	assert.Equal(t, ":8080", flags.Addr)

	t.Setenv(EnvAddr, "127.0.0.1:9000")
	_, flags = SetupServeFlags()
	assert.Equal(t, "127.0.0.1:9000", flags.Addr)
}

func TestNewDocServer(t *testing.T) {
	clearOASBLOCKSEnv(t)
	captureOutput(t)

	fs, flags := SetupServeFlags()
	require.NoError(t, fs.Parse([]string{"-dialect", "1.2", "-base", "/docs", "-log-level", "error"}))

	handler, err := newDocServer(flags)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/apis/user?format=yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "resourcePath: /user")

	_, flags = SetupServeFlags()
	flags.BasePath = "docs/"
	_, err = newDocServer(flags)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestHandleMCP_InvalidDialect(t *testing.T) {
	clearOASBLOCKSEnv(t)
	captureOutput(t)

	err := HandleMCP([]string{"-dialect", "4.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dialect")
}

func TestValidateCollisionStrategy(t *testing.T) {
	assert.NoError(t, ValidateCollisionStrategy(""))
	assert.NoError(t, ValidateCollisionStrategy("accept-left"))
	assert.Error(t, ValidateCollisionStrategy("deduplicate"))
}
