package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/internal/petstore"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d resources", "pet", 2)
	assert.Equal(t, "pet: 2 resources", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "lost") })
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("json"))
	assert.True(t, IsValidFormat("yaml"))
	assert.False(t, IsValidFormat("yml"))
	assert.False(t, IsValidFormat(""))
}

func petstoreDoc(t *testing.T) *builder.Document {
	t.Helper()
	units, err := petstore.Units(dialect.OAS20)
	require.NoError(t, err)
	doc, err := builder.BuildRootDocument(units)
	require.NoError(t, err)
	return doc
}

func TestRender(t *testing.T) {
	doc := petstoreDoc(t)

	data, err := Render(doc, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"swagger": "2.0"`)

	data, err = Render(doc, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "basePath: /api")

	_, err = Render(doc, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestWriteDocument(t *testing.T) {
	doc := petstoreDoc(t)
	target := filepath.Join(t.TempDir(), "swagger.yaml")

	written, err := WriteDocument(doc, target, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, target, written)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(outputFileMode), info.Mode().Perm())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "basePath:")
}

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("new file accepted", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "out.json")
		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("relative path made absolute", func(t *testing.T) {
		got, err := SanitizeOutputPath("out.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("symlink rejected", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(real, []byte("{}"), 0o600))
		require.NoError(t, os.Symlink(real, link))

		_, err := SanitizeOutputPath(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}
