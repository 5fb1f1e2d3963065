// Package cliutil provides output helpers shared by the oasblocks command
// line and the MCP server.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/erraggy/oasblocks/builder"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const outputFileMode = 0o600

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{FormatJSON, FormatYAML}
}

// IsValidFormat reports whether format is "json" or "yaml".
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats(), format)
}

// Render marshals doc in the given format.
func Render(doc *builder.Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return doc.MarshalJSON()
	case FormatYAML:
		return doc.MarshalYAML()
	default:
		return nil, fmt.Errorf("cliutil: invalid format %q, valid formats: %v", format, ValidFormats())
	}
}

// WriteDocument renders doc and writes it to path. It returns the cleaned
// absolute path that was written.
func WriteDocument(doc *builder.Document, path, format string) (string, error) {
	data, err := Render(doc, format)
	if err != nil {
		return "", err
	}
	clean, err := SanitizeOutputPath(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(clean, data, outputFileMode); err != nil {
		return "", fmt.Errorf("cliutil: failed to write output file: %w", err)
	}
	return clean, nil
}

// SanitizeOutputPath cleans an output file path, resolves it to an absolute
// path and rejects paths that name a symlink. New files in existing
// directories are accepted.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("cliutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("cliutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("cliutil: cannot stat path: %w", err)
	}
	return abs, nil
}
