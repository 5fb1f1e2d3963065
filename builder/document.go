package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/ordered"
)

// Document is a built document.
type Document struct {
	// Dialect is the dialect of the aggregated root
	Dialect dialect.Dialect
	// Value is the JSON-compatible tree in declaration order
	Value *ordered.Map[any]
	// Collisions lists the cross-unit key collisions resolved while
	// aggregating
	Collisions []aggregator.Collision
}

// Get returns the top-level value at key.
func (d *Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return d.Value.Get(key)
}

// Plain returns the document as nested map[string]any and []any values.
// Key order is lost.
func (d *Document) Plain() map[string]any {
	if d == nil || d.Value == nil {
		return map[string]any{}
	}
	out, _ := ordered.Plain(d.Value).(map[string]any)
	return out
}

// MarshalJSON returns the document as indented JSON bytes.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(d.Value, "", "  ")
}

// MarshalYAML returns the document as YAML bytes.
func (d *Document) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(d.Value)
}

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// WriteFile writes the document to a file.
// The format is inferred from the file extension (.json for JSON, .yaml/.yml for YAML).
func (d *Document) WriteFile(path string) error {
	var data []byte
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		data, err = d.MarshalJSON()
	case ".yaml", ".yml":
		data, err = d.MarshalYAML()
	default:
		// Default to JSON, the format every dialect is served in
		data, err = d.MarshalJSON()
	}

	if err != nil {
		return fmt.Errorf("builder: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("builder: failed to write file: %w", err)
	}

	return nil
}
