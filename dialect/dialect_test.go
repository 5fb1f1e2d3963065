package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
		ok       bool
	}{
		{"1.2", Swagger12, true},
		{"2.0", OAS20, true},
		{"3.0", OAS30, true},
		{"3.0.0", OAS30, true},
		{"3.0.3", OAS30, true},
		{"3.0.9", OAS30, true},
		{"3.0.0-rc1", OAS30, true},
		{" 2.0 ", OAS20, true},
		{"3.1.0", Unknown, false},
		{"3.0.x", Unknown, false},
		{"1.1", Unknown, false},
		{"", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "1.2", Swagger12.String())
	assert.Equal(t, "2.0", OAS20.String())
	assert.Equal(t, "3.0", OAS30.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.False(t, Unknown.IsValid())
	assert.True(t, Swagger12.IsLegacy())
	assert.False(t, OAS30.IsLegacy())
}

func TestRefPrefix(t *testing.T) {
	assert.Equal(t, "", Swagger12.RefPrefix())
	assert.Equal(t, "#/definitions/", OAS20.RefPrefix())
	assert.Equal(t, "#/components/schemas/", OAS30.RefPrefix())
}

func TestInfer(t *testing.T) {
	lookup := func(m map[string]any) func(string) (any, bool) {
		return func(k string) (any, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	tests := []struct {
		name     string
		attrs    map[string]any
		expected Dialect
	}{
		{"swagger 2.0", map[string]any{"swagger": "2.0"}, OAS20},
		{"swaggerVersion 1.2", map[string]any{"swaggerVersion": "1.2"}, Swagger12},
		{"openapi 3.0.0", map[string]any{"openapi": "3.0.0"}, OAS30},
		{"openapi 3.0.2", map[string]any{"openapi": "3.0.2"}, OAS30},
		{"no markers", map[string]any{"info": "x"}, Unknown},
		{"wrong swagger value", map[string]any{"swagger": "1.2"}, Unknown},
		{"non-string marker", map[string]any{"swagger": 2.0}, Unknown},
		{"openapi 3.1 unsupported", map[string]any{"openapi": "3.1.0"}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Infer(lookup(tt.attrs)))
		})
	}
}

func TestSet(t *testing.T) {
	s := Of(OAS20, OAS30)
	assert.True(t, s.Contains(OAS20))
	assert.True(t, s.Contains(OAS30))
	assert.False(t, s.Contains(Swagger12))
	assert.False(t, s.Contains(Unknown))
	assert.Equal(t, []string{"2.0", "3.0"}, s.Strings())

	assert.Equal(t, []Dialect{Swagger12, OAS20, OAS30}, All.Dialects())
	assert.Equal(t, Set(0), Of(Unknown))
	assert.Empty(t, Set(0).Strings())
}
