package builder

import (
	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/ordered"
)

// Top-level keys the builder attaches.
const (
	KeyPaths       = "paths"
	KeyDefinitions = "definitions"
	KeyComponents  = "components"
	KeyModels      = "models"
)

// BuildRootDocument aggregates units and builds the root document.
//
// For 2.0 and 3.0 roots the aggregated paths are attached under "paths",
// always present even when empty. Aggregated schemas go under
// "definitions" (2.0) or "components.schemas" (3.0) only when there are
// any, and in 3.0 the other aggregated component sections join them under
// "components". A 1.2 root builds to its resource listing as declared.
//
// The root node itself is never modified, so repeated builds over the same
// units return equal documents.
func BuildRootDocument(units []any, opts ...Option) (*Document, error) {
	cfg := applyOptions(opts...)
	ds, err := aggregator.Aggregate(units, cfg.aggregatorOptions()...)
	if err != nil {
		return nil, err
	}

	out := serializeMap(ds.Root)
	switch ds.Dialect {
	case dialect.OAS20:
		out.Set(KeyPaths, serializeAll(ds.Paths))
		if ds.Schemas.Len() > 0 {
			out.Set(KeyDefinitions, serializeAll(ds.Schemas))
		}
	case dialect.OAS30:
		out.Set(KeyPaths, serializeAll(ds.Paths))
		if components := buildComponents(out, ds); components.Len() > 0 {
			out.Set(KeyComponents, components)
		}
	}

	cfg.logger.Debug("built root document", "dialect", ds.Dialect.String(),
		"paths", ds.Paths.Len(), "schemas", ds.Schemas.Len())
	return &Document{Dialect: ds.Dialect, Value: out, Collisions: ds.Collisions}, nil
}

// BuildAPIDeclaration aggregates units and builds the 1.2 api declaration
// for resource, with every unit's models folded under "models".
//
// It returns a NotSupportedError when the aggregated root is not 1.2 and a
// NotFoundError when no unit declared resource.
func BuildAPIDeclaration(resource string, units []any, opts ...Option) (*Document, error) {
	cfg := applyOptions(opts...)
	ds, err := aggregator.Aggregate(units, cfg.aggregatorOptions()...)
	if err != nil {
		return nil, err
	}
	if !ds.Dialect.IsLegacy() {
		return nil, &oaserrors.NotSupportedError{
			Operation: "BuildAPIDeclaration",
			Dialect:   ds.Dialect.String(),
			Supported: dialect.Of(dialect.Swagger12).Strings(),
			Message:   "api declarations only exist in Swagger 1.2; the root document already holds every path",
		}
	}

	api, ok := ds.APIs.Get(resource)
	if !ok {
		return nil, &oaserrors.NotFoundError{Kind: "api declaration", Name: resource}
	}

	models := node.NewModels(nil)
	models.SetName(KeyModels)
	models.Merge(ds.Models)

	out := serializeMap(api)
	if wrapped, ok := models.Serialize().(*ordered.Map[any]); ok {
		for k, v := range wrapped.All() {
			out.Set(k, v)
		}
	}

	cfg.logger.Debug("built api declaration", "resource", resource,
		"models", ds.Models.Entries().Len())
	return &Document{Dialect: ds.Dialect, Value: out, Collisions: ds.Collisions}, nil
}

// ListResources aggregates units and returns the resource names of every
// 1.2 api declaration, in declaration order. It is empty for 2.0 and 3.0
// roots.
func ListResources(units []any, opts ...Option) ([]string, error) {
	cfg := applyOptions(opts...)
	ds, err := aggregator.Aggregate(units, cfg.aggregatorOptions()...)
	if err != nil {
		return nil, err
	}
	return ds.APIs.Keys(), nil
}

// buildComponents merges any components set directly on the root with the
// aggregated sections. Aggregated entries replace same-named root entries.
func buildComponents(root *ordered.Map[any], ds *aggregator.Dataset) *ordered.Map[any] {
	components := ordered.New[any]()
	if cur, ok := root.Get(KeyComponents); ok {
		if m, ok := cur.(*ordered.Map[any]); ok {
			components = m.Clone()
		}
	}
	for section, entries := range ds.Components.All() {
		if entries.Len() == 0 {
			continue
		}
		merged := ordered.New[any]()
		if cur, ok := components.Get(section); ok {
			if m, ok := cur.(*ordered.Map[any]); ok {
				merged = m.Clone()
			}
		}
		for name, v := range entries.All() {
			merged.Set(name, serialize(v))
		}
		components.Set(section, merged)
	}
	if ds.Schemas.Len() > 0 {
		schemas := ordered.New[any]()
		if cur, ok := components.Get(node.SectionSchemas); ok {
			if m, ok := cur.(*ordered.Map[any]); ok {
				schemas = m.Clone()
			}
		}
		for name, v := range serializeAll(ds.Schemas).All() {
			schemas.Set(name, v)
		}
		components.Set(node.SectionSchemas, schemas)
	}
	return components
}

func serializeAll[V node.Serializer](m *ordered.Map[V]) *ordered.Map[any] {
	out := ordered.New[any]()
	for k, v := range m.All() {
		out.Set(k, v.Serialize())
	}
	return out
}

func serialize(v any) any {
	if s, ok := v.(node.Serializer); ok {
		return s.Serialize()
	}
	return v
}

// serializeMap serializes s into a fresh ordered map, or an empty one when
// s does not serialize to an object.
func serializeMap(s node.Serializer) *ordered.Map[any] {
	if m, ok := s.Serialize().(*ordered.Map[any]); ok {
		return m
	}
	return ordered.New[any]()
}
