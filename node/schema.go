package node

import (
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/ordered"
)

// Schema is a schema object: a 2.0 definition, a 3.0 component schema, or
// an inline schema on a parameter, response or media type.
type Schema struct {
	Node
}

// NewSchema creates a schema in dialect d.
func NewSchema(d dialect.Dialect, errs *Errors) *Schema {
	return create[Schema](KindSchema, d, errs)
}

// Items sets the schema of array elements.
func (s *Schema) Items(keys Keys, fn func(*Items)) (*Items, error) {
	items, err := spawn[Items](&s.Node, KindItems, keys, fn)
	if err != nil {
		return nil, err
	}
	s.data.Set("items", items)
	return items, nil
}

// Property declares a property by name, replacing any earlier one.
func (s *Schema) Property(name string, keys Keys, fn func(*Property)) (*Property, error) {
	return property(&s.Node, name, keys, fn)
}

// AllOf appends schemas to the allOf composition.
func (s *Schema) AllOf(fn func(*Composition)) (*Composition, error) {
	return compose(&s.Node, KindAllOf, "allOf", dialect.All, fn)
}

// OneOf appends schemas to the 3.0 oneOf composition.
func (s *Schema) OneOf(fn func(*Composition)) (*Composition, error) {
	return compose(&s.Node, KindOneOf, "oneOf", oas3Only, fn)
}

// AnyOf appends schemas to the 3.0 anyOf composition.
func (s *Schema) AnyOf(fn func(*Composition)) (*Composition, error) {
	return compose(&s.Node, KindAnyOf, "anyOf", oas3Only, fn)
}

// Xml sets the XML representation hints.
func (s *Schema) Xml(keys Keys, fn func(*Node)) (*Node, error) {
	x, err := spawn[Node](&s.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	s.data.Set("xml", x)
	return x, nil
}

// ExternalDocs sets the schema's external documentation.
func (s *Schema) ExternalDocs(keys Keys, fn func(*Node)) (*Node, error) {
	docs, err := spawn[Node](&s.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	s.data.Set("externalDocs", docs)
	return docs, nil
}

// Example sets an example instance of the schema.
func (s *Schema) Example(keys Keys, fn func(*Node)) (*Node, error) {
	ex, err := spawn[Node](&s.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	s.data.Set("example", ex)
	return ex, nil
}

// Items describes array elements.
type Items struct {
	Node
}

// Property declares a property of an object-typed element.
func (i *Items) Property(name string, keys Keys, fn func(*Property)) (*Property, error) {
	return property(&i.Node, name, keys, fn)
}

// Property is one named property of a schema or model.
type Property struct {
	Node
}

// Items sets the element description of an array-typed property.
func (p *Property) Items(keys Keys, fn func(*Items)) (*Items, error) {
	items, err := spawn[Items](&p.Node, KindItems, keys, fn)
	if err != nil {
		return nil, err
	}
	p.data.Set("items", items)
	return items, nil
}

// Property declares a nested property.
func (p *Property) Property(name string, keys Keys, fn func(*Property)) (*Property, error) {
	return property(&p.Node, name, keys, fn)
}

func property(parent *Node, name string, keys Keys, fn func(*Property)) (*Property, error) {
	prop, err := spawn[Property](parent, KindProperty, keys, fn)
	if err != nil {
		return nil, err
	}
	parent.section("properties").Set(name, prop)
	return prop, nil
}

// Composition is an allOf, oneOf or anyOf list. Its children are kept in
// order and it serializes to an array rather than an object.
type Composition struct {
	Node
	schemas []any
}

func compose(parent *Node, kind Kind, key string, allowed dialect.Set, fn func(*Composition)) (*Composition, error) {
	if err := parent.require(string(kind), allowed); err != nil {
		return nil, err
	}
	// Repeated declarations extend the existing list.
	if cur, ok := parent.data.Get(key); ok {
		if c, ok := cur.(*Composition); ok {
			if fn != nil {
				fn(c)
			}
			return c, nil
		}
	}
	c, err := spawn[Composition](parent, kind, nil, fn)
	if err != nil {
		return nil, err
	}
	parent.data.Set(key, c)
	return c, nil
}

// Schema appends a member schema.
func (c *Composition) Schema(keys Keys, fn func(*Schema)) (*Schema, error) {
	s, err := spawn[Schema](&c.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	c.schemas = append(c.schemas, s)
	return s, nil
}

// Len returns the number of member schemas.
func (c *Composition) Len() int { return len(c.schemas) }

// Set is not supported: a composition has members, not attributes.
func (c *Composition) Set(key string, _ any) error {
	d, _ := c.Dialect()
	return c.record(&oaserrors.NotSupportedError{
		Operation: string(c.kind) + ".Set",
		Dialect:   d.String(),
		Message:   "compositions hold schemas, not keys (" + key + ")",
	})
}

// Apply is not supported unless keys is empty.
func (c *Composition) Apply(keys Keys) error {
	for k := range keys {
		return c.Set(k, keys[k])
	}
	return nil
}

// Serialize returns the member schemas as an array.
func (c *Composition) Serialize() any {
	return c.wrap(serializeValue(c.schemas))
}

// Models is the Swagger 1.2 models object of one unit, or the aggregate
// of several units when building an API declaration.
type Models struct {
	Node
}

// NewModels creates an empty Swagger 1.2 models node.
func NewModels(errs *Errors) *Models {
	return create[Models](KindModels, dialect.Swagger12, errs)
}

// Model declares a model. The first declaration of a name wins; later ones
// return the existing model without running fn.
func (m *Models) Model(name string, keys Keys, fn func(*Model)) (*Model, error) {
	if cur, ok := m.data.Get(name); ok {
		if existing, ok := cur.(*Model); ok {
			return existing, nil
		}
	}
	model, err := spawn[Model](&m.Node, KindModel, keys, fn)
	if err != nil {
		return nil, err
	}
	m.data.Set(name, model)
	return model, nil
}

// Merge copies every model of other into m, replacing same-named models.
func (m *Models) Merge(other *Models) {
	if other == nil {
		return
	}
	for k, v := range other.data.All() {
		m.data.Set(k, v)
	}
}

// Entries returns the models by name in declaration order.
func (m *Models) Entries() *ordered.Map[any] {
	return m.data.Clone()
}

// Model is a Swagger 1.2 model.
type Model struct {
	Node
}

// Property declares a model property.
func (m *Model) Property(name string, keys Keys, fn func(*Property)) (*Property, error) {
	return property(&m.Node, name, keys, fn)
}
