package node

import (
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/ordered"
)

// Component section names.
const (
	SectionSchemas         = "schemas"
	SectionParameters      = "parameters"
	SectionResponses       = "responses"
	SectionRequestBodies   = "requestBodies"
	SectionHeaders         = "headers"
	SectionExamples        = "examples"
	SectionLinks           = "links"
	SectionCallbacks       = "callbacks"
	SectionSecuritySchemes = "securitySchemes"
)

// Components is the 3.0 components object of one unit.
//
// Schemas are not stored on the node itself: they go to the schema map
// supplied at construction, which is the unit's schema map, so component
// schemas and top-level schema declarations merge the same way. The other
// sections are name-keyed maps on the node.
type Components struct {
	Node
	schemas *ordered.Map[*Schema]
}

// NewComponents creates a 3.0 components node storing schemas in schemas.
func NewComponents(errs *Errors, schemas *ordered.Map[*Schema]) *Components {
	c := create[Components](KindComponents, dialect.OAS30, errs)
	if schemas == nil {
		schemas = ordered.New[*Schema]()
	}
	c.schemas = schemas
	return c
}

// Schema declares a component schema. A repeated name replays fn against
// the existing schema; keys only apply on the first declaration.
func (c *Components) Schema(name string, keys Keys, fn func(*Schema)) (*Schema, error) {
	if existing, ok := c.schemas.Get(name); ok {
		if fn != nil {
			fn(existing)
		}
		return existing, nil
	}
	s, err := spawn[Schema](&c.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	c.schemas.Set(name, s)
	return s, nil
}

// Schemas returns the schema map the node writes to.
func (c *Components) Schemas() *ordered.Map[*Schema] { return c.schemas }

// Section returns the named section, or nil if nothing was declared in it.
func (c *Components) Section(name string) *ordered.Map[any] {
	cur, ok := c.data.Get(name)
	if !ok {
		return nil
	}
	m, _ := cur.(*ordered.Map[any])
	return m
}

// Parameter declares a reusable parameter.
func (c *Components) Parameter(name string, keys Keys, fn func(*Parameter)) (*Parameter, error) {
	return declare(c, SectionParameters, name, KindParameter, keys, fn)
}

// Response declares a reusable response.
func (c *Components) Response(name string, keys Keys, fn func(*Response)) (*Response, error) {
	return declare(c, SectionResponses, name, KindResponse, keys, fn)
}

// RequestBody declares a reusable request body.
func (c *Components) RequestBody(name string, keys Keys, fn func(*RequestBody)) (*RequestBody, error) {
	return declare(c, SectionRequestBodies, name, KindRequestBody, keys, fn)
}

// Header declares a reusable header.
func (c *Components) Header(name string, keys Keys, fn func(*Header)) (*Header, error) {
	return declare(c, SectionHeaders, name, KindHeader, keys, fn)
}

// Example declares a reusable example.
func (c *Components) Example(name string, keys Keys, fn func(*Example)) (*Example, error) {
	return declare(c, SectionExamples, name, KindExample, keys, fn)
}

// Link declares a reusable link.
func (c *Components) Link(name string, keys Keys, fn func(*Link)) (*Link, error) {
	return declare(c, SectionLinks, name, KindLink, keys, fn)
}

// Callback declares a reusable callback.
func (c *Components) Callback(name string, keys Keys, fn func(*Callback)) (*Callback, error) {
	return declare(c, SectionCallbacks, name, KindCallback, keys, fn)
}

// SecurityScheme declares a security scheme.
func (c *Components) SecurityScheme(name string, keys Keys, fn func(*SecurityScheme)) (*SecurityScheme, error) {
	return declare(c, SectionSecuritySchemes, name, KindSecurityScheme, keys, fn)
}

func declare[T any, PT interface {
	*T
	variant
}](c *Components, section, name string, kind Kind, keys Keys, fn func(PT)) (PT, error) {
	child, err := spawn[T, PT](&c.Node, kind, keys, fn)
	if err != nil {
		return nil, err
	}
	c.section(section).Set(name, child)
	return child, nil
}
