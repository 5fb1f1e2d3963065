// Package registry holds the declarations of one declaring unit.
//
// A declaring unit (a controller, a model package, any value that
// documents part of an API) owns one Registry and populates it once, at
// load time, by calling its declaration methods. Repeated declarations for
// the same path, schema name or resource name re-enter the node created by
// the first one and replay the configure function against it, so partial
// declarations spread across call sites merge into one subtree:
//
//	reg := registry.New(registry.WithName("PetController"))
//	reg.Path("/pets", func(p *node.Path) { p.Set("summary", "Pets") })
//	reg.Path("/pets", func(p *node.Path) { p.Set("description", "All pets") })
//	// one path node with both summary and description
//
// A Registry is not safe for concurrent mutation. Once populated, any
// number of readers may take snapshots of it.
package registry

import (
	"fmt"

	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/ordered"
)

// Declarer is implemented by declaring units that take part in
// aggregation. Units that do not implement it are skipped.
type Declarer interface {
	Declarations() *Registry
}

// Registry is the per-unit declaration state.
type Registry struct {
	name    string
	dialect dialect.Dialect
	errs    *node.Errors

	root       *node.Root
	paths      *ordered.Map[*node.Path]
	schemas    *ordered.Map[*node.Schema]
	apis       *ordered.Map[*node.APIDeclaration]
	models     *node.Models
	components *node.Components
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	cfg := applyOptions(opts...)
	return &Registry{
		name:    cfg.name,
		dialect: cfg.dialect,
		errs:    &node.Errors{},
		paths:   ordered.New[*node.Path](),
		schemas: ordered.New[*node.Schema](),
		apis:    ordered.New[*node.APIDeclaration](),
	}
}

// Declarations implements Declarer.
func (r *Registry) Declarations() *Registry { return r }

// Name returns the unit name given with WithName.
func (r *Registry) Name() string { return r.name }

// Err returns the failures recorded while declarations ran, or nil.
func (r *Registry) Err() error { return r.errs.Err() }

// Dialect returns the dialect used for paths and schemas: the one given
// with WithDialect, else the dialect of this unit's 2.0 or 3.0 root, else
// OpenAPI 2.0. It is read when a path or schema is first declared, so a
// unit without WithDialect must declare its root before them.
func (r *Registry) Dialect() dialect.Dialect {
	if r.dialect.IsValid() {
		return r.dialect
	}
	if r.root != nil {
		if d, err := r.root.Dialect(); err == nil && !d.IsLegacy() {
			return d
		}
	}
	return dialect.OAS20
}

// Root declares the unit's root. The first call creates it; later calls
// return the existing root and do not run fn.
func (r *Registry) Root(keys node.Keys, fn func(*node.Root)) *node.Root {
	if r.root != nil {
		return r.root
	}
	root := node.NewRoot(r.errs)
	_ = root.Apply(keys)
	r.root = root
	if d := r.Dialect(); d != dialect.OAS20 && !r.dialect.IsValid() && r.paths.Len()+r.schemas.Len() > 0 {
		r.errs.Add(&oaserrors.DeclarationError{
			Message: fmt.Sprintf("paths or schemas were declared as %s before the %s root; declare the root first or use WithDialect", dialect.OAS20, d),
		})
	}
	if fn != nil {
		fn(root)
	}
	return root
}

// Path declares a path item in the unit's current Dialect. Repeated
// declarations of the same path replay fn against the existing node.
func (r *Registry) Path(path string, fn func(*node.Path)) *node.Path {
	p, ok := r.paths.Get(path)
	if !ok {
		p = node.NewPath(r.Dialect(), r.errs)
		r.paths.Set(path, p)
	}
	if fn != nil {
		fn(p)
	}
	return p
}

// Schema declares a schema definition in the unit's current Dialect.
// Repeated declarations of the same name replay fn against the existing
// node; keys only apply on the first.
func (r *Registry) Schema(name string, keys node.Keys, fn func(*node.Schema)) *node.Schema {
	s, ok := r.schemas.Get(name)
	if !ok {
		s = node.NewSchema(r.Dialect(), r.errs)
		_ = s.Apply(keys)
		r.schemas.Set(name, s)
	}
	if fn != nil {
		fn(s)
	}
	return s
}

// APIRoot declares a Swagger 1.2 API declaration for a resource. Repeated
// declarations of the same resource replay fn against the existing node;
// keys only apply on the first.
func (r *Registry) APIRoot(resource string, keys node.Keys, fn func(*node.APIDeclaration)) *node.APIDeclaration {
	a, ok := r.apis.Get(resource)
	if !ok {
		a = node.NewAPIDeclaration(r.errs)
		_ = a.Apply(keys)
		r.apis.Set(resource, a)
	}
	if fn != nil {
		fn(a)
	}
	return a
}

// Model declares a Swagger 1.2 model. The first declaration of a name wins.
func (r *Registry) Model(name string, keys node.Keys, fn func(*node.Model)) *node.Model {
	if r.models == nil {
		r.models = node.NewModels(r.errs)
	}
	m, _ := r.models.Model(name, keys, fn)
	return m
}

// Components declares the unit's 3.0 components. Every call replays fn on
// the same node. Component schemas are stored in the unit's schema map.
func (r *Registry) Components(fn func(*node.Components)) *node.Components {
	if r.components == nil {
		r.components = node.NewComponents(r.errs, r.schemas)
	}
	if fn != nil {
		fn(r.components)
	}
	return r.components
}

// Snapshot is a read-only view of a registry. Its maps are copies, so
// callers may union them freely; the nodes are shared.
type Snapshot struct {
	Name       string
	Root       *node.Root
	Paths      *ordered.Map[*node.Path]
	Schemas    *ordered.Map[*node.Schema]
	APIs       *ordered.Map[*node.APIDeclaration]
	Models     *node.Models
	Components *node.Components
}

// Snapshot returns the registry's current declarations.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Name:       r.name,
		Root:       r.root,
		Paths:      r.paths.Clone(),
		Schemas:    r.schemas.Clone(),
		APIs:       r.apis.Clone(),
		Models:     r.models,
		Components: r.components,
	}
}
