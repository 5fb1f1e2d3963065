package node

import (
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/ordered"
)

// Keys is a set of inline attributes applied to a node when it is created.
// Keys are applied in sorted order so the serialized key order is stable.
type Keys map[string]any

// Kind names a node variant. It appears in error messages.
type Kind string

// Node variants.
const (
	KindNode                         Kind = "Node"
	KindRoot                         Kind = "Root"
	KindInfo                         Kind = "Info"
	KindResource                     Kind = "Resource"
	KindResourceListingAuthorization Kind = "ResourceListingAuthorization"
	KindGrantType                    Kind = "GrantType"
	KindAPIDeclaration               Kind = "APIDeclaration"
	KindAPI                          Kind = "API"
	KindPath                         Kind = "Path"
	KindOperation                    Kind = "Operation"
	KindParameter                    Kind = "Parameter"
	KindResponse                     Kind = "Response"
	KindHeader                       Kind = "Header"
	KindSchema                       Kind = "Schema"
	KindItems                        Kind = "Items"
	KindProperty                     Kind = "Property"
	KindModel                        Kind = "Model"
	KindModels                       Kind = "Models"
	KindAllOf                        Kind = "AllOf"
	KindOneOf                        Kind = "OneOf"
	KindAnyOf                        Kind = "AnyOf"
	KindTag                          Kind = "Tag"
	KindSecurityScheme               Kind = "SecurityScheme"
	KindOAuthFlow                    Kind = "OAuthFlow"
	KindAPIAuthorizations            Kind = "APIAuthorizations"
	KindAPIAuthorization             Kind = "APIAuthorization"
	KindContent                      Kind = "Content"
	KindExample                      Kind = "Example"
	KindRequestBody                  Kind = "RequestBody"
	KindCallback                     Kind = "Callback"
	KindLink                         Kind = "Link"
	KindServer                       Kind = "Server"
	KindComponents                   Kind = "Components"
)

var (
	legacyOnly = dialect.Of(dialect.Swagger12)
	oas2Only   = dialect.Of(dialect.OAS20)
	oas3Only   = dialect.Of(dialect.OAS30)
	openAPI    = dialect.Of(dialect.OAS20, dialect.OAS30)
)

// Serializer is implemented by every node variant.
type Serializer interface {
	// Serialize returns the JSON-compatible form of the node: an
	// *ordered.Map[any], a []any, or a scalar.
	Serialize() any
}

type variant interface {
	Serializer
	base() *Node
}

// Node is a dialect-aware attribute container. Variants embed it and add
// the child-builder operations that are legal for them.
//
// A Node's dialect is fixed once known. Nodes created by a parent inherit
// the parent's dialect; a root infers its dialect from its marker keys the
// first time it is needed.
type Node struct {
	kind    Kind
	name    string
	dialect dialect.Dialect
	data    ordered.Map[any]
	errs    *Errors
}

// New creates a plain node. errs may be nil.
func New(d dialect.Dialect, errs *Errors) *Node {
	return create[Node](KindNode, d, errs)
}

func create[T any, PT interface {
	*T
	variant
}](kind Kind, d dialect.Dialect, errs *Errors) PT {
	n := PT(new(T))
	n.base().init(kind, d, errs)
	return n
}

func (n *Node) init(kind Kind, d dialect.Dialect, errs *Errors) {
	if errs == nil {
		errs = &Errors{}
	}
	n.kind = kind
	n.dialect = d
	n.errs = errs
}

func (n *Node) base() *Node { return n }

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the wrapping name, if any.
func (n *Node) Name() string { return n.name }

// SetName makes Serialize wrap the node's output as {name: output}.
func (n *Node) SetName(name string) { n.name = name }

// Errors returns the sink shared with the node's registry.
func (n *Node) Errors() *Errors { return n.errs }

// Dialect returns the node's dialect. A node created without one infers it
// from the swagger, swaggerVersion or openapi marker keys; the result is
// cached once found.
func (n *Node) Dialect() (dialect.Dialect, error) {
	if n.dialect.IsValid() {
		return n.dialect, nil
	}
	if d := dialect.Infer(n.data.Get); d.IsValid() {
		n.dialect = d
		return d, nil
	}
	return dialect.Unknown, &oaserrors.DeclarationError{
		Message: `you must specify swaggerVersion "1.2", swagger "2.0" or openapi "3.0.x"`,
	}
}

// Set assigns value at key, replacing any previous value.
func (n *Node) Set(key string, value any) error {
	n.data.Set(key, value)
	return nil
}

// Apply sets every entry of keys.
func (n *Node) Apply(keys Keys) error {
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		n.data.Set(k, keys[k])
	}
	return nil
}

// Get returns the value stored at key.
func (n *Node) Get(key string) (any, bool) {
	return n.data.Get(key)
}

// Keys returns the attribute keys in declaration order.
func (n *Node) Keys() []string {
	return n.data.Keys()
}

// Serialize returns the node's attributes as an ordered map, with child
// nodes serialized recursively.
func (n *Node) Serialize() any {
	return n.wrap(n.serializeData())
}

func (n *Node) serializeData() *ordered.Map[any] {
	d, _ := n.Dialect()
	out := ordered.New[any]()
	for k, v := range n.data.All() {
		if k == "$ref" {
			if s, ok := v.(string); ok {
				out.Set(k, rewriteRef(d, s))
				continue
			}
		}
		out.Set(k, serializeValue(v))
	}
	return out
}

func (n *Node) wrap(v any) any {
	if n.name == "" {
		return v
	}
	out := ordered.New[any]()
	out.Set(n.name, v)
	return out
}

// rewriteRef turns a bare schema name into a local pointer for dialects
// that define one. Values that already start with "#/" are kept.
func rewriteRef(d dialect.Dialect, ref string) string {
	prefix := d.RefPrefix()
	if prefix == "" || strings.HasPrefix(ref, "#/") {
		return ref
	}
	return prefix + ref
}

func serializeValue(v any) any {
	switch val := v.(type) {
	case Serializer:
		return val.Serialize()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = serializeValue(item)
		}
		return out
	case *ordered.Map[any]:
		out := ordered.New[any]()
		for k, item := range val.All() {
			out.Set(k, serializeValue(item))
		}
		return out
	case Keys:
		return serializeValue(map[string]any(val))
	case map[string]any:
		return serializeValue(ordered.FromMap(val))
	default:
		return v
	}
}

// record adds err to the shared sink and returns it.
func (n *Node) record(err error) error {
	n.errs.Add(err)
	return err
}

// require checks that op may run under the node's dialect.
func (n *Node) require(op string, allowed dialect.Set) error {
	d, err := n.Dialect()
	if err != nil {
		return n.record(err)
	}
	if !allowed.Contains(d) {
		return n.record(&oaserrors.NotSupportedError{
			Operation: string(n.kind) + "." + op,
			Dialect:   d.String(),
			Supported: allowed.Strings(),
		})
	}
	return nil
}

// spawn creates a child of the given variant in the parent's dialect,
// applies keys and runs fn against it. The caller stores the child.
func spawn[T any, PT interface {
	*T
	variant
}](parent *Node, kind Kind, keys Keys, fn func(PT)) (PT, error) {
	d, err := parent.Dialect()
	if err != nil {
		return nil, parent.record(err)
	}
	child := create[T, PT](kind, d, parent.errs)
	if err := child.base().Apply(keys); err != nil {
		return nil, err
	}
	if fn != nil {
		fn(child)
	}
	return child, nil
}

// appendTo appends v to the list stored at key.
func (n *Node) appendTo(key string, v any) {
	cur, _ := n.data.Get(key)
	list, _ := cur.([]any)
	n.data.Set(key, append(list, v))
}

// section returns the name-keyed map stored at key, creating it if needed.
func (n *Node) section(key string) *ordered.Map[any] {
	if cur, ok := n.data.Get(key); ok {
		if m, ok := cur.(*ordered.Map[any]); ok {
			return m
		}
	}
	m := ordered.New[any]()
	n.data.Set(key, m)
	return m
}
