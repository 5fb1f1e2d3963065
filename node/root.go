package node

import (
	"reflect"

	"github.com/erraggy/oasblocks/dialect"
)

// Root is the single top-level node of a document: a resource listing in
// Swagger 1.2, the Swagger object in 2.0, or the OpenAPI object in 3.0.
type Root struct {
	Node
}

// NewRoot creates a root whose dialect is inferred from its marker keys.
func NewRoot(errs *Errors) *Root {
	return create[Root](KindRoot, dialect.Unknown, errs)
}

// Info sets the info object.
func (r *Root) Info(keys Keys, fn func(*Info)) (*Info, error) {
	info, err := spawn[Info](&r.Node, KindInfo, keys, fn)
	if err != nil {
		return nil, err
	}
	r.data.Set("info", info)
	return info, nil
}

// API appends a resource entry to the listing's apis.
func (r *Root) API(keys Keys, fn func(*Node)) (*Node, error) {
	if err := r.require("API", legacyOnly); err != nil {
		return nil, err
	}
	res, err := spawn[Node](&r.Node, KindResource, keys, fn)
	if err != nil {
		return nil, err
	}
	r.appendTo("apis", res)
	return res, nil
}

// HasAPIPath reports whether a resource entry with the given path exists.
func (r *Root) HasAPIPath(path string) (bool, error) {
	if err := r.require("HasAPIPath", legacyOnly); err != nil {
		return false, err
	}
	cur, _ := r.data.Get("apis")
	list, _ := cur.([]any)
	for _, item := range list {
		res, ok := item.(*Node)
		if !ok {
			continue
		}
		if p, _ := res.Get("path"); reflect.DeepEqual(p, path) {
			return true, nil
		}
	}
	return false, nil
}

// Authorization declares a resource listing authorization by name.
func (r *Root) Authorization(name string, keys Keys, fn func(*ResourceListingAuthorization)) (*ResourceListingAuthorization, error) {
	if err := r.require("Authorization", legacyOnly); err != nil {
		return nil, err
	}
	auth, err := spawn[ResourceListingAuthorization](&r.Node, KindResourceListingAuthorization, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("authorizations").Set(name, auth)
	return auth, nil
}

// Parameter declares a reusable parameter.
func (r *Root) Parameter(name string, keys Keys, fn func(*Parameter)) (*Parameter, error) {
	if err := r.require("Parameter", oas2Only); err != nil {
		return nil, err
	}
	param, err := spawn[Parameter](&r.Node, KindParameter, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("parameters").Set(name, param)
	return param, nil
}

// Response declares a reusable response.
func (r *Root) Response(name string, keys Keys, fn func(*Response)) (*Response, error) {
	if err := r.require("Response", oas2Only); err != nil {
		return nil, err
	}
	resp, err := spawn[Response](&r.Node, KindResponse, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("responses").Set(name, resp)
	return resp, nil
}

// SecurityDefinition declares a security scheme under securityDefinitions.
func (r *Root) SecurityDefinition(name string, keys Keys, fn func(*SecurityScheme)) (*SecurityScheme, error) {
	if err := r.require("SecurityDefinition", oas2Only); err != nil {
		return nil, err
	}
	scheme, err := spawn[SecurityScheme](&r.Node, KindSecurityScheme, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("securityDefinitions").Set(name, scheme)
	return scheme, nil
}

// Security appends a document-wide security requirement.
func (r *Root) Security(keys Keys, fn func(*Node)) (*Node, error) {
	if err := r.require("Security", openAPI); err != nil {
		return nil, err
	}
	req, err := spawn[Node](&r.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	r.appendTo("security", req)
	return req, nil
}

// Tag appends a tag.
func (r *Root) Tag(keys Keys, fn func(*Tag)) (*Tag, error) {
	if err := r.require("Tag", openAPI); err != nil {
		return nil, err
	}
	tag, err := spawn[Tag](&r.Node, KindTag, keys, fn)
	if err != nil {
		return nil, err
	}
	r.appendTo("tags", tag)
	return tag, nil
}

// ExternalDocs sets the document's external documentation.
func (r *Root) ExternalDocs(keys Keys, fn func(*Node)) (*Node, error) {
	if err := r.require("ExternalDocs", openAPI); err != nil {
		return nil, err
	}
	docs, err := spawn[Node](&r.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	r.data.Set("externalDocs", docs)
	return docs, nil
}

// Server appends a server.
func (r *Root) Server(keys Keys, fn func(*Server)) (*Server, error) {
	if err := r.require("Server", oas3Only); err != nil {
		return nil, err
	}
	srv, err := spawn[Server](&r.Node, KindServer, keys, fn)
	if err != nil {
		return nil, err
	}
	r.appendTo("servers", srv)
	return srv, nil
}

// Info is the document's info object.
type Info struct {
	Node
}

// Contact sets the contact object.
func (i *Info) Contact(keys Keys, fn func(*Node)) (*Node, error) {
	if err := i.require("Contact", openAPI); err != nil {
		return nil, err
	}
	c, err := spawn[Node](&i.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	i.data.Set("contact", c)
	return c, nil
}

// License sets the license object.
func (i *Info) License(keys Keys, fn func(*Node)) (*Node, error) {
	if err := i.require("License", openAPI); err != nil {
		return nil, err
	}
	l, err := spawn[Node](&i.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	i.data.Set("license", l)
	return l, nil
}

// Tag describes a tag used by operations.
type Tag struct {
	Node
}

// ExternalDocs sets the tag's external documentation.
func (t *Tag) ExternalDocs(keys Keys, fn func(*Node)) (*Node, error) {
	docs, err := spawn[Node](&t.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	t.data.Set("externalDocs", docs)
	return docs, nil
}

// Server is an OpenAPI 3.0 server object.
type Server struct {
	Node
}

// Variable declares a server variable by name.
func (s *Server) Variable(name string, keys Keys, fn func(*Node)) (*Node, error) {
	if err := s.require("Variable", oas3Only); err != nil {
		return nil, err
	}
	v, err := spawn[Node](&s.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	s.section("variables").Set(name, v)
	return v, nil
}
