package node

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/oaserrors"
)

var (
	oas2Methods = []string{"get", "put", "post", "delete", "options", "head", "patch"}
	oas3Methods = append(slices.Clone(oas2Methods), "trace")
)

// Path is a path item: the operations available on one URL path.
type Path struct {
	Node
}

// NewPath creates a path item in dialect d.
func NewPath(d dialect.Dialect, errs *Errors) *Path {
	return create[Path](KindPath, d, errs)
}

// Operation sets the operation for an HTTP method. The method is matched
// case-insensitively against get, put, post, delete, options, head and
// patch, plus trace in 3.0; anything else is a ConfigError.
func (p *Path) Operation(method string, keys Keys, fn func(*Operation)) (*Operation, error) {
	if err := p.require("Operation", openAPI); err != nil {
		return nil, err
	}
	m := cases.Lower(language.Und).String(strings.TrimSpace(method))
	allowed := oas2Methods
	if p.dialect == dialect.OAS30 {
		allowed = oas3Methods
	}
	if !slices.Contains(allowed, m) {
		return nil, p.record(&oaserrors.ConfigError{
			Option:  "method",
			Value:   method,
			Message: "must be one of " + strings.Join(allowed, ", "),
		})
	}
	op, err := spawn[Operation](&p.Node, KindOperation, keys, fn)
	if err != nil {
		return nil, err
	}
	p.data.Set(m, op)
	return op, nil
}

// Parameter appends a parameter shared by every operation on the path.
func (p *Path) Parameter(keys Keys, fn func(*Parameter)) (*Parameter, error) {
	param, err := spawn[Parameter](&p.Node, KindParameter, keys, fn)
	if err != nil {
		return nil, err
	}
	p.appendTo("parameters", param)
	return param, nil
}

// Server appends a server that overrides the document servers for the path.
func (p *Path) Server(keys Keys, fn func(*Server)) (*Server, error) {
	if err := p.require("Server", oas3Only); err != nil {
		return nil, err
	}
	srv, err := spawn[Server](&p.Node, KindServer, keys, fn)
	if err != nil {
		return nil, err
	}
	p.appendTo("servers", srv)
	return srv, nil
}

// Operation describes a single API operation. In Swagger 1.2 it lives in
// an api block's operations list; in 2.0 and 3.0 under a path's method.
type Operation struct {
	Node
}

// Parameter appends a parameter.
func (o *Operation) Parameter(keys Keys, fn func(*Parameter)) (*Parameter, error) {
	param, err := spawn[Parameter](&o.Node, KindParameter, keys, fn)
	if err != nil {
		return nil, err
	}
	o.appendTo("parameters", param)
	return param, nil
}

// ParameterRef appends a reference to a reusable parameter declared on the
// root (2.0) or in components (3.0).
func (o *Operation) ParameterRef(name string) (*Parameter, error) {
	if err := o.require("ParameterRef", openAPI); err != nil {
		return nil, err
	}
	prefix := "#/parameters/"
	if o.dialect == dialect.OAS30 {
		prefix = "#/components/parameters/"
	}
	return o.Parameter(Keys{"$ref": prefix + name}, nil)
}

// ResponseMessage appends a Swagger 1.2 response message.
func (o *Operation) ResponseMessage(keys Keys, fn func(*Node)) (*Node, error) {
	if err := o.require("ResponseMessage", legacyOnly); err != nil {
		return nil, err
	}
	msg, err := spawn[Node](&o.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	o.appendTo("responseMessages", msg)
	return msg, nil
}

// Authorization declares a Swagger 1.2 operation authorization. The first
// declaration of a name wins; later ones return it unchanged.
func (o *Operation) Authorization(name string, keys Keys, fn func(*APIAuthorization)) (*APIAuthorization, error) {
	if err := o.require("Authorization", legacyOnly); err != nil {
		return nil, err
	}
	var auths *APIAuthorizations
	if cur, ok := o.data.Get("authorizations"); ok {
		auths, _ = cur.(*APIAuthorizations)
	}
	if auths == nil {
		var err error
		if auths, err = spawn[APIAuthorizations](&o.Node, KindAPIAuthorizations, nil, nil); err != nil {
			return nil, err
		}
		o.data.Set("authorizations", auths)
	}
	return auths.Authorization(name, keys, fn)
}

// Items sets the Swagger 1.2 items of an array-typed operation.
func (o *Operation) Items(keys Keys, fn func(*Items)) (*Items, error) {
	if err := o.require("Items", legacyOnly); err != nil {
		return nil, err
	}
	items, err := spawn[Items](&o.Node, KindItems, keys, fn)
	if err != nil {
		return nil, err
	}
	o.data.Set("items", items)
	return items, nil
}

// Response declares the response for a status code or "default".
func (o *Operation) Response(code string, keys Keys, fn func(*Response)) (*Response, error) {
	if err := o.require("Response", openAPI); err != nil {
		return nil, err
	}
	resp, err := spawn[Response](&o.Node, KindResponse, keys, fn)
	if err != nil {
		return nil, err
	}
	o.section("responses").Set(code, resp)
	return resp, nil
}

// ExternalDocs sets the operation's external documentation.
func (o *Operation) ExternalDocs(keys Keys, fn func(*Node)) (*Node, error) {
	if err := o.require("ExternalDocs", openAPI); err != nil {
		return nil, err
	}
	docs, err := spawn[Node](&o.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	o.data.Set("externalDocs", docs)
	return docs, nil
}

// Security appends a security requirement.
func (o *Operation) Security(keys Keys, fn func(*Node)) (*Node, error) {
	if err := o.require("Security", openAPI); err != nil {
		return nil, err
	}
	req, err := spawn[Node](&o.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	o.appendTo("security", req)
	return req, nil
}

// RequestBody sets the 3.0 request body.
func (o *Operation) RequestBody(keys Keys, fn func(*RequestBody)) (*RequestBody, error) {
	if err := o.require("RequestBody", oas3Only); err != nil {
		return nil, err
	}
	body, err := spawn[RequestBody](&o.Node, KindRequestBody, keys, fn)
	if err != nil {
		return nil, err
	}
	o.data.Set("requestBody", body)
	return body, nil
}

// Callback declares a 3.0 callback by name.
func (o *Operation) Callback(name string, keys Keys, fn func(*Callback)) (*Callback, error) {
	if err := o.require("Callback", oas3Only); err != nil {
		return nil, err
	}
	cb, err := spawn[Callback](&o.Node, KindCallback, keys, fn)
	if err != nil {
		return nil, err
	}
	o.section("callbacks").Set(name, cb)
	return cb, nil
}

// Callback maps runtime expressions to the path items invoked for them.
type Callback struct {
	Node
}

// Destination declares the path item called for a runtime expression such
// as "{$request.body#/webhook_url}".
func (c *Callback) Destination(expression string, fn func(*Path)) (*Path, error) {
	dest, err := spawn[Path](&c.Node, KindPath, nil, fn)
	if err != nil {
		return nil, err
	}
	c.data.Set(expression, dest)
	return dest, nil
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Node
}

// Schema sets the parameter's schema.
func (p *Parameter) Schema(keys Keys, fn func(*Schema)) (*Schema, error) {
	if err := p.require("Schema", openAPI); err != nil {
		return nil, err
	}
	s, err := spawn[Schema](&p.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	p.data.Set("schema", s)
	return s, nil
}

// Items sets the 2.0 items of an array-typed, non-body parameter.
func (p *Parameter) Items(keys Keys, fn func(*Items)) (*Items, error) {
	if err := p.require("Items", oas2Only); err != nil {
		return nil, err
	}
	items, err := spawn[Items](&p.Node, KindItems, keys, fn)
	if err != nil {
		return nil, err
	}
	p.data.Set("items", items)
	return items, nil
}
