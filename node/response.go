package node

// Response describes a single response of an operation.
type Response struct {
	Node
}

// Schema sets the 2.0 response body schema.
func (r *Response) Schema(keys Keys, fn func(*Schema)) (*Schema, error) {
	if err := r.require("Schema", oas2Only); err != nil {
		return nil, err
	}
	s, err := spawn[Schema](&r.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	r.data.Set("schema", s)
	return s, nil
}

// Example declares a 2.0 example keyed by MIME type.
func (r *Response) Example(mime string, keys Keys, fn func(*Node)) (*Node, error) {
	if err := r.require("Example", oas2Only); err != nil {
		return nil, err
	}
	ex, err := spawn[Node](&r.Node, KindExample, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("examples").Set(mime, ex)
	return ex, nil
}

// Header declares a response header by name.
func (r *Response) Header(name string, keys Keys, fn func(*Header)) (*Header, error) {
	if err := r.require("Header", openAPI); err != nil {
		return nil, err
	}
	h, err := spawn[Header](&r.Node, KindHeader, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("headers").Set(name, h)
	return h, nil
}

// Content declares a 3.0 media type by name, e.g. "application/json".
func (r *Response) Content(media string, keys Keys, fn func(*Content)) (*Content, error) {
	return content(&r.Node, media, keys, fn)
}

// Link declares a 3.0 link by name.
func (r *Response) Link(name string, keys Keys, fn func(*Link)) (*Link, error) {
	if err := r.require("Link", oas3Only); err != nil {
		return nil, err
	}
	l, err := spawn[Link](&r.Node, KindLink, keys, fn)
	if err != nil {
		return nil, err
	}
	r.section("links").Set(name, l)
	return l, nil
}

// Header describes a response header.
type Header struct {
	Node
}

// Items sets the 2.0 items of an array-typed header.
func (h *Header) Items(keys Keys, fn func(*Items)) (*Items, error) {
	if err := h.require("Items", oas2Only); err != nil {
		return nil, err
	}
	items, err := spawn[Items](&h.Node, KindItems, keys, fn)
	if err != nil {
		return nil, err
	}
	h.data.Set("items", items)
	return items, nil
}

// Schema sets the 3.0 header schema.
func (h *Header) Schema(keys Keys, fn func(*Schema)) (*Schema, error) {
	if err := h.require("Schema", oas3Only); err != nil {
		return nil, err
	}
	s, err := spawn[Schema](&h.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	h.data.Set("schema", s)
	return s, nil
}

// RequestBody is a 3.0 request body.
type RequestBody struct {
	Node
}

// Content declares a media type by name.
func (b *RequestBody) Content(media string, keys Keys, fn func(*Content)) (*Content, error) {
	return content(&b.Node, media, keys, fn)
}

func content(parent *Node, media string, keys Keys, fn func(*Content)) (*Content, error) {
	if err := parent.require("Content", oas3Only); err != nil {
		return nil, err
	}
	c, err := spawn[Content](parent, KindContent, keys, fn)
	if err != nil {
		return nil, err
	}
	parent.section("content").Set(media, c)
	return c, nil
}

// Content is a 3.0 media type object.
type Content struct {
	Node
}

// Schema sets the media type's schema.
func (c *Content) Schema(keys Keys, fn func(*Schema)) (*Schema, error) {
	s, err := spawn[Schema](&c.Node, KindSchema, keys, fn)
	if err != nil {
		return nil, err
	}
	c.data.Set("schema", s)
	return s, nil
}

// Example declares a named example.
func (c *Content) Example(name string, keys Keys, fn func(*Example)) (*Example, error) {
	ex, err := spawn[Example](&c.Node, KindExample, keys, fn)
	if err != nil {
		return nil, err
	}
	c.section("examples").Set(name, ex)
	return ex, nil
}

// Example is a 3.0 example object.
type Example struct {
	Node
}

// Value sets the embedded example value.
func (e *Example) Value(keys Keys, fn func(*Node)) (*Node, error) {
	if err := e.require("Value", oas3Only); err != nil {
		return nil, err
	}
	v, err := spawn[Node](&e.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	e.data.Set("value", v)
	return v, nil
}

// Link is a 3.0 link object.
type Link struct {
	Node
}

// Parameters sets the map of link parameters.
func (l *Link) Parameters(keys Keys, fn func(*Node)) (*Node, error) {
	p, err := spawn[Node](&l.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	l.data.Set("parameters", p)
	return p, nil
}
