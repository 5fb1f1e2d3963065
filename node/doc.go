// Package node implements the document tree that declarations build.
//
// Every fragment of a document is a [Node]: an insertion-ordered attribute
// map tagged with a dialect. Variants such as [Root], [Path], [Operation]
// and [Schema] embed Node and add child-builder operations. A child-builder
// creates a child in the parent's dialect, applies inline [Keys], runs the
// configure function once against the child, then stores it on the parent:
//
//	path := node.NewPath(dialect.OAS20, nil)
//	path.Operation("get", node.Keys{"summary": "List pets"}, func(op *node.Operation) {
//	    op.Response("200", node.Keys{"description": "pets"}, func(r *node.Response) {
//	        r.Schema(node.Keys{"$ref": "Pet"}, nil)
//	    })
//	})
//
// # Dialect gating
//
// Each operation declares the dialects in which it is legal. Calling it
// under any other dialect returns a [oaserrors.NotSupportedError] and
// leaves the node unchanged. Failures are also recorded on the [Errors]
// value shared by every node of a registry, so errors returned inside
// nested configure functions are not lost.
//
// # Serialization
//
// Serialize returns a tree of *ordered.Map[any], []any and scalars. Under
// 2.0 and 3.0 a "$ref" value that does not start with "#/" is rewritten to
// "#/definitions/<name>" or "#/components/schemas/<name>". Two variants
// have irregular shapes: a [Composition] (allOf, oneOf, anyOf) serializes
// to an array of its schemas, and a Swagger 1.2 [APIAuthorization]
// serializes to an array of its scopes.
package node
