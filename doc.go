// Package oasblocks builds API documentation documents from declarations
// scattered across many units of code.
//
// Each unit (a controller, a model file) owns a [registry.Registry] and
// declares fragments into it with nested builder callbacks: the root
// document, paths, schema definitions, and for the legacy format api
// declarations and models. Declaring the same path or schema twice in one
// unit merges the second declaration into the first. The aggregator then
// unions the registries of every unit, requires exactly one root, and the
// builder serializes the result.
//
// Three documentation formats are supported:
//   - Swagger 1.2: a resource listing plus one api declaration per resource
//   - OpenAPI 2.0: a single document with paths and definitions
//   - OpenAPI 3.0: a single document with paths and components
//
// # Quick Start
//
//	type PetController struct{ *registry.Registry }
//
//	pets := PetController{registry.New(registry.WithName("PetController"))}
//	pets.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
//		r.Info(node.Keys{"title": "Petstore", "version": "1.0.0"}, nil)
//	})
//	pets.Path("/pets", func(p *node.Path) {
//		p.Operation("get", node.Keys{"operationId": "listPets"}, func(op *node.Operation) {
//			op.Response("200", node.Keys{"description": "pets"}, func(r *node.Response) {
//				r.Schema(node.Keys{"$ref": "Pet"}, nil)
//			})
//		})
//	})
//
//	doc, err := builder.BuildRootDocument([]any{pets, models})
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := doc.MarshalJSON()
//
// A bare schema name under $ref is rewritten to "#/definitions/Pet" in 2.0
// and "#/components/schemas/Pet" in 3.0.
//
// # Packages
//
//   - node: the typed declaration tree and its serialization
//   - registry: per-unit declaration state and replay-merge
//   - aggregator: unions units, enforces one root, reports collisions
//   - builder: root documents, 1.2 api declarations, JSON/YAML output
//   - docserver: an http.Handler serving the built documents
//   - oaserrors: error types for errors.Is and errors.As
//
// The oasblocks command builds, lists and serves the bundled petstore units
// and exposes the same operations as MCP tools.
package oasblocks
