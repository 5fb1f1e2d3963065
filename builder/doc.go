// Package builder turns the declarations of many units into a document.
//
// Units declare fragments through their registries (see package registry).
// The builder aggregates them (see package aggregator) and assembles the
// final JSON-compatible tree for the root's dialect.
//
// # Quick Start
//
//	type PetController struct{ *registry.Registry }
//
//	pets := PetController{registry.New(registry.WithName("PetController"))}
//	pets.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
//		r.Info(node.Keys{"title": "Pets", "version": "1.0.0"}, nil)
//	})
//	pets.Path("/pets", func(p *node.Path) {
//		p.Operation("get", node.Keys{"operationId": "listPets"}, nil)
//	})
//
//	doc, err := builder.BuildRootDocument([]any{pets})
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := doc.MarshalJSON()
//
// # Entry Points
//
//   - BuildRootDocument builds the 2.0 or 3.0 document, or the 1.2 resource listing.
//   - BuildAPIDeclaration builds one 1.2 api declaration with all models.
//   - ListResources names the 1.2 api declarations.
//
// Each call aggregates the units afresh and never mutates them, so calls
// may run concurrently once every unit has finished declaring.
//
// # Output
//
// A Document keeps declaration order. MarshalJSON and MarshalYAML encode
// it; WriteFile picks the format from the file extension.
package builder
