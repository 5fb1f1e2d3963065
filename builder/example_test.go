package builder_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasblocks/builder"
	"github.com/erraggy/oasblocks/internal/petstore"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/registry"
)

func Example() {
	docs := registry.New(registry.WithName("ApiDocs"))
	docs.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
		r.Info(node.Keys{"title": "Pets", "version": "1.0.0"}, nil)
	})

	pets := registry.New(registry.WithName("PetController"))
	pets.Path("/pets", func(p *node.Path) {
		p.Operation("get", node.Keys{"operationId": "listPets"}, func(o *node.Operation) {
			o.Response("200", node.Keys{"description": "pets"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "Pet"}, nil)
			})
		})
	})
	pets.Schema("Pet", node.Keys{"type": "object"}, nil)

	doc, err := builder.BuildRootDocument([]any{docs, pets})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc.Value.Keys())
	ref := doc.Plain()["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)["schema"].(map[string]any)["$ref"]
	fmt.Println(ref)
	// Output:
	// [swagger info paths definitions]
	// #/definitions/Pet
}

func ExampleBuildAPIDeclaration() {
	_, err := builder.BuildAPIDeclaration("pet", petstore.OAS2())
	fmt.Println(errors.Is(err, oaserrors.ErrNotSupported))

	_, err = builder.BuildAPIDeclaration("store", petstore.Legacy())
	fmt.Println(err)
	// Output:
	// true
	// not found: api declaration named "store"
}

func ExampleListResources() {
	names, err := builder.ListResources(petstore.Legacy())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(names)
	// Output: [pet user]
}
