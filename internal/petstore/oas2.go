package petstore

import (
	"github.com/erraggy/oasblocks/node"
)

// OAS2 returns the OpenAPI 2.0 petstore: a controller declaring the root
// and paths, and two units declaring the definitions.
func OAS2() []any {
	return []any{oas2PetController(), oas2Pet(), oas2ErrorModel()}
}

func oas2PetController() *Controller {
	c := newController("PetControllerV2")

	c.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
		r.Info(nil, func(i *node.Info) {
			i.Set("version", "1.0.0")
			i.Set("title", "Swagger Petstore")
			i.Set("description", "A sample API that uses a petstore as an example to demonstrate features in the swagger-2.0 specification")
			i.Set("termsOfService", "http://helloreverb.com/terms/")
			i.Contact(node.Keys{"name": "Wordnik API Team"}, nil)
			i.License(node.Keys{"name": "MIT"}, nil)
		})
		r.Set("host", "petstore.swagger.wordnik.com")
		r.Set("basePath", "/api")
		r.Set("schemes", []any{"http"})
		r.Set("consumes", []any{"application/json"})
		r.Set("produces", []any{"application/json"})
		r.Parameter("limit", node.Keys{
			"name":        "limit",
			"in":          "query",
			"description": "maximum number of results to return",
			"required":    false,
			"type":        "integer",
			"format":      "int32",
		}, nil)
		r.SecurityDefinition("petstore_auth", node.Keys{
			"type":             "oauth2",
			"authorizationUrl": "http://petstore.swagger.wordnik.com/oauth/dialog",
			"flow":             "implicit",
		}, func(s *node.SecurityScheme) {
			s.Scopes(node.Keys{"write:pets": "modify pets in your account", "read:pets": "read your pets"}, nil)
		})
		r.Tag(node.Keys{"name": "pet", "description": "Pets operations"}, nil)
	})

	c.Path("/pets", func(p *node.Path) {
		p.Operation("get", nil, func(o *node.Operation) {
			o.Set("description", "Returns all pets from the system that the user has access to")
			o.Set("operationId", "findPets")
			o.Set("produces", []any{"application/json", "application/xml", "text/xml", "text/html"})
			o.Parameter(node.Keys{
				"name":             "tags",
				"in":               "query",
				"description":      "tags to filter by",
				"required":         false,
				"type":             "array",
				"collectionFormat": "csv",
			}, func(param *node.Parameter) {
				param.Items(node.Keys{"type": "string"}, nil)
			})
			o.ParameterRef("limit")
			o.Response("200", node.Keys{"description": "pet response"}, func(r *node.Response) {
				r.Schema(node.Keys{"type": "array"}, func(s *node.Schema) {
					s.Items(node.Keys{"$ref": "pet"}, nil)
				})
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "errorModel"}, nil)
			})
		})
		p.Operation("post", nil, func(o *node.Operation) {
			o.Set("description", "Creates a new pet in the store.  Duplicates are allowed")
			o.Set("operationId", "addPet")
			o.Set("produces", []any{"application/json"})
			o.Parameter(node.Keys{
				"name":        "pet",
				"in":          "body",
				"description": "Pet to add to the store",
				"required":    true,
			}, func(param *node.Parameter) {
				param.Schema(node.Keys{"$ref": "petInput"}, nil)
			})
			o.Response("200", node.Keys{"description": "pet response"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "pet"}, nil)
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "errorModel"}, nil)
			})
			o.Security(node.Keys{"petstore_auth": []any{"write:pets", "read:pets"}}, nil)
		})
	})

	// A second declaration of the same path merges into the first.
	c.Path("/pets/{id}", func(p *node.Path) {
		p.Operation("GET", nil, func(o *node.Operation) {
			o.Set("description", "Returns a user based on a single ID, if the user does not have access to the pet")
			o.Set("operationId", "findPetById")
			o.Set("produces", []any{"application/json", "application/xml", "text/xml", "text/html"})
			o.Parameter(idParameter("ID of pet to fetch"), nil)
			o.Response("200", node.Keys{"description": "pet response"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "pet"}, nil)
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "#/definitions/errorModel"}, nil)
			})
		})
	})
	c.Path("/pets/{id}", func(p *node.Path) {
		p.Operation("delete", nil, func(o *node.Operation) {
			o.Set("description", "deletes a single pet based on the ID supplied")
			o.Set("operationId", "deletePet")
			o.Parameter(idParameter("ID of pet to delete"), nil)
			o.Response("204", node.Keys{"description": "pet deleted"}, nil)
			o.Response("default", node.Keys{"description": "unexpected error"}, func(r *node.Response) {
				r.Schema(node.Keys{"$ref": "errorModel"}, nil)
			})
		})
	})

	return c
}

func idParameter(description string) node.Keys {
	return node.Keys{
		"name":        "id",
		"in":          "path",
		"description": description,
		"required":    true,
		"type":        "integer",
		"format":      "int64",
	}
}

func oas2Pet() *Controller {
	c := newController("PetV2")
	c.Schema("pet", node.Keys{"required": []any{"id", "name"}}, func(s *node.Schema) {
		s.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
		s.Property("name", node.Keys{"type": "string"}, nil)
		s.Property("tag", node.Keys{"type": "string"}, nil)
	})
	c.Schema("petInput", nil, func(s *node.Schema) {
		s.AllOf(func(all *node.Composition) {
			all.Schema(node.Keys{"$ref": "pet"}, nil)
			all.Schema(node.Keys{"required": []any{"name"}}, func(s *node.Schema) {
				s.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
			})
		})
	})
	return c
}

func oas2ErrorModel() *Controller {
	c := newController("ErrorModelV2")
	c.Schema("errorModel", node.Keys{"required": []any{"code", "message"}}, func(s *node.Schema) {
		s.Property("code", node.Keys{"type": "integer", "format": "int32"}, nil)
		s.Property("message", node.Keys{"type": "string"}, nil)
	})
	return c
}
