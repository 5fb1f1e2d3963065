package petstore

import (
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/registry"
)

// OAS3 returns the OpenAPI 3.0 petstore: a controller declaring the root
// and paths, and two units declaring components.
func OAS3() []any {
	return []any{oas3PetController(), oas3Pet(), oas3ErrorModel()}
}

func oas3PetController() *Controller {
	c := newController("PetControllerV3")

	c.Root(node.Keys{"openapi": "3.0.0"}, func(r *node.Root) {
		r.Info(node.Keys{"version": "1.0.1"}, func(i *node.Info) {
			i.Set("title", "Swagger Petstore")
			i.Set("description", "A sample API that uses a petstore as an example to demonstrate features in the openapi-3.0 specification")
			i.Set("termsOfService", "http://helloreverb.com/terms/")
			i.Contact(node.Keys{"name": "Wordnik API Team"}, nil)
			i.License(node.Keys{"name": "MIT"}, nil)
		})
		r.Server(node.Keys{"url": "http://petstore.swagger.io/{version}"}, func(s *node.Server) {
			s.Variable("version", node.Keys{"default": "v1", "enum": []any{"v1", "v2"}}, nil)
		})
		r.Tag(node.Keys{"name": "dogs", "description": "Dogs"}, nil)
		r.Tag(node.Keys{"name": "cats", "description": "Cats"}, nil)
	})

	c.Path("/pets", func(p *node.Path) {
		p.Operation("get", nil, func(o *node.Operation) {
			o.Set("summary", "List all pets")
			o.Set("operationId", "listPets")
			o.Set("tags", []any{"pets"})
			o.ParameterRef("limit")
			o.Response("200", node.Keys{"description": "A paged array of pets"}, func(r *node.Response) {
				r.Header("x-next", node.Keys{"description": "A link to the next page of responses"}, func(h *node.Header) {
					h.Schema(node.Keys{"type": "string"}, nil)
				})
				r.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "Pets"}, nil)
					ct.Example("Rabbit", nil, func(e *node.Example) {
						e.Value(node.Keys{"id": 10, "name": "Rabbit"}, nil)
					})
					ct.Example("Cat", node.Keys{"$ref": "#/components/examples/Cat"}, nil)
				})
				r.Link("getPetById", node.Keys{"$ref": "#/components/links/GetPetById"}, nil)
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, errorContent)
		})
		p.Operation("post", nil, func(o *node.Operation) {
			o.Set("summary", "Create a pet")
			o.Set("operationId", "createPets")
			o.Set("tags", []any{"pets"})
			o.RequestBody(node.Keys{"description": "Pet to add to the store", "required": true}, func(b *node.RequestBody) {
				b.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "PetInput"}, nil)
				})
			})
			o.Response("201", node.Keys{"description": "New Pet"}, func(r *node.Response) {
				r.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "Pet"}, nil)
				})
				r.Link("getPetById", node.Keys{"operationId": "showPetById"}, func(l *node.Link) {
					l.Parameters(node.Keys{"petId": "$response.body#/id"}, nil)
					l.Set("description", "The `id` value returned in the response can be used as the `petId` parameter in `GET /pets/{petId}`.")
				})
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, errorContent)
		})
	})

	c.Path("/pets/{petId}", func(p *node.Path) {
		p.Parameter(petIDParameter(), func(param *node.Parameter) {
			param.Schema(node.Keys{"type": "string"}, nil)
		})
		p.Operation("get", nil, func(o *node.Operation) {
			o.Set("summary", "Info for a specific pet")
			o.Set("operationId", "showPetById")
			o.Set("tags", []any{"pets"})
			o.Response("200", node.Keys{"description": "Expected response to a valid request"}, func(r *node.Response) {
				r.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "Pet"}, nil)
				})
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, errorContent)
		})
	})

	c.Path("/pets/{petId}/purchase", func(p *node.Path) {
		p.Operation("post", nil, func(o *node.Operation) {
			o.Set("summary", "Purchase a specific pet")
			o.Set("operationId", "purchasePetById")
			o.Set("tags", []any{"pets"})
			o.Parameter(petIDParameter(), func(param *node.Parameter) {
				param.Schema(node.Keys{"type": "string"}, nil)
			})
			o.RequestBody(node.Keys{"description": "Pet order object", "required": true}, func(b *node.RequestBody) {
				b.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "PetOrderRequest"}, nil)
				})
			})
			o.Response("201", node.Keys{"description": "Expected response to a valid request"}, func(r *node.Response) {
				r.Content("application/json", nil, func(ct *node.Content) {
					ct.Schema(node.Keys{"$ref": "PetOrder"}, nil)
				})
			})
			o.Response("default", node.Keys{"description": "unexpected error"}, errorContent)
			o.Callback("orderUpdated", nil, func(cb *node.Callback) {
				cb.Destination("{$request.body#/webhook_url}", func(dest *node.Path) {
					dest.Operation("post", nil, func(o *node.Operation) {
						o.RequestBody(node.Keys{"required": true}, func(b *node.RequestBody) {
							b.Content("application/json", nil, func(ct *node.Content) {
								ct.Schema(node.Keys{"$ref": "OrderUpdated"}, nil)
							})
						})
						o.Response("200", node.Keys{"description": "The server must return an HTTP 200, otherwise delivery will be reattempted."}, nil)
					})
				})
			})
		})
	})

	return c
}

func petIDParameter() node.Keys {
	return node.Keys{
		"name":        "petId",
		"in":          "path",
		"required":    true,
		"description": "The id of the pet to retrieve",
	}
}

func errorContent(r *node.Response) {
	r.Content("application/json", nil, func(ct *node.Content) {
		ct.Schema(node.Keys{"$ref": "Error"}, nil)
	})
}

func oas3Pet() *Controller {
	c := newController("PetV3", registry.WithDialect(dialect.OAS30))
	c.Components(func(comp *node.Components) {
		comp.Schema("Pet", node.Keys{"required": []any{"id", "name"}}, func(s *node.Schema) {
			s.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
			s.Property("name", node.Keys{"type": "string"}, nil)
			s.Property("tag_ids", node.Keys{"type": "array", "example": []any{1, 2, 3}}, func(p *node.Property) {
				p.Items(node.Keys{"type": "integer", "format": "int64", "example": 1}, nil)
			})
		})
		comp.Schema("Pets", node.Keys{"type": "array"}, func(s *node.Schema) {
			s.Items(node.Keys{"$ref": "Pet"}, nil)
			s.Set("example", []any{
				map[string]any{"id": 10, "name": "Rover"},
				map[string]any{"id": 20, "name": "Felicity"},
			})
		})
		comp.Schema("PetInput", nil, func(s *node.Schema) {
			s.AllOf(func(all *node.Composition) {
				all.Schema(node.Keys{"$ref": "Pet"}, nil)
				all.Schema(node.Keys{"required": []any{"name"}}, nil)
			})
		})
		comp.Schema("PetOrderRequest", node.Keys{"required": []any{"phone_number"}}, func(s *node.Schema) {
			s.Property("phone_number", node.Keys{"type": "string"}, nil)
			s.Property("webhook_url", node.Keys{"type": "string"}, nil)
		})
		comp.Schema("PetOrder", node.Keys{"required": []any{"phone_number", "id", "status"}}, func(s *node.Schema) {
			s.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
			s.Property("phone_number", node.Keys{"type": "string"}, nil)
			s.Property("webhook_url", node.Keys{"type": "string"}, nil)
			s.Property("status", node.Keys{"type": "string"}, nil)
		})
		comp.Schema("OrderUpdated", node.Keys{"required": []any{"order_id", "status", "phone_number"}}, func(s *node.Schema) {
			s.Property("order_id", node.Keys{"type": "integer", "format": "int64"}, nil)
			s.Property("phone_number", node.Keys{"type": "string"}, nil)
			s.Property("status", node.Keys{"type": "string"}, nil)
			s.Example(node.Keys{"order_id": 123, "phone_number": "3125556666", "status": "complete"}, nil)
		})

		comp.Parameter("limit", node.Keys{
			"name":        "limit",
			"in":          "query",
			"description": "How many items to return at one time (max 100)",
			"required":    false,
		}, func(p *node.Parameter) {
			p.Schema(node.Keys{"type": "integer", "format": "int32"}, nil)
		})
		comp.Link("GetPetById", node.Keys{"operationId": "showPetById"}, func(l *node.Link) {
			l.Parameters(node.Keys{"petId": "$response.body#/id"}, nil)
		})
		comp.Example("PetExample", node.Keys{"summary": "An example pet response"}, func(e *node.Example) {
			e.Value(node.Keys{"id": 1, "name": "Rover"}, nil)
		})
		comp.Example("Cat", node.Keys{"summary": "An example cat response"}, func(e *node.Example) {
			e.Value(node.Keys{"id": 1, "name": "Felicity"}, nil)
		})
		comp.SecurityScheme("petstore_auth", node.Keys{"type": "oauth2"}, func(s *node.SecurityScheme) {
			s.Flow("implicit", node.Keys{"authorizationUrl": "http://petstore.swagger.io/oauth/dialog"}, func(f *node.OAuthFlow) {
				f.Scopes(node.Keys{"write:pets": "modify pets in your account", "read:pets": "read your pets"}, nil)
			})
		})
	})
	return c
}

func oas3ErrorModel() *Controller {
	c := newController("ErrorModelV3", registry.WithDialect(dialect.OAS30))
	c.Components(func(comp *node.Components) {
		comp.Schema("Error", node.Keys{"required": []any{"code", "message"}}, func(s *node.Schema) {
			s.Property("code", node.Keys{"type": "integer", "format": "int32"}, nil)
			s.Property("message", node.Keys{"type": "string"}, nil)
		})
	})
	return c
}
