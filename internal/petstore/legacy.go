package petstore

import (
	"github.com/erraggy/oasblocks/node"
)

// Legacy returns the Swagger 1.2 petstore: a resource listing and the pet,
// user and store api declarations with their models.
func Legacy() []any {
	return []any{legacyPetController(), legacyUserController(), legacyModels()}
}

func legacyPetController() *Controller {
	c := newController("PetController")

	c.Root(node.Keys{"swaggerVersion": "1.2"}, func(r *node.Root) {
		r.Set("apiVersion", "1.0.0")
		r.Info(node.Keys{"title": "Swagger Sample App"}, func(i *node.Info) {
			i.Set("description", "This is a sample server Petstore server.")
			i.Set("termsOfServiceUrl", "http://helloreverb.com/terms/")
			i.Apply(node.Keys{
				"contact":    "apiteam@wordnik.com",
				"license":    "Apache 2.0",
				"licenseUrl": "http://www.apache.org/licenses/LICENSE-2.0.html",
			})
		})
		r.API(node.Keys{"path": "/pet", "description": "Operations about pets"}, nil)
		r.API(nil, func(a *node.Node) {
			a.Set("path", "/user")
			a.Set("description", "Operations about user")
		})
		r.Authorization("oauth2", node.Keys{"type": "oauth2"}, func(a *node.ResourceListingAuthorization) {
			a.Scope(node.Keys{"scope": "email", "description": "Access to your email address"}, nil)
			a.Scope(nil, func(s *node.Node) {
				s.Set("scope", "pets")
				s.Set("description", "Access to your pets")
			})
			a.GrantType(node.GrantImplicit, node.Keys{"tokenName": "access_token"}, func(g *node.GrantType) {
				g.LoginEndpoint(node.Keys{"url": "http://petstore.swagger.wordnik.com/oauth/dialog"}, nil)
			})
			a.GrantType(node.GrantAuthorizationCode, nil, func(g *node.GrantType) {
				g.TokenRequestEndpoint(node.Keys{"clientSecretName": "client_secret"}, func(e *node.Node) {
					e.Set("url", "http://petstore.swagger.wordnik.com/oauth/requestToken")
					e.Set("clientIdName", "client_id")
				})
				g.TokenEndpoint(node.Keys{"tokenName": "access_code"}, func(e *node.Node) {
					e.Set("url", "http://petstore.swagger.wordnik.com/oauth/token")
				})
			})
		})
	})

	// Both declarations of "pet" merge into one api declaration, and the
	// two api blocks for /pet/{petId} fold into one entry.
	c.APIRoot("pet", node.Keys{"swaggerVersion": "1.2"}, func(d *node.APIDeclaration) {
		d.Set("apiVersion", "1.0.0")
		d.Set("basePath", "http://petstore.swagger.wordnik.com/api")
		d.Set("resourcePath", "/pet")
		d.Set("produces", []any{"application/json", "application/xml", "text/plain", "text/html"})
		d.API(node.Keys{"path": "/pet/{petId}"}, func(a *node.API) {
			a.Operation(node.Keys{"method": "GET"}, func(o *node.Operation) {
				o.Set("summary", "Find pet by ID")
				o.Set("notes", "Returns a pet based on ID")
				o.Set("type", "Pet")
				o.Set("nickname", "getPetById")
				o.Parameter(node.Keys{
					"paramType":   "path",
					"name":        "petId",
					"description": "ID of pet that needs to be fetched",
					"required":    true,
					"type":        "integer",
					"format":      "int64",
				}, nil)
				o.ResponseMessage(node.Keys{"code": 400, "message": "Invalid ID supplied"}, nil)
				o.ResponseMessage(node.Keys{"code": 404, "message": "Pet not found"}, nil)
			})
		})
	})
	c.APIRoot("pet", nil, func(d *node.APIDeclaration) {
		d.API(node.Keys{"path": "/pet/{petId}"}, func(a *node.API) {
			a.Operation(node.Keys{"method": "DELETE"}, func(o *node.Operation) {
				o.Set("summary", "Deletes a pet")
				o.Set("type", "void")
				o.Set("nickname", "deletePet")
				o.Authorization("oauth2", nil, func(auth *node.APIAuthorization) {
					auth.Scope(node.Keys{"scope": "test:anything", "description": "anything"}, nil)
				})
				o.Parameter(node.Keys{
					"paramType":   "path",
					"name":        "petId",
					"description": "Pet id to delete",
					"required":    true,
					"type":        "string",
				}, nil)
				o.ResponseMessage(node.Keys{"code": 400, "message": "Invalid pet value"}, nil)
			})
		})
		d.API(node.Keys{"path": "/pet/findByStatus"}, func(a *node.API) {
			a.Operation(node.Keys{"method": "GET"}, func(o *node.Operation) {
				o.Set("summary", "Finds Pets by status")
				o.Set("type", "array")
				o.Set("nickname", "findPetsByStatus")
				o.Items(node.Keys{"$ref": "Pet"}, nil)
				o.Parameter(node.Keys{
					"paramType":     "query",
					"name":          "status",
					"required":      true,
					"type":          "string",
					"defaultValue":  "available",
					"enum":          []any{"available", "pending", "sold"},
					"allowMultiple": true,
				}, nil)
			})
		})
	})

	return c
}

func legacyUserController() *Controller {
	c := newController("UserController")
	c.APIRoot("user", node.Keys{"swaggerVersion": "1.2"}, func(d *node.APIDeclaration) {
		d.Set("apiVersion", "1.0.0")
		d.Set("basePath", "http://petstore.swagger.wordnik.com/api")
		d.Set("resourcePath", "/user")
		d.API(node.Keys{"path": "/user/{username}"}, func(a *node.API) {
			a.Operation(node.Keys{"method": "GET"}, func(o *node.Operation) {
				o.Set("summary", "Get user by user name")
				o.Set("type", "User")
				o.Set("nickname", "getUserByName")
				o.Parameter(node.Keys{
					"paramType": "path",
					"name":      "username",
					"required":  true,
					"type":      "string",
				}, nil)
				o.ResponseMessage(node.Keys{"code": 404, "message": "User not found"}, nil)
			})
		})
	})
	c.Model("User", node.Keys{"id": "User"}, func(m *node.Model) {
		m.Set("required", []any{"id", "username"})
		m.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
		m.Property("username", node.Keys{"type": "string"}, nil)
		m.Property("email", node.Keys{"type": "string"}, nil)
	})
	return c
}

func legacyModels() *Controller {
	c := newController("PetModels")
	c.Model("Tag", node.Keys{"id": "Tag"}, func(m *node.Model) {
		m.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
		m.Property("name", node.Keys{"type": "string"}, nil)
	})
	c.Model("Pet", node.Keys{"id": "Pet"}, func(m *node.Model) {
		m.Set("required", []any{"id", "name"})
		m.Property("id", node.Keys{"type": "integer", "format": "int64", "description": "unique identifier for the pet"}, nil)
		m.Property("category", node.Keys{"$ref": "Category"}, nil)
		m.Property("name", node.Keys{"type": "string"}, nil)
		m.Property("tags", node.Keys{"type": "array"}, func(p *node.Property) {
			p.Items(node.Keys{"$ref": "Tag"}, nil)
		})
		m.Property("status", node.Keys{"type": "string", "enum": []any{"available", "pending", "sold"}}, nil)
	})
	c.Model("Category", node.Keys{"id": "Category"}, func(m *node.Model) {
		m.Property("id", node.Keys{"type": "integer", "format": "int64"}, nil)
		m.Property("name", node.Keys{"type": "string"}, nil)
	})
	return c
}
