package registry

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/oaserrors"
)

func toPlain(t *testing.T, s node.Serializer) map[string]any {
	t.Helper()
	data, err := json.Marshal(s.Serialize())
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestPathReplayMerge(t *testing.T) {
	reg := New()
	first := reg.Path("/pets", func(p *node.Path) {
		p.Set("summary", "a")
		p.Parameter(node.Keys{"name": "limit", "in": "query"}, nil)
	})
	second := reg.Path("/pets", func(p *node.Path) {
		p.Set("description", "b")
		p.Parameter(node.Keys{"name": "offset", "in": "query"}, nil)
	})
	assert.Same(t, first, second)

	snap := reg.Snapshot()
	require.Equal(t, 1, snap.Paths.Len())

	out := toPlain(t, first)
	assert.Equal(t, "a", out["summary"])
	assert.Equal(t, "b", out["description"])
	assert.Len(t, out["parameters"], 2, "list attributes accumulate across replays")
}

func TestPathScalarOverwrite(t *testing.T) {
	reg := New()
	reg.Path("/pets", func(p *node.Path) { p.Set("summary", "first") })
	p := reg.Path("/pets", func(p *node.Path) { p.Set("summary", "second") })
	assert.Equal(t, "second", toPlain(t, p)["summary"])
}

func TestSchemaReplayMerge(t *testing.T) {
	reg := New()
	reg.Schema("Pet", node.Keys{"required": []string{"id"}}, func(s *node.Schema) {
		s.Property("id", node.Keys{"type": "integer"}, nil)
	})
	s := reg.Schema("Pet", node.Keys{"required": []string{"name"}}, func(s *node.Schema) {
		s.Property("name", node.Keys{"type": "string"}, nil)
	})

	out := toPlain(t, s)
	assert.Equal(t, []any{"id"}, out["required"], "keys only apply on the first declaration")
	props := out["properties"].(map[string]any)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "name")
}

func TestRootFirstWins(t *testing.T) {
	reg := New()
	root := reg.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
		r.Info(node.Keys{"title": "first"}, nil)
	})
	again := reg.Root(node.Keys{"swagger": "2.0"}, func(r *node.Root) {
		t.Fatal("a second root declaration must not run")
	})
	assert.Same(t, root, again)
	assert.Same(t, root, reg.Snapshot().Root)
}

func TestDialect(t *testing.T) {
	t.Run("defaults to 2.0", func(t *testing.T) {
		assert.Equal(t, dialect.OAS20, New().Dialect())
	})

	t.Run("follows a 3.0 root", func(t *testing.T) {
		reg := New()
		reg.Root(node.Keys{"openapi": "3.0.0"}, nil)
		assert.Equal(t, dialect.OAS30, reg.Dialect())
		p := reg.Path("/pets", nil)
		d, err := p.Dialect()
		require.NoError(t, err)
		assert.Equal(t, dialect.OAS30, d)
	})

	t.Run("paths before a 3.0 root are recorded", func(t *testing.T) {
		reg := New(WithName("PetController"))
		p := reg.Path("/pets", nil)
		reg.Root(node.Keys{"openapi": "3.0.0"}, nil)

		d, err := p.Dialect()
		require.NoError(t, err)
		assert.Equal(t, dialect.OAS20, d, "the path keeps the dialect it was declared in")
		require.Error(t, reg.Err())
		assert.True(t, errors.Is(reg.Err(), oaserrors.ErrDeclaration))
		assert.Contains(t, reg.Err().Error(), "before the 3.0 root")
	})

	t.Run("schemas before a 2.0 root are fine", func(t *testing.T) {
		reg := New()
		reg.Schema("Pet", nil, nil)
		reg.Root(node.Keys{"swagger": "2.0"}, nil)
		assert.NoError(t, reg.Err())
	})

	t.Run("explicit option allows any order", func(t *testing.T) {
		reg := New(WithDialect(dialect.OAS30))
		reg.Schema("Pet", nil, nil)
		reg.Root(node.Keys{"openapi": "3.0.0"}, nil)
		assert.NoError(t, reg.Err())
	})

	t.Run("ignores a legacy root", func(t *testing.T) {
		reg := New()
		reg.Root(node.Keys{"swaggerVersion": "1.2"}, nil)
		assert.Equal(t, dialect.OAS20, reg.Dialect())
	})

	t.Run("explicit option wins", func(t *testing.T) {
		reg := New(WithDialect(dialect.OAS30), WithName("PetV3"))
		reg.Root(node.Keys{"swagger": "2.0"}, nil)
		assert.Equal(t, dialect.OAS30, reg.Dialect())
		assert.Equal(t, "PetV3", reg.Name())
		assert.Equal(t, "PetV3", reg.Snapshot().Name)
	})
}

func TestAPIRootReplayMerge(t *testing.T) {
	reg := New()
	reg.APIRoot("pets", node.Keys{"swaggerVersion": "1.2", "resourcePath": "/pets"}, func(a *node.APIDeclaration) {
		a.API(node.Keys{"path": "/pets"}, func(api *node.API) {
			api.Operation(node.Keys{"method": "GET"}, nil)
		})
	})
	decl := reg.APIRoot("pets", node.Keys{"resourcePath": "/ignored"}, func(a *node.APIDeclaration) {
		a.API(node.Keys{"path": "/pets"}, func(api *node.API) {
			api.Operation(node.Keys{"method": "POST"}, nil)
		})
		a.API(node.Keys{"path": "/pets/{petId}"}, nil)
	})

	out := toPlain(t, decl)
	assert.Equal(t, "/pets", out["resourcePath"])
	apis := out["apis"].([]any)
	require.Len(t, apis, 2)
	assert.Len(t, apis[0].(map[string]any)["operations"], 2)
	assert.Equal(t, 1, reg.Snapshot().APIs.Len())
}

func TestModelFirstWins(t *testing.T) {
	reg := New()
	first := reg.Model("Pet", node.Keys{"id": "Pet"}, nil)
	second := reg.Model("Pet", node.Keys{"id": "Other"}, nil)
	assert.Same(t, first, second)
	assert.Equal(t, "Pet", toPlain(t, reg.Snapshot().Models)["Pet"].(map[string]any)["id"])
}

func TestComponents(t *testing.T) {
	reg := New(WithDialect(dialect.OAS30))
	reg.Components(func(c *node.Components) {
		c.Schema("Pet", nil, func(s *node.Schema) {
			s.Property("id", nil, nil)
		})
	})
	c := reg.Components(func(c *node.Components) {
		c.Schema("Pet", nil, func(s *node.Schema) {
			s.Property("name", nil, nil)
		})
		c.Link("GetPetById", node.Keys{"operationId": "showPetById"}, nil)
	})

	snap := reg.Snapshot()
	assert.Same(t, c, snap.Components)
	require.Equal(t, 1, snap.Schemas.Len(), "component schemas land in the unit's schema map")
	pet, _ := snap.Schemas.Get("Pet")
	assert.Len(t, toPlain(t, pet)["properties"], 2)

	// Schema and Components.Schema share one map.
	same := reg.Schema("Pet", nil, nil)
	assert.Same(t, pet, same)
}

func TestSnapshotIsolation(t *testing.T) {
	reg := New()
	reg.Path("/a", nil)
	snap := reg.Snapshot()
	snap.Paths.Set("/b", node.NewPath(dialect.OAS20, nil))

	assert.Equal(t, 1, reg.Snapshot().Paths.Len())
	assert.Nil(t, snap.Root)
	assert.Nil(t, snap.Models)
}

func TestErr(t *testing.T) {
	reg := New()
	assert.NoError(t, reg.Err())

	reg.Path("/pets", func(p *node.Path) {
		_, err := p.Operation("fetch", nil, nil)
		assert.Error(t, err)
	})
	assert.ErrorIs(t, reg.Err(), oaserrors.ErrConfig)
}

func TestDeclarer(t *testing.T) {
	var d Declarer = New()
	assert.NotNil(t, d.Declarations())
}
