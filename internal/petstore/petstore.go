// Package petstore declares the Swagger Petstore sample API in each
// dialect. The units are used by tests, the CLI and the MCP server.
//
// Child-builder results are discarded throughout: a failing declaration
// is recorded on the unit's registry and surfaces when the units are
// aggregated.
package petstore

import (
	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/registry"
)

// Controller is a declaring unit.
type Controller struct {
	*registry.Registry
}

func newController(name string, opts ...registry.Option) *Controller {
	opts = append([]registry.Option{registry.WithName(name)}, opts...)
	return &Controller{Registry: registry.New(opts...)}
}

// Units returns freshly declared units for d.
func Units(d dialect.Dialect) ([]any, error) {
	switch d {
	case dialect.Swagger12:
		return Legacy(), nil
	case dialect.OAS20:
		return OAS2(), nil
	case dialect.OAS30:
		return OAS3(), nil
	default:
		return nil, &oaserrors.ConfigError{
			Option:  "dialect",
			Value:   d.String(),
			Message: "must be one of 1.2, 2.0, 3.0",
		}
	}
}
