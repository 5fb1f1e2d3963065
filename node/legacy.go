package node

import (
	"reflect"

	"github.com/erraggy/oasblocks/dialect"
)

// APIDeclaration is a Swagger 1.2 API declaration for one resource.
type APIDeclaration struct {
	Node
}

// NewAPIDeclaration creates an empty Swagger 1.2 API declaration.
func NewAPIDeclaration(errs *Errors) *APIDeclaration {
	return create[APIDeclaration](KindAPIDeclaration, dialect.Swagger12, errs)
}

// API declares an api block. Blocks are folded by the value of their own
// "path" attribute: when an earlier block has the same path, fn is replayed
// against it and the new block is discarded, so each path appears once.
func (a *APIDeclaration) API(keys Keys, fn func(*API)) (*API, error) {
	d, err := a.Dialect()
	if err != nil {
		return nil, a.record(err)
	}

	// Errors from the provisional block only count if it is kept.
	sink := a.errs.fork()
	candidate := create[API](KindAPI, d, sink)
	_ = candidate.Apply(keys)
	if fn != nil {
		fn(candidate)
	}
	path, _ := candidate.Get("path")

	cur, _ := a.data.Get("apis")
	list, _ := cur.([]any)
	for _, item := range list {
		existing, ok := item.(*API)
		if !ok {
			continue
		}
		if p, _ := existing.Get("path"); reflect.DeepEqual(p, path) {
			if fn != nil {
				fn(existing)
			}
			return existing, nil
		}
	}

	sink.commit()
	a.appendTo("apis", candidate)
	return candidate, nil
}

// API is a Swagger 1.2 api object: the operations on one path.
type API struct {
	Node
}

// Operation appends an operation.
func (a *API) Operation(keys Keys, fn func(*Operation)) (*Operation, error) {
	op, err := spawn[Operation](&a.Node, KindOperation, keys, fn)
	if err != nil {
		return nil, err
	}
	a.appendTo("operations", op)
	return op, nil
}
