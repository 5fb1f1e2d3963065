package node

import (
	"github.com/erraggy/oasblocks/oaserrors"
)

// Swagger 1.2 grant types.
const (
	GrantImplicit          = "implicit"
	GrantAuthorizationCode = "authorization_code"
)

// SecurityScheme is a 2.0 security definition or a 3.0 security scheme.
type SecurityScheme struct {
	Node
}

// Scopes sets the 2.0 OAuth2 scopes map.
func (s *SecurityScheme) Scopes(keys Keys, fn func(*Node)) (*Node, error) {
	if err := s.require("Scopes", oas2Only); err != nil {
		return nil, err
	}
	scopes, err := spawn[Node](&s.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	s.data.Set("scopes", scopes)
	return scopes, nil
}

// Flow declares a 3.0 OAuth flow, e.g. "implicit" or "clientCredentials".
func (s *SecurityScheme) Flow(name string, keys Keys, fn func(*OAuthFlow)) (*OAuthFlow, error) {
	if err := s.require("Flow", oas3Only); err != nil {
		return nil, err
	}
	flow, err := spawn[OAuthFlow](&s.Node, KindOAuthFlow, keys, fn)
	if err != nil {
		return nil, err
	}
	s.section("flows").Set(name, flow)
	return flow, nil
}

// OAuthFlow is a 3.0 OAuth flow object.
type OAuthFlow struct {
	Node
}

// Scopes sets the flow's scopes map.
func (f *OAuthFlow) Scopes(keys Keys, fn func(*Node)) (*Node, error) {
	scopes, err := spawn[Node](&f.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	f.data.Set("scopes", scopes)
	return scopes, nil
}

// ResourceListingAuthorization is a Swagger 1.2 authorization declared on
// the resource listing.
type ResourceListingAuthorization struct {
	Node
}

// Scope appends a scope.
func (a *ResourceListingAuthorization) Scope(keys Keys, fn func(*Node)) (*Node, error) {
	scope, err := spawn[Node](&a.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	a.appendTo("scopes", scope)
	return scope, nil
}

// GrantType declares the implicit or authorization_code grant type. Any
// other name is a ConfigError.
func (a *ResourceListingAuthorization) GrantType(name string, keys Keys, fn func(*GrantType)) (*GrantType, error) {
	if name != GrantImplicit && name != GrantAuthorizationCode {
		return nil, a.record(&oaserrors.ConfigError{
			Option:  "grant type",
			Value:   name,
			Message: "must be one of " + GrantImplicit + ", " + GrantAuthorizationCode,
		})
	}
	// The grant name must be known before fn runs.
	gt, err := spawn[GrantType](&a.Node, KindGrantType, keys, nil)
	if err != nil {
		return nil, err
	}
	gt.grant = name
	if fn != nil {
		fn(gt)
	}
	a.section("grantTypes").Set(name, gt)
	return gt, nil
}

// GrantType is a Swagger 1.2 implicit or authorization_code grant.
type GrantType struct {
	Node
	grant string
}

// Grant returns the grant type name.
func (g *GrantType) Grant() string { return g.grant }

// LoginEndpoint sets the login endpoint of an implicit grant.
func (g *GrantType) LoginEndpoint(keys Keys, fn func(*Node)) (*Node, error) {
	return g.endpoint(GrantImplicit, "loginEndpoint", keys, fn)
}

// TokenRequestEndpoint sets the token request endpoint of an
// authorization_code grant.
func (g *GrantType) TokenRequestEndpoint(keys Keys, fn func(*Node)) (*Node, error) {
	return g.endpoint(GrantAuthorizationCode, "tokenRequestEndpoint", keys, fn)
}

// TokenEndpoint sets the token endpoint of an authorization_code grant.
func (g *GrantType) TokenEndpoint(keys Keys, fn func(*Node)) (*Node, error) {
	return g.endpoint(GrantAuthorizationCode, "tokenEndpoint", keys, fn)
}

func (g *GrantType) endpoint(grant, key string, keys Keys, fn func(*Node)) (*Node, error) {
	if g.grant != grant {
		return nil, g.record(&oaserrors.ConfigError{
			Option:  key,
			Value:   g.grant,
			Message: "only valid for the " + grant + " grant type",
		})
	}
	ep, err := spawn[Node](&g.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	g.data.Set(key, ep)
	return ep, nil
}

// APIAuthorizations holds the Swagger 1.2 authorizations of an operation.
type APIAuthorizations struct {
	Node
}

// Authorization declares an authorization by name. The first declaration
// wins; later ones return it unchanged.
func (a *APIAuthorizations) Authorization(name string, keys Keys, fn func(*APIAuthorization)) (*APIAuthorization, error) {
	if cur, ok := a.data.Get(name); ok {
		if existing, ok := cur.(*APIAuthorization); ok {
			return existing, nil
		}
	}
	auth, err := spawn[APIAuthorization](&a.Node, KindAPIAuthorization, keys, fn)
	if err != nil {
		return nil, err
	}
	a.data.Set(name, auth)
	return auth, nil
}

// APIAuthorization is a Swagger 1.2 operation authorization. On the wire
// it is an array of scope objects, not an object.
type APIAuthorization struct {
	Node
	scopes []any
}

// Scope appends a scope.
func (a *APIAuthorization) Scope(keys Keys, fn func(*Node)) (*Node, error) {
	scope, err := spawn[Node](&a.Node, KindNode, keys, fn)
	if err != nil {
		return nil, err
	}
	a.scopes = append(a.scopes, scope)
	return scope, nil
}

// Serialize returns the scopes as an array.
func (a *APIAuthorization) Serialize() any {
	return a.wrap(serializeValue(a.scopes))
}
