package registry

import "github.com/erraggy/oasblocks/dialect"

// Option configures a Registry.
type Option func(*config)

type config struct {
	name    string
	dialect dialect.Dialect
}

func applyOptions(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithName names the declaring unit. The name appears in logs and in
// collision reports.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithDialect fixes the dialect of the unit's paths and schemas. Without
// it they follow the unit's own root, or OpenAPI 2.0 when the unit has no
// 2.0 or 3.0 root.
func WithDialect(d dialect.Dialect) Option {
	return func(cfg *config) {
		cfg.dialect = d
	}
}
