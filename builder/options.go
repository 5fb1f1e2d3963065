package builder

import (
	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/logging"
)

// Option configures a build.
type Option func(*config)

type config struct {
	logger   logging.Logger
	strategy aggregator.CollisionStrategy
}

func applyOptions(opts ...Option) *config {
	cfg := &config{
		logger:   logging.NopLogger{},
		strategy: aggregator.StrategyAcceptRight,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) aggregatorOptions() []aggregator.Option {
	return []aggregator.Option{
		aggregator.WithLogger(c.logger),
		aggregator.WithCollisionStrategy(c.strategy),
	}
}

// WithLogger sets the logger passed to the aggregator.
func WithLogger(l logging.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logging.OrNop(l)
	}
}

// WithCollisionStrategy sets how keys declared by more than one unit are
// resolved. An invalid strategy makes the build fail with a ConfigError.
func WithCollisionStrategy(s aggregator.CollisionStrategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}
