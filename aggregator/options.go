package aggregator

import (
	"github.com/erraggy/oasblocks/logging"
	"github.com/erraggy/oasblocks/oaserrors"
)

// Option is a function that configures an aggregation.
type Option func(*config) error

type config struct {
	logger   logging.Logger
	strategy CollisionStrategy
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		logger:   logging.NopLogger{},
		strategy: StrategyAcceptRight,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used to report skipped units and collisions.
func WithLogger(l logging.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logging.OrNop(l)
		return nil
	}
}

// WithCollisionStrategy sets how keys declared by more than one unit are
// resolved. The default is StrategyAcceptRight.
func WithCollisionStrategy(s CollisionStrategy) Option {
	return func(cfg *config) error {
		if !IsValidStrategy(string(s)) {
			return &oaserrors.ConfigError{
				Option:  "collision strategy",
				Value:   string(s),
				Message: "must be one of accept-right, accept-left, fail",
			}
		}
		cfg.strategy = s
		return nil
	}
}
