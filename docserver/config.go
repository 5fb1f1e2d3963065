package docserver

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/erraggy/oasblocks/aggregator"
	"github.com/erraggy/oasblocks/logging"
	"github.com/erraggy/oasblocks/oaserrors"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var basePathPattern = regexp.MustCompile(`^(/[^/?#\s]+)+$`)

// Config configures a Server.
type Config struct {
	// BasePath is the prefix the documents are served under, e.g. "/docs".
	// Empty serves from "/".
	BasePath string
	// DefaultFormat is used when a request asks for no format: "json"
	// (default) or "yaml".
	DefaultFormat string
	// CollisionStrategy resolves keys declared by more than one unit. Empty
	// means accept-right.
	CollisionStrategy string
	// Logger receives request and aggregation logs. Nil disables logging.
	Logger logging.Logger
}

// Validate checks the configuration.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.BasePath,
			validation.Match(basePathPattern).Error("must start with / and not end with /")),
		validation.Field(&c.DefaultFormat,
			validation.In(FormatJSON, FormatYAML).Error("must be one of json, yaml")),
		validation.Field(&c.CollisionStrategy,
			validation.In(strategies()...).Error("must be one of accept-right, accept-left, fail")),
	)
	if err != nil {
		return &oaserrors.ConfigError{Option: "docserver", Message: "invalid configuration", Cause: err}
	}
	return nil
}

func strategies() []any {
	valid := aggregator.ValidStrategies()
	out := make([]any, len(valid))
	for i, s := range valid {
		out[i] = s
	}
	return out
}

func (c Config) withDefaults() Config {
	if c.DefaultFormat == "" {
		c.DefaultFormat = FormatJSON
	}
	if c.CollisionStrategy == "" {
		c.CollisionStrategy = string(aggregator.StrategyAcceptRight)
	}
	c.Logger = logging.OrNop(c.Logger)
	return c
}
