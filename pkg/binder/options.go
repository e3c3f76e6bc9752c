package binder

import "github.com/dmitrymomot/validated/pkg/validator"

// DefaultMaxJSONSize is the default maximum size for JSON payloads (1MB).
const DefaultMaxJSONSize = 1 << 20

// Option configures a bind call.
type Option func(*config)

type config struct {
	registry    *validator.Registry
	maxBodySize int64
	strict      bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		registry:    validator.DefaultRegistry(),
		maxBodySize: DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRegistry resolves schemas from r instead of the default registry.
// Nil registries are ignored.
func WithRegistry(r *validator.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithMaxBodySize limits JSON payloads to n bytes. Non-positive values disable the limit.
func WithMaxBodySize(n int64) Option {
	return func(c *config) { c.maxBodySize = n }
}

// WithStrict rejects input keys the schema does not declare.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}
