package registry

import (
	"github.com/kilianp07/plugkit/core/handle"
	"github.com/kilianp07/plugkit/core/logger"
)

// loggerIface keeps the option surface decoupled from concrete loggers.
type loggerIface = logger.Logger

type options struct {
	name      string
	log       loggerIface
	policy    handle.Policy
	policySet bool
	strict    bool
	obs       Observer
}

// Option configures a registry at construction time.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{log: logger.NopLogger{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithName labels the registry in logs, errors and observer callbacks.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithPolicy forces the ownership policy, overriding the handle.Owner trait.
func WithPolicy(p handle.Policy) Option {
	return func(o *options) {
		o.policy = p
		o.policySet = true
	}
}

// WithStrict makes duplicate registrations return ErrDuplicate instead of
// silently keeping the first factory.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithObserver installs callbacks fired on registration and construction.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.obs = obs }
}

// Observer receives registry events, typically to feed metrics.
// Implementations must be safe for concurrent use.
type Observer interface {
	Registered(registry, key string)
	Constructed(registry, key string, err error)
}
