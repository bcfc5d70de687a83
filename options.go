package controller

import (
	"github.com/go-logr/logr"
	"github.com/indigo-web/controller/action"
	"github.com/indigo-web/controller/config"
	"github.com/indigo-web/controller/transport"
	"github.com/indigo-web/controller/view"
)

// Option configures a controller on construction.
type Option func(*Controller)

// WithName sets the controller name, overriding the one from config. The name prefixes
// view template names.
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// WithConfig replaces the default config.
func WithConfig(cfg *config.Config) Option {
	return func(c *Controller) {
		if cfg != nil {
			c.cfg = cfg
		}
	}
}

// WithRegistry sets the registry actions are resolved from.
func WithRegistry(registry *action.Registry) Option {
	return func(c *Controller) {
		c.registry = registry
	}
}

// WithView sets the view used for fallback and error rendering.
func WithView(v view.View) Option {
	return func(c *Controller) {
		c.view = v
	}
}

// WithEmitter sets where responses are emitted to.
func WithEmitter(emitter transport.Emitter) Option {
	return func(c *Controller) {
		if emitter != nil {
			c.emitter = emitter
		}
	}
}

// WithMissingAction replaces the default behaviour on unresolved action names, which is
// a 404 Not Found error.
func WithMissingAction(a action.Action) Option {
	return func(c *Controller) {
		c.missing = a
	}
}

func WithLogger(log logr.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(c *Controller) {
		c.metrics = metrics
	}
}
