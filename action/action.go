// Package action defines the unit of application behaviour a controller dispatches to, the
// result variant it produces and the registry actions are resolved from by name.
package action

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/indigo-web/controller/http"
)

// Action is a named unit of application behaviour. It's invoked with the dispatch context and
// the positional arguments, and returns either a body, a fully-formed response or nothing.
type Action interface {
	Invoke(ctx *Context, args Args) (Result, error)
}

// Func is an adapter allowing the use of an ordinary function as an Action.
type Func func(ctx *Context, args Args) (Result, error)

func (f Func) Invoke(ctx *Context, args Args) (Result, error) {
	return f(ctx, args)
}

// ForwardFunc re-dispatches the current request to another action, reusing the same
// request and response.
type ForwardFunc func(name string, args Args) *http.Response

// Context is the state an action is invoked with. It lives as long as a single action call.
type Context struct {
	Request  *http.Request
	Response *http.Response
	// Controller is the name of the dispatching controller.
	Controller string
	// Action is the name being dispatched. For the missing action it's the name that
	// couldn't be resolved.
	Action string
	Log    logr.Logger
	// Data is handed to the view on the fallback render.
	Data    map[string]any
	forward ForwardFunc
}

// NewContext returns a context with a fresh data map and no forwarding capability.
func NewContext(req *http.Request, resp *http.Response) *Context {
	return &Context{
		Request:  req,
		Response: resp,
		Log:      logr.Discard(),
		Data:     make(map[string]any),
	}
}

// WithForward sets the function Forward delegates to.
func (c *Context) WithForward(fn ForwardFunc) *Context {
	c.forward = fn
	return c
}

// Context returns the request-scoped context.Context.
func (c *Context) Context() context.Context {
	if c.Request == nil {
		return context.Background()
	}

	return c.Request.Context()
}

// Set stores a value to be exposed to the view.
func (c *Context) Set(key string, value any) *Context {
	if c.Data == nil {
		c.Data = make(map[string]any)
	}

	c.Data[key] = value
	return c
}

// Get returns a previously stored view value.
func (c *Context) Get(key string) (value any, found bool) {
	value, found = c.Data[key]
	return value, found
}

// Forward passes the request to another action and returns the response it produced. The
// result can be returned as-is via Respond. If the context has no forwarding capability,
// the response is returned untouched.
func (c *Context) Forward(name string, args Args) *http.Response {
	if c.forward == nil {
		return c.Response
	}

	return c.forward(name, args)
}
