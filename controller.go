package controller

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-logr/logr"
	"github.com/indigo-web/controller/action"
	"github.com/indigo-web/controller/config"
	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/method"
	"github.com/indigo-web/controller/http/status"
	"github.com/indigo-web/controller/transport"
	"github.com/indigo-web/controller/view"
)

// Controller services a single request: it resolves actions by name, runs them and turns
// whatever they produced (or failed with) into the response. A controller is not safe for
// concurrent use and must be discarded after the request is served.
type Controller struct {
	name     string
	request  *http.Request
	response *http.Response
	view     view.View
	registry *action.Registry
	emitter  transport.Emitter
	missing  action.Action
	cfg      *config.Config
	log      logr.Logger
	metrics  *Metrics

	// data is shared by all the actions of the request and handed to the view
	data map[string]any
	// action and args are of the action currently being dispatched
	action string
	args   action.Args
	depth  int
}

// New returns a controller bound to the request and response. Nil request and response
// are replaced by empty ones.
func New(request *http.Request, response *http.Response, opts ...Option) *Controller {
	if request == nil {
		request = http.NewRequest(method.GET, "/")
	}

	if response == nil {
		response = http.NewResponse()
	}

	c := &Controller{
		request:  request,
		response: response,
		emitter:  transport.Nop,
		cfg:      config.Default(),
		log:      logr.Discard(),
		data:     make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.name) == 0 {
		c.name = c.cfg.Dispatch.Name
	}

	if c.registry == nil {
		c.registry = action.NewRegistry()
	}

	c.log = c.log.WithValues("controller", c.name)

	return c
}

// DispatchTo runs the action and makes the response out of its result. Unknown names are
// served by the missing action. Actions producing no output are rendered by the view. Any
// failure, including a missing view, becomes an error response rendered by RenderError.
// If emit is set, the final response is passed to the emitter exactly once.
//
// The returned response is always complete: DispatchTo never panics nor fails.
func (c *Controller) DispatchTo(name string, args action.Args, emit bool) *http.Response {
	c.dispatch(name, args, false)

	if emit {
		c.emit(name)
	}

	return c.response
}

// ForwardTo does the same as DispatchTo, except it never emits and always writes into
// the current response object, even if the action returned its own one. Actions may
// forward to each other at most config.Dispatch.MaxForwards levels deep.
//
// A failed forward leaves the error response in place. If the forwarding action ignores it
// and returns a body, only the body is replaced: the error status and content type stay.
func (c *Controller) ForwardTo(name string, args action.Args) *http.Response {
	c.ensureResponse()

	if c.depth >= c.cfg.Dispatch.MaxForwards {
		err := fmt.Errorf("%w: %s at depth %d", ErrForwardLoop, name, c.depth)
		c.log.Error(err, "forward rejected", "action", name)
		c.fail(err)
		c.metrics.observe(c.name, metricAction(c.registry, name), OutcomeError, 0)
		return c.response
	}

	c.depth++
	prevAction, prevArgs := c.action, c.args
	c.dispatch(name, args, true)
	c.action, c.args = prevAction, prevArgs
	c.depth--

	return c.response
}

// RunAction invokes the action with the controller's current state. The result and error are
// returned unmodified, nothing is recovered.
func (c *Controller) RunAction(a action.Action, args action.Args) (action.Result, error) {
	ctx := &action.Context{
		Request:    c.request,
		Response:   c.response,
		Controller: c.name,
		Action:     c.action,
		Log:        c.log.WithValues("action", c.action),
		Data:       c.data,
	}

	return a.Invoke(ctx.WithForward(c.ForwardTo), args)
}

// MissingAction is invoked instead of actions that couldn't be resolved. Unless replaced
// via WithMissingAction, it fails with ErrActionNotFound.
func (c *Controller) MissingAction() (action.Result, error) {
	if c.missing != nil {
		return c.RunAction(c.missing, c.args)
	}

	return action.Empty(), fmt.Errorf("%w: %s", ErrActionNotFound, c.action)
}

// RenderView renders the current state by the view. Fails with ErrViewUnavailable if no view
// is set.
func (c *Controller) RenderView() (string, error) {
	if c.view == nil {
		return "", ErrViewUnavailable
	}

	return c.view.Render(c.state())
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) Request() *http.Request {
	return c.request
}

func (c *Controller) SetRequest(request *http.Request) {
	c.request = request
}

func (c *Controller) Response() *http.Response {
	return c.response
}

func (c *Controller) SetResponse(response *http.Response) {
	c.response = response
}

// View returns the configured view, nil if there's none.
func (c *Controller) View() view.View {
	return c.view
}

// SetView replaces the view. Nil disables the view fallback.
func (c *Controller) SetView(v view.View) {
	c.view = v
}

// Data returns values exposed to the view. Actions fill it via action.Context.Set.
func (c *Controller) Data() map[string]any {
	return c.data
}

func (c *Controller) dispatch(name string, args action.Args, inPlace bool) {
	start := time.Now()
	c.ensureResponse()
	c.action, c.args = name, args

	outcome, err := c.run(name, args, inPlace)
	if err != nil {
		if code := status.CodeOf(err, c.cfg.Errors.Code); code < status.InternalServerError {
			c.log.V(1).Info("dispatch failed", "action", name, "code", code, "error", err.Error())
		} else {
			c.log.Error(err, "dispatch failed", "action", name)
		}

		c.fail(err)
		outcome = OutcomeError
	}

	c.metrics.observe(c.name, metricAction(c.registry, name), outcome, time.Since(start))
}

func (c *Controller) run(name string, args action.Args, inPlace bool) (outcome string, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error(nil, "recovered from panic", "action", name, "panic", r, "stack", string(debug.Stack()))
			outcome, err = OutcomeError, &ActionError{Action: name, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	var result action.Result

	if a, found := c.registry.Lookup(name); found {
		result, err = c.RunAction(a, args)
	} else {
		c.log.V(1).Info("action not found, invoking the missing action", "action", name)
		result, err = c.MissingAction()
	}

	if err != nil {
		return OutcomeError, &ActionError{Action: name, Err: err}
	}

	return c.apply(result, inPlace)
}

// apply coerces the action result into the response. Body and view results replace
// only the body, so the status, headers and content type set before are kept.
func (c *Controller) apply(result action.Result, inPlace bool) (outcome string, err error) {
	switch result.Kind() {
	case action.KindResponse:
		if inPlace {
			c.response.CopyFrom(result.Response())
		} else {
			c.response = result.Response()
		}

		return OutcomeResponse, nil
	case action.KindBody:
		c.response.String(result.Body())
		return OutcomeBody, nil
	default:
		body, err := c.RenderView()
		if err != nil {
			return OutcomeError, err
		}

		c.response.String(body)
		return OutcomeView, nil
	}
}

// fail replaces everything done to the response so far by the rendered error.
func (c *Controller) fail(err error) {
	c.response.Clear().Code(status.CodeOf(err, c.cfg.Errors.Code))
	body, contentType := c.renderError(err)
	c.response.ContentType(contentType).String(body)
}

// emit passes the response to the emitter. Emitter failures, panics included, are only
// logged: the response is final at this point.
func (c *Controller) emit(name string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrPanic, r)
			c.log.Error(err, "emitter panicked", "action", name, "stack", string(debug.Stack()))
			c.metrics.emitFailed(c.name)
		}
	}()

	if err := c.emitter.Emit(c.request, c.response); err != nil {
		c.log.Error(err, "failed to emit the response", "action", name)
		c.metrics.emitFailed(c.name)
	}
}

func (c *Controller) ensureResponse() {
	if c.response == nil {
		c.response = http.NewResponse()
	}
}

func (c *Controller) state() *view.State {
	c.ensureResponse()

	return &view.State{
		Controller: c.name,
		Action:     c.action,
		Template:   view.TemplateName(c.name, c.action),
		Request:    c.request,
		Code:       c.response.Reveal().Code,
		Data:       c.data,
	}
}

func metricAction(registry *action.Registry, name string) string {
	if _, found := registry.Lookup(name); !found {
		// names of missing actions come from clients, so they mustn't become label values
		return missingActionLabel
	}

	return name
}
