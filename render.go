package controller

import (
	"errors"
	"strconv"

	"github.com/indigo-web/controller/http/mime"
	"github.com/indigo-web/controller/http/status"
	"github.com/indigo-web/controller/view"
	json "github.com/json-iterator/go"
	"go.uber.org/multierr"
)

// RenderError renders the error into a human-readable body. The view renders it if it
// implements view.ErrorView, otherwise (or if the view fails) the built-in formatter is
// used, producing JSON for clients accepting it and plain text for the rest. RenderError
// never fails: if nothing could render the error, config.Errors.Fallback is returned.
func (c *Controller) RenderError(err error) string {
	body, _ := c.renderError(err)
	return body
}

func (c *Controller) renderError(err error) (body string, contentType mime.MIME) {
	if body, ok := c.renderErrorView(err); ok {
		return body, mime.HTML
	}

	if body, contentType, ok := c.formatError(err); ok {
		return body, contentType
	}

	return c.cfg.Errors.Fallback, mime.Plain
}

func (c *Controller) renderErrorView(err error) (body string, ok bool) {
	errorView, isErrorView := c.view.(view.ErrorView)
	if !isErrorView {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error(err, "error view panicked, using the built-in formatter", "panic", r)
			body, ok = "", false
		}
	}()

	body, renderErr := errorView.RenderError(c.state(), err)
	if renderErr != nil {
		c.log.Error(multierr.Combine(err, renderErr), "error view failed, using the built-in formatter")
		return "", false
	}

	return body, true
}

type errorBody struct {
	Code    status.Code `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"error,omitempty"`
}

func (c *Controller) formatError(err error) (body string, contentType mime.MIME, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error(err, "built-in error formatter panicked", "panic", r)
			body, contentType, ok = "", "", false
		}
	}()

	code := status.CodeOf(err, c.cfg.Errors.Code)
	payload := errorBody{
		Code:    code,
		Status:  string(status.Text(code)),
		Message: c.publicMessage(err),
	}

	if c.acceptsJSON() {
		encoded, jsonErr := json.ConfigDefault.Marshal(payload)
		if jsonErr != nil {
			c.log.Error(multierr.Combine(err, jsonErr), "failed to encode the error")
			return "", "", false
		}

		return string(encoded), mime.JSON, true
	}

	if len(payload.Message) == 0 {
		return payload.String(), mime.Plain, true
	}

	return payload.String() + ": " + payload.Message, mime.Plain, true
}

// acceptsJSON reports whether any of the request's Accept headers lists JSON.
func (c *Controller) acceptsJSON() bool {
	if c.request == nil || c.request.Headers == nil {
		return false
	}

	for accept := range c.request.Headers.Values("Accept") {
		if mime.Accepts(accept, mime.JSON) {
			return true
		}
	}

	return false
}

func (e errorBody) String() string {
	return strconv.Itoa(int(e.Code)) + " " + e.Status
}

// publicMessage returns the error message safe to show to clients. Messages of HTTP errors
// are meant for clients, others are shown only if configured so.
func (c *Controller) publicMessage(err error) string {
	if c.cfg.Errors.ExposeMessages {
		return err.Error()
	}

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}

	return ""
}
