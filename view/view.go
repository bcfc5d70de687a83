// Package view defines the rendering capability a controller falls back to when an action
// produces no output, and renders errors with.
package view

import (
	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/status"
)

// View renders the current dispatch state into a response body.
type View interface {
	Render(state *State) (string, error)
}

// ErrorView is implemented by views able to render errors. Views that don't implement it
// leave error rendering to the controller's built-in formatter.
type ErrorView interface {
	RenderError(state *State, err error) (string, error)
}

// State is what a view renders.
type State struct {
	// Controller and Action are names of the dispatched controller and action.
	Controller, Action string
	// Template is the template name, derived from the controller and action names.
	Template string
	Request  *http.Request
	// Code is the response status code at the moment of rendering.
	Code status.Code
	// Data holds values set by actions.
	Data map[string]any
}

// TemplateName joins controller and action names into the template name. The controller name
// is omitted when empty.
func TemplateName(controller, action string) string {
	if len(controller) == 0 {
		return action
	}

	return controller + "/" + action
}
