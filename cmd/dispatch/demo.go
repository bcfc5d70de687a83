package main

import (
	"fmt"
	"strings"

	"github.com/indigo-web/controller/action"
	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/status"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var users = []user{
	{ID: 1, Name: "alice"},
	{ID: 2, Name: "bob"},
	{ID: 3, Name: "carol"},
}

// demoRegistry returns actions of the users controller.
func demoRegistry() *action.Registry {
	registry := action.NewRegistry()

	registry.MustRegister("index", action.Func(func(ctx *action.Context, _ action.Args) (action.Result, error) {
		return action.Respond(ctx.Forward("list", nil)), nil
	}))

	registry.MustRegister("list", action.Func(func(*action.Context, action.Args) (action.Result, error) {
		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.Name)
		}

		return action.String(strings.Join(names, "\n")), nil
	}))

	registry.MustRegister("show", action.Func(func(ctx *action.Context, args action.Args) (action.Result, error) {
		id, ok := args.Int(0)
		if !ok {
			return action.Empty(), status.NewError(status.BadRequest, "user id must be an integer")
		}

		for _, u := range users {
			if u.ID == id {
				ctx.Log.V(1).Info("user found", "id", id)
				return action.Respond(http.NewResponse().JSON(u)), nil
			}
		}

		return action.Empty(), fmt.Errorf("user %d: %w", id, status.ErrNotFound)
	}))

	registry.MustRegister("greet", action.Func(func(ctx *action.Context, args action.Args) (action.Result, error) {
		name, ok := args.String(0)
		if !ok {
			name = "stranger"
		}

		ctx.Set("name", name)
		// rendered by the view
		return action.Empty(), nil
	}))

	registry.MustRegister("crash", action.Func(func(*action.Context, action.Args) (action.Result, error) {
		var u *user
		return action.String(u.Name), nil
	}))

	return registry
}
