// Package pongo implements view.View on top of pongo2 (Django-syntax) templates.
package pongo

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/indigo-web/controller/http/status"
	"github.com/indigo-web/controller/view"
)

var (
	_ view.View      = (*Engine)(nil)
	_ view.ErrorView = (*Engine)(nil)
)

var ErrNoTemplates = errors.New("pongo: need to provide either base dir or fs.FS")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir       string
	templates     fs.FS
	extension     string
	errorTemplate string
	globals       map[string]any
}

// WithBaseDir makes the engine load templates from a base directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS makes the engine load templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default .tpl template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithErrorTemplate overrides the generic error template name. Before it, the
// errors/<code> template is tried.
func WithErrorTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.errorTemplate = trimmed
		}
	}
}

// WithGlobals seeds values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders templates named after the dispatched controller and action. Compiled
// templates are cached, so a single engine should be shared between controllers.
type Engine struct {
	mu sync.RWMutex

	set           *pongo2.TemplateSet
	templates     map[string]*pongo2.Template
	ext           string
	errorTemplate string
}

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension:     ".tpl",
		errorTemplate: "errors/error",
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, ErrNoTemplates
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	set := pongo2.NewSet("controller", loaders...)
	set.Globals = make(pongo2.Context, len(cfg.globals))
	set.Globals.Update(cfg.globals)

	return &Engine{
		set:           set,
		templates:     make(map[string]*pongo2.Template),
		ext:           cfg.extension,
		errorTemplate: cfg.errorTemplate,
	}, nil
}

// Render executes the template named by the state.
func (e *Engine) Render(state *view.State) (string, error) {
	if state == nil {
		return "", errors.New("pongo: nil state")
	}

	return e.execute(state.Template, stateContext(state))
}

// RenderError executes errors/<code> template, or the generic error template if the former
// is missing or fails.
func (e *Engine) RenderError(state *view.State, err error) (string, error) {
	if state == nil {
		state = new(view.State)
	}

	ctx := stateContext(state)
	code := status.CodeOf(err, state.Code)
	if !status.IsError(code) {
		code = status.InternalServerError
	}
	ctx["code"] = int(code)
	ctx["status"] = string(status.Text(code))
	ctx["error"] = err.Error()

	out, renderErr := e.execute("errors/"+strconv.Itoa(int(code)), ctx)
	if renderErr == nil {
		return out, nil
	}

	return e.execute(e.errorTemplate, ctx)
}

func (e *Engine) execute(name string, ctx pongo2.Context) (string, error) {
	tmpl, err := e.template(name + e.ext)
	if err != nil {
		return "", err
	}

	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", name, err)
	}

	return out, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

func stateContext(state *view.State) pongo2.Context {
	ctx := make(pongo2.Context, len(state.Data)+4)
	for key, value := range state.Data {
		ctx[key] = value
	}

	ctx["controller"] = state.Controller
	ctx["action"] = state.Action
	ctx["request"] = state.Request
	ctx["code"] = int(state.Code)

	return ctx
}
