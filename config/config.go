package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/controller/http/status"
	"gopkg.in/yaml.v3"
)

type (
	Dispatch struct {
		// Name is the controller name. It's used to derive view template names and
		// as a metrics label.
		Name string `yaml:"name" test:"nullable"`
		// MaxForwards limits how deep can actions forward to each other within a single
		// dispatch. Exceeding it is reported as 508 Loop Detected.
		MaxForwards int `yaml:"max_forwards"`
	}

	Errors struct {
		// Code is the response code for errors carrying none.
		Code status.Code `yaml:"code"`
		// Fallback is the body used when even the error rendering failed.
		Fallback string `yaml:"fallback"`
		// ExposeMessages includes messages of arbitrary errors into built-in error bodies.
		// Messages of status.HTTPError are always included, as they're meant for clients.
		ExposeMessages bool `yaml:"expose_messages" test:"nullable"`
	}

	Response struct {
		// DefaultHeaders are included into every emitted response, unless explicitly
		// overridden.
		DefaultHeaders map[string]string `yaml:"default_headers"`
	}

	Templates struct {
		// Dir is the directory templates are loaded from. Empty disables the view.
		Dir string `yaml:"dir" test:"nullable"`
		// Extension is appended to template names.
		Extension string `yaml:"extension"`
		// ErrorTemplate is rendered for errors without a dedicated errors/<code> template.
		ErrorTemplate string `yaml:"error_template"`
	}
)

// Config holds settings of a controller and its collaborators.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero values aren't meaningful defaults.
type Config struct {
	Dispatch  Dispatch  `yaml:"dispatch"`
	Errors    Errors    `yaml:"errors"`
	Response  Response  `yaml:"response"`
	Templates Templates `yaml:"templates"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Dispatch: Dispatch{
			MaxForwards: 10,
		},
		Errors: Errors{
			Code:           status.InternalServerError,
			Fallback:       "500 Internal Server Error",
			ExposeMessages: false,
		},
		Response: Response{
			DefaultHeaders: map[string]string{
				"Server": "indigo",
			},
		},
		Templates: Templates{
			Extension:     ".tpl",
			ErrorTemplate: "errors/error",
		},
	}
}

// FromYAML reads a YAML document and applies it over the defaults. Keys absent from the
// document keep their default values.
func FromYAML(r io.Reader) (*Config, error) {
	cfg := Default()

	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the YAML config file.
func Load(path string) (*Config, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fd.Close()

	return FromYAML(fd)
}

// Validate reports values the controller can't work with.
func (c *Config) Validate() error {
	switch {
	case c.Dispatch.MaxForwards < 0:
		return errors.New("config: dispatch.max_forwards must not be negative")
	case !status.IsError(c.Errors.Code):
		return fmt.Errorf("config: errors.code must be 4xx or 5xx, got %d", c.Errors.Code)
	case len(c.Errors.Fallback) == 0:
		return errors.New("config: errors.fallback must not be empty")
	}

	return nil
}
