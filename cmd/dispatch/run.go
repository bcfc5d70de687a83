package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/indigo-web/controller"
	"github.com/indigo-web/controller/action"
	"github.com/indigo-web/controller/config"
	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/method"
	"github.com/indigo-web/controller/transport"
	"github.com/indigo-web/controller/view"
	"github.com/indigo-web/controller/view/pongo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <action> [args...]",
	Short: "Dispatch the action and write the response to stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispatch(cmd, args[0], args[1:])
	},
}

func init() {
	runCmd.Flags().StringP("method", "X", "GET", "Request method")
	runCmd.Flags().String("path", "/users", "Request path")
	runCmd.Flags().StringArrayP("header", "H", nil, "Request header in the Key: Value form, may be repeated")
	runCmd.Flags().Bool("metrics", false, "Print dispatch metrics to stderr after the response")
	rootCmd.AddCommand(runCmd)
}

func runDispatch(cmd *cobra.Command, name string, rawArgs []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, sync, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer sync()

	request, err := newRequest(cmd)
	if err != nil {
		return err
	}

	v, err := newView(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := controller.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	args := make(action.Args, len(rawArgs))
	for i, arg := range rawArgs {
		args[i] = arg
	}

	c := controller.New(request, http.NewResponse(),
		controller.WithName("users"),
		controller.WithConfig(cfg),
		controller.WithRegistry(demoRegistry()),
		controller.WithView(v),
		controller.WithEmitter(transport.NewWriter(cmd.OutOrStdout(), cfg.Response.DefaultHeaders)),
		controller.WithLogger(log),
		controller.WithMetrics(metrics),
	)
	c.DispatchTo(name, args, true)

	if printMetrics, _ := cmd.Flags().GetBool("metrics"); printMetrics {
		return dumpMetrics(registry, cmd.ErrOrStderr())
	}

	return nil
}

func newRequest(cmd *cobra.Command) (*http.Request, error) {
	rawMethod, _ := cmd.Flags().GetString("method")
	m := method.Parse(strings.ToUpper(rawMethod))
	if m == method.Unknown {
		return nil, fmt.Errorf("unknown request method: %s", rawMethod)
	}

	path, _ := cmd.Flags().GetString("path")
	request := http.NewRequest(m, path)
	request.Ctx = cmd.Context()

	headers, _ := cmd.Flags().GetStringArray("header")
	for _, header := range headers {
		key, value, found := strings.Cut(header, ":")
		if !found || len(strings.TrimSpace(key)) == 0 {
			return nil, fmt.Errorf("malformed header: %q", header)
		}

		request.Headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return request, nil
}

// newView returns the pongo2 engine if the templates directory is configured, nil
// otherwise.
func newView(cfg *config.Config) (view.View, error) {
	if len(cfg.Templates.Dir) == 0 {
		return nil, nil
	}

	engine, err := pongo.New(
		pongo.WithBaseDir(cfg.Templates.Dir),
		pongo.WithExtension(cfg.Templates.Extension),
		pongo.WithErrorTemplate(cfg.Templates.ErrorTemplate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	return engine, nil
}

func dumpMetrics(registry *prometheus.Registry, w io.Writer) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}

			var value float64
			switch {
			case metric.GetCounter() != nil:
				value = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				value = float64(metric.GetHistogram().GetSampleCount())
			}

			fmt.Fprintf(w, "%s{%s} %g\n", family.GetName(), strings.Join(labels, ","), value)
		}
	}

	return nil
}
