package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/indigo-web/controller/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Dispatch actions of the demo users controller",
	Long: `Dispatch resolves an action of the demo users controller, runs it and writes the
resulting HTTP/1.1 response to stdout.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "Log verbosity, higher is more verbose")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if len(path) == 0 {
		return config.Default(), nil
	}

	return config.Load(path)
}

// newLogger returns a development zap logger writing to stderr, so the logs never mix with
// the emitted response.
func newLogger(cmd *cobra.Command) (logr.Logger, func(), error) {
	verbosity, _ := cmd.Flags().GetInt("verbosity")

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-int8(verbosity)))
	zapCfg.OutputPaths = []string{"stderr"}

	zapLog, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("failed to create logger: %w", err)
	}

	return zapr.NewLogger(zapLog), func() { _ = zapLog.Sync() }, nil
}
