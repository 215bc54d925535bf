package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/app"
	"github.com/justsurfingit/job-canvas/internal/config"
	"github.com/justsurfingit/job-canvas/internal/observability"
)

var (
	envFile  string
	offline  bool
	logLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diagramctl",
		Short:         "Generate canvas diagrams from plain-language requests.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	root.PersistentFlags().BoolVar(&offline, "offline", false, "use the static completer instead of a remote model")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newClassifyCmd())
	return root
}

// Execute runs the command tree with ctx, cancelled on SIGINT and SIGTERM.
func Execute(ctx context.Context) error {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

// loadApp reads configuration, applies command-line overrides from v and
// wires the services.
func loadApp(ctx context.Context, v *viper.Viper) (*app.App, *zap.Logger, error) {
	config.LoadDotEnv(envFile)
	if offline {
		v.Set("llm_provider", "static")
	}
	v.Set("log_level", logLevel)

	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	logger := observability.InitializeLogger(cfg.Logger)

	a, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, logger, nil
}
