package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/requestid"
)

const serviceName = "sitekit"

// appConfig holds the settings shared by every command.
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

// app is filled by the root command before any subcommand runs.
type app struct {
	cfg    appConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Serve published sites and their editing sessions",
		Long: `sitekit serves published sites by slug, hosts the inline editor that
saves content batches to the website API, and sends transactional email.

Quick start:
  sitekit serve                         Start the HTTP server
  sitekit resolve https://host/s/maria  Show how a URL resolves
  sitekit send-email --to a@b.c ...     Send a message with the configured provider`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return err
			}
			level := a.cfg.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			a.logger = logger.New(
				logger.WithEnvironment(a.cfg.Env, serviceName),
				logger.WithLevelName(level),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(
		newServeCmd(a),
		newResolveCmd(a),
		newSendEmailCmd(a),
	)
	return root
}
