package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	editormod "github.com/dmitrymomot/sitekit/modules/editor"
	"github.com/dmitrymomot/sitekit/modules/site"
	"github.com/dmitrymomot/sitekit/pkg/bootstrap"
	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/requestid"
	"github.com/dmitrymomot/sitekit/pkg/siteapi"
	"github.com/dmitrymomot/sitekit/pkg/storage"
)

type serveConfig struct {
	HTTP    httpserver.Config
	API     siteapi.Config
	Site    bootstrap.Config
	Storage storage.Config
	Editor  editormod.Config
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the HTTP server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return a.serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address; overrides HTTP_ADDR")
	return cmd
}

func (a *app) serve(ctx context.Context, cfg serveConfig) error {
	log := a.logger

	api, err := siteapi.NewFromConfig(cfg.API, siteapi.WithLogger(log))
	if err != nil {
		return err
	}
	// saves go out with the editing user's token, never the server's
	editorAPI, err := siteapi.NewFromConfig(cfg.API,
		siteapi.WithTokenSource(siteapi.ContextToken{}),
		siteapi.WithLogger(log),
	)
	if err != nil {
		return err
	}
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	reserved := cfg.Site.ReservedSlugs
	if len(reserved) == 0 {
		reserved = append([]string(nil), bootstrap.DefaultReserved...)
	}
	if seg := strings.Trim(cfg.Editor.BasePath, "/"); seg != "" {
		reserved = append(reserved, strings.SplitN(seg, "/", 2)[0])
	}
	boot := bootstrap.New(api,
		bootstrap.WithChain(bootstrap.DefaultChain(reserved...)),
		bootstrap.WithDefaultPage(cfg.Site.DefaultPage),
		bootstrap.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Mount(cfg.Editor.BasePath, editormod.New(store, editorAPI, cfg.Editor, log).Handle())
	r.Mount("/", site.New(boot, cfg.Site, log).Handle())

	log.InfoContext(ctx, "starting sitekit",
		logger.Component("cmd.serve"),
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("storage", cfg.Storage.Driver),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
