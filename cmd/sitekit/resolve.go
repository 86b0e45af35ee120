package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sitekit/pkg/bootstrap"
	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/siteapi"
)

type resolveOutput struct {
	URL    string                  `json:"url"`
	Slug   string                  `json:"slug,omitempty"`
	Config *bootstrap.RenderConfig `json:"config,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

func newResolveCmd(a *app) *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "resolve URL",
		Short: "Show which site and page a URL boots",
		Long: `resolve runs the slug resolution chain on URL. Slugs are looked up through
the website API (SITE_API_URL) unless --offline is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse url: %w", err)
			}

			var siteCfg bootstrap.Config
			if err := config.Load(&siteCfg); err != nil {
				return err
			}
			var lookup bootstrap.SiteLookup
			if !offline {
				var apiCfg siteapi.Config
				if err := config.Load(&apiCfg); err != nil {
					return err
				}
				client, err := siteapi.NewFromConfig(apiCfg, siteapi.WithLogger(a.logger))
				if err != nil {
					return err
				}
				lookup = client
			}

			boot := bootstrap.New(lookup,
				bootstrap.WithChain(bootstrap.DefaultChain(siteCfg.ReservedSlugs...)),
				bootstrap.WithDefaultPage(siteCfg.DefaultPage),
				bootstrap.WithLogger(a.logger),
			)

			out := resolveOutput{URL: u.String()}
			if res, ok := boot.Resolve(u); ok {
				out.Slug = res.Slug
			}
			rc, err := boot.Config(cmd.Context(), u)
			switch {
			case err == nil:
				out.Config = &rc
			case offline && errors.Is(err, bootstrap.ErrNoLookup):
				out.Error = "slug lookup skipped (offline)"
			default:
				out.Error = err.Error()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "do not look slugs up")
	return cmd
}
