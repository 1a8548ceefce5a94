package cmd

import (
	"context"

	"github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveWithAPI bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio pages",
	Long: `Serves the portfolio on PORT. Every visit mounts its own page whose sections
fetch from the content API at API_BASE_URL. With --with-api the content API is
started in the same process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.New()

		servers := []api.Server{}
		var workers []worker
		if serveWithAPI {
			contentServer, contentWorkers, err := newContentServer(c)
			if err != nil {
				return err
			}
			servers = append(servers, contentServer)
			workers = append(workers, contentWorkers...)
		}

		baseURL := config.GetString(c, config.KeyAPIBaseURL, config.DefaultAPIBaseURL)
		siteName := config.GetString(c, config.KeySiteName, config.DefaultSiteName)
		roleInterval := config.GetDuration(c, config.KeyRoleInterval, sections.DefaultRoleInterval)
		idleTimeout := config.GetDuration(c, config.KeyPageIdleTimeout, sections.DefaultPageIdleTimeout)
		if idleTimeout <= 0 {
			idleTimeout = sections.DefaultPageIdleTimeout
		}

		client := services.NewPortfolioClient(baseURL)
		pageOpts := []sections.Option{
			sections.WithSiteName(siteName),
			sections.WithRoleInterval(roleInterval),
		}

		pagesCtx, cancelPages := context.WithCancel(context.Background())
		defer cancelPages()
		newPage := func() *sections.Page {
			return sections.NewPage(client, pageOpts...)
		}
		registry := sections.NewRegistry(pagesCtx, newPage,
			sections.WithIdleTimeout(idleTimeout),
			sections.WithMaxPages(config.GetInt(c, config.KeyMaxPages, sections.DefaultMaxPages)),
		)
		defer registry.Close()

		pageServer, err := api.NewPageServer(c, registry, views.Options{
			Title:        siteName,
			RoleInterval: roleInterval,
			KeepAlive:    idleTimeout / 4,
		})
		if err != nil {
			return err
		}
		servers = append(servers, pageServer)
		workers = append(workers, func(ctx context.Context) error {
			registry.Run(ctx)
			return nil
		})

		log.Info().Str("apiBaseURL", client.BaseURL()).Msg("page server configured")
		return runServers(servers, workers...)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveWithAPI, "with-api", false, "also serve the content API on API_PORT")
	rootCmd.AddCommand(serveCmd)
}
