package cmd

import (
	"github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/content"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the content API",
	Long: `Serves GET /api/profile, /api/projects, /api/skills, /api/experience and
POST /api/contact on API_PORT from CONTENT_FILE (built-in sample content when
unset). Contact submissions are mailed through Resend when RESEND_API_KEY,
RESEND_FROM_EMAIL and CONTACT_RECIPIENTS are set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, workers, err := newContentServer(config.New())
		if err != nil {
			return err
		}
		return runServers([]api.Server{server}, workers...)
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

// newContentServer builds the content API and, with CONTENT_WATCH, the worker
// that reloads the content file.
func newContentServer(c map[string]string) (api.Server, []worker, error) {
	store, err := content.NewStore(afero.NewOsFs(), config.GetString(c, config.KeyContentFile, ""))
	if err != nil {
		return api.Server{}, nil, err
	}

	server, err := api.NewContentServer(c, store, newMailer(c))
	if err != nil {
		return api.Server{}, nil, err
	}

	var workers []worker
	if config.GetBool(c, config.KeyContentWatch, false) {
		workers = append(workers, store.Watch)
	}
	return server, workers, nil
}

// newMailer returns nil when Resend is not configured; submissions are then
// only logged.
func newMailer(c map[string]string) api.ContactMailer {
	mailer, err := services.NewMailer(c)
	if errs.IsConfigError(err) {
		log.Info().Err(err).Msg("contact mail delivery disabled")
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("contact mailer unavailable")
		return nil
	}
	return mailer
}
