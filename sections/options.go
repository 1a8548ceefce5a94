package sections

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultRoleInterval is how long the Hero shows each role
const DefaultRoleInterval = 3 * time.Second

type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (*models.Profile, error)
}

type ProjectsFetcher interface {
	FetchProjects(ctx context.Context) ([]models.Project, error)
}

type SkillsFetcher interface {
	FetchSkills(ctx context.Context) ([]models.SkillsResponse, error)
}

type ExperienceFetcher interface {
	FetchExperience(ctx context.Context) ([]models.Experience, error)
}

type ContactSubmitter interface {
	SubmitContact(ctx context.Context, form models.ContactForm) error
}

// PortfolioAPI is everything a full page needs from the backend.
// *services.PortfolioClient satisfies it.
type PortfolioAPI interface {
	ProfileFetcher
	ProjectsFetcher
	SkillsFetcher
	ExperienceFetcher
	ContactSubmitter
}

type Option func(*options)

type options struct {
	logger       zerolog.Logger
	roleInterval time.Duration
	siteName     string
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRoleInterval(interval time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.roleInterval = interval
		}
	}
}

// WithSiteName sets the brand shown in the header
func WithSiteName(name string) Option {
	return func(o *options) {
		o.siteName = name
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:       log.Logger,
		roleInterval: DefaultRoleInterval,
		siteName:     "Portfolio",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// logFetchError records a failed fetch. Failures caused by the section being
// torn down are expected and only logged at debug level.
func logFetchError(ctx context.Context, logger zerolog.Logger, resource string, err error) {
	if ctx.Err() != nil {
		logger.Debug().Err(err).Str("resource", resource).Msg("fetch abandoned after unmount")
		return
	}
	logger.Error().Err(err).Str("resource", resource).Msgf("Failed to fetch %s", resource)
}
