package sections

import (
	"context"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

type ProjectsStatus int

const (
	ProjectsLoading ProjectsStatus = iota
	ProjectsEmpty
	ProjectsPopulated
)

func (s ProjectsStatus) String() string {
	switch s {
	case ProjectsEmpty:
		return "empty"
	case ProjectsPopulated:
		return "populated"
	default:
		return "loading"
	}
}

// EmptyProjectsMessage replaces the cards when there is nothing to show
const EmptyProjectsMessage = "No projects found."

// Projects lists the project cards.
type Projects struct {
	*lifecycle
	api    ProjectsFetcher
	logger zerolog.Logger

	projects []models.Project
}

type ProjectsState struct {
	Status   ProjectsStatus
	Projects []models.Project
}

func NewProjects(api ProjectsFetcher, opts ...Option) *Projects {
	o := buildOptions(opts)
	return &Projects{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "projects").Logger(),
	}
}

func (p *Projects) Name() string { return "projects" }

func (p *Projects) Mount(ctx context.Context) {
	p.mount(ctx, p.load)
}

func (p *Projects) load(ctx context.Context) {
	projects, err := p.api.FetchProjects(ctx)
	if err != nil {
		logFetchError(ctx, p.logger, "projects", err)
		return
	}
	p.logger.Debug().Int("count", len(projects)).Msg("projects loaded")

	p.apply(func() {
		p.projects = projects
	})
}

// State reports loading until the fetch resolves. An empty or failed fetch is
// reported as empty.
func (p *Projects) State() ProjectsState {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !p.isSettled():
		return ProjectsState{Status: ProjectsLoading}
	case len(p.projects) == 0:
		return ProjectsState{Status: ProjectsEmpty}
	default:
		return ProjectsState{
			Status:   ProjectsPopulated,
			Projects: append([]models.Project(nil), p.projects...),
		}
	}
}
