package sections

import (
	"context"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

// Skills renders the skill logo grid.
type Skills struct {
	*lifecycle
	api    SkillsFetcher
	logger zerolog.Logger

	skills []models.SkillItem
}

type SkillsState struct {
	Settled bool
	Skills  []models.SkillItem
}

func NewSkills(api SkillsFetcher, opts ...Option) *Skills {
	o := buildOptions(opts)
	return &Skills{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "skills").Logger(),
	}
}

func (s *Skills) Name() string { return "skills" }

func (s *Skills) Mount(ctx context.Context) {
	s.mount(ctx, s.load)
}

func (s *Skills) load(ctx context.Context) {
	resp, err := s.api.FetchSkills(ctx)
	if err != nil {
		logFetchError(ctx, s.logger, "skills", err)
		return
	}

	s.apply(func() {
		s.skills = UnwrapSkills(resp)
	})
}

// UnwrapSkills returns the skill set of the first wrapper; the API never sends
// more than one.
func UnwrapSkills(resp []models.SkillsResponse) []models.SkillItem {
	if len(resp) == 0 {
		return nil
	}
	return resp[0].SkillSet
}

func (s *Skills) State() SkillsState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SkillsState{
		Settled: s.isSettled(),
		Skills:  append([]models.SkillItem(nil), s.skills...),
	}
}
