package sections

import (
	"context"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

// About shows the longer introduction with the profile's key facts.
type About struct {
	*lifecycle
	api    ProfileFetcher
	logger zerolog.Logger

	profile *models.Profile
	bio     bioToggle
}

type InfoItem struct {
	Label string
	Value string
}

type AboutState struct {
	Loaded       bool
	Settled      bool
	Bio          string
	BioExpanded  bool
	CanToggleBio bool
	Info         []InfoItem
	ResumeURL    string
}

func NewAbout(api ProfileFetcher, opts ...Option) *About {
	o := buildOptions(opts)
	return &About{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "about").Logger(),
	}
}

func (a *About) Name() string { return "about" }

func (a *About) Mount(ctx context.Context) {
	a.mount(ctx, a.load)
}

func (a *About) load(ctx context.Context) {
	profile, err := a.api.FetchProfile(ctx)
	if err != nil {
		logFetchError(ctx, a.logger, "profile", err)
		return
	}

	a.apply(func() {
		a.profile = profile
		a.bio = bioToggle{full: profile.Bio}
	})
}

// ToggleBio flips the bio between its 150 character preview and the full text.
func (a *About) ToggleBio() bool {
	toggled := false
	a.apply(func() {
		if a.profile == nil || !a.bio.toggleable() {
			return
		}
		a.bio.toggle()
		toggled = true
	})
	return toggled
}

func (a *About) State() AboutState {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := AboutState{Settled: a.isSettled()}
	if a.profile == nil {
		return state
	}

	state.Loaded = true
	state.Bio = a.bio.text()
	state.BioExpanded = a.bio.expanded
	state.CanToggleBio = a.bio.toggleable()
	state.ResumeURL = a.profile.ResumeURL
	state.Info = []InfoItem{
		{Label: "Name", Value: a.profile.Name},
		{Label: "Email", Value: a.profile.Email},
		{Label: "Experience", Value: a.profile.YearsOfExperience.String()},
		{Label: "Location", Value: a.profile.Location},
	}
	return state
}
