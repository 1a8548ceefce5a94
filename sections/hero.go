package sections

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
)

// Hero is the landing banner: greeting, rotating role, bio and links.
type Hero struct {
	*lifecycle
	api      ProfileFetcher
	logger   zerolog.Logger
	interval time.Duration

	profile   *models.Profile
	roleIndex int
	bio       bioToggle
}

// HeroState is a point-in-time copy of the Hero for rendering
type HeroState struct {
	Loaded       bool
	Settled      bool
	Profile      models.Profile
	Role         string
	RoleIndex    int
	Bio          string
	BioExpanded  bool
	CanToggleBio bool
}

func NewHero(api ProfileFetcher, opts ...Option) *Hero {
	o := buildOptions(opts)
	return &Hero{
		lifecycle: newLifecycle(),
		api:       api,
		logger:    o.logger.With().Str("section", "hero").Logger(),
		interval:  o.roleInterval,
	}
}

func (h *Hero) Name() string { return "hero" }

func (h *Hero) Mount(ctx context.Context) {
	h.mount(ctx, h.load)
}

func (h *Hero) load(ctx context.Context) {
	profile, err := h.api.FetchProfile(ctx)
	if err != nil {
		logFetchError(ctx, h.logger, "profile", err)
		return
	}

	h.apply(func() {
		h.profile = profile
		h.roleIndex = 0
		h.bio = bioToggle{full: profile.Bio}
		if len(profile.Roles) > 0 {
			h.goLocked(h.rotateRoles)
		}
	})
}

// rotateRoles advances the displayed role on every tick until the section
// context ends.
func (h *Hero) rotateRoles(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.apply(h.advanceRole)
		}
	}
}

// advanceRole moves to the next role, wrapping to the first after the last.
// Caller holds mu.
func (h *Hero) advanceRole() {
	if h.profile == nil || len(h.profile.Roles) == 0 {
		return
	}
	h.roleIndex = (h.roleIndex + 1) % len(h.profile.Roles)
}

// ToggleBio flips between the truncated and the full bio. It reports false when
// there is nothing to toggle.
func (h *Hero) ToggleBio() bool {
	toggled := false
	h.apply(func() {
		if h.profile == nil || !h.bio.toggleable() {
			return
		}
		h.bio.toggle()
		toggled = true
	})
	return toggled
}

func (h *Hero) State() HeroState {
	h.mu.Lock()
	defer h.mu.Unlock()

	state := HeroState{Settled: h.isSettled()}
	if h.profile == nil {
		return state
	}

	state.Loaded = true
	state.Profile = *h.profile
	state.Profile.Roles = append([]string(nil), h.profile.Roles...)
	if len(h.profile.Roles) > 0 {
		state.RoleIndex = h.roleIndex
		state.Role = h.profile.Roles[h.roleIndex]
	}
	state.Bio = h.bio.text()
	state.BioExpanded = h.bio.expanded
	state.CanToggleBio = h.bio.toggleable()
	return state
}
