package sections_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(t *testing.T, s sections.Section) {
	t.Helper()
	select {
	case <-s.Settled():
	case <-time.After(2 * time.Second):
		t.Fatalf("%s never settled", s.Name())
	}
}

func TestTruncateBio(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := sections.TruncateBio(long, sections.BioPreviewLength)
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)

	exact := strings.Repeat("b", 150)
	assert.Equal(t, exact, sections.TruncateBio(exact, sections.BioPreviewLength))

	// counts characters, not bytes
	accented := strings.Repeat("é", 151)
	assert.Equal(t, strings.Repeat("é", 150)+"...", sections.TruncateBio(accented, sections.BioPreviewLength))
}

func TestHero_LoadsProfileAndTogglesBio(t *testing.T) {
	profile := sampleProfile()
	profile.Bio = strings.Repeat("x", 200)
	api := &fakeAPI{profile: profile}

	hero := sections.NewHero(api, sections.WithRoleInterval(time.Hour))
	hero.Mount(context.Background())
	t.Cleanup(hero.Unmount)
	settle(t, hero)

	state := hero.State()
	require.True(t, state.Loaded)
	assert.Equal(t, "Engineer", state.Role)
	assert.Equal(t, strings.Repeat("x", 150)+"...", state.Bio)
	assert.True(t, state.CanToggleBio)
	assert.False(t, state.BioExpanded)

	require.True(t, hero.ToggleBio())
	assert.Equal(t, profile.Bio, hero.State().Bio)

	require.True(t, hero.ToggleBio())
	assert.Equal(t, strings.Repeat("x", 150)+"...", hero.State().Bio)
}

func TestHero_ShortBioHasNoToggle(t *testing.T) {
	hero := sections.NewHero(&fakeAPI{profile: sampleProfile()}, sections.WithRoleInterval(time.Hour))
	hero.Mount(context.Background())
	t.Cleanup(hero.Unmount)
	settle(t, hero)

	assert.False(t, hero.State().CanToggleBio)
	assert.False(t, hero.ToggleBio())
	assert.Equal(t, "Short bio.", hero.State().Bio)
}

func TestHero_RotatesRoles(t *testing.T) {
	hero := sections.NewHero(&fakeAPI{profile: sampleProfile()}, sections.WithRoleInterval(10*time.Millisecond))
	hero.Mount(context.Background())
	t.Cleanup(hero.Unmount)
	settle(t, hero)

	var mu sync.Mutex
	seen := map[string]bool{}
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		seen[hero.State().Role] = true
		return len(seen) == 3
	}, 2*time.Second, 2*time.Millisecond)
}

func TestHero_NoRolesNoRotation(t *testing.T) {
	profile := sampleProfile()
	profile.Roles = nil
	hero := sections.NewHero(&fakeAPI{profile: profile}, sections.WithRoleInterval(time.Millisecond))
	hero.Mount(context.Background())
	settle(t, hero)

	assert.Empty(t, hero.State().Role)
	hero.Unmount()
	hero.Wait()
}

func TestHero_UnmountStopsRotation(t *testing.T) {
	hero := sections.NewHero(&fakeAPI{profile: sampleProfile()}, sections.WithRoleInterval(5*time.Millisecond))
	hero.Mount(context.Background())
	settle(t, hero)

	hero.Unmount()
	// Wait returning proves the ticker goroutine exited
	hero.Wait()

	role := hero.State().Role
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, role, hero.State().Role)
	assert.False(t, hero.Mounted())
}

func TestHero_FetchErrorLeavesPlaceholder(t *testing.T) {
	hero := sections.NewHero(&fakeAPI{fetchErr: errs.NewServiceUnreachableError("portfolio api", errors.New("refused"))})
	hero.Mount(context.Background())
	t.Cleanup(hero.Unmount)
	settle(t, hero)

	state := hero.State()
	assert.True(t, state.Settled)
	assert.False(t, state.Loaded)
}

func TestSection_ResultAfterUnmountIsDropped(t *testing.T) {
	api := &fakeAPI{
		profile:  sampleProfile(),
		projects: []models.Project{{Title: "late"}},
		gate:     make(chan struct{}),
	}

	projects := sections.NewProjects(api)
	projects.Mount(context.Background())
	assert.Equal(t, sections.ProjectsLoading, projects.State().Status)

	projects.Unmount()
	close(api.gate)
	projects.Wait()

	state := projects.State()
	assert.Equal(t, sections.ProjectsEmpty, state.Status)
	assert.Empty(t, state.Projects)
}

func TestSection_MountIsIdempotent(t *testing.T) {
	api := &fakeAPI{profile: sampleProfile()}
	about := sections.NewAbout(api)
	about.Mount(context.Background())
	about.Mount(context.Background())
	settle(t, about)
	about.Unmount()
	about.Mount(context.Background())
	about.Wait()

	assert.EqualValues(t, 1, api.fetches.Load())
	assert.False(t, about.Mounted())
}

func TestAbout_State(t *testing.T) {
	profile := sampleProfile()
	profile.Bio = strings.Repeat("y", 151)
	about := sections.NewAbout(&fakeAPI{profile: profile})
	about.Mount(context.Background())
	t.Cleanup(about.Unmount)
	settle(t, about)

	state := about.State()
	require.True(t, state.Loaded)
	assert.Equal(t, []sections.InfoItem{
		{Label: "Name", Value: "Ada Lovelace"},
		{Label: "Email", Value: "ada@example.com"},
		{Label: "Experience", Value: "7"},
		{Label: "Location", Value: "London"},
	}, state.Info)
	assert.Equal(t, "https://example.com/cv.pdf", state.ResumeURL)
	assert.Equal(t, strings.Repeat("y", 150)+"...", state.Bio)

	// collapsing uses the same preview length as the first render
	about.ToggleBio()
	about.ToggleBio()
	assert.Equal(t, strings.Repeat("y", 150)+"...", about.State().Bio)
}

func TestProjects_States(t *testing.T) {
	tests := []struct {
		name     string
		api      *fakeAPI
		expected sections.ProjectsStatus
		count    int
	}{
		{
			name:     "populated",
			api:      &fakeAPI{projects: []models.Project{{Title: "A"}, {Title: "B"}}},
			expected: sections.ProjectsPopulated,
			count:    2,
		},
		{
			name:     "empty list",
			api:      &fakeAPI{projects: []models.Project{}},
			expected: sections.ProjectsEmpty,
		},
		{
			name:     "failed fetch",
			api:      &fakeAPI{fetchErr: errs.NewJSONUnmarshalError("projects", errors.New("bad json"))},
			expected: sections.ProjectsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := sections.NewProjects(tt.api)
			projects.Mount(context.Background())
			t.Cleanup(projects.Unmount)
			settle(t, projects)

			state := projects.State()
			assert.Equal(t, tt.expected, state.Status)
			assert.Len(t, state.Projects, tt.count)
		})
	}
}

func TestSkills_UnwrapsFirstSet(t *testing.T) {
	api := &fakeAPI{skills: []models.SkillsResponse{
		{SkillSet: []models.SkillItem{{ID: "1", Name: "Go"}, {ID: "2", Name: "SQL"}}},
	}}
	skills := sections.NewSkills(api)
	skills.Mount(context.Background())
	t.Cleanup(skills.Unmount)
	settle(t, skills)

	state := skills.State()
	assert.True(t, state.Settled)
	require.Len(t, state.Skills, 2)
	assert.Equal(t, "Go", state.Skills[0].Name)

	assert.Nil(t, sections.UnwrapSkills(nil))
}

func TestTimeline(t *testing.T) {
	entries := sections.Timeline([]models.Experience{
		{Company: "A", StartDate: "Jan 2023", CurrentlyWorking: true},
		{Company: "B", StartDate: "Jan 2020", EndDate: "Dec 2022"},
		{Company: "C", StartDate: "Jun 2019"},
	})
	require.Len(t, entries, 3)

	assert.Equal(t, sections.SideLeft, entries[0].Side)
	assert.Equal(t, sections.SideRight, entries[1].Side)
	assert.Equal(t, sections.SideLeft, entries[2].Side)

	assert.Equal(t, "Current", entries[0].Status)
	assert.Equal(t, "Past", entries[1].Status)

	assert.Equal(t, "Jan 2023 – Present", entries[0].Period)
	assert.Equal(t, "Jan 2020 – Dec 2022", entries[1].Period)
	assert.Equal(t, "Jun 2019", entries[2].Period)
}

func TestContact_Submit(t *testing.T) {
	t.Run("success clears the form", func(t *testing.T) {
		api := &fakeAPI{}
		contact := sections.NewContact(api)
		contact.Mount(context.Background())
		t.Cleanup(contact.Unmount)

		require.NoError(t, contact.SetField("name", "Ada"))
		require.NoError(t, contact.SetField("email", "ada@example.com"))
		require.NoError(t, contact.SetField("message", "Hi"))

		result := contact.Submit(context.Background())
		assert.True(t, result.OK)
		assert.Empty(t, result.Alert)

		state := contact.State()
		assert.True(t, state.Submitted)
		assert.Equal(t, models.ContactForm{}, state.Form)
		require.Len(t, api.submitted, 1)
		assert.Equal(t, "ada@example.com", api.submitted[0].Email)
	})

	t.Run("rejection shows the server message and keeps fields", func(t *testing.T) {
		api := &fakeAPI{submitErr: errs.NewUpstreamStatusError("/api/contact", 400, "Invalid email")}
		contact := sections.NewContact(api)
		contact.Mount(context.Background())
		t.Cleanup(contact.Unmount)
		require.NoError(t, contact.SetField("email", "nope"))

		result := contact.Submit(context.Background())
		assert.False(t, result.OK)
		assert.Equal(t, "Invalid email", result.Alert)
		assert.Equal(t, "nope", contact.State().Form.Email)
		assert.False(t, contact.State().Submitted)
	})

	t.Run("rejection without a message", func(t *testing.T) {
		api := &fakeAPI{submitErr: errs.NewUpstreamStatusError("/api/contact", 500, "")}
		contact := sections.NewContact(api)
		contact.Mount(context.Background())
		t.Cleanup(contact.Unmount)

		assert.Equal(t, sections.AlertRejected, contact.Submit(context.Background()).Alert)
	})

	t.Run("transport failure", func(t *testing.T) {
		api := &fakeAPI{submitErr: errs.NewServiceUnreachableError("portfolio api", errors.New("refused"))}
		contact := sections.NewContact(api)
		contact.Mount(context.Background())
		t.Cleanup(contact.Unmount)

		assert.Equal(t, sections.AlertSubmissionError, contact.Submit(context.Background()).Alert)
	})

	t.Run("unknown field", func(t *testing.T) {
		contact := sections.NewContact(&fakeAPI{})
		contact.Mount(context.Background())
		t.Cleanup(contact.Unmount)

		assert.Error(t, contact.SetField("phone", "123"))
	})
}

func TestHeader(t *testing.T) {
	header := sections.NewHeader("ada lovelace")
	header.Mount(context.Background())
	t.Cleanup(header.Unmount)
	settle(t, header)

	state := header.State()
	assert.Equal(t, "AL", state.Initials)
	assert.False(t, state.MenuOpen)
	assert.Equal(t, []sections.NavItem{
		{Label: "Home", Href: "#home"},
		{Label: "About", Href: "#about"},
		{Label: "Work", Href: "#work"},
		{Label: "Skills", Href: "#skills"},
	}, state.Nav)

	assert.True(t, header.ToggleMenu())
	assert.False(t, header.ToggleMenu())
	header.ToggleMenu()
	header.CloseMenu()
	assert.False(t, header.State().MenuOpen)
}
