package sections_test

import (
	"context"
	"sync/atomic"

	"github.com/rpupo63/portfolio-site/models"
)

// fakeAPI serves canned records. When gate is set, every fetch blocks until
// the gate is closed or the context ends.
type fakeAPI struct {
	profile    *models.Profile
	projects   []models.Project
	skills     []models.SkillsResponse
	experience []models.Experience
	fetchErr   error
	submitErr  error
	gate       chan struct{}

	fetches   atomic.Int32
	submitted []models.ContactForm
}

func (f *fakeAPI) wait(ctx context.Context) error {
	f.fetches.Add(1)
	if f.gate == nil {
		return nil
	}
	select {
	case <-f.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeAPI) FetchProfile(ctx context.Context) (*models.Profile, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeAPI) FetchProjects(ctx context.Context) ([]models.Project, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.projects, f.fetchErr
}

func (f *fakeAPI) FetchSkills(ctx context.Context) ([]models.SkillsResponse, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.skills, f.fetchErr
}

func (f *fakeAPI) FetchExperience(ctx context.Context) ([]models.Experience, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.experience, f.fetchErr
}

func (f *fakeAPI) SubmitContact(_ context.Context, form models.ContactForm) error {
	f.submitted = append(f.submitted, form)
	return f.submitErr
}

func sampleProfile() *models.Profile {
	return &models.Profile{
		Name:              "Ada Lovelace",
		Roles:             []string{"Engineer", "Writer", "Speaker"},
		Bio:               "Short bio.",
		Email:             "ada@example.com",
		Location:          "London",
		YearsOfExperience: "7",
		ResumeURL:         "https://example.com/cv.pdf",
	}
}
