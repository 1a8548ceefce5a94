package sections

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Page is one browser page view: a full set of sections mounted together and
// torn down together.
type Page struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Header     *Header
	Hero       *Hero
	About      *About
	Projects   *Projects
	Skills     *Skills
	Experience *Experience
	Contact    *Contact
}

func NewPage(api PortfolioAPI, opts ...Option) *Page {
	o := buildOptions(opts)
	id := uuid.New()
	// every section logs with the page it belongs to
	sectionOpts := append(append([]Option{}, opts...), WithLogger(o.logger.With().Str("pageID", id.String()).Logger()))

	return &Page{
		ID:         id,
		CreatedAt:  time.Now(),
		Header:     NewHeader(o.siteName),
		Hero:       NewHero(api, sectionOpts...),
		About:      NewAbout(api, sectionOpts...),
		Projects:   NewProjects(api, sectionOpts...),
		Skills:     NewSkills(api, sectionOpts...),
		Experience: NewExperience(api, sectionOpts...),
		Contact:    NewContact(api, sectionOpts...),
	}
}

// Sections returns the sections in page order
func (p *Page) Sections() []Section {
	return []Section{p.Header, p.Hero, p.About, p.Projects, p.Skills, p.Experience, p.Contact}
}

// Section looks a section up by name
func (p *Page) Section(name string) (Section, bool) {
	for _, s := range p.Sections() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Mount mounts every section. Each starts its own fetch; none waits for another.
func (p *Page) Mount(ctx context.Context) {
	for _, s := range p.Sections() {
		s.Mount(ctx)
	}
}

// Settled blocks until every section's initial fetch has resolved or ctx ends.
func (p *Page) Settled(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range p.Sections() {
		g.Go(func() error {
			select {
			case <-s.Settled():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}

func (p *Page) Unmount() {
	for _, s := range p.Sections() {
		s.Unmount()
	}
}

// Wait blocks until all section goroutines have exited
func (p *Page) Wait() {
	for _, s := range p.Sections() {
		s.Wait()
	}
}
