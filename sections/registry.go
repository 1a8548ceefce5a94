package sections

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultPageIdleTimeout is how long a page may go without a request before it
// is unmounted. An open page keeps itself alive with its fragment polls.
const DefaultPageIdleTimeout = 2 * time.Minute

// DefaultMaxPages caps how many pages are mounted at once
const DefaultMaxPages = 500

type registryEntry struct {
	page     *Page
	lastSeen time.Time
}

// Registry tracks the mounted pages of the server.
type Registry struct {
	mu          sync.Mutex
	pages       map[uuid.UUID]*registryEntry
	newPage     func() *Page
	ctx         context.Context
	idleTimeout time.Duration
	maxPages    int
	now         func() time.Time
	logger      zerolog.Logger
}

type RegistryOption func(*Registry)

func WithIdleTimeout(timeout time.Duration) RegistryOption {
	return func(r *Registry) {
		if timeout > 0 {
			r.idleTimeout = timeout
		}
	}
}

// WithMaxPages caps the mounted pages. Creating a page past the cap unmounts
// the least recently seen one. Zero or less removes the cap.
func WithMaxPages(n int) RegistryOption {
	return func(r *Registry) {
		r.maxPages = n
	}
}

// WithClock replaces time.Now, used by tests to drive expiry
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates a registry whose pages are built by newPage and mounted
// under ctx. Cancelling ctx cancels every page's fetches and timers.
func NewRegistry(ctx context.Context, newPage func() *Page, opts ...RegistryOption) *Registry {
	r := &Registry{
		pages:       make(map[uuid.UUID]*registryEntry),
		newPage:     newPage,
		ctx:         ctx,
		idleTimeout: DefaultPageIdleTimeout,
		maxPages:    DefaultMaxPages,
		now:         time.Now,
		logger:      log.With().Str("component", "pageRegistry").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create builds and mounts a new page
func (r *Registry) Create() *Page {
	page := r.newPage()
	page.Mount(r.ctx)

	r.mu.Lock()
	var evicted []*Page
	for r.maxPages > 0 && len(r.pages) >= r.maxPages {
		evicted = append(evicted, r.popOldestLocked())
	}
	r.pages[page.ID] = &registryEntry{page: page, lastSeen: r.now()}
	count := len(r.pages)
	r.mu.Unlock()

	for _, old := range evicted {
		old.Unmount()
		r.logger.Info().Str("pageID", old.ID.String()).Int("maxPages", r.maxPages).Msg("evicted page at capacity")
	}
	r.logger.Debug().Str("pageID", page.ID.String()).Int("pages", count).Msg("page mounted")
	return page
}

// popOldestLocked removes the least recently seen page. r.mu must be held and
// the registry must not be empty.
func (r *Registry) popOldestLocked() *Page {
	var oldestID uuid.UUID
	var oldest *registryEntry
	for id, entry := range r.pages {
		if oldest == nil || entry.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, entry
		}
	}
	delete(r.pages, oldestID)
	return oldest.page
}

// Get resolves a mounted page and marks it as seen
func (r *Registry) Get(id uuid.UUID) (*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pages[id]
	if !ok {
		return nil, errs.NewPageNotFoundError(id.String())
	}
	entry.lastSeen = r.now()
	return entry.page, nil
}

// Remove unmounts a page. It reports whether the page was mounted.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	entry, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()

	if !ok {
		return false
	}
	entry.page.Unmount()
	r.logger.Debug().Str("pageID", id.String()).Msg("page unmounted")
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep unmounts pages idle for longer than the idle timeout and returns how
// many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTimeout)

	r.mu.Lock()
	var expired []*Page
	for id, entry := range r.pages {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, page := range expired {
		page.Unmount()
	}
	if len(expired) > 0 {
		r.logger.Info().Int("expired", len(expired)).Msg("unmounted idle pages")
	}
	return len(expired)
}

// Run sweeps idle pages until ctx ends
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close unmounts every page and waits for their goroutines to exit
func (r *Registry) Close() {
	r.mu.Lock()
	pages := make([]*Page, 0, len(r.pages))
	for id, entry := range r.pages {
		pages = append(pages, entry.page)
		delete(r.pages, id)
	}
	r.mu.Unlock()

	for _, page := range pages {
		page.Unmount()
	}
	for _, page := range pages {
		page.Wait()
	}
	r.logger.Info().Int("pages", len(pages)).Msg("page registry closed")
}
