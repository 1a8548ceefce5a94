package content

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

//go:embed default_content.json
var defaultContent []byte

// EmbeddedSource names the built-in content in logs and errors
const EmbeddedSource = "embedded:default_content.json"

// Document is the layout of a content file
type Document struct {
	Profile    models.Profile      `json:"profile"`
	Projects   []models.Project    `json:"projects"`
	Skills     []models.SkillItem  `json:"skills"`
	Experience []models.Experience `json:"experience"`
}

// Store holds the records served by the content API. Reads are safe while a
// reload is in progress.
type Store struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger

	mu  sync.RWMutex
	doc Document
}

// NewStore loads path from fs. An empty path serves the embedded content.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:     fs,
		path:   path,
		logger: log.With().Str("component", "contentStore").Logger(),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Source returns the file the store reads, or EmbeddedSource
func (s *Store) Source() string {
	if s.path == "" {
		return EmbeddedSource
	}
	return s.path
}

// Reload re-reads the content file. On failure the previous content stays.
func (s *Store) Reload() error {
	raw := defaultContent
	if s.path != "" {
		data, err := afero.ReadFile(s.fs, s.path)
		if err != nil {
			return errs.NewContentLoadError(s.path, err)
		}
		raw = data
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errs.NewContentLoadError(s.Source(), err)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Info().
		Str("source", s.Source()).
		Int("projects", len(doc.Projects)).
		Int("skills", len(doc.Skills)).
		Int("experience", len(doc.Experience)).
		Msg("content loaded")
	return nil
}

func (s *Store) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile := s.doc.Profile
	profile.Roles = append([]string{}, profile.Roles...)
	return profile
}

// Projects never returns nil so the API answers [] rather than null
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project{}, s.doc.Projects...)
}

// Skills returns the skill set in the wrapped shape the API serves
func (s *Store) Skills() []models.SkillsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return []models.SkillsResponse{
		{SkillSet: append([]models.SkillItem{}, s.doc.Skills...)},
	}
}

func (s *Store) Experience() []models.Experience {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Experience{}, s.doc.Experience...)
}
