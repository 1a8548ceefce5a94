package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contentSource is the read side of content.Store
type contentSource interface {
	Profile() models.Profile
	Projects() []models.Project
	Skills() []models.SkillsResponse
	Experience() []models.Experience
}

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     contentSource
}

func newContentHandler(store contentSource) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

func (h contentHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.Profile())
	}
}

func (h contentHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.Projects())
	}
}

func (h contentHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.Skills())
	}
}

func (h contentHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.Experience())
	}
}
