package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder  Responder
	logger     zerolog.Logger
	registry   *sections.Registry
	view       views.Options
	renderWait time.Duration
}

func newPageHandler(registry *sections.Registry, view views.Options, renderWait time.Duration) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		registry:   registry,
		view:       view,
		renderWait: renderWait,
	}
}

// getIndex mounts a new page and renders it. Sections that settle within the
// render wait are painted with their data; the rest render as loading
// placeholders that poll until they are ready. Speculative prefetches are
// declined without mounting; the browser then loads the page normally.
func (h pageHandler) getIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Sec-Purpose"), "prefetch") {
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		page := h.registry.Create()

		if h.renderWait > 0 {
			ctx, cancel := context.WithTimeout(r.Context(), h.renderWait)
			if err := page.Settled(ctx); err != nil {
				h.logger.Debug().Str("pageID", page.ID.String()).Msg("rendering before all sections settled")
			}
			cancel()
		}

		w.Header().Set("Cache-Control", "no-store")
		h.responder.WriteHTML(w, http.StatusOK, views.Page(page, h.view))
	}
}

func (h pageHandler) getSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		name := chi.URLParam(r, "section")
		node, found := views.Section(page, name, h.view)
		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("section "+name))
			return
		}
		h.responder.WriteHTML(w, http.StatusOK, node)
	}
}

func (h pageHandler) getHeroRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		state := page.Hero.State()
		h.responder.WriteHTML(w, http.StatusOK, views.HeroRole(page.ID, state.Role, h.view.RoleInterval))
	}
}

func (h pageHandler) toggleHeroBio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		page.Hero.ToggleBio()
		h.responder.WriteHTML(w, http.StatusOK, views.HeroBio(page.ID, page.Hero.State()))
	}
}

func (h pageHandler) toggleAboutBio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		page.About.ToggleBio()
		h.responder.WriteHTML(w, http.StatusOK, views.AboutBio(page.ID, page.About.State()))
	}
}

// toggleHeaderMenu flips the mobile menu, or closes it with ?action=close
func (h pageHandler) toggleHeaderMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		if r.URL.Query().Get("action") == "close" {
			page.Header.CloseMenu()
		} else {
			page.Header.ToggleMenu()
		}
		h.responder.WriteHTML(w, http.StatusOK, views.Header(page.ID, page.Header.State()))
	}
}

// submitContact stores the posted fields on the page's form and submits it.
// A failure raises the alert event and re-renders the form with the values
// kept.
func (h pageHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact form", err))
			return
		}
		for _, field := range []string{"name", "email", "message"} {
			if err := page.Contact.SetField(field, r.PostForm.Get(field)); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError(field, err.Error()))
				return
			}
		}

		result := page.Contact.Submit(r.Context())
		if !result.OK {
			triggerAlert(w, h.logger, result.Alert)
		}
		h.responder.WriteHTML(w, http.StatusOK, views.Contact(page.ID, page.Contact.State()))
	}
}

func (h pageHandler) unmountPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.page(w, r)
		if !ok {
			return
		}

		h.registry.Remove(page.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// keepAlive only resolves the page, which counts as activity for the idle sweep
func (h pageHandler) keepAlive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.page(w, r); !ok {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// triggerAlert asks htmx to raise the alert event once the response is swapped
func triggerAlert(w http.ResponseWriter, logger zerolog.Logger, message string) {
	trigger, err := json.Marshal(map[string]string{views.AlertEvent: message})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode alert trigger")
		return
	}
	w.Header().Set("HX-Trigger", string(trigger))
}

func (h pageHandler) page(w http.ResponseWriter, r *http.Request) (*sections.Page, bool) {
	page, err := ctxGetPage(r.Context())
	if err != nil {
		h.responder.WriteError(w, errs.NewInternalErrorWithCause("page middleware not applied", err))
		return nil, false
	}
	return page, true
}
