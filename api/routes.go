package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/sections"
)

// setupPageRoutes sets up the page and htmx fragment routes
func setupPageRoutes(r chi.Router, handlers *routeHandlers, pages pageMiddleware, requestLog func(http.Handler) http.Handler) {
	r.Get("/health", handlers.healthHandler.getHealth())

	r.Group(func(r chi.Router) {
		r.Use(requestLog)

		r.Get("/", handlers.pageHandler.getIndex())

		// Fragment routes of a mounted page
		r.Route("/page/{pageID}", func(r chi.Router) {
			r.With(pages.alertWhenGone(sections.AlertSubmissionError)).Post("/contact", handlers.pageHandler.submitContact())

			r.Group(func(r chi.Router) {
				r.Use(pages.resolvePage)

				r.Get("/sections/{section}", handlers.pageHandler.getSection())
				r.Get("/hero/role", handlers.pageHandler.getHeroRole())
				r.Post("/hero/bio", handlers.pageHandler.toggleHeroBio())
				r.Post("/about/bio", handlers.pageHandler.toggleAboutBio())
				r.Post("/header/menu", handlers.pageHandler.toggleHeaderMenu())
				r.Post("/keepalive", handlers.pageHandler.keepAlive())
				r.Post("/unmount", handlers.pageHandler.unmountPage())
			})
		})
	})
}

// setupContentRoutes sets up the read-only content API and the contact endpoint
func setupContentRoutes(r chi.Router, handlers *routeHandlers, requestLog func(http.Handler) http.Handler) {
	r.Get("/health", handlers.healthHandler.getHealth())

	r.Group(func(r chi.Router) {
		r.Use(requestLog)

		r.Route("/api", func(r chi.Router) {
			r.Get("/profile", handlers.contentHandler.getProfile())
			r.Get("/projects", handlers.contentHandler.getProjects())
			r.Get("/skills", handlers.contentHandler.getSkills())
			r.Get("/experience", handlers.contentHandler.getExperience())
			r.Post("/contact", handlers.contactHandler.submitContact())
		})
	})
}
