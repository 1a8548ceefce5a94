package api

import (
	"time"

	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rpupo63/portfolio-site/views"
)

// initializePageHandlers creates the handlers of the page server
func initializePageHandlers(registry *sections.Registry, view views.Options, renderWait time.Duration, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		pageHandler:   newPageHandler(registry, view, renderWait),
		healthHandler: newHealthHandler("page", startupTime),
	}
}

// initializeContentHandlers creates the handlers of the content API
func initializeContentHandlers(store contentSource, mailer ContactMailer, recipients []string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(store),
		contactHandler: newContactHandler(mailer, recipients),
		healthHandler:  newHealthHandler("content", startupTime),
	}
}
