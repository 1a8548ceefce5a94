package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog/log"
)

// DefaultRenderWait is how long GET / waits for sections to settle before it
// paints loading placeholders instead.
const DefaultRenderWait = 750 * time.Millisecond

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewPageServer serves the portfolio pages on PORT
func NewPageServer(c map[string]string, registry *sections.Registry, view views.Options) (Server, error) {
	startupTime := time.Now()
	renderWait := config.GetDuration(c, config.KeyRenderWait, DefaultRenderWait)

	router := newPageRouter(registry, view, renderWait, withConfig(c), withStartupTime(startupTime))
	return newServer(c, config.KeyPort, "8080", router, startupTime), nil
}

// NewContentServer serves the content API on API_PORT
func NewContentServer(c map[string]string, store contentSource, mailer ContactMailer) (Server, error) {
	if store == nil {
		return Server{}, fmt.Errorf("content server requires a content store")
	}
	startupTime := time.Now()

	router := newContentRouter(store, mailer, withConfig(c), withStartupTime(startupTime))
	return newServer(c, config.KeyAPIPort, "5000", router, startupTime), nil
}

func newServer(c map[string]string, portKey, defaultPort string, handler http.Handler, startupTime time.Time) Server {
	port := config.GetString(c, portKey, defaultPort)
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, config.KeyReadTimeout, 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, config.KeyWriteTimeout, 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, config.KeyIdleTimeout, 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func buildRouter(opts []func(*router)) router {
	r := router{config: map[string]string{}, startupTime: time.Now()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func newPageRouter(registry *sections.Registry, view views.Options, renderWait time.Duration, opts ...func(*router)) *chi.Mux {
	router := buildRouter(opts)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	handlers := initializePageHandlers(registry, view, renderWait, router.startupTime)
	setupPageRoutes(chiRouter, handlers, newPageMiddleware(registry), requestLogger(router.config))

	return chiRouter
}

func newContentRouter(store contentSource, mailer ContactMailer, opts ...func(*router)) *chi.Mux {
	router := buildRouter(opts)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := config.GetStrings(router.config, config.KeyAcceptedOrigins, []string{"*"})
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	recipients := config.GetStrings(router.config, config.KeyContactRecipients, nil)
	handlers := initializeContentHandlers(store, mailer, recipients, router.startupTime)
	setupContentRoutes(chiRouter, handlers, requestLogger(router.config))

	return chiRouter
}

// requestLogger picks the request log writer matching LOG_FORMAT
func requestLogger(c map[string]string) func(http.Handler) http.Handler {
	if config.GetString(c, config.KeyLogFormat, "console") == "json" {
		return JSONHTTPLoggingMiddleware
	}
	return ColoredHTTPLoggingMiddleware
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
