package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/sections"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// pageMiddleware resolves the {pageID} URL parameter to a mounted page
type pageMiddleware struct {
	responder Responder
	logger    zerolog.Logger
	registry  *sections.Registry
}

func newPageMiddleware(registry *sections.Registry) pageMiddleware {
	logger := log.With().Str("handlerName", "pageMiddleware").Logger()
	return pageMiddleware{
		responder: NewResponder(logger),
		logger:    logger,
		registry:  registry,
	}
}

func (m pageMiddleware) resolvePage(next http.Handler) http.Handler {
	return m.resolve(next, "")
}

// alertWhenGone resolves the page like resolvePage, and when the page is no
// longer mounted it also raises message as an alert so the visitor learns
// the request was lost.
func (m pageMiddleware) alertWhenGone(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.resolve(next, message)
	}
}

func (m pageMiddleware) resolve(next http.Handler, goneAlert string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "pageID")
		pageID, err := uuid.Parse(rawID)
		if err != nil {
			m.responder.WriteError(w, errs.NewInvalidFieldError("pageID", "must be a UUID"))
			return
		}

		page, err := m.registry.Get(pageID)
		if err != nil {
			if goneAlert != "" && errs.IsPageNotFoundError(err) {
				triggerAlert(w, m.logger, goneAlert)
			}
			m.responder.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithPage(r.Context(), page)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// corsMiddleware lets browsers on the accepted origins call the content API
func corsMiddleware(acceptedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return httpLogging(colorLogger)(next)
}

// JSONHTTPLoggingMiddleware is ColoredHTTPLoggingMiddleware for LOG_FORMAT=json
func JSONHTTPLoggingMiddleware(next http.Handler) http.Handler {
	return httpLogging(log.Logger)(next)
}

func httpLogging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			srw := &statusResponseWriter{ResponseWriter: w, status: 200}

			next.ServeHTTP(srw, r)

			duration := time.Since(start)

			// Color-code based on HTTP status codes
			var logEvent *zerolog.Event
			switch {
			case srw.status >= 500:
				logEvent = logger.Error()
			case srw.status >= 400:
				logEvent = logger.Warn()
			default:
				logEvent = logger.Info()
			}

			logEvent.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", srw.status).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP Request")
		})
	}
}
