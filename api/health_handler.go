package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	service     string
	startupTime time.Time
}

func newHealthHandler(service string, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		service:     service,
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:        "ok",
			Service:       h.service,
			StartedAt:     h.startupTime.UTC().Format(time.RFC3339),
			UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		})
	}
}
