package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	contentHandler contentHandler
	contactHandler contactHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	StartedAt     string `json:"startedAt"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}
