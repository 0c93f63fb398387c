package test

import "encoding/json"

// RenderRequest represents a dry-run render request
type RenderRequest struct {
	EventKind string          `json:"event_kind" binding:"required"`
	Payload   json.RawMessage `json:"payload" binding:"required" swaggertype:"object"`
}

// RenderResponse represents a dry-run render response
type RenderResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
