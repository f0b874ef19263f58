package server

import "time"

// ErrorResponse is the body of every error the server writes.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health and readiness check responses.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// IndexResponse is served on the root path.
type IndexResponse struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	Ready     bool      `json:"ready"`
	Timestamp time.Time `json:"timestamp"`
	Routes    []string  `json:"routes"`
}
