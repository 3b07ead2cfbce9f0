package dto

// ErrorResponse represents a standardized error response for JSON endpoints
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status       string `json:"status"`
	SessionStore string `json:"sessionStore"`
	Time         string `json:"time"`
}
