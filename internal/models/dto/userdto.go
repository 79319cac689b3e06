package dto

// ErrorResponseDTO is the body of a failed lookup or update.
type ErrorResponseDTO struct {
	Error string `json:"error"`
}

// MessageResponseDTO is the body of an informational response.
type MessageResponseDTO struct {
	Message string `json:"message"`
}

// RateLimitResponse is returned when a client exceeds the request budget.
type RateLimitResponse struct {
	Message string `json:"message"`
}
