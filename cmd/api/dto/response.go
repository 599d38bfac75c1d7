package dto

// StatusResponseDTO is the root health payload.
type StatusResponseDTO struct {
	Status string `json:"status" example:"Influence OS API is running."`
}

// MessageResponseDTO is the shared shape for simple success messages.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Post successfully shared on LinkedIn"`
}

// ErrorResponseDTO is the shared shape for plain error responses.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_authorization_header"`
}

// ProviderErrorDTO surfaces a non-success LinkedIn response: Error holds
// the status detail and Details the provider's response body.
type ProviderErrorDTO struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}
