package types

// CountResponse is the envelope returned by every aggregate-count endpoint.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ErrorResponse is the API's error body. Message and Error are both filled by
// some routes, only one of them by others.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
