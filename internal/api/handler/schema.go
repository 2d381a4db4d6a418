package handler

// errorResponse mirrors the envelope rendered by the central error handler.
// Declared here so the swagger annotations can reference it.
type errorResponse struct {
	Detail string `json:"detail"`
}
