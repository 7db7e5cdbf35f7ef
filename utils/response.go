package utils

// ErrorResponse is the JSON error envelope every handler returns: a
// human-readable message plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
