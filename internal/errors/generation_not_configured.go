package errors

import "net/http"

var ErrGenerationNotConfigured = &Exception{
	Message:    "AI service not configured, set ANTHROPIC_API_KEY",
	StatusCode: http.StatusInternalServerError,
}
