package genai

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

type ErrorKind int

const (
	// KindUnknown covers anything the client could not classify; the
	// caller may treat it as retryable.
	KindUnknown ErrorKind = iota
	// KindRateLimited means the upstream throttled us; retryable.
	KindRateLimited
	// KindPermissionDenied means the credential is invalid or lacks
	// access; not retryable.
	KindPermissionDenied
	// KindInvalidRequest means the upstream rejected the prompt; try a
	// different topic.
	KindInvalidRequest
	// KindContentFiltered means the model refused the topic on safety
	// grounds; try a different topic.
	KindContentFiltered
	// KindEmptyResult means the response contained no usable lines.
	KindEmptyResult
)

// Error is a classified generation failure. Message is safe to show to
// an end user; raw upstream payloads never leave this package.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func classifyAPIError(err error) *Error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, Message: "rate limit exceeded, wait a moment and try again"}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindPermissionDenied, Message: "API key permission denied, check the configured credential"}
		case http.StatusBadRequest:
			return &Error{Kind: KindInvalidRequest, Message: "invalid request, try a different topic"}
		}
	}
	return &Error{Kind: KindUnknown, Message: "failed to generate tasks, please try again"}
}
