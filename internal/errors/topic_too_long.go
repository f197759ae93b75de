package errors

import "net/http"

var ErrTopicTooLong = &Exception{
	Message:    "topic too long (max 100 characters)",
	StatusCode: http.StatusBadRequest,
}
