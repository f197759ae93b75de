package errors

import "net/http"

var ErrTopicRequired = &Exception{
	Message:    "topic is required",
	StatusCode: http.StatusBadRequest,
}
