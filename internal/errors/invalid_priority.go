package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "priority must be low, medium, or high",
	StatusCode: http.StatusBadRequest,
}
