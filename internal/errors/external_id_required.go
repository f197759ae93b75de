package errors

import "net/http"

var ErrExternalIDRequired = &Exception{
	Message:    "external id is required",
	StatusCode: http.StatusBadRequest,
}
