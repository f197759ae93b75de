package errors

import "net/http"

var ErrAuthRequired = &Exception{
	Message:    "user authentication required",
	StatusCode: http.StatusUnauthorized,
}
