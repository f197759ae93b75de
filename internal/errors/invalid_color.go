package errors

import "net/http"

var ErrInvalidColor = &Exception{
	Message:    "color must be a hex value like #3B82F6",
	StatusCode: http.StatusBadRequest,
}
