package errors

import "net/http"

var ErrTitleTooLong = &Exception{
	Message:    "title too long (max 255 characters)",
	StatusCode: http.StatusBadRequest,
}
