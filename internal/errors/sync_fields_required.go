package errors

import "net/http"

var ErrSyncFieldsRequired = &Exception{
	Message:    "external id and email are required",
	StatusCode: http.StatusBadRequest,
}
