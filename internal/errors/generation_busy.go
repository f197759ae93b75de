package errors

import "net/http"

var ErrGenerationBusy = &Exception{
	Message:    "generation capacity exhausted, try again shortly",
	StatusCode: http.StatusServiceUnavailable,
}
