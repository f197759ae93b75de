package errors

import "net/http"

var ErrGenerationFailed = &Exception{
	Message:    "failed to generate tasks, please try again",
	StatusCode: http.StatusInternalServerError,
}
