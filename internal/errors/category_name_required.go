package errors

import "net/http"

var ErrCategoryNameRequired = &Exception{
	Message:    "category name is required",
	StatusCode: http.StatusBadRequest,
}
