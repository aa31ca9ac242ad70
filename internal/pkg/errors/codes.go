package errors

import "net/http"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeHTTP       = "HTTP_ERROR"
	CodeInternal   = "INTERNAL_SERVER_ERROR"
)

var (
	ErrValidation = New(
		CodeValidation,
		"Request parameters failed validation",
		http.StatusUnprocessableEntity,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
