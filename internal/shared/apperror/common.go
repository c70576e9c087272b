package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrConstraintViolation marks a database constraint firing after
	// validation already passed. Should never happen; logged and surfaced
	// as a generic 500.
	ErrConstraintViolation = New(
		CodeConstraintViolation,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)
