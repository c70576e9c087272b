package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened view a handler needs to write a response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Payload any
}

// ToHTTP converts any error into an HTTPError. Unknown error types map to a
// generic 500 so internals never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Payload: appErr.Payload(),
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
		Payload: ErrInternal.Message,
	}
}
