package apperror

import "fmt"

// AppError is the one error type that crosses layer boundaries. Field-level
// validation failures carry a Fields map (field name -> message) that becomes
// the structured error payload; everything else renders as a plain message
// string.
type AppError struct {
	Code       string            // machine-readable code (e.g. INVALID_INPUT)
	Message    string            // user-facing message
	HTTPStatus int               // HTTP status code
	Fields     map[string]string // per-field messages, nil for non-field errors
	Err        error             // wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Payload returns what goes under the envelope's "error" key: the field map
// when present, the message string otherwise.
func (e *AppError) Payload() any {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	return e.Message
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
