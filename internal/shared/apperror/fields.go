package apperror

import "net/http"

// RequiredField reports an empty-after-trim required field.
func RequiredField(field, message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Fields:     map[string]string{field: message},
	}
}

// InvalidField reports a field whose value failed format validation.
func InvalidField(field, message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Fields:     map[string]string{field: message},
	}
}

// DuplicateField reports a uniqueness violation on a field. Rendered as a
// 400 with the same field-keyed payload as the other validation errors.
func DuplicateField(field, message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Fields:     map[string]string{field: message},
	}
}

// FieldErrors bundles independently collected per-field messages into a
// single validation error.
func FieldErrors(fields map[string]string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}
