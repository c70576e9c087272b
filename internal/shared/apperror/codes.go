package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError       = "INTERNAL_ERROR"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
)
