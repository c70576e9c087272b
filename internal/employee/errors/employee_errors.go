package employeeerrors

import (
	"net/http"

	"github.com/AKARSH147/hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.DuplicateField(
		"employee_id",
		"An employee with this Employee ID already exists.",
	)
	ErrEmailAlreadyExists = apperror.DuplicateField(
		"email",
		"An employee with this email already exists.",
	)
)
