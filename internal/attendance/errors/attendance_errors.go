package attendanceerrors

import (
	"net/http"

	"github.com/AKARSH147/hrms/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found.",
		http.StatusNotFound,
	)
	// ErrEmployeeNotFound covers the employee_id listing filter and the
	// per-employee listing resolving an unknown employee.
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	// ErrEmployeeRefInvalid fires when a create/update names an employee
	// that does not exist; field-keyed like the original serializer error.
	ErrEmployeeRefInvalid = apperror.InvalidField(
		"employee",
		"Employee not found.",
	)
	ErrDuplicateDate = apperror.DuplicateField(
		"date",
		"Attendance for this employee on this date already exists.",
	)
)
