package employee

import (
	"regexp"
	"strings"
)

// Same pattern the public API has always accepted: ASCII local part with
// ._%+- , dotted domain, TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	msgEmployeeIDRequired = "Employee ID is required."
	msgFullNameRequired   = "Full name is required."
	msgEmailRequired      = "Email is required."
	msgEmailInvalid       = "Enter a valid email address."
	msgDepartmentRequired = "Department is required."
)

// employeeFields holds normalized, validated field values.
type employeeFields struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// validateCreate normalizes and validates all fields, collecting every
// failure rather than stopping at the first. Returns the field-error map
// (nil when valid).
func validateCreate(req CreateEmployeeRequest) (employeeFields, map[string]string) {
	errs := map[string]string{}

	fields := employeeFields{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		FullName:   strings.TrimSpace(req.FullName),
		Email:      normalizeEmail(req.Email),
		Department: strings.TrimSpace(req.Department),
	}

	if fields.EmployeeID == "" {
		errs["employee_id"] = msgEmployeeIDRequired
	}
	if fields.FullName == "" {
		errs["full_name"] = msgFullNameRequired
	}
	if fields.Email == "" {
		errs["email"] = msgEmailRequired
	} else if !emailPattern.MatchString(fields.Email) {
		errs["email"] = msgEmailInvalid
	}
	if fields.Department == "" {
		errs["department"] = msgDepartmentRequired
	}

	if len(errs) > 0 {
		return employeeFields{}, errs
	}
	return fields, nil
}

// validateUpdate checks only the supplied fields. Returned pointers carry
// the normalized values; nil means the field was not supplied.
func validateUpdate(req UpdateEmployeeRequest) (UpdateEmployeeRequest, map[string]string) {
	errs := map[string]string{}
	out := UpdateEmployeeRequest{}

	if req.EmployeeID != nil {
		v := strings.TrimSpace(*req.EmployeeID)
		if v == "" {
			errs["employee_id"] = msgEmployeeIDRequired
		}
		out.EmployeeID = &v
	}
	if req.FullName != nil {
		v := strings.TrimSpace(*req.FullName)
		if v == "" {
			errs["full_name"] = msgFullNameRequired
		}
		out.FullName = &v
	}
	if req.Email != nil {
		v := normalizeEmail(*req.Email)
		if v == "" {
			errs["email"] = msgEmailRequired
		} else if !emailPattern.MatchString(v) {
			errs["email"] = msgEmailInvalid
		}
		out.Email = &v
	}
	if req.Department != nil {
		v := strings.TrimSpace(*req.Department)
		if v == "" {
			errs["department"] = msgDepartmentRequired
		}
		out.Department = &v
	}

	if len(errs) > 0 {
		return UpdateEmployeeRequest{}, errs
	}
	return out, nil
}

// normalizeEmail trims and lowercases so uniqueness is case-insensitive and
// the stored value is canonical.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
