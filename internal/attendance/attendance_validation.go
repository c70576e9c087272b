package attendance

import (
	"strings"
	"time"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

const dateLayout = "2006-01-02"

const (
	msgEmployeeRequired = "Employee is required."
	msgDateRequired     = "Date is required."
	msgDateInvalid      = "Date must be in YYYY-MM-DD format."
	msgStatusInvalid    = "Status must be 'present' or 'absent'."
)

// normalizeStatus trims and lowercases; ok is false when the result is not
// a known status. Empty input is reported separately so create can default
// it.
func normalizeStatus(s string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	return v, v == StatusPresent || v == StatusAbsent
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return d, err == nil
}

// attendanceFields holds normalized, validated create values.
type attendanceFields struct {
	Employee string
	Date     time.Time
	Status   string
}

// validateCreate collects all field errors: employee presence, date
// presence/format, status enum (defaulted to present when unspecified).
func validateCreate(req CreateAttendanceRequest) (attendanceFields, map[string]string) {
	errs := map[string]string{}
	fields := attendanceFields{
		Employee: strings.TrimSpace(req.Employee),
		Status:   StatusPresent,
	}

	if fields.Employee == "" {
		errs["employee"] = msgEmployeeRequired
	}

	if strings.TrimSpace(req.Date) == "" {
		errs["date"] = msgDateRequired
	} else if d, ok := parseDate(req.Date); ok {
		fields.Date = d
	} else {
		errs["date"] = msgDateInvalid
	}

	if strings.TrimSpace(req.Status) != "" {
		if v, ok := normalizeStatus(req.Status); ok {
			fields.Status = v
		} else {
			errs["status"] = msgStatusInvalid
		}
	}

	if len(errs) > 0 {
		return attendanceFields{}, errs
	}
	return fields, nil
}

// attendanceUpdates holds normalized partial-update values; nil pointers
// mean the field was not supplied.
type attendanceUpdates struct {
	Employee *string
	Date     *time.Time
	Status   *string
}

func validateUpdate(req UpdateAttendanceRequest) (attendanceUpdates, map[string]string) {
	errs := map[string]string{}
	out := attendanceUpdates{}

	if req.Employee != nil {
		v := strings.TrimSpace(*req.Employee)
		if v == "" {
			errs["employee"] = msgEmployeeRequired
		}
		out.Employee = &v
	}
	if req.Date != nil {
		if d, ok := parseDate(*req.Date); ok {
			out.Date = &d
		} else {
			errs["date"] = msgDateInvalid
		}
	}
	if req.Status != nil {
		if v, ok := normalizeStatus(*req.Status); ok {
			out.Status = &v
		} else {
			errs["status"] = msgStatusInvalid
		}
	}

	if len(errs) > 0 {
		return attendanceUpdates{}, errs
	}
	return out, nil
}
