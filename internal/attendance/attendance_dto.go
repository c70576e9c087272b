package attendance

import "time"

type CreateAttendanceRequest struct {
	Employee string `json:"employee"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// UpdateAttendanceRequest is a partial update: nil means "leave unchanged".
type UpdateAttendanceRequest struct {
	Employee *string `json:"employee"`
	Date     *string `json:"date"`
	Status   *string `json:"status"`
}

// ListFilter narrows the global attendance listing. EmployeeID is the
// external (human-assigned) identifier, not the opaque record id. Date
// bounds are inclusive YYYY-MM-DD strings.
type ListFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
}

// RangeFilter narrows a single employee's listing by date.
type RangeFilter struct {
	DateFrom string
	DateTo   string
}

type AttendanceResponse struct {
	ID                string `json:"id"`
	Employee          string `json:"employee"`
	EmployeeIDDisplay string `json:"employee_id_display,omitempty"`
	EmployeeName      string `json:"employee_name,omitempty"`
	Date              string `json:"date"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
}

// EmployeeAttendanceResponse is the per-employee listing payload: the
// filtered records plus the present-day count over that same filtered set.
type EmployeeAttendanceResponse struct {
	Records          []AttendanceResponse `json:"records"`
	TotalPresentDays int                  `json:"total_present_days"`
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.ID.String(),
		Employee:  a.EmployeeID.String(),
		Date:      a.Date.Format("2006-01-02"),
		Status:    a.Status,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.Employee != nil {
		resp.EmployeeIDDisplay = a.Employee.EmployeeID
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res
}
