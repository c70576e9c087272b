package dashboard

// EmployeePresentRow is one row of the per-employee present-day summary.
type EmployeePresentRow struct {
	ID          string `json:"id" gorm:"column:id"`
	EmployeeID  string `json:"employee_id" gorm:"column:employee_id"`
	FullName    string `json:"full_name" gorm:"column:full_name"`
	Department  string `json:"department" gorm:"column:department"`
	PresentDays int64  `json:"present_days" gorm:"column:present_days"`
}

type SummaryResponse struct {
	TotalEmployees          int64                `json:"total_employees"`
	TotalAttendanceRecords  int64                `json:"total_attendance_records"`
	TotalPresentDays        int64                `json:"total_present_days"`
	EmployeesPresentSummary []EmployeePresentRow `json:"employees_present_summary"`
}
