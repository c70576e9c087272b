package employee

import "time"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// UpdateEmployeeRequest is a partial update: nil means "leave unchanged".
type UpdateEmployeeRequest struct {
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
