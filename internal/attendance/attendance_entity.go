package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendances_employee_date,priority:1"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendances_employee_date,priority:2"`
	Status     string       `gorm:"column:status;type:varchar(10);not null;default:present"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is a read-only projection of the employees table, kept local
// so this package does not depend on the employee package.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id"`
	FullName   string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
