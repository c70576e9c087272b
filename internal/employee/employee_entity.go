package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"`
	FullName   string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	Department string    `gorm:"column:department;type:varchar(100);not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
