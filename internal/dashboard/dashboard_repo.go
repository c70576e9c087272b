package dashboard

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendance(ctx context.Context) (int64, error)
	CountPresent(ctx context.Context) (int64, error)
	EmployeesPresentSummary(ctx context.Context) ([]EmployeePresentRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("employees").Count(&count).Error
	return count, err
}

func (r *repository) CountAttendance(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("attendances").Count(&count).Error
	return count, err
}

func (r *repository) CountPresent(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("status = ?", "present").
		Count(&count).Error
	return count, err
}

// EmployeesPresentSummary counts present days per employee. The LEFT JOIN
// keeps employees with no attendance at zero; ties on present_days break on
// the external employee id so the order is deterministic.
func (r *repository) EmployeesPresentSummary(ctx context.Context) ([]EmployeePresentRow, error) {
	var rows []EmployeePresentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id,
		       e.employee_id,
		       e.full_name,
		       e.department,
		       COUNT(a.id) FILTER (WHERE a.status = 'present') AS present_days
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id
		GROUP BY e.id, e.employee_id, e.full_name, e.department
		ORDER BY present_days DESC, e.employee_id ASC
	`).Scan(&rows).Error
	return rows, err
}
