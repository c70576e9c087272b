package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) (int64, error)
	FindEmployeeByID(ctx context.Context, id string) (*EmployeeRef, error)
	FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Joins("Employee").
		First(&a, "attendances.id = ?", id).Error
	return &a, err
}

// FindAll lists records newest-date first, ties broken by the employees'
// external identifier. employeeID (opaque id) and the inclusive date bounds
// are optional and composed with AND.
func (r *repository) FindAll(ctx context.Context, employeeID string, from, to *time.Time) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Joins("Employee")
	if employeeID != "" {
		q = q.Where("attendances.employee_id = ?", employeeID)
	}
	if from != nil {
		q = q.Where("attendances.date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("attendances.date <= ?", to.Format("2006-01-02"))
	}

	var rows []Attendance
	err := q.
		Order("attendances.date DESC").
		Order(`"Employee".employee_id ASC`).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02"))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) FindEmployeeByID(ctx context.Context, id string) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "employee_id = ?", employeeID).Error
	return &e, err
}
