package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAttendanceByEmployee(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to a transaction handle so a service can
// run several operations atomically.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) ExistsByEmployeeID(ctx context.Context, employeeID, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Employee{}).
		Where("employee_id = ?", employeeID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DeleteAttendanceByEmployee removes the employee's dependent attendance
// rows. Runs inside the same transaction as Delete so the cascade is
// atomic; the FK ON DELETE CASCADE in the schema is the backstop.
func (r *repository) DeleteAttendanceByEmployee(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM attendances WHERE employee_id = ?", id)
	return res.RowsAffected, res.Error
}
