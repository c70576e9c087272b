package employee

import (
	"context"
	"time"

	employeeerrors "github.com/AKARSH147/hrms/internal/employee/errors"
	"github.com/AKARSH147/hrms/internal/shared/apperror"
	"github.com/AKARSH147/hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	fields, fieldErrs := validateCreate(req)
	if fieldErrs != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Any("fields", fieldErrs),
		)
		return EmployeeResponse{}, apperror.FieldErrors(fieldErrs)
	}

	empl := &Employee{
		ID:         uuid.New(),
		EmployeeID: fields.EmployeeID,
		FullName:   fields.FullName,
		Email:      fields.Email,
		Department: fields.Department,
		CreatedAt:  time.Now().UTC(),
	}

	// Duplicate checks and the insert share one transaction; the unique
	// indexes settle any race the checks miss.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		taken, err := qtx.ExistsByEmployeeID(ctx, fields.EmployeeID, "")
		if err != nil {
			return mapRepositoryError(err)
		}
		if taken {
			return employeeerrors.ErrEmployeeIDAlreadyExists
		}

		taken, err = qtx.ExistsByEmail(ctx, fields.Email, "")
		if err != nil {
			return mapRepositoryError(err)
		}
		if taken {
			return employeeerrors.ErrEmailAlreadyExists
		}

		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("create employee failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("id", empl.ID.String()),
		zap.String("employee_id", empl.EmployeeID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("get employee by id failed",
			zap.String("id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid), zap.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	updates, fieldErrs := validateUpdate(req)
	if fieldErrs != nil {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.Any("fields", fieldErrs),
		)
		return EmployeeResponse{}, apperror.FieldErrors(fieldErrs)
	}

	var updated Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if updates.EmployeeID != nil {
			empl.EmployeeID = *updates.EmployeeID
		}
		if updates.FullName != nil {
			empl.FullName = *updates.FullName
		}
		if updates.Email != nil {
			empl.Email = *updates.Email
		}
		if updates.Department != nil {
			empl.Department = *updates.Department
		}

		// Uniqueness re-checked on the effective values, excluding this
		// record.
		taken, err := qtx.ExistsByEmployeeID(ctx, empl.EmployeeID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if taken {
			return employeeerrors.ErrEmployeeIDAlreadyExists
		}

		taken, err = qtx.ExistsByEmail(ctx, empl.Email, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if taken {
			return employeeerrors.ErrEmailAlreadyExists
		}

		if err := qtx.Update(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}
		updated = *empl
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee failed",
			zap.String("request_id", rid), zap.String("id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid), zap.String("id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid), zap.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	var attendanceRemoved int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		removed, err := qtx.DeleteAttendanceByEmployee(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		attendanceRemoved = removed

		affected, err := qtx.Delete(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if affected == 0 {
			return employeeerrors.ErrEmployeeNotFound
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid), zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("id", id),
		zap.Int64("attendance_removed", attendanceRemoved),
	)
	return nil
}
