package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "github.com/AKARSH147/hrms/internal/attendance/errors"
	"github.com/AKARSH147/hrms/internal/shared/apperror"
	"github.com/AKARSH147/hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string, f RangeFilter) (EmployeeAttendanceResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance requested",
		zap.String("request_id", rid),
		zap.String("employee", req.Employee),
		zap.String("date", req.Date),
	)

	fields, fieldErrs := validateCreate(req)
	if fieldErrs != nil {
		s.logger.Warn("create attendance validation failed",
			zap.String("request_id", rid),
			zap.Any("fields", fieldErrs),
		)
		return AttendanceResponse{}, apperror.FieldErrors(fieldErrs)
	}

	employeeUUID, err := uuid.Parse(fields.Employee)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeRefInvalid
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Date:       fields.Date,
		Status:     fields.Status,
		CreatedAt:  time.Now().UTC(),
	}

	// Employee existence, the pair check and the insert share one
	// transaction; the unique index settles any race the check misses.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ref, err := qtx.FindEmployeeByID(ctx, fields.Employee)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendanceerrors.ErrEmployeeRefInvalid
			}
			return mapRepositoryError(err)
		}

		dup, err := qtx.ExistsByEmployeeAndDate(ctx, fields.Employee, fields.Date, "")
		if err != nil {
			return mapRepositoryError(err)
		}
		if dup {
			return attendanceerrors.ErrDuplicateDate
		}

		if err := qtx.Create(ctx, row); err != nil {
			return mapRepositoryError(err)
		}
		row.Employee = ref
		return nil
	})
	if err != nil {
		s.logger.Warn("create attendance failed",
			zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("create attendance success",
		zap.String("request_id", rid),
		zap.String("id", row.ID.String()),
		zap.String("date", row.Date.Format(dateLayout)),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]AttendanceResponse, error) {
	from, to, fieldErrs := parseRange(f.DateFrom, f.DateTo)
	if fieldErrs != nil {
		return nil, apperror.FieldErrors(fieldErrs)
	}

	employeeUUID := ""
	if f.EmployeeID != "" {
		ref, err := s.repo.FindEmployeeByEmployeeID(ctx, f.EmployeeID)
		if err != nil {
			s.logger.Debug("attendance filter employee not found",
				zap.String("employee_id", f.EmployeeID), zap.Error(err))
			return nil, mapEmployeeLookupError(err)
		}
		employeeUUID = ref.ID.String()
	}

	rows, err := s.repo.FindAll(ctx, employeeUUID, from, to)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("get attendance by id failed",
			zap.String("id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update attendance requested",
		zap.String("request_id", rid), zap.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	updates, fieldErrs := validateUpdate(req)
	if fieldErrs != nil {
		s.logger.Warn("update attendance validation failed",
			zap.String("request_id", rid),
			zap.Any("fields", fieldErrs),
		)
		return AttendanceResponse{}, apperror.FieldErrors(fieldErrs)
	}

	var updated Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if updates.Employee != nil {
			employeeUUID, err := uuid.Parse(*updates.Employee)
			if err != nil {
				return attendanceerrors.ErrEmployeeRefInvalid
			}
			ref, err := qtx.FindEmployeeByID(ctx, *updates.Employee)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return attendanceerrors.ErrEmployeeRefInvalid
				}
				return mapRepositoryError(err)
			}
			row.EmployeeID = employeeUUID
			row.Employee = ref
		}
		if updates.Date != nil {
			row.Date = *updates.Date
		}
		if updates.Status != nil {
			row.Status = *updates.Status
		}

		// The effective (employee, date) pair must stay unique; the record
		// itself is excluded so an unchanged pair passes.
		dup, err := qtx.ExistsByEmployeeAndDate(ctx, row.EmployeeID.String(), row.Date, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if dup {
			return attendanceerrors.ErrDuplicateDate
		}

		if err := qtx.Update(ctx, row); err != nil {
			return mapRepositoryError(err)
		}
		updated = *row
		return nil
	})
	if err != nil {
		s.logger.Warn("update attendance failed",
			zap.String("request_id", rid), zap.String("id", id), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance success",
		zap.String("request_id", rid), zap.String("id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrAttendanceNotFound
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn("delete attendance failed",
			zap.String("request_id", rid), zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}

	s.logger.Info("delete attendance success",
		zap.String("request_id", rid), zap.String("id", id))
	return nil
}

// ListByEmployee resolves an employee by opaque id and returns the filtered
// records together with the present-day count of that filtered set.
func (s *service) ListByEmployee(ctx context.Context, employeeID string, f RangeFilter) (EmployeeAttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeAttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	from, to, fieldErrs := parseRange(f.DateFrom, f.DateTo)
	if fieldErrs != nil {
		return EmployeeAttendanceResponse{}, apperror.FieldErrors(fieldErrs)
	}

	if _, err := s.repo.FindEmployeeByID(ctx, employeeID); err != nil {
		return EmployeeAttendanceResponse{}, mapEmployeeLookupError(err)
	}

	rows, err := s.repo.FindAll(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("list employee attendance failed",
			zap.String("employee", employeeID), zap.Error(err))
		return EmployeeAttendanceResponse{}, mapRepositoryError(err)
	}

	present := 0
	for _, r := range rows {
		if r.Status == StatusPresent {
			present++
		}
	}

	return EmployeeAttendanceResponse{
		Records:          mapToListResponse(rows),
		TotalPresentDays: present,
	}, nil
}

// parseRange validates the optional inclusive date bounds.
func parseRange(dateFrom, dateTo string) (*time.Time, *time.Time, map[string]string) {
	errs := map[string]string{}
	var from, to *time.Time

	if dateFrom != "" {
		if d, ok := parseDate(dateFrom); ok {
			from = &d
		} else {
			errs["date_from"] = msgDateInvalid
		}
	}
	if dateTo != "" {
		if d, ok := parseDate(dateTo); ok {
			to = &d
		} else {
			errs["date_to"] = msgDateInvalid
		}
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}
	return from, to, nil
}

// mapEmployeeLookupError turns a missing employees row into the 404 the
// listing endpoints return.
func mapEmployeeLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrEmployeeNotFound
	}
	return mapRepositoryError(err)
}
