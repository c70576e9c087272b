package attendance

import (
	"errors"
	"net/http"

	attendanceerrors "github.com/AKARSH147/hrms/internal/attendance/errors"
	"github.com/AKARSH147/hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage errors into domain errors. The pair
// constraint and the employee FK can still fire under concurrent writes
// after the service-level checks passed; both map to the errors the checks
// would have produced.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendances_employee_date":
			return attendanceerrors.ErrDuplicateDate
		case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_attendances_employee":
			return attendanceerrors.ErrEmployeeRefInvalid
		case pgErr.Code == "23505" || pgErr.Code == "23503":
			zap.L().Error("unexpected constraint violation",
				zap.String("constraint", pgErr.ConstraintName), zap.Error(err))
			return apperror.Wrap(err,
				apperror.CodeConstraintViolation,
				"An unexpected error occurred",
				http.StatusInternalServerError,
			)
		}
	}

	return err
}
