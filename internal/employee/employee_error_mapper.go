package employee

import (
	"errors"
	"net/http"

	employeeerrors "github.com/AKARSH147/hrms/internal/employee/errors"
	"github.com/AKARSH147/hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage errors into domain errors. A unique
// violation here means validation raced another writer; the constraint is
// the source of truth, so it maps to the same duplicate errors the checks
// would have produced.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employees_employee_id":
			return employeeerrors.ErrEmployeeIDAlreadyExists
		case "uq_employees_email":
			return employeeerrors.ErrEmailAlreadyExists
		default:
			zap.L().Error("unexpected unique violation",
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
