package dashboard

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetSummary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetSummary(ctx context.Context) (SummaryResponse, error) {
	totalEmployees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	totalAttendance, err := s.repo.CountAttendance(ctx)
	if err != nil {
		s.logger.Error("count attendance failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	totalPresent, err := s.repo.CountPresent(ctx)
	if err != nil {
		s.logger.Error("count present failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	summary, err := s.repo.EmployeesPresentSummary(ctx)
	if err != nil {
		s.logger.Error("employee present summary failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	if summary == nil {
		summary = []EmployeePresentRow{}
	}

	return SummaryResponse{
		TotalEmployees:          totalEmployees,
		TotalAttendanceRecords:  totalAttendance,
		TotalPresentDays:        totalPresent,
		EmployeesPresentSummary: summary,
	}, nil
}
