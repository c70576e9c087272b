package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AKARSH147/hrms/internal/dashboard"
	dashboardMock "github.com/AKARSH147/hrms/internal/dashboard/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles counts and per-employee rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo)

		rows := []dashboard.EmployeePresentRow{
			{ID: uuid.New().String(), EmployeeID: "EMP001", FullName: "Ann Lee", Department: "Eng", PresentDays: 3},
			{ID: uuid.New().String(), EmployeeID: "EMP002", FullName: "Bo Chen", Department: "Ops", PresentDays: 1},
			{ID: uuid.New().String(), EmployeeID: "EMP003", FullName: "Cy Dee", Department: "Eng", PresentDays: 0},
		}
		repo.EXPECT().CountEmployees(ctx).Return(int64(3), nil)
		repo.EXPECT().CountAttendance(ctx).Return(int64(6), nil)
		repo.EXPECT().CountPresent(ctx).Return(int64(4), nil)
		repo.EXPECT().EmployeesPresentSummary(ctx).Return(rows, nil)

		resp, err := svc.GetSummary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.TotalEmployees)
		assert.Equal(t, int64(6), resp.TotalAttendanceRecords)
		assert.Equal(t, int64(4), resp.TotalPresentDays)
		assert.Equal(t, rows, resp.EmployeesPresentSummary)

		var sum int64
		for _, row := range resp.EmployeesPresentSummary {
			sum += row.PresentDays
		}
		assert.Equal(t, resp.TotalPresentDays, sum)
	})

	t.Run("empty store yields zero counts and an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo)

		repo.EXPECT().CountEmployees(ctx).Return(int64(0), nil)
		repo.EXPECT().CountAttendance(ctx).Return(int64(0), nil)
		repo.EXPECT().CountPresent(ctx).Return(int64(0), nil)
		repo.EXPECT().EmployeesPresentSummary(ctx).Return(nil, nil)

		resp, err := svc.GetSummary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), resp.TotalEmployees)
		assert.NotNil(t, resp.EmployeesPresentSummary)
		assert.Empty(t, resp.EmployeesPresentSummary)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := dashboardMock.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo)

		boom := errors.New("connection reset")
		repo.EXPECT().CountEmployees(ctx).Return(int64(0), boom)

		_, err := svc.GetSummary(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
