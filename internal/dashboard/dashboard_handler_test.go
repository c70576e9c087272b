package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AKARSH147/hrms/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardService struct {
	GetSummaryFn func(ctx context.Context) (dashboard.SummaryResponse, error)
}

func (f *fakeDashboardService) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	return f.GetSummaryFn(ctx)
}

func setupDashboardRouter(svc dashboard.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dashboard.RegisterRoutes(r.Group("/api"), dashboard.NewHandler(svc))
	return r
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDashboardService{
			GetSummaryFn: func(ctx context.Context) (dashboard.SummaryResponse, error) {
				return dashboard.SummaryResponse{
					TotalEmployees:         2,
					TotalAttendanceRecords: 5,
					TotalPresentDays:       3,
					EmployeesPresentSummary: []dashboard.EmployeePresentRow{
						{EmployeeID: "EMP001", FullName: "Ann Lee", PresentDays: 2},
						{EmployeeID: "EMP002", FullName: "Bo Chen", PresentDays: 1},
					},
				}, nil
			},
		}
		r := setupDashboardRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, float64(2), data["total_employees"])
		assert.Equal(t, float64(5), data["total_attendance_records"])
		assert.Equal(t, float64(3), data["total_present_days"])
		assert.Len(t, data["employees_present_summary"], 2)
	})

	t.Run("repository failure is an internal error string", func(t *testing.T) {
		svc := &fakeDashboardService{
			GetSummaryFn: func(ctx context.Context) (dashboard.SummaryResponse, error) {
				return dashboard.SummaryResponse{}, errors.New("connection reset")
			},
		}
		r := setupDashboardRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "An unexpected error occurred", resp["error"])
	})
}
