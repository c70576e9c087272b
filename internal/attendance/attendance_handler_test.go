package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AKARSH147/hrms/internal/attendance"
	attendanceerrors "github.com/AKARSH147/hrms/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	CreateFn         func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	GetAllFn         func(ctx context.Context, f attendance.ListFilter) ([]attendance.AttendanceResponse, error)
	GetByIDFn        func(ctx context.Context, id string) (attendance.AttendanceResponse, error)
	UpdateFn         func(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	DeleteFn         func(ctx context.Context, id string) error
	ListByEmployeeFn func(ctx context.Context, employeeID string, f attendance.RangeFilter) (attendance.EmployeeAttendanceResponse, error)
}

func (f *fakeAttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeAttendanceService) GetAll(ctx context.Context, fl attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.GetAllFn(ctx, fl)
}
func (f *fakeAttendanceService) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAttendanceService) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeAttendanceService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeAttendanceService) ListByEmployee(ctx context.Context, employeeID string, fl attendance.RangeFilter) (attendance.EmployeeAttendanceResponse, error) {
	return f.ListByEmployeeFn(ctx, employeeID, fl)
}

func setupHandlerRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	attendance.RegisterRoutes(r.Group("/api"), attendance.NewHandler(svc))
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAttendanceHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CreateFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, "2026-08-01", req.Date)
				return attendance.AttendanceResponse{
					ID:       uuid.New().String(),
					Employee: req.Employee,
					Date:     req.Date,
					Status:   "present",
				}, nil
			},
		}
		r := setupHandlerRouter(svc)

		body := `{"employee":"` + uuid.New().String() + `","date":"2026-08-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, "present", data["status"])
	})

	t.Run("duplicate pair is a field error", func(t *testing.T) {
		svc := &fakeAttendanceService{
			CreateFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrDuplicateDate
			},
		}
		r := setupHandlerRouter(svc)

		body := `{"employee":"` + uuid.New().String() + `","date":"2026-08-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, false, resp["success"])
		errPayload := resp["error"].(map[string]any)
		assert.Equal(t, "Attendance for this employee on this date already exists.", errPayload["date"])
	})
}

func TestAttendanceHandler_GetAll(t *testing.T) {
	t.Run("forwards query filters", func(t *testing.T) {
		var got attendance.ListFilter
		svc := &fakeAttendanceService{
			GetAllFn: func(ctx context.Context, f attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
				got = f
				return []attendance.AttendanceResponse{}, nil
			},
		}
		r := setupHandlerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/attendance/?employee_id=EMP001&date_from=2026-08-01&date_to=2026-08-31", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, attendance.ListFilter{
			EmployeeID: "EMP001",
			DateFrom:   "2026-08-01",
			DateTo:     "2026-08-31",
		}, got)
	})

	t.Run("unknown employee filter is a 404 string", func(t *testing.T) {
		svc := &fakeAttendanceService{
			GetAllFn: func(ctx context.Context, f attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
				return nil, attendanceerrors.ErrEmployeeNotFound
			},
		}
		r := setupHandlerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/attendance/?employee_id=NOPE", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Employee not found.", resp["error"])
	})
}

func TestAttendanceHandler_Delete(t *testing.T) {
	svc := &fakeAttendanceService{
		DeleteFn: func(ctx context.Context, id string) error { return nil },
	}
	r := setupHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/attendance/"+uuid.New().String()+"/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAttendanceHandler_ListByEmployee(t *testing.T) {
	empID := uuid.New().String()

	svc := &fakeAttendanceService{
		ListByEmployeeFn: func(ctx context.Context, employeeID string, f attendance.RangeFilter) (attendance.EmployeeAttendanceResponse, error) {
			assert.Equal(t, empID, employeeID)
			assert.Equal(t, attendance.RangeFilter{DateFrom: "2026-08-01"}, f)
			return attendance.EmployeeAttendanceResponse{
				Records: []attendance.AttendanceResponse{
					{Date: "2026-08-01", Status: "present"},
				},
				TotalPresentDays: 1,
			}, nil
		},
	}
	r := setupHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees/"+empID+"/attendance/?date_from=2026-08-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total_present_days"])
	assert.Len(t, data["records"], 1)
}
