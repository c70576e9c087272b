package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AKARSH147/hrms/internal/employee"
	employeeerrors "github.com/AKARSH147/hrms/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	employee.RegisterRoutes(r.Group("/api"), employee.NewHandler(svc))
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", req.EmployeeID)
				return employee.EmployeeResponse{
					ID:         uuid.New().String(),
					EmployeeID: req.EmployeeID,
					FullName:   req.FullName,
					Email:      "ann.lee@x.com",
					Department: req.Department,
				}, nil
			},
		}
		r := setupRouter(svc)

		body := `{"employee_id":"E1","full_name":"Ann Lee","email":"Ann.Lee@x.com","department":"Eng"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, true, resp["success"])
		data := resp["data"].(map[string]any)
		assert.Equal(t, "ann.lee@x.com", data["email"])
	})

	t.Run("validation failure envelopes field errors", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
			},
		}
		r := setupRouter(svc)

		body := `{"employee_id":"E1","full_name":"Ann Lee","email":"ann@x.com","department":"Eng"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])
		errPayload := resp["error"].(map[string]any)
		assert.Equal(t, "An employee with this Employee ID already exists.", errPayload["employee_id"])
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees/", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found returns string error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees/"+uuid.New().String()+"/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Employee not found.", resp["error"])
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{EmployeeID: "E1"},
				{EmployeeID: "E2"},
			}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["data"], 2)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/employees/"+uuid.New().String()+"/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/employees/"+uuid.New().String()+"/", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
