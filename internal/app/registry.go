package app

import (
	"net/http"

	"github.com/AKARSH147/hrms/internal/attendance"
	"github.com/AKARSH147/hrms/internal/dashboard"
	"github.com/AKARSH147/hrms/internal/employee"
	"github.com/AKARSH147/hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	logger *zap.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(db, employeeRepo, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employee.RegisterRoutes(api, employeeHandler)

	attendanceRepo := attendance.NewRepository(db)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	attendance.RegisterRoutes(api, attendanceHandler)

	dashboardRepo := dashboard.NewRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	dashboard.RegisterRoutes(api, dashboardHandler)
}
