package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/attendance")
	{
		records.GET("/", h.GetAll)
		records.POST("/", h.Create)
		records.GET("/:id/", h.GetByID)
		records.PUT("/:id/", h.Update)
		records.DELETE("/:id/", h.Delete)
	}

	// Per-employee listing lives under the employees resource.
	r.GET("/employees/:id/attendance/", h.ListByEmployee)
}
