package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("/", h.GetAll)
		employees.POST("/", h.Create)
		employees.GET("/:id/", h.GetByID)
		employees.PUT("/:id/", h.Update)
		employees.DELETE("/:id/", h.Delete)
	}
}
