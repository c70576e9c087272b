package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body: {"success": true, "data": ...} on
// success, {"success": false, "error": ...} on failure. The error value is
// either a field-name -> message map (validation, 400) or a short string
// (not found and internal errors).
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, errPayload any) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   errPayload,
	})
}

// NoContent writes a bare 204 with an empty body (delete success).
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
