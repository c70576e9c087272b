package dashboard

import (
	"net/http"

	"github.com/AKARSH147/hrms/internal/shared/apperror"
	"github.com/AKARSH147/hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("dashboard summary failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Payload)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
