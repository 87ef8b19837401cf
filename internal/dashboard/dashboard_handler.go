package dashboard

import (
	"net/http"
	"time"

	"hr-panel/internal/domain"
	"hr-panel/internal/shared/apperror"
	"hr-panel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	now    func() time.Time
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{svc: service, now: time.Now, logger: l}
}

func (h *Handler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(
		c.Request.Context(),
		c.GetString("user_id"),
		domain.Role(c.GetString("role")),
		h.now(),
	)
	if err != nil {
		if appErr, ok := err.(*apperror.AppError); ok {
			response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
