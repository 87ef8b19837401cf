package attendance

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
	logger *zap.Logger
	now    func() time.Time
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{svc: service, logger: l, now: time.Now}
}

func writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
}

func (h *Handler) PunchIn(c *gin.Context) {
	resp, err := h.svc.PunchIn(c.Request.Context(), c.GetString("user_id"), h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ChangeState(c *gin.Context) {
	var req StateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.ChangeState(c.Request.Context(), c.GetString("user_id"), req.Type, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PunchOut(c *gin.Context) {
	resp, err := h.svc.PunchOut(c.Request.Context(), c.GetString("user_id"), h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.svc.Today(c.Request.Context(), c.GetString("user_id"), h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context(), c.GetString("user_id"), domain.Role(c.GetString("role")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OverrideStatus(c *gin.Context) {
	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.OverrideStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	data, filename, err := h.svc.ExportCSV(c.Request.Context(), c.GetString("user_id"), domain.Role(c.GetString("role")), h.now())
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
