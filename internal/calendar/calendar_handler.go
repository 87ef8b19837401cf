package calendar

import (
	"net/http"
	"time"

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
	l := zap.L().Named("calendar.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.handler")
	}
	return &Handler{svc: service, now: time.Now, logger: l}
}

func writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.CreateEvent(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetEvents(c *gin.Context) {
	resp, err := h.svc.GetEvents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.svc.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) MonthView(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = h.now().Format("2006-01")
	}

	resp, err := h.svc.MonthView(c.Request.Context(), c.GetString("user_id"), month, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
