package leads

import (
	"net/http"

	"hr-panel/internal/domain"
	"hr-panel/internal/shared/apperror"
	"hr-panel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leads.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leads.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperror.AppError); ok {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
}

// DistributeText takes pasted "Name, Email, Phone" lines.
func (h *Handler) DistributeText(c *gin.Context) {
	var req DistributeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.Distribute(c.Request.Context(), ParseText(req.Text))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// DistributeFile takes an xlsx upload in the "file" form field.
func (h *Handler) DistributeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, apperror.ErrInvalidInput)
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, apperror.ErrInvalidInput)
		return
	}
	defer f.Close()

	rows, err := ParseWorkbook(f)
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.svc.Distribute(c.Request.Context(), rows)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context(), c.GetString("user_id"), domain.Role(c.GetString("role")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.UpdateStatus(
		c.Request.Context(),
		c.GetString("user_id"),
		domain.Role(c.GetString("role")),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
