package chat

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
	l := zap.L().Named("chat.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.handler")
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

func actor(c *gin.Context) (string, domain.Role) {
	return c.GetString("user_id"), domain.Role(c.GetString("role"))
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.CreateGroup(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetGroups(c *gin.Context) {
	resp, err := h.svc.GetGroups(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteGroup(c *gin.Context) {
	id, role := actor(c)
	if err := h.svc.DeleteGroup(c.Request.Context(), id, role, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AddMembers(c *gin.Context) {
	var req AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	id, role := actor(c)
	resp, err := h.svc.AddMembers(c.Request.Context(), id, role, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	id, role := actor(c)
	resp, err := h.svc.RemoveMember(c.Request.Context(), id, role, c.Param("id"), c.Param("memberId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SendGroupMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.SendGroupMessage(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListGroupConversation(c *gin.Context) {
	resp, err := h.svc.ListGroupConversation(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SendDirectMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.svc.SendDirectMessage(c.Request.Context(), c.GetString("user_id"), c.Param("userId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListDirectConversation(c *gin.Context) {
	resp, err := h.svc.ListDirectConversation(c.Request.Context(), c.GetString("user_id"), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
