package usererrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"email is already in use",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role",
		http.StatusBadRequest,
	)
	ErrManageForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to manage this user",
		http.StatusForbidden,
	)
	ErrAssignRoleForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to assign this role",
		http.StatusForbidden,
	)
	ErrProfileEditForbidden = apperror.New(
		apperror.CodeForbidden,
		"profile editing is disabled for your role",
		http.StatusForbidden,
	)
	ErrLastCEO = apperror.New(
		apperror.CodeDataIntegrity,
		"the last CEO account cannot be removed",
		http.StatusConflict,
	)
)
