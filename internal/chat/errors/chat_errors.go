package chaterrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"group not found",
		http.StatusNotFound,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"group name is required",
		http.StatusBadRequest,
	)
	ErrMembersRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a group needs at least one member besides its creator",
		http.StatusBadRequest,
	)
	ErrDeleteForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to delete this group",
		http.StatusForbidden,
	)
	ErrManageMembersForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to manage members of this group",
		http.StatusForbidden,
	)
	ErrRemoveMemberForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to remove this member",
		http.StatusForbidden,
	)
	ErrNotAMember = apperror.New(
		apperror.CodeForbidden,
		"you are not a member of this group",
		http.StatusForbidden,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"member not found in this group",
		http.StatusNotFound,
	)
	ErrSelfRemoval = apperror.New(
		apperror.CodeInvalidInput,
		"use leave group instead of removing yourself",
		http.StatusBadRequest,
	)
	ErrEmptyMessage = apperror.New(
		apperror.CodeInvalidInput,
		"message content is required",
		http.StatusBadRequest,
	)
	ErrInvalidMessageType = apperror.New(
		apperror.CodeInvalidInput,
		"message type must be one of text, image, file",
		http.StatusBadRequest,
	)
)
