package leaderrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrLeadNotFound = apperror.New(
		apperror.CodeNotFound,
		"lead not found",
		http.StatusNotFound,
	)
	ErrNoValidRows = apperror.New(
		apperror.CodeInvalidInput,
		"no valid lead rows found in the input",
		http.StatusBadRequest,
	)
	ErrNoExecutives = apperror.New(
		apperror.CodeInvalidState,
		"no executives available to receive leads",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid lead status",
		http.StatusBadRequest,
	)
	ErrUpdateForbidden = apperror.New(
		apperror.CodeForbidden,
		"you can only update leads assigned to you",
		http.StatusForbidden,
	)
	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"could not read the uploaded spreadsheet",
		http.StatusBadRequest,
	)
)
