package calendarerrors

import (
	"net/http"

	"hr-panel/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"calendar event not found",
		http.StatusNotFound,
	)
	ErrInvalidEventType = apperror.New(
		apperror.CodeInvalidInput,
		"event type must be one of Meeting, Holiday, Deadline",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
)
